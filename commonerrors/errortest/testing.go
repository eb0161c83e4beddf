// Package errortest provides assertions on errors returned by foldkit.
package errortest

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foldkit/foldkit/commonerrors"
)

// AssertError asserts that err matches one of expectedErrors using commonerrors.Any.
func AssertError(t *testing.T, err error, expectedErrors ...error) bool {
	t.Helper()
	if commonerrors.Any(err, expectedErrors...) {
		return true
	}
	return assert.Fail(t, fmt.Sprintf("unexpected error:\n actual: %v\n expected any of: %+v", err, expectedErrors))
}

// RequireError is like AssertError but stops the test on failure.
func RequireError(t *testing.T, err error, expectedErrors ...error) {
	t.Helper()
	if !AssertError(t, err, expectedErrors...) {
		t.FailNow()
	}
}

// AssertErrorDescription asserts that the description of err contains one of the given descriptions.
func AssertErrorDescription(t *testing.T, err error, expectedDescriptions ...string) bool {
	t.Helper()
	if commonerrors.CorrespondTo(err, expectedDescriptions...) {
		return true
	}
	return assert.Fail(t, fmt.Sprintf("unexpected error description:\n actual: %v\n expected any of: %+v", err, expectedDescriptions))
}
