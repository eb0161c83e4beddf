package errortest

import (
	"fmt"
	"testing"

	"github.com/foldkit/foldkit/commonerrors"
)

func TestAssertError(t *testing.T) {
	AssertError(t, commonerrors.ErrParse, commonerrors.ErrNotFound, commonerrors.ErrMisconfigured, commonerrors.ErrParse)
	AssertError(t, fmt.Errorf("token: %w", commonerrors.ErrParse), commonerrors.ErrParse)
}

func TestRequireError(t *testing.T) {
	RequireError(t, commonerrors.ErrMisconfigured, commonerrors.ErrNotFound, commonerrors.ErrMisconfigured)
}

func TestAssertErrorDescription(t *testing.T) {
	AssertErrorDescription(t, commonerrors.Newf(commonerrors.ErrParse, "token %q", "a-b"), "a-b")
}
