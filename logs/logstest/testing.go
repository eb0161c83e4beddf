package logstest

import (
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/testr"
)

// NewNullTestLogger returns a logger to nothing
func NewNullTestLogger() logr.Logger {
	return logr.Discard()
}

// NewTestLogger returns a logger to use in tests
func NewTestLogger(t *testing.T) logr.Logger {
	return testr.New(t)
}
