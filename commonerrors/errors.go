/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package commonerrors defines the sentinel errors returned across foldkit and helpers to wrap and match them.
package commonerrors

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrNoLogger       = errors.New("missing logger")
	ErrNoLoggerSource = errors.New("missing logger source")
	ErrNoLogSource    = errors.New("missing log source")
	ErrUndefined      = errors.New("undefined")
	ErrTimeout        = errors.New("timeout")
	ErrNotFound       = errors.New("not found")
	ErrUnsupported    = errors.New("unsupported")
	ErrUnknown        = errors.New("unknown")
	ErrInvalid        = errors.New("invalid")
	ErrCondition      = errors.New("failed condition")
	ErrUnexpected     = errors.New("unexpected")
	ErrMarshalling    = errors.New("unserialisable")
	ErrCancelled      = errors.New("cancelled")
	ErrEOF            = errors.New("end of file")
	// ErrParse is returned when a textual specification cannot be parsed.
	ErrParse = errors.New("parse error")
	// ErrMisconfigured is returned when a component is missing a piece it needs for the requested mode of execution.
	ErrMisconfigured = errors.New("misconfigured")
)

// Any determines whether the target error is of the same type as any of the errors `err`
func Any(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return true
		}
	}
	return false
}

// None determines whether the target error is of none of the types of the errors `err`
func None(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return false
		}
	}
	return true
}

// CorrespondTo determines whether the description of `target` contains any of the descriptions provided (case insensitive).
func CorrespondTo(target error, description ...string) bool {
	if target == nil {
		return false
	}
	desc := strings.ToLower(target.Error())
	for _, d := range description {
		if strings.Contains(desc, strings.ToLower(d)) {
			return true
		}
	}
	return false
}

// IsEmpty states whether an error is nil or has no description.
func IsEmpty(err error) bool {
	return err == nil || strings.TrimSpace(err.Error()) == ""
}

// Ignore returns nil if `target` is of any of the types listed in `ignore`, `target` otherwise.
func Ignore(target error, ignore ...error) error {
	if Any(target, ignore...) {
		return nil
	}
	return target
}

// New creates an error of type `errorType` with a reason.
func New(errorType error, message string) error {
	if errorType == nil {
		return errors.New(message)
	}
	if strings.TrimSpace(message) == "" {
		return errorType
	}
	return fmt.Errorf("%w: %v", errorType, message)
}

// Newf is similar to New but accepts a format string.
func Newf(errorType error, format string, args ...any) error {
	return New(errorType, fmt.Sprintf(format, args...))
}

// WrapError wraps `originalError` into an error of type `targetErrorType`. Both remain matchable using errors.Is.
func WrapError(targetErrorType, originalError error, message string) error {
	if originalError == nil {
		return New(targetErrorType, message)
	}
	if targetErrorType == nil {
		if strings.TrimSpace(message) == "" {
			return originalError
		}
		return fmt.Errorf("%v: %w", message, originalError)
	}
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("%w: %w", targetErrorType, originalError)
	}
	return fmt.Errorf("%w: %v: %w", targetErrorType, message, originalError)
}

// WrapErrorf is similar to WrapError but accepts a format string.
func WrapErrorf(targetErrorType, originalError error, format string, args ...any) error {
	return WrapError(targetErrorType, originalError, fmt.Sprintf(format, args...))
}

// UndefinedVariable returns an undefined error for a variable.
func UndefinedVariable(variableName string) error {
	return Newf(ErrUndefined, "undefined variable '%v'", variableName)
}

// UndefinedParameter returns an invalid error for a missing parameter.
func UndefinedParameter(parameterName string) error {
	return Newf(ErrUndefined, "undefined parameter '%v'", parameterName)
}

// ErrFromContext converts the state of a context into a common error.
func ErrFromContext(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	switch err := ctx.Err(); {
	case err == nil:
		return nil
	case errors.Is(err, context.DeadlineExceeded):
		return ErrTimeout
	case errors.Is(err, context.Canceled):
		return ErrCancelled
	default:
		return WrapError(ErrUnexpected, err, "")
	}
}

// Join returns an error wrapping all the non-nil errors provided, or nil if there are none.
// Every wrapped error remains matchable using errors.Is.
func Join(errs ...error) error {
	var result *multierror.Error
	for i := range errs {
		if errs[i] != nil {
			result = multierror.Append(result, errs[i])
		}
	}
	return result.ErrorOrNil()
}
