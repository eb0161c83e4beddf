package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/foldkit/foldkit/commonerrors"
	"github.com/foldkit/foldkit/field"
)

// WrapValidationError creates an error resulting from the validation of a configuration.
// The prefix is the environment variable prefix used to report which variable to fix.
func WrapValidationError(prefix *string, err error) IValidationError {
	vErr := newValidationError(err)
	if vErr == nil {
		return nil
	}
	if prefix != nil && strings.TrimSpace(*prefix) != "" {
		vErr.RecordPrefix(*prefix)
	}
	return vErr
}

// IValidationError defines a typical configuration validation error.
type IValidationError interface {
	error
	fmt.Stringer
	Unwrap() error
	// GetEnvironmentVariable returns the environment variable corresponding to the invalid entry.
	GetEnvironmentVariable() string
	GetField() string
	GetReason() string
	RecordPrefix(prefix string)
}

type validationError struct {
	field  string
	prefix *string
	reason string
}

func (v *validationError) GetField() string {
	return v.field
}

func (v *validationError) GetReason() string {
	return v.reason
}

func (v *validationError) RecordPrefix(prefix string) {
	v.prefix = field.ToOptionalString(prefix)
}

func (v *validationError) GetEnvironmentVariable() string {
	if v.field == "" {
		return ""
	}
	short := strings.ReplaceAll(strings.TrimSpace(v.field), "-", EnvVarSeparator)
	prefix := field.OptionalString(v.prefix, "")
	if prefix == "" {
		return strings.ToUpper(short)
	}
	return cleanseEnvVar(prefix, short)
}

func (v *validationError) Error() string {
	location := ""
	if v.field != "" {
		location = fmt.Sprintf(" (%v) [%v]", v.field, v.GetEnvironmentVariable())
	}
	reason := ""
	if v.reason != "" {
		reason = fmt.Sprintf(" %v", v.reason)
	}
	return commonerrors.Newf(v.Unwrap(), "configuration failed validation:%v%v", location, reason).Error()
}

func (v *validationError) Unwrap() error {
	return commonerrors.ErrInvalid
}

func (v *validationError) String() string {
	return v.Error()
}

func newValidationError(err error) *validationError {
	if err == nil {
		return nil
	}
	var vErr *validationError
	if errors.As(err, &vErr) {
		return vErr
	}
	var oes validation.Errors
	if errors.As(err, &oes) {
		return newValidationErrorFromOzzoValidationErrors(oes)
	}
	var oe validation.Error
	if errors.As(err, &oe) {
		return &validationError{reason: oe.Message()}
	}
	return &validationError{reason: err.Error()}
}

func newValidationErrorFromOzzoValidationErrors(oes validation.Errors) *validationError {
	if len(oes) == 0 {
		return &validationError{
			reason: oes.Error(),
		}
	}
	// Only the first failing entry is reported.
	param := slices.Sorted(maps.Keys(oes))[0]
	return &validationError{
		field:  param,
		reason: oes[param].Error(),
	}
}
