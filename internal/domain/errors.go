package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent the two failure kinds of the pipeline.
// They can be checked with errors.Is on anything returned by the public API.
var (
	// ErrConfiguration is returned when the pipeline constants are inconsistent.
	// It is a programming error and must abort pipeline construction.
	ErrConfiguration = errors.New("enochian: inconsistent pipeline constants")

	// ErrValidation is returned when a computed result breaks a result invariant.
	ErrValidation = errors.New("enochian: result validation failed")
)

// ConfigurationError describes which constant failed the startup self-check.
type ConfigurationError struct {
	Field string
	Msg   string
}

func (e *ConfigurationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrConfiguration.Error(), e.Msg)
	}
	return fmt.Sprintf("%s: %s: %s", ErrConfiguration.Error(), e.Field, e.Msg)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// ValidationError reports an entropy above the ceiling.
type ValidationError struct {
	Entropy float64
	Ceiling float64
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: choronzon dispersion too high: %.4f exceeds ceiling %.4f",
		ErrValidation.Error(), e.Entropy, e.Ceiling)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func configErrorf(field, format string, args ...interface{}) error {
	return &ConfigurationError{Field: field, Msg: fmt.Sprintf(format, args...)}
}

// IsConfiguration reports whether err is a constants self-check failure.
func IsConfiguration(err error) bool { return errors.Is(err, ErrConfiguration) }

// IsValidation reports whether err is a result validation failure.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }
