package juration

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyToken is returned when a blank segment remains after normalizing the input.
	ErrEmptyToken = errors.New("empty token")
	// ErrUnrecognizedUnit is returned when a token is neither a number nor a known unit.
	ErrUnrecognizedUnit = errors.New("unrecognized unit")

	// ErrNonNumericInput is returned for NaN or infinite seconds.
	ErrNonNumericInput = errors.New("non-numeric value")
	// ErrNegativeInput is returned for seconds below zero.
	ErrNegativeInput = errors.New("negative value")
	// ErrInvalidFormat is returned for a format other than micro, short, long, or chrono.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrInvalidUnits is returned for a negative unit cap.
	ErrInvalidUnits = errors.New("invalid units")
)

// ParseError describes why Parse rejected its input.
type ParseError struct {
	Kind  error  // ErrEmptyToken or ErrUnrecognizedUnit
	Token string // Offending token with leading digits stripped
}

func (e *ParseError) Error() string {
	if e.Kind == ErrEmptyToken {
		return "unable to parse: empty token"
	}
	return fmt.Sprintf("unable to parse: %s %q", e.Kind, e.Token)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

// StringifyError describes why Stringify rejected its arguments.
type StringifyError struct {
	Kind   error
	Format string // Set when Kind is ErrInvalidFormat
	Units  int    // Set when Kind is ErrInvalidUnits
}

func (e *StringifyError) Error() string {
	switch e.Kind {
	case ErrInvalidFormat:
		return fmt.Sprintf("format cannot be %q: must be one of micro, short, long, or chrono", e.Format)
	case ErrInvalidUnits:
		return fmt.Sprintf("units cannot be %d: must be a positive number", e.Units)
	default:
		return fmt.Sprintf("unable to stringify a %s", e.Kind)
	}
}

func (e *StringifyError) Unwrap() error {
	return e.Kind
}
