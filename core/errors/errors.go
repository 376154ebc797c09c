// Package errors provides standardized error types and helpers for furifit.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	// ErrInvalidInput indicates input that could not be parsed or validated
	ErrInvalidInput = errors.New("invalid input")
	// ErrMismatch indicates a word that cannot carry the given furigana
	ErrMismatch = errors.New("word does not fit furigana")
)

// ParseError represents a parsing error in a textual notation
type ParseError struct {
	Format  string // Notation being parsed (e.g., "furigana")
	Input   string // Raw input, if short enough to be useful
	Offset  int    // Byte offset of the failure, -1 if unknown
	Message string // Error details
	Err     error  // Underlying error, if any
}

func (e *ParseError) Error() string {
	if e.Offset >= 0 && e.Input != "" {
		return fmt.Sprintf("failed to parse %s %q at offset %d: %s", e.Format, e.Input, e.Offset, e.Message)
	}
	if e.Input != "" {
		return fmt.Sprintf("failed to parse %s %q: %s", e.Format, e.Input, e.Message)
	}
	return fmt.Sprintf("failed to parse %s: %s", e.Format, e.Message)
}

func (e *ParseError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// Is reports ParseErrors as ErrInvalidInput even when they carry an underlying error.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewParse creates a ParseError with an unknown offset
func NewParse(format, input, message string) *ParseError {
	return &ParseError{
		Format:  format,
		Input:   input,
		Offset:  -1,
		Message: message,
	}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
