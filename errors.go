// Package radix structured error types for the checked API and harness
package radix

import (
	"errors"
	"fmt"
)

// ErrorType represents categories of errors
type ErrorType int

const (
	// Invalid argument errors
	ErrTypeInvalidArg ErrorType = iota
	// Output verification errors
	ErrTypeVerification
	// Result persistence / IO errors
	ErrTypeIO
	// Configuration errors
	ErrTypeConfig
)

// SortError represents a structured error with context
type SortError struct {
	Type    ErrorType
	Op      string // Operation that failed
	Message string // Human-readable message
	Err     error  // Underlying error if any
}

// Error implements the error interface
func (e *SortError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("radix %s error in %s: %s (caused by: %v)",
			e.Type.String(), e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("radix %s error in %s: %s",
		e.Type.String(), e.Op, e.Message)
}

// Unwrap allows error chain inspection
func (e *SortError) Unwrap() error {
	return e.Err
}

// String returns the error type as a string
func (t ErrorType) String() string {
	switch t {
	case ErrTypeInvalidArg:
		return "InvalidArgument"
	case ErrTypeVerification:
		return "Verification"
	case ErrTypeIO:
		return "IO"
	case ErrTypeConfig:
		return "Config"
	default:
		return "Unknown"
	}
}

// Common error constructors

// NewInvalidArgError creates an invalid-argument error
func NewInvalidArgError(op, message string, err error) error {
	return &SortError{Type: ErrTypeInvalidArg, Op: op, Message: message, Err: err}
}

// NewVerificationError creates an output-verification error
func NewVerificationError(op, message string, err error) error {
	return &SortError{Type: ErrTypeVerification, Op: op, Message: message, Err: err}
}

// NewIOError creates a persistence error
func NewIOError(op, message string, err error) error {
	return &SortError{Type: ErrTypeIO, Op: op, Message: message, Err: err}
}

// NewConfigError creates a configuration error
func NewConfigError(op, message string, err error) error {
	return &SortError{Type: ErrTypeConfig, Op: op, Message: message, Err: err}
}

// Type predicates

func isType(err error, t ErrorType) bool {
	var se *SortError
	if errors.As(err, &se) {
		return se.Type == t
	}
	return false
}

// IsInvalidArgError checks whether err is an invalid-argument error
func IsInvalidArgError(err error) bool { return isType(err, ErrTypeInvalidArg) }

// IsVerificationError checks whether err is a verification error
func IsVerificationError(err error) bool { return isType(err, ErrTypeVerification) }

// IsIOError checks whether err is a persistence error
func IsIOError(err error) bool { return isType(err, ErrTypeIO) }

// IsConfigError checks whether err is a configuration error
func IsConfigError(err error) bool { return isType(err, ErrTypeConfig) }
