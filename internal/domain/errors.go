package domain

import (
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrInternal     ErrorCode = "INTERNAL_ERROR"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Pipeline errors, in the order they can occur during a generation request
	ErrBackendUnavailable ErrorCode = "BACKEND_UNAVAILABLE"
	ErrExtraction         ErrorCode = "EXTRACTION_ERROR"
	ErrParse              ErrorCode = "PARSE_ERROR"
	ErrSchema             ErrorCode = "SCHEMA_ERROR"
	ErrAnswerConsistency  ErrorCode = "ANSWER_CONSISTENCY_ERROR"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper functions for common errors
func NewInvalidInputError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}

// NewBackendUnavailableError wraps a failed call to a generative backend.
// Backend failures are not retried; the caller sees them as terminal.
func NewBackendUnavailableError(backend string, err error) *DomainError {
	return NewError(ErrBackendUnavailable, fmt.Sprintf("Failed to reach %s backend", backend), err)
}

// NewExtractionError reports that no JSON-shaped region was found in the
// backend's raw text. container is "object" or "array".
func NewExtractionError(container string) *DomainError {
	return NewError(ErrExtraction, fmt.Sprintf("No JSON %s found in backend response", container), nil)
}

// NewParseError reports malformed syntax inside the extracted region.
func NewParseError(err error) *DomainError {
	return NewError(ErrParse, "Invalid JSON in backend response", err)
}

// NewMissingFieldError reports an absent required top-level key.
func NewMissingFieldError(field string) *DomainError {
	return NewError(ErrSchema, fmt.Sprintf("Missing required field: %s", field), nil)
}

// NewSchemaError reports a shape or cardinality violation on a named field.
func NewSchemaError(field, message string) *DomainError {
	return NewError(ErrSchema, fmt.Sprintf("Invalid field %q: %s", field, message), nil)
}

// NewAnswerConsistencyError reports an answer that could not be repaired to
// match any offered option. The message names the question, the offending
// answer, and the full option list so the mismatch can be diagnosed from logs.
func NewAnswerConsistencyError(section string, index int, answer string, options []string) *DomainError {
	return NewError(ErrAnswerConsistency,
		fmt.Sprintf("Answer %q for %s[%d] does not match any option %v", answer, section, index, options), nil)
}
