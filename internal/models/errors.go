package models

import "errors"

var ErrNotFound = errors.New("not found")

// ValidationError reports a payload field that failed validation. Field is
// empty when the payload as a whole is invalid.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
