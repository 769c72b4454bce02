package grid

import "fmt"

// GridError is a user-correctable grid interaction failure (validation,
// unknown cell, expired session). It maps to a 4xx, never a 5xx.
type GridError struct {
	Code    string
	Message string
}

func (e *GridError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &GridError{Code: "validation", Message: msg}
}

func NewSessionError(msg string) error {
	return &GridError{Code: "session", Message: msg}
}

func NewCellError(msg string) error {
	return &GridError{Code: "cell", Message: msg}
}
