package task

import (
	"errors"
	"strings"
)

// ErrEmptyTitle is wrapped by ValidationError when a title is blank.
var ErrEmptyTitle = errors.New("title cannot be empty")

// ValidationError reports user input that was rejected without any state change.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Message is the notice shown to the user.
func (e *ValidationError) Message() string {
	msg := e.Err.Error()
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}

// ValidateTitle rejects titles that are empty after trimming whitespace.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return &ValidationError{Field: "title", Err: ErrEmptyTitle}
	}
	return nil
}
