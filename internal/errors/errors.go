package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for different categories
var (
	// ErrUnknownTool - the model asked for a tool name that is not registered
	ErrUnknownTool = errors.New("unknown tool")

	// ErrInvalidInput - invalid input (bad arguments, malformed config)
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound - resource not found
	ErrNotFound = errors.New("not found")

	// ErrInternal - internal error
	ErrInternal = errors.New("internal error")
)

// Wrap adds context to an error without changing its category.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// IsCategory checks if error belongs to specific category
func IsCategory(err error, category error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, category)
}

// UnknownTool wraps a message as an unknown-tool error
func UnknownTool(message string) error {
	return fmt.Errorf("%s: %w", message, ErrUnknownTool)
}

// InvalidInput wraps a message as invalid input
func InvalidInput(message string) error {
	return fmt.Errorf("%s: %w", message, ErrInvalidInput)
}

// NotFound wraps a message as not found
func NotFound(message string) error {
	return fmt.Errorf("%s: %w", message, ErrNotFound)
}

// Internal wraps a message as internal
func Internal(message string) error {
	return fmt.Errorf("%s: %w", message, ErrInternal)
}
