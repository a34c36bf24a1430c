package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/haengsi/internal/domain"
	"github.com/phrazzld/haengsi/internal/generation"
)

// PoemServiceError wraps errors from the poem service with context.
type PoemServiceError struct {
	// Operation is the operation that failed (e.g., "build_prompt")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for PoemServiceError.
func (e *PoemServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("poem service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("poem service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *PoemServiceError) Unwrap() error {
	return e.Err
}

// NewPoemServiceError creates a new PoemServiceError.
// Validation and generator errors are returned directly without wrapping.
func NewPoemServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, domain.ErrValidation) ||
		generation.IsAuthenticationError(err) ||
		generation.IsServiceError(err) {
		return err
	}

	return &PoemServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
