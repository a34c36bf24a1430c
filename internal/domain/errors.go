// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// It is usually wrapped in a ValidationError naming the field.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyWord is returned when the submitted word is empty or whitespace.
	ErrEmptyWord = errors.New("word cannot be empty")

	// ErrNotKorean is returned when the word contains no Hangul syllable.
	ErrNotKorean = errors.New("word must contain Korean characters")

	// ErrInvalidCharacter is returned when the word contains a square bracket,
	// which the prompt reserves for line-start markers.
	ErrInvalidCharacter = errors.New("word contains a reserved character")

	// ErrWordTooShort is returned when the word has fewer than MinWordLength characters.
	ErrWordTooShort = errors.New("word is too short")

	// ErrWordTooLong is returned when the word has more than MaxWordLength characters.
	ErrWordTooLong = errors.New("word is too long")

	// ErrEmptyPoem is returned when a poem has no text.
	ErrEmptyPoem = errors.New("poem text cannot be empty")
)

// ValidationError describes a failed validation of a single field.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Field, e.Message, e.Err)
}

// Unwrap returns the underlying sentinel error so errors.Is keeps working.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrValidation, so every ValidationError matches
// the generic sentinel as well as its specific cause.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError creates a ValidationError for field with the given cause.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}
