package generation

import (
	"context"
	"errors"
	"fmt"
)

// Common errors returned by the generation package
var (
	// ErrEmptyPrompt is returned when Generate is called with an empty prompt.
	ErrEmptyPrompt = errors.New("prompt cannot be empty")

	// ErrMissingCredential is returned when no API key is configured.
	ErrMissingCredential = errors.New("API key is not configured")

	// ErrInvalidCredential is returned when the provider rejects the API key.
	ErrInvalidCredential = errors.New("API key was rejected by the provider")

	// ErrEmptyResponse is returned when the model answers without any text.
	ErrEmptyResponse = errors.New("language model returned no text")

	// ErrContentBlocked is returned when the LLM blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// AuthenticationError reports that a generation call could not be made or was
// refused because of the credential.
type AuthenticationError struct {
	// Provider is the LLM provider name, e.g. "gemini".
	Provider string
	// Err is ErrMissingCredential, ErrInvalidCredential or a provider error.
	Err error
}

// Error implements the error interface for AuthenticationError.
func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("%s authentication failed: %v", e.Provider, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// NewAuthenticationError creates an AuthenticationError for provider.
func NewAuthenticationError(provider string, err error) error {
	return &AuthenticationError{Provider: provider, Err: err}
}

// ServiceError reports an upstream failure: network, timeout, quota, an empty
// answer or a safety block.
type ServiceError struct {
	// Provider is the LLM provider name, e.g. "gemini".
	Provider string
	// StatusCode is the HTTP status returned by the provider, 0 if none.
	StatusCode int
	// Err is the underlying error.
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s request failed with status %d: %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the request ran past its deadline.
func (e *ServiceError) Timeout() bool {
	return errors.Is(e.Err, context.DeadlineExceeded)
}

// NewServiceError creates a ServiceError for provider.
func NewServiceError(provider string, statusCode int, err error) error {
	return &ServiceError{Provider: provider, StatusCode: statusCode, Err: err}
}

// IsAuthenticationError reports whether err is or wraps an AuthenticationError.
func IsAuthenticationError(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsServiceError reports whether err is or wraps a ServiceError.
func IsServiceError(err error) bool {
	var svcErr *ServiceError
	return errors.As(err, &svcErr)
}
