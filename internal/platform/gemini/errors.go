package gemini

import (
	"errors"
	"net/http"
	"strings"

	"github.com/phrazzld/haengsi/internal/generation"
	"google.golang.org/genai"
)

// providerName identifies Gemini in generation errors and logs.
const providerName = "gemini"

// Message fragments the Gemini API uses when it refuses an API key with a 400.
var invalidKeyMarkers = []string{
	"API key not valid",
	"API_KEY_INVALID",
	"API key expired",
}

// mapError converts an error from the genai client into an
// AuthenticationError or a ServiceError.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		if isCredentialRejection(apiErr) {
			return generation.NewAuthenticationError(providerName, errors.Join(generation.ErrInvalidCredential, err))
		}
		return generation.NewServiceError(providerName, apiErr.Code, err)
	}

	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return mapError(*apiErrPtr)
	}

	return generation.NewServiceError(providerName, 0, err)
}

func isCredentialRejection(apiErr genai.APIError) bool {
	switch apiErr.Code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return true
	case http.StatusBadRequest:
		for _, marker := range invalidKeyMarkers {
			if strings.Contains(apiErr.Message, marker) || strings.Contains(apiErr.Status, marker) {
				return true
			}
		}
		for _, detail := range apiErr.Details {
			if reason, ok := detail["reason"].(string); ok && reason == "API_KEY_INVALID" {
				return true
			}
		}
	}
	return false
}
