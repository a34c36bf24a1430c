// Package redact provides utilities for redacting sensitive information from strings
// before they are logged. Errors returned by the LLM client libraries can echo the
// request URL, the API key query parameter or an Authorization header; this package
// keeps those out of the logs.
package redact

import (
	"regexp"
)

// Constants for redaction placeholders
const (
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedHostPlaceholder       = "[REDACTED_HOST]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
)

// rule pairs a pattern with its replacement. Replacements may reference
// capture groups ($1) to keep the non-sensitive part of a match.
type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// Rules are applied in order; provider key formats go first so that the
// generic patterns never see a partial key.
var rules = []rule{
	// Google API keys (Gemini)
	{regexp.MustCompile(`AIza[0-9A-Za-z_\-]{35}`), RedactedKeyPlaceholder},
	// OpenAI style secret keys
	{regexp.MustCompile(`sk-[A-Za-z0-9_\-]{16,}`), RedactedKeyPlaceholder},
	// key=... query parameters
	{regexp.MustCompile(`(?i)([?&](?:key|api_key|apikey)=)[^&\s"']+`), "${1}" + RedactedKeyPlaceholder},
	// Authorization: Bearer ...
	{regexp.MustCompile(`(?i)(bearer\s+)[A-Za-z0-9_\-.~+/=]{8,}`), "${1}" + RedactedCredentialPlaceholder},
	// Generic key/secret/token assignments
	{regexp.MustCompile(`(?i)(api[_-]?key|token|secret|password)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`), "${1}${2}" + RedactedKeyPlaceholder},
	// Email addresses
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), RedactedEmailPlaceholder},
	// Host names with optional port
	{regexp.MustCompile(`\b(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}(?::\d{1,5})?\b`), RedactedHostPlaceholder},
	// File system and URL paths
	{regexp.MustCompile(`(/[\w.-]+){2,}`), RedactedPathPlaceholder},
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}

	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
