// Package gemini provides an implementation of the generation.Generator interface
// that uses Google's Gemini API to write Korean acrostic poems.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting the application's poem service to Google's external Gemini AI
// service without exposing the details of that service to the core application.
//
// Key components:
//
// 1. Generator:
//   - Implements the generation.Generator interface
//   - Creates the genai client lazily on first use and reuses it
//   - Sends exactly one GenerateContent request per call, without retries
//
// 2. Error Handling:
//   - A missing API key is reported before any network call
//   - Rejected keys become generation.AuthenticationError
//   - Upstream failures, timeouts, empty answers and safety blocks become
//     generation.ServiceError
//   - Error details are redacted before they are logged
package gemini
