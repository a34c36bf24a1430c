package generation

import "context"

// Generator defines the interface for turning a prompt into generated text.
// This interface serves as a boundary between the application core and
// external AI/LLM services.
type Generator interface {
	// Generate sends prompt to the configured model in a single request and
	// returns the model's text output unchanged.
	//
	// It fails with an *AuthenticationError when the credential is absent or
	// invalid (absence is detected before any network call) and with a
	// *ServiceError when the upstream call errors or times out.
	Generate(ctx context.Context, prompt string) (string, error)

	// Model returns the name of the model used for generation.
	Model() string
}
