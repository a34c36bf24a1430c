// Package service contains the application-specific use cases. It
// orchestrates domain objects and the generation boundary to fulfill
// application features.
//
// The service package implements the application layer in the clean
// architecture: PoemService validates the submitted word, builds the prompt,
// makes a single generation call and wraps the result into a domain.Poem.
// It depends on the generation.Generator interface, never on a specific
// provider implementation.
//
// Error Handling:
//   - Validation errors from the domain and authentication or service errors
//     from the generator are returned unchanged
//   - Anything else is wrapped in a PoemServiceError naming the operation
package service
