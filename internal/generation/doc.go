// Package generation defines the boundary between the poem generator and the
// hosted LLM services that write the poems. It owns the Generator interface
// implemented by the platform adapters (Gemini, OpenAI), the PromptBuilder that
// turns a Korean word into the acrostic (행시) instruction, and the two error
// kinds callers must tell apart: AuthenticationError for a missing or rejected
// credential and ServiceError for every other upstream failure.
package generation
