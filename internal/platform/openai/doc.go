// Package openai implements generation.Generator on top of an
// OpenAI-compatible chat completions API.
//
// The client is created lazily on first use, SDK retries are disabled so a
// request maps to exactly one upstream call, and provider errors are mapped
// to generation.AuthenticationError or generation.ServiceError.
package openai
