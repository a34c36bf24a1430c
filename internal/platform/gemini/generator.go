package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/phrazzld/haengsi/internal/config"
	"github.com/phrazzld/haengsi/internal/generation"
	"github.com/phrazzld/haengsi/internal/redact"
	"google.golang.org/genai"
)

// Generator implements the generation.Generator interface using
// Google's Gemini API.
type Generator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// config contains LLM-specific configuration
	config config.LLMConfig

	// timeout bounds a single GenerateContent call
	timeout time.Duration

	// mu guards client, which is created on first use and read-only afterwards
	mu     sync.Mutex
	client *genai.Client
}

var _ generation.Generator = (*Generator)(nil)

// NewGenerator creates a Gemini generator. No network connection is made and
// the API key is not checked until the first call to Generate.
func NewGenerator(logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	timeout := cfg.RequestTimeout()
	if timeout <= 0 {
		return nil, fmt.Errorf("%w: request timeout must be positive", generation.ErrInvalidConfig)
	}

	return &Generator{
		logger:  logger.With("component", "gemini_generator", "model", cfg.ModelName),
		config:  cfg,
		timeout: timeout,
	}, nil
}

// Model returns the Gemini model name.
func (g *Generator) Model() string {
	return g.config.ModelName
}

// Generate sends prompt to Gemini in a single request and returns the text
// of the first candidate.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", generation.ErrEmptyPrompt
	}

	client, err := g.getClient(ctx)
	if err != nil {
		return "", err
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	g.logger.DebugContext(ctx, "Making Gemini API call", "prompt_length", len(prompt))

	resp, err := client.Models.GenerateContent(
		callCtx,
		g.config.ModelName,
		[]*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)},
		nil,
	)
	if err != nil {
		mapped := mapError(err)
		g.logger.ErrorContext(ctx, "Gemini API call failed",
			"error", redact.Error(err),
			"duration_ms", time.Since(start).Milliseconds(),
			"authentication_error", generation.IsAuthenticationError(mapped))
		return "", mapped
	}

	text, err := extractText(resp)
	if err != nil {
		g.logger.WarnContext(ctx, "Gemini returned no usable text",
			"error", err.Error(),
			"duration_ms", time.Since(start).Milliseconds())
		return "", generation.NewServiceError(providerName, 0, err)
	}

	g.logger.InfoContext(ctx, "Gemini API call succeeded",
		"response_length", len(text),
		"duration_ms", time.Since(start).Milliseconds())

	return text, nil
}

// getClient returns the shared genai client, creating it on first use.
func (g *Generator) getClient(ctx context.Context) (*genai.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client != nil {
		return g.client, nil
	}

	if strings.TrimSpace(g.config.GeminiAPIKey) == "" {
		g.logger.WarnContext(ctx, "Gemini API key is not configured")
		return nil, generation.NewAuthenticationError(providerName, generation.ErrMissingCredential)
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  g.config.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if g.config.GeminiBaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: g.config.GeminiBaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		g.logger.ErrorContext(ctx, "Failed to create Gemini client", "error", redact.Error(err))
		return nil, generation.NewServiceError(providerName, 0,
			fmt.Errorf("failed to create Gemini client: %w", err))
	}

	g.client = client
	return client, nil
}

// extractText returns the text of the first candidate, or an error wrapping
// ErrContentBlocked or ErrEmptyResponse.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", generation.ErrEmptyResponse
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: prompt blocked (%s)",
			generation.ErrContentBlocked, resp.PromptFeedback.BlockReason)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return "", generation.ErrEmptyResponse
	}

	switch resp.Candidates[0].FinishReason {
	case genai.FinishReasonSafety, genai.FinishReasonProhibitedContent, genai.FinishReasonBlocklist:
		return "", fmt.Errorf("%w: finish reason %s",
			generation.ErrContentBlocked, resp.Candidates[0].FinishReason)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", generation.ErrEmptyResponse
	}
	return text, nil
}
