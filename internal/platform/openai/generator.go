package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/phrazzld/haengsi/internal/config"
	"github.com/phrazzld/haengsi/internal/generation"
	"github.com/phrazzld/haengsi/internal/redact"
)

const providerName = "openai"

// finishReasonContentFilter is reported when the provider withholds output.
const finishReasonContentFilter = "content_filter"

// Generator implements generation.Generator using chat completions.
type Generator struct {
	logger  *slog.Logger
	config  config.LLMConfig
	timeout time.Duration

	mu     sync.Mutex
	client *openaisdk.Client
}

var _ generation.Generator = (*Generator)(nil)

// NewGenerator creates an OpenAI generator. The API key is checked on the
// first call to Generate, not here.
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
		logger:  logger.With("component", "openai_generator", "model", cfg.ModelName),
		config:  cfg,
		timeout: timeout,
	}, nil
}

// Model returns the chat model name.
func (g *Generator) Model() string {
	return g.config.ModelName
}

// Generate sends prompt as a single user message and returns the content of
// the first choice.
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
	resp, err := client.Chat.Completions.New(callCtx, openaisdk.ChatCompletionNewParams{
		Model:    g.config.ModelName,
		Messages: []openaisdk.ChatCompletionMessageParamUnion{openaisdk.UserMessage(prompt)},
	})
	if err != nil {
		mapped := mapError(err)
		g.logger.ErrorContext(ctx, "chat completion failed",
			"error", redact.Error(err),
			"duration_ms", time.Since(start).Milliseconds(),
			"authentication_error", generation.IsAuthenticationError(mapped))
		return "", mapped
	}

	if len(resp.Choices) == 0 {
		return "", generation.NewServiceError(providerName, 0, generation.ErrEmptyResponse)
	}

	choice := resp.Choices[0]
	if choice.FinishReason == finishReasonContentFilter {
		return "", generation.NewServiceError(providerName, 0,
			fmt.Errorf("%w: finish reason %s", generation.ErrContentBlocked, choice.FinishReason))
	}
	if strings.TrimSpace(choice.Message.Content) == "" {
		return "", generation.NewServiceError(providerName, 0, generation.ErrEmptyResponse)
	}

	g.logger.InfoContext(ctx, "chat completion succeeded",
		"duration_ms", time.Since(start).Milliseconds(),
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens,
		"finish_reason", choice.FinishReason)

	return choice.Message.Content, nil
}

func (g *Generator) getClient(ctx context.Context) (*openaisdk.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client != nil {
		return g.client, nil
	}

	if strings.TrimSpace(g.config.OpenAIAPIKey) == "" {
		g.logger.WarnContext(ctx, "OpenAI API key is not configured")
		return nil, generation.NewAuthenticationError(providerName, generation.ErrMissingCredential)
	}

	opts := []option.RequestOption{
		option.WithAPIKey(g.config.OpenAIAPIKey),
		option.WithMaxRetries(0),
	}
	if g.config.OpenAIBaseURL != "" {
		opts = append(opts, option.WithBaseURL(g.config.OpenAIBaseURL))
	}

	client := openaisdk.NewClient(opts...)
	g.client = &client
	return g.client, nil
}

func mapError(err error) error {
	var apiErr *openaisdk.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == http.StatusUnauthorized,
			apiErr.StatusCode == http.StatusForbidden,
			apiErr.StatusCode == http.StatusBadRequest && apiErr.Code == "invalid_api_key":
			return generation.NewAuthenticationError(providerName, errors.Join(generation.ErrInvalidCredential, err))
		}
		return generation.NewServiceError(providerName, apiErr.StatusCode, err)
	}
	return generation.NewServiceError(providerName, 0, err)
}
