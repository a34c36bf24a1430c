package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/phrazzld/haengsi/internal/domain"
	"github.com/phrazzld/haengsi/internal/generation"
	"github.com/phrazzld/haengsi/internal/redact"
)

// PromptBuilder turns a validated word into the instruction sent to the model.
type PromptBuilder interface {
	Build(word string) (string, error)
}

// PoemService provides acrostic poem operations
type PoemService interface {
	// Compose validates rawWord, asks the generator for a poem and returns it.
	// Validation errors (domain.ErrValidation) and generator errors
	// (generation.AuthenticationError, generation.ServiceError) are returned
	// as-is so callers can tell them apart.
	Compose(ctx context.Context, rawWord string) (*domain.Poem, error)
}

// poemServiceImpl implements the PoemService interface
type poemServiceImpl struct {
	prompts   PromptBuilder
	generator generation.Generator
	logger    *slog.Logger
}

// NewPoemService creates a new PoemService.
// It returns an error if any of the required dependencies are nil.
func NewPoemService(
	prompts PromptBuilder,
	generator generation.Generator,
	logger *slog.Logger,
) (PoemService, error) {
	if prompts == nil {
		return nil, &PoemServiceError{
			Operation: "create_service",
			Message:   "prompt builder cannot be nil",
		}
	}
	if generator == nil {
		return nil, &PoemServiceError{
			Operation: "create_service",
			Message:   "generator cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &poemServiceImpl{
		prompts:   prompts,
		generator: generator,
		logger:    logger.With("component", "poem_service"),
	}, nil
}

// Compose runs input validation, prompt construction and a single
// generation call, in that order.
func (s *poemServiceImpl) Compose(ctx context.Context, rawWord string) (*domain.Poem, error) {
	word, err := domain.NewWord(rawWord)
	if err != nil {
		s.logger.DebugContext(ctx, "rejected word", "error", err)
		return nil, err
	}

	prompt, err := s.prompts.Build(word.String())
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to build prompt",
			"error", err,
			"word_length", len(word.Characters()))
		return nil, NewPoemServiceError("build_prompt", "failed to build prompt", err)
	}

	start := time.Now()
	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.logger.WarnContext(ctx, "poem generation failed",
			"error", redact.Error(err),
			"model", s.generator.Model(),
			"duration_ms", time.Since(start).Milliseconds())
		return nil, NewPoemServiceError("generate", "failed to generate poem", err)
	}

	poem, err := domain.NewPoem(word, text, s.generator.Model())
	if err != nil {
		s.logger.ErrorContext(ctx, "generated text is not a valid poem", "error", err)
		return nil, NewPoemServiceError("create_poem", "failed to create poem", err)
	}

	s.logger.InfoContext(ctx, "poem composed",
		"poem_id", poem.ID,
		"model", poem.Model,
		"line_count", len(poem.Lines()),
		"duration_ms", time.Since(start).Milliseconds())

	return poem, nil
}
