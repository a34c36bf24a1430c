package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/haengsi/internal/config"
	"github.com/phrazzld/haengsi/internal/generation"
	"github.com/phrazzld/haengsi/internal/platform/gemini"
	"github.com/phrazzld/haengsi/internal/platform/openai"
	"github.com/phrazzld/haengsi/internal/service"
)

// application holds all the shared application dependencies.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger

	// Poem pipeline
	prompts     *generation.PromptBuilder
	generator   generation.Generator
	poemService service.PoemService
}

// newApplication creates a new application instance with all dependencies initialized.
// No network connection is made here: the generator creates its client on
// first use, so a missing API key does not prevent the server from starting.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.prompts, err = generation.NewPromptBuilder(cfg.LLM.PromptTemplatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load prompt template: %w", err)
	}

	app.generator, err = newGenerator(cfg.LLM, logger.With("component", "llm_generator"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}
	logger.Info("LLM generator initialized",
		"provider", cfg.LLM.Provider,
		"model", app.generator.Model())

	app.poemService, err = service.NewPoemService(app.prompts, app.generator, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create poem service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// newGenerator selects the generation.Generator implementation for the
// configured provider.
func newGenerator(cfg config.LLMConfig, logger *slog.Logger) (generation.Generator, error) {
	switch cfg.Provider {
	case config.ProviderGemini, "":
		return gemini.NewGenerator(logger, cfg)
	case config.ProviderOpenAI:
		return openai.NewGenerator(logger, cfg)
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", generation.ErrInvalidConfig, cfg.Provider)
	}
}
