package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/phrazzld/haengsi/internal/config"
)

// loadAppConfig loads the application configuration from environment variables,
// an optional .env file and an optional config file.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// logConfigSummary logs non-secret configuration details.
func logConfigSummary(logger *slog.Logger, cfg *config.Config) {
	logger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"provider", cfg.LLM.Provider,
		"model", cfg.LLM.ModelName,
		"pid", os.Getpid())

	logger.Debug("LLM credential configuration",
		"gemini_api_key_present", cfg.LLM.GeminiAPIKey != "",
		"openai_api_key_present", cfg.LLM.OpenAIAPIKey != "",
		"prompt_template_override", cfg.LLM.PromptTemplatePath != "")
}
