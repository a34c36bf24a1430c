package config

import (
	"fmt"
	"time"
)

// Supported LLM providers.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Default model per provider, used when llm.model_name is not set.
const (
	DefaultGeminiModel = "gemini-2.5-flash"
	DefaultOpenAIModel = "gpt-4o-mini"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                int    `mapstructure:"port"                  validate:"required,gt=0,lt=65536"`
	LogLevel            string `mapstructure:"log_level"             validate:"required,oneof=debug info warn error"`
	ReadTimeoutSeconds  int    `mapstructure:"read_timeout_seconds"  validate:"gt=0"`
	WriteTimeoutSeconds int    `mapstructure:"write_timeout_seconds" validate:"gt=0"`
}

// LLMConfig contains all LLM integration related settings.
//
// The API keys are deliberately optional here: a missing key is reported by
// the generator on first use as an authentication error, so the form can
// still be served and show the problem to the user.
type LLMConfig struct {
	Provider              string `mapstructure:"provider"                validate:"required,oneof=gemini openai"`
	GeminiAPIKey          string `mapstructure:"gemini_api_key"`
	GeminiBaseURL         string `mapstructure:"gemini_base_url"         validate:"omitempty,url"`
	OpenAIAPIKey          string `mapstructure:"openai_api_key"`
	OpenAIBaseURL         string `mapstructure:"openai_base_url"         validate:"omitempty,url"`
	ModelName             string `mapstructure:"model_name"              validate:"required"`
	RequestTimeoutSeconds int    `mapstructure:"request_timeout_seconds" validate:"gt=0"`
	PromptTemplatePath    string `mapstructure:"prompt_template_path"    validate:"omitempty,file"`
}

// RequestTimeout returns the per-call deadline for the upstream API.
func (c LLMConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// ReadTimeout returns the HTTP server read timeout.
func (c ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

// WriteTimeout returns the HTTP server write timeout.
func (c ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}

// validateTimeouts checks that an upstream call finishes before the server
// gives up writing the response it belongs to.
func (c Config) validateTimeouts() error {
	if c.LLM.RequestTimeoutSeconds >= c.Server.WriteTimeoutSeconds {
		return fmt.Errorf("llm.request_timeout_seconds (%d) must be less than server.write_timeout_seconds (%d)",
			c.LLM.RequestTimeoutSeconds, c.Server.WriteTimeoutSeconds)
	}
	return nil
}
