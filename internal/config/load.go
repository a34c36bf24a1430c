package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for all environment variables read by Load.
const EnvPrefix = "HAENGSI"

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// A .env file in the working directory is loaded first if present; it never
// overrides variables that are already set.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := bindEnv(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if cfg.LLM.ModelName == "" {
		cfg.LLM.ModelName = defaultModel(cfg.LLM.Provider)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	if err := cfg.validateTimeouts(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.read_timeout_seconds", 15)
	v.SetDefault("server.write_timeout_seconds", 90)
	v.SetDefault("llm.provider", ProviderGemini)
	v.SetDefault("llm.request_timeout_seconds", 60)
}

// bindEnv registers every key with its prefixed variable and, where the
// deployment convention uses one, its bare name (GEMINI_API_KEY, PORT).
// The first name listed wins when both are set.
func bindEnv(v *viper.Viper) error {
	bindings := map[string][]string{
		"server.port":                  {"HAENGSI_SERVER_PORT", "PORT"},
		"server.log_level":             {"HAENGSI_SERVER_LOG_LEVEL"},
		"server.read_timeout_seconds":  {"HAENGSI_SERVER_READ_TIMEOUT_SECONDS"},
		"server.write_timeout_seconds": {"HAENGSI_SERVER_WRITE_TIMEOUT_SECONDS"},
		"llm.provider":                 {"HAENGSI_LLM_PROVIDER"},
		"llm.gemini_api_key":           {"HAENGSI_LLM_GEMINI_API_KEY", "GEMINI_API_KEY"},
		"llm.gemini_base_url":          {"HAENGSI_LLM_GEMINI_BASE_URL"},
		"llm.openai_api_key":           {"HAENGSI_LLM_OPENAI_API_KEY", "OPENAI_API_KEY"},
		"llm.openai_base_url":          {"HAENGSI_LLM_OPENAI_BASE_URL", "OPENAI_BASE_URL"},
		"llm.model_name":               {"HAENGSI_LLM_MODEL_NAME"},
		"llm.request_timeout_seconds":  {"HAENGSI_LLM_REQUEST_TIMEOUT_SECONDS"},
		"llm.prompt_template_path":     {"HAENGSI_LLM_PROMPT_TEMPLATE_PATH"},
	}

	for key, envs := range bindings {
		args := append([]string{key}, envs...)
		if err := v.BindEnv(args...); err != nil {
			return fmt.Errorf("failed to bind environment for %s: %w", key, err)
		}
	}
	return nil
}

func defaultModel(provider string) string {
	if provider == ProviderOpenAI {
		return DefaultOpenAIModel
	}
	return DefaultGeminiModel
}
