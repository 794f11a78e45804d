// Package config provides application configuration with multi-source
// priority.
//
// Configuration sources (highest to lowest priority):
//  1. Environment variables (MOEMS_ prefix, runtime override)
//  2. Config file (~/.moems-agent/config.yaml or ./config.yaml)
//  3. Default values (sensible defaults for quick start)
//
// Categories:
//   - AI: provider and model selection for answer generation
//   - Retrieval: top-k, relevance threshold, phrase bonus
//   - Generation: model-call timeout, retry budget, backoff
//   - Eval: pass threshold for flagging weak examples
//   - Tracing: OTLP collector endpoint for run recording
//
// Validation is fail-fast: Load returns sentinel errors (checked with
// errors.Is) the moment a value is out of range, before any component
// is constructed.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// AI provider identifiers used in Config.Provider.
const (
	ProviderGoogleAI = "googleai"
)

// DefaultModelName is the model used when none is configured.
const DefaultModelName = "gemini-2.5-flash"

// Config stores application configuration.
type Config struct {
	// AI provider and model configuration
	Provider  string `mapstructure:"provider" json:"provider"`
	ModelName string `mapstructure:"model_name" json:"model_name"` // e.g. "gemini-2.5-flash"

	Retrieval  RetrievalConfig  `mapstructure:"retrieval" json:"retrieval"`
	Generation GenerationConfig `mapstructure:"generation" json:"generation"`
	Eval       EvalConfig       `mapstructure:"eval" json:"eval"`
	Tracing    TracingConfig    `mapstructure:"tracing" json:"tracing"`
}

// RetrievalConfig tunes the matching and retrieval stage.
type RetrievalConfig struct {
	// TopK is how many matched topics contribute context documents.
	TopK int `mapstructure:"top_k" json:"top_k"`

	// RelevanceThreshold is the minimum top-match score accepted as a
	// confident match. 0.0 accepts any non-zero overlap.
	RelevanceThreshold float64 `mapstructure:"relevance_threshold" json:"relevance_threshold"`

	// PhraseBonus is the score bonus for exact keyword-phrase containment.
	PhraseBonus float64 `mapstructure:"phrase_bonus" json:"phrase_bonus"`
}

// GenerationConfig tunes the model-call stage.
type GenerationConfig struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds" json:"timeout_seconds"`
	MaxRetries     int `mapstructure:"max_retries" json:"max_retries"`
	BackoffMS      int `mapstructure:"backoff_ms" json:"backoff_ms"`
}

// EvalConfig tunes the evaluation harness.
type EvalConfig struct {
	// PassThreshold flags an example when any metric scores below it.
	PassThreshold float64 `mapstructure:"pass_threshold" json:"pass_threshold"`
}

// TracingConfig configures run recording.
type TracingConfig struct {
	Enabled     bool   `mapstructure:"enabled" json:"enabled"`
	Endpoint    string `mapstructure:"endpoint" json:"endpoint"`
	Environment string `mapstructure:"environment" json:"environment"`
	ServiceName string `mapstructure:"service_name" json:"service_name"`
}

// Load loads configuration.
// Priority: environment variables > configuration file > default values.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting user home directory: %w", err)
	}
	configDir := filepath.Join(home, ".moems-agent")

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // Also support current directory

	setDefaults(v)

	v.SetEnvPrefix("MOEMS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is not an error; defaults apply.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		slog.Debug("configuration file not found, using default values",
			"search_paths", []string{configDir, "."})
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating configuration: %w", err)
	}
	return &cfg, nil
}

// setDefaults sets all default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("provider", ProviderGoogleAI)
	v.SetDefault("model_name", DefaultModelName)

	v.SetDefault("retrieval.top_k", 3)
	v.SetDefault("retrieval.relevance_threshold", 0.0)
	v.SetDefault("retrieval.phrase_bonus", 0.25)

	v.SetDefault("generation.timeout_seconds", 30)
	v.SetDefault("generation.max_retries", 1)
	v.SetDefault("generation.backoff_ms", 500)

	v.SetDefault("eval.pass_threshold", 0.5)

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.endpoint", "localhost:4318")
	v.SetDefault("tracing.environment", "dev")
	v.SetDefault("tracing.service_name", "moems-agent")
}

// FullModelName returns the provider-qualified model name Genkit expects.
func (c *Config) FullModelName() string {
	if c.Provider == "" {
		return c.ModelName
	}
	return c.Provider + "/" + c.ModelName
}
