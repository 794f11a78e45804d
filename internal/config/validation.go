package config

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration validation, checked with errors.Is.
var (
	// ErrConfigNil indicates the configuration is nil.
	ErrConfigNil = errors.New("configuration is nil")

	// ErrInvalidProvider indicates the AI provider is not supported.
	ErrInvalidProvider = errors.New("invalid provider")

	// ErrInvalidModelName indicates the model name is empty or malformed.
	ErrInvalidModelName = errors.New("invalid model name")

	// ErrInvalidTopK indicates retrieval.top_k is out of range.
	ErrInvalidTopK = errors.New("invalid top_k")

	// ErrInvalidThreshold indicates a threshold value is outside [0,1].
	ErrInvalidThreshold = errors.New("invalid threshold")

	// ErrInvalidTimeout indicates the generation timeout is out of range.
	ErrInvalidTimeout = errors.New("invalid generation timeout")

	// ErrInvalidRetries indicates the retry budget is out of range.
	ErrInvalidRetries = errors.New("invalid retry budget")
)

// Validation bounds.
const (
	maxTopK           = 10
	maxTimeoutSeconds = 300
	maxRetries        = 3
)

// Validate checks all configuration values, failing fast on the first
// violation.
func (c *Config) Validate() error {
	if c == nil {
		return ErrConfigNil
	}

	if c.Provider != ProviderGoogleAI {
		return fmt.Errorf("%w: %q (supported: %s)", ErrInvalidProvider, c.Provider, ProviderGoogleAI)
	}
	if c.ModelName == "" {
		return fmt.Errorf("%w: model name is empty", ErrInvalidModelName)
	}

	if c.Retrieval.TopK < 1 || c.Retrieval.TopK > maxTopK {
		return fmt.Errorf("%w: %d (must be 1-%d)", ErrInvalidTopK, c.Retrieval.TopK, maxTopK)
	}
	if c.Retrieval.RelevanceThreshold < 0 || c.Retrieval.RelevanceThreshold > 1 {
		return fmt.Errorf("%w: relevance_threshold %v (must be in [0,1])",
			ErrInvalidThreshold, c.Retrieval.RelevanceThreshold)
	}
	if c.Retrieval.PhraseBonus < 0 || c.Retrieval.PhraseBonus > 1 {
		return fmt.Errorf("%w: phrase_bonus %v (must be in [0,1])",
			ErrInvalidThreshold, c.Retrieval.PhraseBonus)
	}

	if c.Generation.TimeoutSeconds < 1 || c.Generation.TimeoutSeconds > maxTimeoutSeconds {
		return fmt.Errorf("%w: %d seconds (must be 1-%d)",
			ErrInvalidTimeout, c.Generation.TimeoutSeconds, maxTimeoutSeconds)
	}
	if c.Generation.MaxRetries < 0 || c.Generation.MaxRetries > maxRetries {
		return fmt.Errorf("%w: %d (must be 0-%d)",
			ErrInvalidRetries, c.Generation.MaxRetries, maxRetries)
	}
	if c.Generation.BackoffMS < 0 {
		return fmt.Errorf("%w: backoff_ms %d (must be >= 0)",
			ErrInvalidRetries, c.Generation.BackoffMS)
	}

	if c.Eval.PassThreshold < 0 || c.Eval.PassThreshold > 1 {
		return fmt.Errorf("%w: pass_threshold %v (must be in [0,1])",
			ErrInvalidThreshold, c.Eval.PassThreshold)
	}

	return nil
}
