package config

import (
	"errors"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Provider:  ProviderGoogleAI,
		ModelName: DefaultModelName,
		Retrieval: RetrievalConfig{
			TopK:               3,
			RelevanceThreshold: 0.0,
			PhraseBonus:        0.25,
		},
		Generation: GenerationConfig{
			TimeoutSeconds: 30,
			MaxRetries:     1,
			BackoffMS:      500,
		},
		Eval: EvalConfig{PassThreshold: 0.5},
		Tracing: TracingConfig{
			Endpoint:    "localhost:4318",
			Environment: "dev",
			ServiceName: "moems-agent",
		},
	}
}

func TestValidate_OK(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestValidate_Nil(t *testing.T) {
	var cfg *Config
	if err := cfg.Validate(); !errors.Is(err, ErrConfigNil) {
		t.Errorf("Validate() error = %v, want ErrConfigNil", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "unknown provider",
			mutate:  func(c *Config) { c.Provider = "openrouter" },
			wantErr: ErrInvalidProvider,
		},
		{
			name:    "empty model name",
			mutate:  func(c *Config) { c.ModelName = "" },
			wantErr: ErrInvalidModelName,
		},
		{
			name:    "top_k zero",
			mutate:  func(c *Config) { c.Retrieval.TopK = 0 },
			wantErr: ErrInvalidTopK,
		},
		{
			name:    "top_k too large",
			mutate:  func(c *Config) { c.Retrieval.TopK = 50 },
			wantErr: ErrInvalidTopK,
		},
		{
			name:    "relevance threshold above 1",
			mutate:  func(c *Config) { c.Retrieval.RelevanceThreshold = 1.5 },
			wantErr: ErrInvalidThreshold,
		},
		{
			name:    "negative phrase bonus",
			mutate:  func(c *Config) { c.Retrieval.PhraseBonus = -0.1 },
			wantErr: ErrInvalidThreshold,
		},
		{
			name:    "timeout zero",
			mutate:  func(c *Config) { c.Generation.TimeoutSeconds = 0 },
			wantErr: ErrInvalidTimeout,
		},
		{
			name:    "too many retries",
			mutate:  func(c *Config) { c.Generation.MaxRetries = 10 },
			wantErr: ErrInvalidRetries,
		},
		{
			name:    "pass threshold above 1",
			mutate:  func(c *Config) { c.Eval.PassThreshold = 2 },
			wantErr: ErrInvalidThreshold,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestFullModelName(t *testing.T) {
	cfg := validConfig()
	if got := cfg.FullModelName(); got != "googleai/gemini-2.5-flash" {
		t.Errorf("FullModelName() = %q", got)
	}

	cfg.Provider = ""
	if got := cfg.FullModelName(); got != "gemini-2.5-flash" {
		t.Errorf("FullModelName() without provider = %q", got)
	}
}
