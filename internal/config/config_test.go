package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	// Point HOME at an empty directory so no user config file interferes.
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Provider != ProviderGoogleAI {
		t.Errorf("Provider = %q, want %q", cfg.Provider, ProviderGoogleAI)
	}
	if cfg.ModelName != DefaultModelName {
		t.Errorf("ModelName = %q, want %q", cfg.ModelName, DefaultModelName)
	}
	if cfg.Retrieval.TopK != 3 {
		t.Errorf("Retrieval.TopK = %d, want 3", cfg.Retrieval.TopK)
	}
	if cfg.Retrieval.RelevanceThreshold != 0.0 {
		t.Errorf("RelevanceThreshold = %v, want 0.0 (any overlap accepted)",
			cfg.Retrieval.RelevanceThreshold)
	}
	if cfg.Generation.MaxRetries != 1 {
		t.Errorf("Generation.MaxRetries = %d, want 1 (single-retry policy)",
			cfg.Generation.MaxRetries)
	}
	if cfg.Eval.PassThreshold != 0.5 {
		t.Errorf("Eval.PassThreshold = %v, want 0.5", cfg.Eval.PassThreshold)
	}
	if cfg.Tracing.Enabled {
		t.Error("Tracing.Enabled = true, want false by default")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MOEMS_RETRIEVAL_TOP_K", "5")
	t.Setenv("MOEMS_MODEL_NAME", "gemini-2.5-pro")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Retrieval.TopK != 5 {
		t.Errorf("Retrieval.TopK = %d, want env override 5", cfg.Retrieval.TopK)
	}
	if cfg.ModelName != "gemini-2.5-pro" {
		t.Errorf("ModelName = %q, want env override", cfg.ModelName)
	}
}

func TestLoad_RejectsInvalidEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MOEMS_RETRIEVAL_TOP_K", "0")

	if _, err := Load(); err == nil {
		t.Error("Load() accepted top_k=0")
	}
}
