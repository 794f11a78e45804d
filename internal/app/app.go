// Package app wires the application together: configuration in,
// ready-to-use Agent and evaluation Runner out.
//
// Setup is plain constructor composition: each provider function
// builds one dependency, and App.Close releases them in reverse order.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/firebase/genkit/go/genkit"
	"github.com/firebase/genkit/go/plugins/googlegenai"

	"github.com/deepthibiotune-hash/moems-agent/internal/agent"
	"github.com/deepthibiotune-hash/moems-agent/internal/config"
	"github.com/deepthibiotune-hash/moems-agent/internal/eval"
	"github.com/deepthibiotune-hash/moems-agent/internal/knowledge"
	"github.com/deepthibiotune-hash/moems-agent/internal/observability"
	"github.com/deepthibiotune-hash/moems-agent/internal/rag"
)

// App holds the assembled application components.
type App struct {
	Config    *config.Config
	Genkit    *genkit.Genkit
	Store     *knowledge.Store
	Retriever *rag.Retriever
	Agent     *agent.Agent
	Runner    *eval.Runner
	Recorder  observability.Recorder

	logger        *slog.Logger
	traceShutdown func(context.Context) error
}

// Setup creates and initializes the application.
// Returns an App with embedded cleanup; call Close() to release.
func Setup(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	a := &App{Config: cfg, logger: logger}

	a.Recorder, a.traceShutdown = provideRecorder(ctx, cfg, logger)

	store, err := knowledge.New(knowledge.Builtin())
	if err != nil {
		return nil, fmt.Errorf("loading knowledge base: %w", err)
	}
	a.Store = store

	a.Genkit = genkit.Init(ctx,
		genkit.WithPlugins(&googlegenai.GoogleAI{}),
	)
	if a.Genkit == nil {
		return nil, fmt.Errorf("failed to initialize Genkit")
	}

	matcher := rag.NewLexicalMatcher(store, cfg.Retrieval.PhraseBonus)
	a.Retriever = rag.NewRetriever(matcher, store, cfg.Retrieval.RelevanceThreshold,
		logger.With("component", "retriever"))

	model := agent.NewGenkitModel(a.Genkit, cfg.FullModelName())
	generator := agent.NewGenerator(model,
		time.Duration(cfg.Generation.TimeoutSeconds)*time.Second,
		logger.With("component", "generator"))

	a.Agent, err = agent.New(agent.Config{
		Retriever: a.Retriever,
		Generator: generator,
		Logger:    logger.With("component", "agent"),
		TopK:      cfg.Retrieval.TopK,
		Retry: &agent.RetryConfig{
			MaxRetries: cfg.Generation.MaxRetries,
			Backoff:    time.Duration(cfg.Generation.BackoffMS) * time.Millisecond,
		},
		Recorder: a.Recorder,
	})
	if err != nil {
		return nil, fmt.Errorf("creating agent: %w", err)
	}

	a.Runner, err = eval.NewRunner(
		[]eval.Evaluator{eval.FactualAccuracy{}, eval.ContextUtilization{}},
		cfg.Eval.PassThreshold,
		a.Recorder,
		logger.With("component", "eval"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating evaluation runner: %w", err)
	}

	return a, nil
}

// provideRecorder sets up run recording per the tracing config.
// Disabled tracing records to the log only; a failed exporter degrades
// the same way inside observability.Setup.
func provideRecorder(ctx context.Context, cfg *config.Config, logger *slog.Logger) (observability.Recorder, func(context.Context) error) {
	if !cfg.Tracing.Enabled {
		return observability.NewLogRecorder(logger), func(context.Context) error { return nil }
	}
	return observability.Setup(ctx, observability.Config{
		Endpoint:    cfg.Tracing.Endpoint,
		Environment: cfg.Tracing.Environment,
		ServiceName: cfg.Tracing.ServiceName,
	}, logger)
}

// Close flushes pending trace spans and releases resources.
// Safe to call on a partially constructed App.
func (a *App) Close() error {
	if a.traceShutdown == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.traceShutdown(ctx); err != nil {
		a.logger.Warn("failed to shut down trace exporter", "error", err)
		return err
	}
	return nil
}
