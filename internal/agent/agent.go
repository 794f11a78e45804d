package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/deepthibiotune-hash/moems-agent/internal/observability"
	"github.com/deepthibiotune-hash/moems-agent/internal/rag"
)

// Agent identity attached to recorded runs.
const (
	Name    = "moems-qa"
	Version = "1.0.0"
)

// Response is the result of answering one query. Transient; created
// per call.
type Response struct {
	Query   string
	Answer  string
	Context rag.Result    // The retrieval result that grounded the answer
	Latency time.Duration // Wall-clock time for retrieve + generate
}

// Config contains all required parameters for the Agent.
type Config struct {
	Retriever *rag.Retriever
	Generator *Generator
	Logger    *slog.Logger

	// TopK is how many matched topics contribute context documents.
	TopK int

	// Retry settings for transient generation failures.
	// nil uses DefaultRetryConfig; an explicit zero MaxRetries
	// disables retries.
	Retry *RetryConfig

	// RateLimiter throttles model calls (nil = use default).
	RateLimiter *rate.Limiter

	// Recorder persists run records (nil = discard).
	Recorder observability.Recorder
}

func (cfg Config) validate() error {
	if cfg.Retriever == nil {
		return fmt.Errorf("retriever is required")
	}
	if cfg.Generator == nil {
		return fmt.Errorf("generator is required")
	}
	if cfg.Logger == nil {
		return fmt.Errorf("logger is required")
	}
	return nil
}

// Agent answers single-shot questions over the MOEMS knowledge base.
// It never mutates the knowledge store and holds no per-query state,
// so one Agent serves any number of sequential callers.
type Agent struct {
	retriever   *rag.Retriever
	generator   *Generator
	logger      *slog.Logger
	topK        int
	retry       RetryConfig
	rateLimiter *rate.Limiter
	recorder    observability.Recorder
}

// New creates an Agent from the given configuration.
func New(cfg Config) (*Agent, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	topK := cfg.TopK
	if topK < 1 {
		topK = 3
	}

	retry := DefaultRetryConfig()
	if cfg.Retry != nil {
		retry = *cfg.Retry
	}

	rl := cfg.RateLimiter
	if rl == nil {
		// 10 req/sec sustained, burst of 30
		rl = rate.NewLimiter(10, 30)
	}

	rec := cfg.Recorder
	if rec == nil {
		rec = observability.Nop{}
	}

	a := &Agent{
		retriever:   cfg.Retriever,
		generator:   cfg.Generator,
		logger:      cfg.Logger,
		topK:        topK,
		retry:       retry,
		rateLimiter: rl,
		recorder:    rec,
	}

	a.logger.Info("agent initialized", "top_k", a.topK, "max_retries", a.retry.MaxRetries)
	return a, nil
}

// Answer runs the full pipeline for one query: retrieve context,
// generate an answer, measure latency, record the run.
//
// Generation failure after the retry budget returns the partial
// Response (query, context, latency) alongside an error satisfying
// errors.Is(err, ErrGenerationUnavailable).
func (a *Agent) Answer(ctx context.Context, query string) (Response, error) {
	start := time.Now()

	result := a.retriever.Retrieve(query, a.topK)

	answer, err := a.generateWithRetry(ctx, query, result)

	resp := Response{
		Query:   query,
		Answer:  answer,
		Context: result,
		Latency: time.Since(start),
	}

	a.record(ctx, resp, err)

	if err != nil {
		a.logger.Warn("answer failed",
			"matched_topic", result.MatchedTopic,
			"latency", resp.Latency,
			"error", err,
		)
		return resp, err
	}

	a.logger.Debug("answered query",
		"matched_topic", result.MatchedTopic,
		"score", result.Score,
		"latency", resp.Latency,
	)
	return resp, nil
}

// generateWithRetry calls the generator, retrying once with backoff on
// transient failure.
func (a *Agent) generateWithRetry(ctx context.Context, query string, result rag.Result) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= a.retry.MaxRetries; attempt++ {
		if a.rateLimiter != nil {
			if err := a.rateLimiter.Wait(ctx); err != nil {
				return "", fmt.Errorf("rate limit wait: %w", err)
			}
		}

		answer, err := a.generator.Generate(ctx, query, result)
		if err == nil {
			return answer, nil
		}
		lastErr = err

		if !retryableError(err) || attempt == a.retry.MaxRetries {
			break
		}

		a.logger.Debug("retrying generation", "attempt", attempt+1, "backoff", a.retry.Backoff)
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("context canceled during retry: %w", ctx.Err())
		case <-time.After(a.retry.Backoff):
		}
	}
	return "", lastErr
}

func (a *Agent) record(ctx context.Context, resp Response, answerErr error) {
	attrs := map[string]string{
		"agent":         Name,
		"agent_version": Version,
		"matched_topic": resp.Context.MatchedTopic,
		"score":         strconv.FormatFloat(resp.Context.Score, 'f', 3, 64),
		"documents":     strconv.Itoa(len(resp.Context.Documents)),
	}
	if answerErr != nil {
		attrs["error"] = answerErr.Error()
	}

	a.recorder.Record(ctx, observability.RunData{
		ID:       uuid.New(),
		Name:     "agent.answer",
		Kind:     "query",
		Duration: resp.Latency,
		Attrs:    attrs,
	})
}
