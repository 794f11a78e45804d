// Package agent orchestrates the retrieval-and-generation pipeline for
// a single question.
//
// Agent.Answer runs Retriever → Generator for one query and returns the
// answer together with the context that grounded it and the wall-clock
// latency. Retrieval is deterministic; generation goes through an
// opaque ModelClient (Genkit in production, a fake in tests), so answer
// text may vary between runs.
//
// Generation failures are transient by nature (timeouts, rate limits).
// The agent retries once with backoff, then propagates
// ErrGenerationUnavailable. Every answered query is recorded through
// the observability.Recorder; recording failures never affect the
// answer path.
package agent
