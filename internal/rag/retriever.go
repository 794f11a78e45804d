package rag

import (
	"log/slog"

	"github.com/deepthibiotune-hash/moems-agent/internal/knowledge"
)

// Result is the context assembled for one query. Created per call,
// never persisted. Documents reference the store's snippets verbatim.
type Result struct {
	Documents    []knowledge.Document // In matcher-rank order, sources preserved
	MatchedTopic string               // Empty when no confident match
	Score        float64              // Top match score in [0,1]; 0 when empty
}

// Empty reports whether retrieval found no confident match.
func (r Result) Empty() bool {
	return len(r.Documents) == 0
}

// Sources returns the distinct source labels across the result's
// documents, in first-appearance order.
func (r Result) Sources() []string {
	seen := make(map[string]struct{}, len(r.Documents))
	var sources []string
	for _, d := range r.Documents {
		if _, ok := seen[d.Source]; ok {
			continue
		}
		seen[d.Source] = struct{}{}
		sources = append(sources, d.Source)
	}
	return sources
}

// Retriever assembles context documents for a query via a Matcher.
type Retriever struct {
	matcher   Matcher
	store     *knowledge.Store
	threshold float64
	logger    *slog.Logger
}

// NewRetriever creates a Retriever.
//
// threshold is the minimum top-match score accepted as a confident
// match. The default of 0.0 accepts any non-zero overlap; raise it to
// make the retriever answer "I don't know" more readily.
func NewRetriever(matcher Matcher, store *knowledge.Store, threshold float64, logger *slog.Logger) *Retriever {
	if logger == nil {
		logger = slog.Default()
	}
	return &Retriever{
		matcher:   matcher,
		store:     store,
		threshold: threshold,
		logger:    logger,
	}
}

// Retrieve returns the supporting documents for the query.
//
// Up to k top-ranked topics contribute their documents, concatenated in
// matcher-rank order. A top score below the threshold (or no match at
// all) yields an empty Result with MatchedTopic unset, meaning "no
// relevant information". That is a valid outcome, not an error.
func (r *Retriever) Retrieve(query string, k int) Result {
	if k < 1 {
		k = 1
	}

	matches := r.matcher.Match(query)
	if len(matches) == 0 || matches[0].Score < r.threshold {
		r.logger.Debug("no confident match",
			"query_length", len(query),
			"candidates", len(matches),
		)
		return Result{}
	}

	if len(matches) > k {
		matches = matches[:k]
	}

	result := Result{
		MatchedTopic: matches[0].Topic,
		Score:        matches[0].Score,
	}
	for _, m := range matches {
		entry, err := r.store.Lookup(m.Topic)
		if err != nil {
			// Matcher topics come from the store; a miss here is a bug.
			r.logger.Warn("matched topic missing from store", "topic", m.Topic, "error", err)
			continue
		}
		result.Documents = append(result.Documents, entry.Documents...)
	}

	r.logger.Debug("retrieved context",
		"matched_topic", result.MatchedTopic,
		"score", result.Score,
		"documents", len(result.Documents),
	)
	return result
}
