package eval

import (
	"fmt"

	"github.com/deepthibiotune-hash/moems-agent/internal/agent"
	"github.com/deepthibiotune-hash/moems-agent/internal/rag"
)

// Metric names reported by the builtin evaluators.
const (
	MetricFactualAccuracy    = "factual_accuracy"
	MetricContextUtilization = "context_utilization"
)

// stopwords are common function words excluded from accuracy scoring,
// so filler like "the" and "is" can't inflate overlap.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "by": {}, "can": {}, "do": {}, "does": {}, "for": {},
	"how": {}, "in": {}, "is": {}, "it": {}, "of": {}, "on": {},
	"or": {}, "should": {}, "that": {}, "the": {}, "to": {},
	"what": {}, "when": {}, "where": {}, "who": {}, "with": {},
}

// FactualAccuracy scores how much of the reference answer's content the
// produced answer carries: the fraction of the reference's non-stopword
// tokens present in the produced text. A verbatim answer scores 1.0;
// token-disjoint answers score 0.0; partial overlap earns partial credit.
type FactualAccuracy struct{}

var _ Evaluator = FactualAccuracy{}

func (FactualAccuracy) Name() string { return MetricFactualAccuracy }

func (e FactualAccuracy) Evaluate(example Example, produced agent.Response) Verdict {
	v := Verdict{Example: example, Produced: produced, Metric: e.Name()}

	expected := contentTokens(example.ExpectedAnswer)
	if len(expected) == 0 {
		v.Comment = "malformed example: expected answer has no scorable tokens"
		return v
	}

	answer := make(map[string]struct{})
	for _, tok := range rag.Tokens(produced.Answer) {
		answer[tok] = struct{}{}
	}

	matched := 0
	for tok := range expected {
		if _, ok := answer[tok]; ok {
			matched++
		}
	}

	v.Score = float64(matched) / float64(len(expected))
	v.Comment = fmt.Sprintf("matched %d/%d key terms from reference", matched, len(expected))
	return v
}

// ContextUtilization scores retrieval quality: the fraction of the
// example's expected sources that appear among the produced context's
// documents. 1.0 when every expected source was retrieved, 0.0 when none.
type ContextUtilization struct{}

var _ Evaluator = ContextUtilization{}

func (ContextUtilization) Name() string { return MetricContextUtilization }

func (e ContextUtilization) Evaluate(example Example, produced agent.Response) Verdict {
	v := Verdict{Example: example, Produced: produced, Metric: e.Name()}

	if len(example.ExpectedSources) == 0 {
		v.Comment = "malformed example: no expected sources"
		return v
	}

	retrieved := make(map[string]struct{})
	for _, src := range produced.Context.Sources() {
		retrieved[src] = struct{}{}
	}

	found := 0
	for _, want := range example.ExpectedSources {
		if _, ok := retrieved[want]; ok {
			found++
		}
	}

	v.Score = float64(found) / float64(len(example.ExpectedSources))
	v.Comment = fmt.Sprintf("retrieved %d/%d expected sources", found, len(example.ExpectedSources))
	return v
}

// contentTokens returns the deduplicated non-stopword tokens of s.
// Falls back to all tokens when stopword filtering would leave nothing.
func contentTokens(s string) map[string]struct{} {
	all := rag.Tokens(s)
	tokens := make(map[string]struct{}, len(all))
	for _, tok := range all {
		if _, skip := stopwords[tok]; skip {
			continue
		}
		tokens[tok] = struct{}{}
	}
	if len(tokens) == 0 {
		for _, tok := range all {
			tokens[tok] = struct{}{}
		}
	}
	return tokens
}
