package eval

import (
	"github.com/deepthibiotune-hash/moems-agent/internal/agent"
)

// Example is one labeled dataset entry. Immutable.
type Example struct {
	Query           string
	ExpectedAnswer  string
	ExpectedSources []string // Source labels the retriever should surface
}

// Verdict is a single evaluator's scored judgment of one produced
// answer against one expected example. Never mutated after creation.
type Verdict struct {
	Example  Example
	Produced agent.Response
	Metric   string
	Score    float64 // Always in [0,1]
	Comment  string
}

// Evaluator is one rubric: a pure function of (example, response).
// Implementations must be side-effect-free and must not fail; they
// encode malformed input as a zero-scored verdict with a comment.
type Evaluator interface {
	// Name returns the metric name this evaluator reports under.
	Name() string

	// Evaluate scores the produced response against the example.
	Evaluate(example Example, produced agent.Response) Verdict
}
