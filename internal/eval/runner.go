package eval

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/deepthibiotune-hash/moems-agent/internal/agent"
	"github.com/deepthibiotune-hash/moems-agent/internal/observability"
)

// DefaultPassThreshold flags an example when any metric scores below it.
const DefaultPassThreshold = 0.5

// Answerer is the slice of the agent the runner needs.
// *agent.Agent satisfies it; tests substitute a scripted fake.
type Answerer interface {
	Answer(ctx context.Context, query string) (agent.Response, error)
}

// ExampleResult is the full detail for one dataset example.
type ExampleResult struct {
	Example  Example
	Response agent.Response
	Verdicts []Verdict // One per registered evaluator, in registration order
	Flagged  bool      // Any metric below the pass threshold
	Failed   bool      // Agent could not produce an answer
}

// Report aggregates an evaluation run. The Results slice preserves
// dataset order regardless of how examples were processed.
type Report struct {
	Results       []ExampleResult
	MetricMeans   map[string]float64
	PassThreshold float64
	FailureCount  int // Examples where the agent itself failed
}

// Verdicts returns every verdict flattened in dataset order.
// len == |dataset| × |evaluators|.
func (r Report) Verdicts() []Verdict {
	var all []Verdict
	for _, res := range r.Results {
		all = append(all, res.Verdicts...)
	}
	return all
}

// FlaggedCount returns how many examples fell below the pass threshold.
func (r Report) FlaggedCount() int {
	n := 0
	for _, res := range r.Results {
		if res.Flagged {
			n++
		}
	}
	return n
}

// Runner drives a dataset through an agent and a fixed evaluator set.
type Runner struct {
	evaluators    []Evaluator
	passThreshold float64
	recorder      observability.Recorder
	logger        *slog.Logger
}

// NewRunner creates a Runner. A passThreshold <= 0 falls back to
// DefaultPassThreshold; a nil recorder discards run records.
func NewRunner(evaluators []Evaluator, passThreshold float64, recorder observability.Recorder, logger *slog.Logger) (*Runner, error) {
	if len(evaluators) == 0 {
		return nil, fmt.Errorf("at least one evaluator is required")
	}
	if passThreshold <= 0 {
		passThreshold = DefaultPassThreshold
	}
	if recorder == nil {
		recorder = observability.Nop{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		evaluators:    evaluators,
		passThreshold: passThreshold,
		recorder:      recorder,
		logger:        logger,
	}, nil
}

// Run evaluates every dataset example sequentially and returns the
// aggregated report.
//
// Partial-failure tolerance is part of the contract: an agent failure
// on one example yields flagged zero-scored verdicts for that example
// and the run continues. The report always carries exactly
// |dataset| × |evaluators| verdicts.
func (r *Runner) Run(ctx context.Context, dataset []Example, answerer Answerer) Report {
	start := time.Now()
	report := Report{
		Results:       make([]ExampleResult, 0, len(dataset)),
		MetricMeans:   make(map[string]float64, len(r.evaluators)),
		PassThreshold: r.passThreshold,
	}

	sums := make(map[string]float64, len(r.evaluators))

	for i, example := range dataset {
		res := r.runExample(ctx, i, example, answerer)
		if res.Failed {
			report.FailureCount++
		}
		for _, v := range res.Verdicts {
			sums[v.Metric] += v.Score
		}
		report.Results = append(report.Results, res)
	}

	if len(dataset) > 0 {
		for metric, sum := range sums {
			report.MetricMeans[metric] = sum / float64(len(dataset))
		}
	}

	r.recorder.Record(ctx, observability.RunData{
		ID:       uuid.New(),
		Name:     "eval.run",
		Kind:     "report",
		Duration: time.Since(start),
		Attrs: map[string]string{
			"examples": strconv.Itoa(len(dataset)),
			"failures": strconv.Itoa(report.FailureCount),
			"flagged":  strconv.Itoa(report.FlaggedCount()),
		},
	})

	r.logger.Info("evaluation run complete",
		"examples", len(dataset),
		"verdicts", len(dataset)*len(r.evaluators),
		"failures", report.FailureCount,
		"flagged", report.FlaggedCount(),
	)
	return report
}

func (r *Runner) runExample(ctx context.Context, idx int, example Example, answerer Answerer) ExampleResult {
	res := ExampleResult{Example: example}

	produced, err := answerer.Answer(ctx, example.Query)
	res.Response = produced

	if err != nil {
		// Zero-scored, flagged verdicts keep the verdict count invariant.
		res.Failed = true
		res.Flagged = true
		for _, ev := range r.evaluators {
			res.Verdicts = append(res.Verdicts, Verdict{
				Example:  example,
				Produced: produced,
				Metric:   ev.Name(),
				Comment:  fmt.Sprintf("agent failed: %v", err),
			})
		}
		r.logger.Warn("example failed, recorded zero verdicts",
			"example", idx,
			"error", err,
		)
	} else {
		for _, ev := range r.evaluators {
			v := ev.Evaluate(example, produced)
			if v.Score < r.passThreshold {
				res.Flagged = true
			}
			res.Verdicts = append(res.Verdicts, v)
		}
	}

	for _, v := range res.Verdicts {
		r.recorder.Record(ctx, observability.RunData{
			ID:       uuid.New(),
			Name:     "eval.verdict",
			Kind:     "verdict",
			Duration: produced.Latency,
			Attrs: map[string]string{
				"example": strconv.Itoa(idx),
				"metric":  v.Metric,
				"score":   strconv.FormatFloat(v.Score, 'f', 3, 64),
				"comment": v.Comment,
			},
		})
	}
	return res
}
