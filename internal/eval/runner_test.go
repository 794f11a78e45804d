package eval

import (
	"context"
	"fmt"
	"testing"

	"github.com/deepthibiotune-hash/moems-agent/internal/agent"
	"github.com/deepthibiotune-hash/moems-agent/internal/log"
)

// scriptedAnswerer echoes the expected answer for every query except
// the ones listed in fail, which return ErrGenerationUnavailable.
type scriptedAnswerer struct {
	byQuery map[string]agent.Response
	fail    map[string]bool
	calls   []string
}

func (s *scriptedAnswerer) Answer(_ context.Context, query string) (agent.Response, error) {
	s.calls = append(s.calls, query)
	if s.fail[query] {
		return agent.Response{Query: query}, fmt.Errorf("%w: model offline", agent.ErrGenerationUnavailable)
	}
	resp, ok := s.byQuery[query]
	if !ok {
		resp = agent.Response{Query: query, Answer: "generic answer"}
	}
	return resp, nil
}

func perfectAnswerer(dataset []Example) *scriptedAnswerer {
	s := &scriptedAnswerer{
		byQuery: make(map[string]agent.Response),
		fail:    make(map[string]bool),
	}
	for _, ex := range dataset {
		s.byQuery[ex.Query] = responseWith(ex.ExpectedAnswer, ex.ExpectedSources...)
	}
	return s
}

func newTestRunner(t *testing.T) *Runner {
	t.Helper()
	r, err := NewRunner(
		[]Evaluator{FactualAccuracy{}, ContextUtilization{}},
		0.5, nil, log.NewNop(),
	)
	if err != nil {
		t.Fatalf("NewRunner() error = %v", err)
	}
	return r
}

func TestNewRunner_RequiresEvaluators(t *testing.T) {
	if _, err := NewRunner(nil, 0.5, nil, log.NewNop()); err == nil {
		t.Error("NewRunner() accepted empty evaluator set")
	}
}

func TestRun_VerdictCountAndOrder(t *testing.T) {
	dataset := BuiltinDataset()
	runner := newTestRunner(t)

	report := runner.Run(context.Background(), dataset, perfectAnswerer(dataset))

	// 8 examples × 2 evaluators = 16 verdicts.
	if got := len(report.Verdicts()); got != 16 {
		t.Errorf("verdict count = %d, want 16", got)
	}
	if len(report.Results) != len(dataset) {
		t.Fatalf("result count = %d, want %d", len(report.Results), len(dataset))
	}

	// Per-example list must preserve dataset order.
	for i, res := range report.Results {
		if res.Example.Query != dataset[i].Query {
			t.Errorf("result %d is %q, want %q", i, res.Example.Query, dataset[i].Query)
		}
	}
}

func TestRun_PerfectAgentScoresFull(t *testing.T) {
	dataset := BuiltinDataset()
	runner := newTestRunner(t)

	report := runner.Run(context.Background(), dataset, perfectAnswerer(dataset))

	for _, metric := range []string{MetricFactualAccuracy, MetricContextUtilization} {
		if mean := report.MetricMeans[metric]; mean != 1.0 {
			t.Errorf("mean %s = %v, want 1.0 for verbatim answers", metric, mean)
		}
	}
	if report.FailureCount != 0 {
		t.Errorf("FailureCount = %d, want 0", report.FailureCount)
	}
	if report.FlaggedCount() != 0 {
		t.Errorf("FlaggedCount = %d, want 0", report.FlaggedCount())
	}
}

func TestRun_AgentFailureDoesNotAbort(t *testing.T) {
	dataset := BuiltinDataset()
	answerer := perfectAnswerer(dataset)
	answerer.fail[dataset[2].Query] = true

	runner := newTestRunner(t)
	report := runner.Run(context.Background(), dataset, answerer)

	// Run completed: every example processed, verdict invariant holds.
	if len(answerer.calls) != len(dataset) {
		t.Errorf("agent called %d times, want %d", len(answerer.calls), len(dataset))
	}
	if got := len(report.Verdicts()); got != 16 {
		t.Errorf("verdict count = %d, want 16 despite the failure", got)
	}
	if report.FailureCount != 1 {
		t.Errorf("FailureCount = %d, want 1", report.FailureCount)
	}

	failed := report.Results[2]
	if !failed.Failed || !failed.Flagged {
		t.Errorf("failed example not marked: %+v", failed)
	}
	for _, v := range failed.Verdicts {
		if v.Score != 0 {
			t.Errorf("failed example verdict score = %v, want 0", v.Score)
		}
		if v.Comment == "" {
			t.Error("failed example verdict needs a comment")
		}
	}
}

func TestRun_FlagsBelowThreshold(t *testing.T) {
	dataset := BuiltinDataset()
	answerer := perfectAnswerer(dataset)
	// One example answers nonsense with no retrieved sources.
	answerer.byQuery[dataset[0].Query] = responseWith("entirely unrelated gibberish")

	runner := newTestRunner(t)
	report := runner.Run(context.Background(), dataset, answerer)

	if !report.Results[0].Flagged {
		t.Error("low-scoring example was not flagged")
	}
	if report.FailureCount != 0 {
		t.Errorf("FailureCount = %d, want 0 (low score is not an agent failure)", report.FailureCount)
	}
}

func TestRun_EmptyDataset(t *testing.T) {
	runner := newTestRunner(t)
	report := runner.Run(context.Background(), nil, perfectAnswerer(nil))

	if len(report.Verdicts()) != 0 {
		t.Errorf("verdicts = %d, want 0", len(report.Verdicts()))
	}
	if len(report.MetricMeans) != 0 {
		t.Errorf("MetricMeans = %v, want empty", report.MetricMeans)
	}
}
