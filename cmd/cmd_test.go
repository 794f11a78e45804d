package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/deepthibiotune-hash/moems-agent/internal/agent"
	"github.com/deepthibiotune-hash/moems-agent/internal/eval"
	"github.com/deepthibiotune-hash/moems-agent/internal/knowledge"
	"github.com/deepthibiotune-hash/moems-agent/internal/rag"
)

func TestSubcommandsRegistered(t *testing.T) {
	want := []string{"ask", "demo", "eval", "version"}
	for _, name := range want {
		found := false
		for _, c := range rootCmd.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered on root", name)
		}
	}
}

func TestVersionOutput(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	versionCmd.Run(versionCmd, nil)

	got := buf.String()
	for _, want := range []string{agent.Name, agent.Version} {
		if !strings.Contains(got, want) {
			t.Errorf("version output %q missing %q", got, want)
		}
	}
}

func TestPrintResponse(t *testing.T) {
	resp := agent.Response{
		Query:  "What is MOEMS?",
		Answer: "MOEMS is a math olympiad program.",
		Context: rag.Result{
			Documents: []knowledge.Document{
				{Content: "MOEMS is ...", Source: "moems.org", Topic: "moems_overview"},
				{Content: "Founded ...", Source: "moems_handbook", Topic: "moems_overview"},
			},
			MatchedTopic: "moems_overview",
			Score:        1.0,
		},
		Latency: 1250 * time.Millisecond,
	}

	var buf bytes.Buffer
	printResponse(&buf, resp)
	got := buf.String()

	for _, want := range []string{
		"MOEMS is a math olympiad program.",
		"Sources: moems.org, moems_handbook",
		"Documents retrieved: 2",
		"Response time: 1.25s",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("printResponse output missing %q\noutput:\n%s", want, got)
		}
	}
}

func TestPrintResponseNoSources(t *testing.T) {
	resp := agent.Response{
		Query:  "What is the capital of France?",
		Answer: agent.NoInformationAnswer,
	}

	var buf bytes.Buffer
	printResponse(&buf, resp)
	got := buf.String()

	if strings.Contains(got, "Sources:") {
		t.Errorf("printResponse printed a sources line for an empty context:\n%s", got)
	}
	if !strings.Contains(got, "Documents retrieved: 0") {
		t.Errorf("printResponse output missing zero document count:\n%s", got)
	}
}

func TestPrintReport(t *testing.T) {
	report := eval.Report{
		Results: []eval.ExampleResult{
			{
				Example: eval.Example{Query: "What is MOEMS?"},
				Verdicts: []eval.Verdict{
					{Metric: eval.MetricFactualAccuracy, Score: 1.0},
					{Metric: eval.MetricContextUtilization, Score: 1.0},
				},
			},
			{
				Example: eval.Example{Query: "Who won the 1998 olympiad?"},
				Verdicts: []eval.Verdict{
					{Metric: eval.MetricFactualAccuracy, Score: 0.0, Comment: "no expected tokens present"},
					{Metric: eval.MetricContextUtilization, Score: 0.0},
				},
				Flagged: true,
			},
		},
		MetricMeans: map[string]float64{
			eval.MetricFactualAccuracy:    0.5,
			eval.MetricContextUtilization: 0.5,
		},
		PassThreshold: 0.5,
	}

	var buf bytes.Buffer
	printReport(&buf, report)
	got := buf.String()

	for _, want := range []string{
		"Evaluated 2 examples",
		eval.MetricFactualAccuracy,
		eval.MetricContextUtilization,
		"Flagged: 1",
		"Failed: 0",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("printReport output missing %q\noutput:\n%s", want, got)
		}
	}
}

func TestPrintReportDetail(t *testing.T) {
	evalDetail = true
	defer func() { evalDetail = false }()

	report := eval.Report{
		Results: []eval.ExampleResult{
			{
				Example: eval.Example{Query: "How long is each contest?"},
				Verdicts: []eval.Verdict{
					{Metric: eval.MetricFactualAccuracy, Score: 0.25, Comment: "expected answer mostly absent"},
				},
				Flagged: true,
			},
		},
		MetricMeans:   map[string]float64{eval.MetricFactualAccuracy: 0.25},
		PassThreshold: 0.5,
	}

	var buf bytes.Buffer
	printReport(&buf, report)
	got := buf.String()

	for _, want := range []string{
		"How long is each contest?",
		"flagged below threshold",
		"expected answer mostly absent",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("printReport detail output missing %q\noutput:\n%s", want, got)
		}
	}
}
