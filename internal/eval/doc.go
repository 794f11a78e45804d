// Package eval scores agent runs against a labeled dataset.
//
// Two rubrics ship with the harness: FactualAccuracy, which measures
// how much of the reference answer's content survives in the produced
// answer, and ContextUtilization, which measures how many of the
// expected sources the retriever actually surfaced. Both are pure
// functions of (example, response) and never fail: malformed input
// becomes a zero-scored verdict with an explanatory comment, so one bad
// example cannot abort a batch.
//
// Runner drives a dataset through an agent and every registered
// evaluator, producing exactly |dataset| × |evaluators| verdicts in
// dataset order. An agent failure on one example is recorded as flagged
// zero verdicts; the run always completes.
package eval
