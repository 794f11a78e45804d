package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/deepthibiotune-hash/moems-agent/internal/rag"
)

// NoInformationAnswer is returned when retrieval produced no context.
// The marker "no relevant information" is part of the contract: callers
// and tests detect the "I don't know" outcome by it.
const NoInformationAnswer = "I found no relevant information about that in the MOEMS " +
	"knowledge base. Try asking about the contest structure, eligibility, scoring, rules, " +
	"strategies, or example problems."

// DefaultGenerateTimeout bounds a single model call.
const DefaultGenerateTimeout = 30 * time.Second

const promptHeader = "You are a precise assistant answering questions about MOEMS " +
	"(Mathematical Olympiads for Elementary and Middle Schools).\n" +
	"Answer the question using only the context documents below. Cite nothing beyond them.\n" +
	"If the context does not contain the answer, state that no relevant information was " +
	"found instead of guessing.\n"

// Generator produces a natural-language answer from a query and its
// retrieved context by delegating to a ModelClient.
type Generator struct {
	model   ModelClient
	timeout time.Duration
	logger  *slog.Logger
}

// NewGenerator creates a Generator. A timeout <= 0 falls back to
// DefaultGenerateTimeout.
func NewGenerator(model ModelClient, timeout time.Duration, logger *slog.Logger) *Generator {
	if timeout <= 0 {
		timeout = DefaultGenerateTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{model: model, timeout: timeout, logger: logger}
}

// Generate answers the query from the retrieved context.
//
// Empty context short-circuits to NoInformationAnswer without spending
// a model call: with nothing to ground the answer, the only honest
// output is "no relevant information". Model failures surface as
// ErrGenerationUnavailable.
func (g *Generator) Generate(ctx context.Context, query string, result rag.Result) (string, error) {
	if result.Empty() {
		g.logger.Debug("empty context, returning no-information answer")
		return NoInformationAnswer, nil
	}

	prompt := buildPrompt(query, result)

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	answer, err := g.model.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGenerationUnavailable, err)
	}

	g.logger.Debug("generated answer",
		"prompt_length", len(prompt),
		"answer_length", len(answer),
	)
	return answer, nil
}

// buildPrompt embeds the query and the verbatim content of every
// retrieved document with its source label.
func buildPrompt(query string, result rag.Result) string {
	var b strings.Builder
	b.WriteString(promptHeader)
	b.WriteString("\nContext documents:\n")
	for i, doc := range result.Documents {
		fmt.Fprintf(&b, "%d. [source: %s] %s\n", i+1, doc.Source, doc.Content)
	}
	b.WriteString("\nQuestion: ")
	b.WriteString(query)
	b.WriteString("\nAnswer:")
	return b.String()
}
