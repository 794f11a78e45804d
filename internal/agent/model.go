package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
)

// ModelClient is the opaque language-model collaborator: prompt in,
// text out, may fail transiently. Defined here by the consumer so tests
// can substitute a deterministic fake.
type ModelClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// GenkitModel calls the configured model through Genkit.
type GenkitModel struct {
	g         *genkit.Genkit
	modelName string // Provider-qualified, e.g. "googleai/gemini-2.5-flash"
}

var _ ModelClient = (*GenkitModel)(nil)

// NewGenkitModel creates a ModelClient backed by genkit.Generate.
func NewGenkitModel(g *genkit.Genkit, modelName string) *GenkitModel {
	return &GenkitModel{g: g, modelName: modelName}
}

// Complete sends the prompt to the model and returns its text output.
func (m *GenkitModel) Complete(ctx context.Context, prompt string) (string, error) {
	opts := []ai.GenerateOption{
		ai.WithPrompt(prompt),
	}
	if m.modelName != "" {
		opts = append(opts, ai.WithModelName(m.modelName))
	}

	resp, err := genkit.Generate(ctx, m.g, opts...)
	if err != nil {
		return "", fmt.Errorf("generating completion: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("empty model response")
	}
	return text, nil
}
