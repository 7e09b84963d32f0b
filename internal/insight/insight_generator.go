package insight

import (
	"context"
	"fmt"

	generativelanguage "google.golang.org/api/generativelanguage/v1beta"
	"google.golang.org/api/option"
)

const DefaultModel = "models/gemini-2.5-flash"

// Generator produces a narrative for a prepared prompt. The production
// implementation talks to Gemini; tests substitute their own.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type geminiGenerator struct {
	svc   *generativelanguage.Service
	model string
}

func NewGeminiGenerator(ctx context.Context, apiKey, model string) (Generator, error) {
	svc, err := generativelanguage.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create generative language service: %w", err)
	}
	if model == "" {
		model = DefaultModel
	}
	return &geminiGenerator{svc: svc, model: model}, nil
}

func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	req := &generativelanguage.GenerateContentRequest{
		Contents: []*generativelanguage.Content{
			{
				Role:  "user",
				Parts: []*generativelanguage.Part{{Text: prompt}},
			},
		},
	}

	resp, err := g.svc.Models.GenerateContent(g.model, req).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				return part.Text, nil
			}
		}
	}
	return "", nil
}
