package gateway

import (
	"context"
	"fmt"
	"strings"

	"issue-intelligence/pkg/llmprovider"
)

// Complete returns the text of a single completion.
func (g *impl) Complete(ctx context.Context, input CompleteInput) (string, error) {
	resp, err := g.completer.Complete(ctx, &llmprovider.Request{
		SystemPrompt: input.SystemPrompt,
		Messages:     []llmprovider.Message{{Role: "user", Text: input.Prompt}},
		Temperature:  input.Temperature,
		MaxTokens:    input.MaxTokens,
		JSONResponse: input.JSONResponse,
	})
	if err != nil {
		return "", fmt.Errorf("completion failed: %w", err)
	}
	return resp.Text, nil
}

// Classify picks one label from candidates for the given text. It is a
// constrained completion: the answer is snapped case-insensitively onto
// the candidate set, and anything outside it is an error.
func (g *impl) Classify(ctx context.Context, text string, labels []string, hint string) (string, error) {
	if len(labels) == 0 {
		return "", ErrNoLabels
	}

	var sb strings.Builder
	sb.WriteString("Classify the text into exactly one of these labels:\n")
	for _, label := range labels {
		sb.WriteString("- ")
		sb.WriteString(label)
		sb.WriteString("\n")
	}
	if hint != "" {
		sb.WriteString("\nHint: ")
		sb.WriteString(hint)
		sb.WriteString("\n")
	}
	sb.WriteString("\nRespond with the label only, nothing else.\n\nText:\n")
	sb.WriteString(text)

	answer, err := g.Complete(ctx, CompleteInput{
		Prompt:      sb.String(),
		Temperature: 0,
		MaxTokens:   32,
	})
	if err != nil {
		return "", err
	}

	return snapLabel(answer, labels)
}

// Embed returns one embedding vector per input text.
func (g *impl) Embed(ctx context.Context, texts []string, dimensions int) ([][]float32, error) {
	if g.embedder == nil {
		return nil, ErrEmbedderUnavailable
	}
	return g.embedder.Embed(ctx, texts, dimensions)
}

// snapLabel maps a free-text model answer onto the candidate set.
func snapLabel(answer string, labels []string) (string, error) {
	cleaned := strings.ToLower(strings.Trim(strings.TrimSpace(answer), `"'.`))

	for _, label := range labels {
		if strings.ToLower(label) == cleaned {
			return label, nil
		}
	}

	// The model sometimes wraps the label in a sentence; accept a unique
	// substring match.
	var matched string
	for _, label := range labels {
		if strings.Contains(cleaned, strings.ToLower(label)) {
			if matched != "" {
				return "", fmt.Errorf("%w: ambiguous answer %q", ErrUnknownLabel, answer)
			}
			matched = label
		}
	}
	if matched != "" {
		return matched, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownLabel, answer)
}
