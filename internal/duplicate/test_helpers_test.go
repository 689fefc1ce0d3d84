package duplicate

import (
	"context"
	"errors"

	"issue-intelligence/internal/gateway"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock model gateway with function fields.
type mockGateway struct {
	completeFunc  func(input gateway.CompleteInput) (string, error)
	embedFunc     func(texts []string, dimensions int) ([][]float32, error)
	completeCalls int
	embedCalls    int
	embeddedTexts []string
}

func (m *mockGateway) Complete(ctx context.Context, input gateway.CompleteInput) (string, error) {
	m.completeCalls++
	if m.completeFunc == nil {
		return "", errors.New("completeFunc not set")
	}
	return m.completeFunc(input)
}

func (m *mockGateway) Classify(ctx context.Context, text string, labels []string, hint string) (string, error) {
	return "", errors.New("classify not used by duplicate detection")
}

func (m *mockGateway) Embed(ctx context.Context, texts []string, dimensions int) ([][]float32, error) {
	m.embedCalls++
	m.embeddedTexts = append(m.embeddedTexts, texts...)
	if m.embedFunc == nil {
		return nil, errors.New("embedFunc not set")
	}
	return m.embedFunc(texts, dimensions)
}

// embedByText returns an embedFunc that looks vectors up by the exact
// search text, failing the lookup loudly so tests catch bad fixtures.
func embedByText(vectors map[string][]float32) func(texts []string, dimensions int) ([][]float32, error) {
	return func(texts []string, dimensions int) ([][]float32, error) {
		out := make([][]float32, len(texts))
		for i, text := range texts {
			vec, ok := vectors[text]
			if !ok {
				return nil, errors.New("no fixture vector for text: " + text)
			}
			out[i] = vec
		}
		return out, nil
	}
}
