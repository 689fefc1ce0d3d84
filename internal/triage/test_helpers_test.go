package triage

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
	classifyFunc  func(text string, labels []string, hint string) (string, error)
	embedFunc     func(texts []string, dimensions int) ([][]float32, error)
	completeCalls int
	classifyCalls int
	embedCalls    int
}

func (m *mockGateway) Complete(ctx context.Context, input gateway.CompleteInput) (string, error) {
	m.completeCalls++
	if m.completeFunc == nil {
		return "", errors.New("completeFunc not set")
	}
	return m.completeFunc(input)
}

func (m *mockGateway) Classify(ctx context.Context, text string, labels []string, hint string) (string, error) {
	m.classifyCalls++
	if m.classifyFunc == nil {
		return "", errors.New("classifyFunc not set")
	}
	return m.classifyFunc(text, labels, hint)
}

func (m *mockGateway) Embed(ctx context.Context, texts []string, dimensions int) ([][]float32, error) {
	m.embedCalls++
	if m.embedFunc == nil {
		return nil, errors.New("embedFunc not set")
	}
	return m.embedFunc(texts, dimensions)
}
