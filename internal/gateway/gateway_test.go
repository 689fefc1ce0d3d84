package gateway

import (
	"context"
	"errors"
	"strings"
	"testing"

	"issue-intelligence/pkg/llmprovider"
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

type mockCompleter struct {
	completeFunc func(req *llmprovider.Request) (*llmprovider.Response, error)
	lastRequest  *llmprovider.Request
}

func (m *mockCompleter) Complete(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.lastRequest = req
	if m.completeFunc == nil {
		return nil, errors.New("completeFunc not set")
	}
	return m.completeFunc(req)
}

func TestComplete(t *testing.T) {
	ctx := context.Background()

	t.Run("forwards the prompt and returns text", func(t *testing.T) {
		completer := &mockCompleter{completeFunc: func(req *llmprovider.Request) (*llmprovider.Response, error) {
			return &llmprovider.Response{Text: "hello"}, nil
		}}
		gw := New(&mockLogger{}, completer, nil)

		got, err := gw.Complete(ctx, CompleteInput{
			SystemPrompt: "be brief",
			Prompt:       "say hello",
			Temperature:  0.2,
			MaxTokens:    64,
			JSONResponse: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "hello" {
			t.Errorf("expected hello, got %q", got)
		}
		req := completer.lastRequest
		if req.SystemPrompt != "be brief" || !req.JSONResponse || req.Temperature != 0.2 {
			t.Errorf("request not forwarded faithfully: %+v", req)
		}
		if len(req.Messages) != 1 || req.Messages[0].Text != "say hello" {
			t.Errorf("unexpected messages: %+v", req.Messages)
		}
	})

	t.Run("provider error wrapped", func(t *testing.T) {
		completer := &mockCompleter{completeFunc: func(req *llmprovider.Request) (*llmprovider.Response, error) {
			return nil, errors.New("provider down")
		}}
		gw := New(&mockLogger{}, completer, nil)

		if _, err := gw.Complete(ctx, CompleteInput{Prompt: "hi"}); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestClassify(t *testing.T) {
	ctx := context.Background()
	labels := []string{"BUG", "TASK", "STORY"}

	newGateway := func(answer string) ModelGateway {
		completer := &mockCompleter{completeFunc: func(req *llmprovider.Request) (*llmprovider.Response, error) {
			return &llmprovider.Response{Text: answer}, nil
		}}
		return New(&mockLogger{}, completer, nil)
	}

	t.Run("no labels rejected", func(t *testing.T) {
		gw := newGateway("BUG")
		if _, err := gw.Classify(ctx, "text", nil, ""); !errors.Is(err, ErrNoLabels) {
			t.Errorf("expected ErrNoLabels, got %v", err)
		}
	})

	t.Run("exact answer", func(t *testing.T) {
		got, err := newGateway("BUG").Classify(ctx, "login crashes", labels, "")
		if err != nil || got != "BUG" {
			t.Errorf("expected BUG, got %q (%v)", got, err)
		}
	})

	t.Run("case and punctuation tolerated", func(t *testing.T) {
		got, err := newGateway(" \"bug\". ").Classify(ctx, "login crashes", labels, "")
		if err != nil || got != "BUG" {
			t.Errorf("expected BUG, got %q (%v)", got, err)
		}
	})

	t.Run("label embedded in a sentence", func(t *testing.T) {
		got, err := newGateway("The label is STORY here").Classify(ctx, "as a user", labels, "")
		if err != nil || got != "STORY" {
			t.Errorf("expected STORY, got %q (%v)", got, err)
		}
	})

	t.Run("ambiguous answer rejected", func(t *testing.T) {
		_, err := newGateway("BUG or TASK").Classify(ctx, "unclear", labels, "")
		if !errors.Is(err, ErrUnknownLabel) {
			t.Errorf("expected ErrUnknownLabel, got %v", err)
		}
	})

	t.Run("unknown answer rejected", func(t *testing.T) {
		_, err := newGateway("FEATURE").Classify(ctx, "text", labels, "")
		if !errors.Is(err, ErrUnknownLabel) {
			t.Errorf("expected ErrUnknownLabel, got %v", err)
		}
	})

	t.Run("hint lands in the prompt", func(t *testing.T) {
		completer := &mockCompleter{completeFunc: func(req *llmprovider.Request) (*llmprovider.Response, error) {
			return &llmprovider.Response{Text: "TASK"}, nil
		}}
		gw := New(&mockLogger{}, completer, nil)

		if _, err := gw.Classify(ctx, "text", labels, "issue tracker types"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		prompt := completer.lastRequest.Messages[0].Text
		if !strings.Contains(prompt, "issue tracker types") {
			t.Errorf("expected hint in prompt, got %q", prompt)
		}
	})
}

func TestEmbed(t *testing.T) {
	ctx := context.Background()

	t.Run("nil embedder fails cleanly", func(t *testing.T) {
		gw := New(&mockLogger{}, &mockCompleter{}, nil)
		if _, err := gw.Embed(ctx, []string{"text"}, 1024); !errors.Is(err, ErrEmbedderUnavailable) {
			t.Errorf("expected ErrEmbedderUnavailable, got %v", err)
		}
	})
}
