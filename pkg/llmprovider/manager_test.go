package llmprovider

import (
	"context"
	"errors"
	"testing"
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

// Mock provider with function fields.
type mockProvider struct {
	name         string
	completeFunc func(req *Request) (*Response, error)
	calls        int
}

func (m *mockProvider) Complete(ctx context.Context, req *Request) (*Response, error) {
	m.calls++
	if m.completeFunc == nil {
		return &Response{Text: "ok", ProviderName: m.name}, nil
	}
	return m.completeFunc(req)
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return "test-model" }

func TestManagerComplete(t *testing.T) {
	ctx := context.Background()
	req := &Request{Messages: []Message{{Role: "user", Text: "hi"}}}

	t.Run("no providers configured", func(t *testing.T) {
		m := NewManager(nil, &Config{}, &mockLogger{})
		if _, err := m.Complete(ctx, req); !errors.Is(err, ErrNoProvidersConfigured) {
			t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
		}
	})

	t.Run("first provider succeeds", func(t *testing.T) {
		primary := &mockProvider{name: "primary"}
		secondary := &mockProvider{name: "secondary"}
		m := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true}, &mockLogger{})

		resp, err := m.Complete(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.ProviderName != "primary" {
			t.Errorf("expected primary, got %s", resp.ProviderName)
		}
		if secondary.calls != 0 {
			t.Errorf("secondary should not be called, got %d calls", secondary.calls)
		}
	})

	t.Run("fallback to next provider", func(t *testing.T) {
		primary := &mockProvider{name: "primary", completeFunc: func(req *Request) (*Response, error) {
			return nil, errors.New("rate limited")
		}}
		secondary := &mockProvider{name: "secondary"}
		m := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true}, &mockLogger{})

		resp, err := m.Complete(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.ProviderName != "secondary" {
			t.Errorf("expected secondary, got %s", resp.ProviderName)
		}
	})

	t.Run("fallback disabled stops at the first failure", func(t *testing.T) {
		primary := &mockProvider{name: "primary", completeFunc: func(req *Request) (*Response, error) {
			return nil, errors.New("rate limited")
		}}
		secondary := &mockProvider{name: "secondary"}
		m := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: false}, &mockLogger{})

		if _, err := m.Complete(ctx, req); !errors.Is(err, ErrAllProvidersFailed) {
			t.Fatalf("expected ErrAllProvidersFailed, got %v", err)
		}
		if secondary.calls != 0 {
			t.Errorf("secondary should not be called, got %d calls", secondary.calls)
		}
	})

	t.Run("all providers fail", func(t *testing.T) {
		boom := func(req *Request) (*Response, error) { return nil, errors.New("boom") }
		m := NewManager([]Provider{
			&mockProvider{name: "a", completeFunc: boom},
			&mockProvider{name: "b", completeFunc: boom},
		}, &Config{FallbackEnabled: true}, &mockLogger{})

		if _, err := m.Complete(ctx, req); !errors.Is(err, ErrAllProvidersFailed) {
			t.Errorf("expected ErrAllProvidersFailed, got %v", err)
		}
	})

	t.Run("retries before falling back", func(t *testing.T) {
		failures := 0
		flaky := &mockProvider{name: "flaky", completeFunc: func(req *Request) (*Response, error) {
			failures++
			if failures < 3 {
				return nil, errors.New("transient")
			}
			return &Response{Text: "ok", ProviderName: "flaky"}, nil
		}}
		m := NewManager([]Provider{flaky}, &Config{RetryAttempts: 3}, &mockLogger{})

		resp, err := m.Complete(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.ProviderName != "flaky" || flaky.calls != 3 {
			t.Errorf("expected success on third attempt, got %d calls", flaky.calls)
		}
	})

	t.Run("cancelled context stops retries", func(t *testing.T) {
		cancelledCtx, cancel := context.WithCancel(ctx)
		cancel()

		failing := &mockProvider{name: "slow", completeFunc: func(req *Request) (*Response, error) {
			return nil, errors.New("transient")
		}}
		m := NewManager([]Provider{failing}, &Config{RetryAttempts: 5}, &mockLogger{})

		if _, err := m.Complete(cancelledCtx, req); err == nil {
			t.Fatal("expected error")
		}
		if failing.calls > 1 {
			t.Errorf("expected at most one attempt after cancellation, got %d", failing.calls)
		}
	})
}
