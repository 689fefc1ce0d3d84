package lifecycle

import (
	"context"
	"errors"
	"testing"

	"issue-intelligence/internal/automation"
	"issue-intelligence/internal/duplicate"
	"issue-intelligence/internal/model"
	"issue-intelligence/internal/triage"
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

type mockTriage struct {
	analyzeFunc func(input triage.AnalyzeInput) (triage.TriageSuggestion, error)
}

func (m *mockTriage) AnalyzeIssue(ctx context.Context, input triage.AnalyzeInput) (triage.TriageSuggestion, error) {
	if m.analyzeFunc == nil {
		return triage.TriageSuggestion{Type: model.IssueTypeTask}, nil
	}
	return m.analyzeFunc(input)
}

func (m *mockTriage) ClassifyType(ctx context.Context, title, description string) (model.IssueType, error) {
	return model.IssueTypeTask, nil
}

func (m *mockTriage) AssessPriority(ctx context.Context, title, description string) (triage.PrioritySuggestion, error) {
	return triage.PrioritySuggestion{}, nil
}

func (m *mockTriage) SuggestLabels(ctx context.Context, title, description string, existingLabels []string) ([]triage.LabelSuggestion, error) {
	return nil, nil
}

func (m *mockTriage) EstimateStoryPoints(ctx context.Context, title, description string, issueType model.IssueType) (*int, error) {
	return nil, nil
}

type mockDuplicate struct {
	findFunc        func(newIssue model.Issue, existing []model.Issue, opts duplicate.Options) (duplicate.FindOutput, error)
	findCalls       int
	invalidatedIDs  []string
	clearCacheCalls int
}

func (m *mockDuplicate) FindDuplicates(ctx context.Context, newIssue model.Issue, existing []model.Issue, opts duplicate.Options) (duplicate.FindOutput, error) {
	m.findCalls++
	if m.findFunc == nil {
		return duplicate.FindOutput{SearchedCount: len(existing)}, nil
	}
	return m.findFunc(newIssue, existing, opts)
}

func (m *mockDuplicate) IsDuplicate(ctx context.Context, newIssue model.Issue, existing []model.Issue) (duplicate.CheckOutput, error) {
	return duplicate.CheckOutput{}, nil
}

func (m *mockDuplicate) InvalidateCache(issueID string) {
	m.invalidatedIDs = append(m.invalidatedIDs, issueID)
}

func (m *mockDuplicate) ClearCache() { m.clearCacheCalls++ }

type mockEngine struct {
	processFunc func(input automation.ProcessEventInput) ([]model.AutomationResult, error)
	events      []model.AutomationEvent
}

func (m *mockEngine) ProcessEvent(ctx context.Context, sc model.Scope, input automation.ProcessEventInput) ([]model.AutomationResult, error) {
	m.events = append(m.events, input.Event)
	if m.processFunc == nil {
		return []model.AutomationResult{{RuleID: "r1", Status: model.ResultSuccess}}, nil
	}
	return m.processFunc(input)
}

func TestOnIssueCreated(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{WorkspaceID: "ws-1"}

	payload := IssueCreatedPayload{Issue: model.Issue{ID: "iss-1", Title: "Login fails on Safari"}}
	actx := AutomationContext{
		ExistingIssues: []model.Issue{{ID: "iss-0", Title: "Old issue"}},
		ExistingLabels: []string{"auth"},
		Rules:          []model.AutomationRule{{ID: "r1"}},
	}

	t.Run("composes all three sections", func(t *testing.T) {
		engine := &mockEngine{}
		svc := New(&mockLogger{}, &mockTriage{}, &mockDuplicate{}, engine)

		out, err := svc.OnIssueCreated(ctx, sc, payload, actx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Triage == nil || out.Triage.Type != model.IssueTypeTask {
			t.Errorf("expected triage section, got %+v", out.Triage)
		}
		if out.Duplicates == nil {
			t.Error("expected duplicates section")
		}
		if len(out.RuleResults) != 1 {
			t.Errorf("expected 1 rule result, got %d", len(out.RuleResults))
		}
		if len(engine.events) != 1 || engine.events[0].Type != model.TriggerIssueCreated {
			t.Fatalf("expected one issue_created event, got %+v", engine.events)
		}
		if engine.events[0].ID == "" || engine.events[0].Timestamp.IsZero() {
			t.Error("expected event to be stamped with ID and timestamp")
		}
	})

	t.Run("triage failure is advisory", func(t *testing.T) {
		tr := &mockTriage{analyzeFunc: func(input triage.AnalyzeInput) (triage.TriageSuggestion, error) {
			return triage.TriageSuggestion{}, errors.New("provider down")
		}}
		svc := New(&mockLogger{}, tr, &mockDuplicate{}, &mockEngine{})

		out, err := svc.OnIssueCreated(ctx, sc, payload, actx)
		if err != nil {
			t.Fatalf("expected hook to succeed, got %v", err)
		}
		if out.Triage != nil {
			t.Error("expected triage section omitted on failure")
		}
		if out.Duplicates == nil || len(out.RuleResults) != 1 {
			t.Error("expected remaining sections intact")
		}
	})

	t.Run("duplicate failure is advisory", func(t *testing.T) {
		dup := &mockDuplicate{findFunc: func(model.Issue, []model.Issue, duplicate.Options) (duplicate.FindOutput, error) {
			return duplicate.FindOutput{}, errors.New("embedder down")
		}}
		svc := New(&mockLogger{}, &mockTriage{}, dup, &mockEngine{})

		out, err := svc.OnIssueCreated(ctx, sc, payload, actx)
		if err != nil {
			t.Fatalf("expected hook to succeed, got %v", err)
		}
		if out.Duplicates != nil {
			t.Error("expected duplicates section omitted on failure")
		}
		if out.Triage == nil {
			t.Error("expected triage section intact")
		}
	})

	t.Run("no candidate issues skips duplicate search", func(t *testing.T) {
		dup := &mockDuplicate{}
		svc := New(&mockLogger{}, &mockTriage{}, dup, &mockEngine{})

		out, err := svc.OnIssueCreated(ctx, sc, payload, AutomationContext{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Duplicates != nil || dup.findCalls != 0 {
			t.Errorf("expected no duplicate search, got %d calls", dup.findCalls)
		}
	})
}

func TestOnIssueUpdated(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{WorkspaceID: "ws-1"}

	issue := model.Issue{ID: "iss-1", Title: "Login fails on Safari", Status: model.StatusInProgress}
	actx := AutomationContext{
		ExistingIssues: []model.Issue{{ID: "iss-0", Title: "Old issue"}},
		Rules:          []model.AutomationRule{{ID: "r1"}},
	}

	t.Run("title change invalidates cache and re-searches", func(t *testing.T) {
		dup := &mockDuplicate{}
		engine := &mockEngine{}
		svc := New(&mockLogger{}, &mockTriage{}, dup, engine)

		out, err := svc.OnIssueUpdated(ctx, sc, IssueUpdatedPayload{
			Issue:         issue,
			ChangedFields: []string{"title"},
		}, actx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(dup.invalidatedIDs) != 1 || dup.invalidatedIDs[0] != "iss-1" {
			t.Errorf("expected cache invalidation for iss-1, got %v", dup.invalidatedIDs)
		}
		if dup.findCalls != 1 || out.Duplicates == nil {
			t.Errorf("expected one re-search, got %d calls", dup.findCalls)
		}
		if len(engine.events) != 1 || engine.events[0].Type != model.TriggerIssueUpdated {
			t.Errorf("expected only an issue_updated event, got %+v", engine.events)
		}
	})

	t.Run("status change emits a second event", func(t *testing.T) {
		engine := &mockEngine{}
		svc := New(&mockLogger{}, &mockTriage{}, &mockDuplicate{}, engine)

		out, err := svc.OnIssueUpdated(ctx, sc, IssueUpdatedPayload{
			Issue:         issue,
			Previous:      map[string]any{"status": model.StatusOpen},
			ChangedFields: []string{"status"},
		}, actx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(engine.events) != 2 {
			t.Fatalf("expected 2 events, got %d", len(engine.events))
		}
		if engine.events[0].Type != model.TriggerIssueUpdated || engine.events[1].Type != model.TriggerStatusChanged {
			t.Errorf("unexpected event sequence: %s, %s", engine.events[0].Type, engine.events[1].Type)
		}
		if len(out.RuleResults) != 2 {
			t.Errorf("expected results from both evaluations, got %d", len(out.RuleResults))
		}
	})

	t.Run("unrelated field change leaves the cache alone", func(t *testing.T) {
		dup := &mockDuplicate{}
		svc := New(&mockLogger{}, &mockTriage{}, dup, &mockEngine{})

		out, err := svc.OnIssueUpdated(ctx, sc, IssueUpdatedPayload{
			Issue:         issue,
			ChangedFields: []string{"assignee_id"},
		}, actx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(dup.invalidatedIDs) != 0 || dup.findCalls != 0 {
			t.Error("expected no cache activity for unrelated change")
		}
		if out.Duplicates != nil {
			t.Error("expected no duplicates section")
		}
	})
}
