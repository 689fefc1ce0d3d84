package automation

import (
	"context"
	"errors"

	"issue-intelligence/internal/assignment"
	"issue-intelligence/internal/duplicate"
	"issue-intelligence/internal/gateway"
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

// Mock triage service with function fields.
type mockTriage struct {
	analyzeFunc       func(input triage.AnalyzeInput) (triage.TriageSuggestion, error)
	suggestLabelsFunc func(title, description string, existingLabels []string) ([]triage.LabelSuggestion, error)
}

func (m *mockTriage) AnalyzeIssue(ctx context.Context, input triage.AnalyzeInput) (triage.TriageSuggestion, error) {
	if m.analyzeFunc == nil {
		return triage.TriageSuggestion{}, errors.New("analyzeFunc not set")
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
	if m.suggestLabelsFunc == nil {
		return nil, errors.New("suggestLabelsFunc not set")
	}
	return m.suggestLabelsFunc(title, description, existingLabels)
}

func (m *mockTriage) EstimateStoryPoints(ctx context.Context, title, description string, issueType model.IssueType) (*int, error) {
	return nil, nil
}

// Mock duplicate service with function fields.
type mockDuplicate struct {
	findFunc func(newIssue model.Issue, existing []model.Issue, opts duplicate.Options) (duplicate.FindOutput, error)
}

func (m *mockDuplicate) FindDuplicates(ctx context.Context, newIssue model.Issue, existing []model.Issue, opts duplicate.Options) (duplicate.FindOutput, error) {
	if m.findFunc == nil {
		return duplicate.FindOutput{}, errors.New("findFunc not set")
	}
	return m.findFunc(newIssue, existing, opts)
}

func (m *mockDuplicate) IsDuplicate(ctx context.Context, newIssue model.Issue, existing []model.Issue) (duplicate.CheckOutput, error) {
	return duplicate.CheckOutput{}, nil
}

func (m *mockDuplicate) InvalidateCache(issueID string) {}
func (m *mockDuplicate) ClearCache()                    {}

// Mock assignment service with function fields.
type mockAssignment struct {
	suggestFunc func(issue model.Issue, members []model.TeamMember, opts assignment.Options) (assignment.SuggestOutput, error)
}

func (m *mockAssignment) SuggestAssignees(ctx context.Context, issue model.Issue, members []model.TeamMember, opts assignment.Options) (assignment.SuggestOutput, error) {
	if m.suggestFunc == nil {
		return assignment.SuggestOutput{}, errors.New("suggestFunc not set")
	}
	return m.suggestFunc(issue, members, opts)
}

func (m *mockAssignment) AnalyzeWorkload(ctx context.Context, members []model.TeamMember, assigned []model.Issue) assignment.WorkloadAnalysis {
	return assignment.WorkloadAnalysis{}
}

func (m *mockAssignment) IsWorkloadBalanced(ctx context.Context, analysis assignment.WorkloadAnalysis) assignment.BalanceReport {
	return assignment.BalanceReport{IsBalanced: true}
}

// Mock model gateway with function fields.
type mockGateway struct {
	completeFunc func(input gateway.CompleteInput) (string, error)
}

func (m *mockGateway) Complete(ctx context.Context, input gateway.CompleteInput) (string, error) {
	if m.completeFunc == nil {
		return "", errors.New("completeFunc not set")
	}
	return m.completeFunc(input)
}

func (m *mockGateway) Classify(ctx context.Context, text string, labels []string, hint string) (string, error) {
	return "", errors.New("classify not used by the rule engine")
}

func (m *mockGateway) Embed(ctx context.Context, texts []string, dimensions int) ([][]float32, error) {
	return nil, errors.New("embed not used by the rule engine")
}
