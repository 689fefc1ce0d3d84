package triage

import (
	"context"

	"issue-intelligence/internal/model"
)

// Service classifies free-text issues into structured suggestions.
type Service interface {
	// AnalyzeIssue runs the full classification: type, priority, labels,
	// story points. Provider failures degrade to a default suggestion
	// instead of an error — classification must never block issue creation.
	AnalyzeIssue(ctx context.Context, input AnalyzeInput) (TriageSuggestion, error)

	// ClassifyType classifies only the issue type.
	ClassifyType(ctx context.Context, title, description string) (model.IssueType, error)

	// AssessPriority assesses only the priority.
	AssessPriority(ctx context.Context, title, description string) (PrioritySuggestion, error)

	// SuggestLabels suggests labels only.
	SuggestLabels(ctx context.Context, title, description string, existingLabels []string) ([]LabelSuggestion, error)

	// EstimateStoryPoints estimates story points for estimable issue types.
	// Returns nil (no estimate, no model call) for types outside
	// STORY/TASK/BUG/SUBTASK.
	EstimateStoryPoints(ctx context.Context, title, description string, issueType model.IssueType) (*int, error)
}
