package duplicate

import (
	"context"

	"issue-intelligence/internal/model"
)

// Service detects likely duplicate issues by semantic similarity over a
// caller-provided candidate set.
type Service interface {
	// FindDuplicates searches existing issues for likely duplicates of
	// newIssue. Exact-title matches are always included regardless of
	// the threshold.
	FindDuplicates(ctx context.Context, newIssue model.Issue, existing []model.Issue, opts Options) (FindOutput, error)

	// IsDuplicate is a strict convenience check (threshold 0.85, single
	// candidate, duplicate only above 0.9).
	IsDuplicate(ctx context.Context, newIssue model.Issue, existing []model.Issue) (CheckOutput, error)

	// InvalidateCache drops the cached embedding for an issue. Callers
	// must invoke this whenever an issue's title or description changes.
	InvalidateCache(issueID string)

	// ClearCache drops every cached embedding.
	ClearCache()
}
