package assignment

import (
	"context"

	"issue-intelligence/internal/model"
)

// Service ranks team members for issue assignment and analyzes team
// workload. All scoring is deterministic; this package never calls the
// model gateway.
type Service interface {
	// SuggestAssignees ranks members for the issue, best first.
	SuggestAssignees(ctx context.Context, issue model.Issue, members []model.TeamMember, opts Options) (SuggestOutput, error)

	// AnalyzeWorkload aggregates per-member issue counts and capacity.
	AnalyzeWorkload(ctx context.Context, members []model.TeamMember, assigned []model.Issue) WorkloadAnalysis

	// IsWorkloadBalanced reports whether work is spread evenly across
	// the analyzed members.
	IsWorkloadBalanced(ctx context.Context, analysis WorkloadAnalysis) BalanceReport
}
