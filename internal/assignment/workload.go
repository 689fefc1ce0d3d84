package assignment

import (
	"context"
	"fmt"
	"math"
	"strings"

	"issue-intelligence/internal/model"
)

// balancedBelow is the imbalance score under which a team counts as
// balanced.
const balancedBelow = 0.5

// AnalyzeWorkload aggregates assigned issues per member. The +5 in the
// capacity denominator keeps small absolute counts from producing
// unstable ratios.
func (s *service) AnalyzeWorkload(ctx context.Context, members []model.TeamMember, assigned []model.Issue) WorkloadAnalysis {
	byAssignee := make(map[string][]model.Issue)
	for _, issue := range assigned {
		if issue.AssigneeID == "" {
			continue
		}
		byAssignee[issue.AssigneeID] = append(byAssignee[issue.AssigneeID], issue)
	}

	result := make([]MemberWorkload, 0, len(members))
	maxInProgress := 0
	for _, member := range members {
		workload := MemberWorkload{UserID: member.UserID, UserName: member.UserName}
		for _, issue := range byAssignee[member.UserID] {
			workload.Total++
			switch issue.Status {
			case model.StatusInProgress:
				workload.InProgress++
			case model.StatusBlocked:
				workload.Blocked++
			}
		}
		if workload.InProgress > maxInProgress {
			maxInProgress = workload.InProgress
		}
		result = append(result, workload)
	}

	denominator := float64(maxInProgress + 5)
	for i := range result {
		capacity := 1 - float64(result[i].InProgress)/denominator
		if capacity < 0 {
			capacity = 0
		}
		if capacity > 1 {
			capacity = 1
		}
		result[i].CapacityScore = capacity
	}

	s.l.Debugf(ctx, "AnalyzeWorkload: %d members, %d assigned issues", len(members), len(assigned))
	return WorkloadAnalysis{Members: result}
}

// IsWorkloadBalanced measures the spread of in-progress counts. Members
// more than one standard deviation from the mean are called out, and a
// rebalancing recommendation is emitted only when both an overloaded and
// an underloaded group exist.
func (s *service) IsWorkloadBalanced(ctx context.Context, analysis WorkloadAnalysis) BalanceReport {
	if len(analysis.Members) == 0 {
		return BalanceReport{IsBalanced: true}
	}

	mean := 0.0
	for _, m := range analysis.Members {
		mean += float64(m.InProgress)
	}
	mean /= float64(len(analysis.Members))

	variance := 0.0
	for _, m := range analysis.Members {
		d := float64(m.InProgress) - mean
		variance += d * d
	}
	variance /= float64(len(analysis.Members))
	stdDev := math.Sqrt(variance)

	imbalance := 0.0
	if mean > 0 {
		imbalance = stdDev / mean
	}

	report := BalanceReport{
		IsBalanced:     imbalance < balancedBelow,
		ImbalanceScore: imbalance,
	}
	if report.IsBalanced {
		return report
	}

	for _, m := range analysis.Members {
		switch {
		case float64(m.InProgress) > mean+stdDev:
			report.Overloaded = append(report.Overloaded, m.UserName)
		case float64(m.InProgress) < mean-stdDev:
			report.Underloaded = append(report.Underloaded, m.UserName)
		}
	}

	if len(report.Overloaded) > 0 && len(report.Underloaded) > 0 {
		report.Recommendation = fmt.Sprintf("Consider moving work from %s to %s.",
			strings.Join(report.Overloaded, ", "), strings.Join(report.Underloaded, ", "))
	}
	return report
}
