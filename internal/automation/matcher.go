package automation

import (
	"path"
	"strings"

	"issue-intelligence/internal/model"
)

// matchesConditions is a pure AND over every declared filter. An unset
// filter is vacuously true; a declared filter on data the event does not
// carry fails the match.
func matchesConditions(conds *model.TriggerConditions, payload model.EventPayload) bool {
	if conds == nil {
		return true
	}

	issue := payload.Issue

	if len(conds.IssueTypes) > 0 {
		if issue == nil || !containsType(conds.IssueTypes, issue.Type) {
			return false
		}
	}

	if len(conds.Priorities) > 0 {
		if issue == nil || !containsPriority(conds.Priorities, issue.Priority) {
			return false
		}
	}

	if len(conds.LabelsInclude) > 0 {
		if issue == nil || !hasAllLabels(issue.Labels, conds.LabelsInclude) {
			return false
		}
	}

	if len(conds.LabelsExclude) > 0 && issue != nil {
		if hasAnyLabel(issue.Labels, conds.LabelsExclude) {
			return false
		}
	}

	if conds.HasAssignee != nil {
		if issue == nil || (issue.AssigneeID != "") != *conds.HasAssignee {
			return false
		}
	}

	if len(conds.FromStatuses) > 0 {
		previous, _ := payload.Previous["status"].(string)
		if !containsString(conds.FromStatuses, previous) {
			return false
		}
	}

	if len(conds.ToStatuses) > 0 {
		if issue == nil || !containsString(conds.ToStatuses, issue.Status) {
			return false
		}
	}

	if conds.BranchPattern != "" {
		if payload.PullRequest == nil || !branchMatches(conds.BranchPattern, payload.PullRequest.Branch) {
			return false
		}
	}

	return true
}

// branchMatches tries a glob first and falls back to a substring match,
// so both "feature/*" and "hotfix" style patterns work.
func branchMatches(pattern, branch string) bool {
	if ok, err := path.Match(pattern, branch); err == nil && ok {
		return true
	}
	return strings.Contains(branch, pattern)
}

func containsType(haystack []model.IssueType, needle model.IssueType) bool {
	for _, t := range haystack {
		if t == needle {
			return true
		}
	}
	return false
}

func containsPriority(haystack []model.Priority, needle model.Priority) bool {
	for _, p := range haystack {
		if p == needle {
			return true
		}
	}
	return false
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func hasAllLabels(labels, required []string) bool {
	for _, want := range required {
		if !containsLabel(labels, want) {
			return false
		}
	}
	return true
}

func hasAnyLabel(labels, forbidden []string) bool {
	for _, bad := range forbidden {
		if containsLabel(labels, bad) {
			return true
		}
	}
	return false
}

func containsLabel(labels []string, needle string) bool {
	for _, label := range labels {
		if strings.EqualFold(label, needle) {
			return true
		}
	}
	return false
}
