package lifecycle

import (
	"issue-intelligence/internal/duplicate"
	"issue-intelligence/internal/model"
	"issue-intelligence/internal/triage"
)

// IssueCreatedPayload describes a freshly created issue.
type IssueCreatedPayload struct {
	Issue model.Issue `json:"issue"`
	Actor *model.User `json:"actor,omitempty"`
}

// IssueUpdatedPayload describes an issue update. Previous holds the old
// values of changed fields, keyed by field name.
type IssueUpdatedPayload struct {
	Issue         model.Issue    `json:"issue"`
	Previous      map[string]any `json:"previous,omitempty"`
	ChangedFields []string       `json:"changed_fields"`
	Actor         *model.User    `json:"actor,omitempty"`
}

// AutomationContext carries everything the hooks need, fetched by the
// caller before invocation.
type AutomationContext struct {
	ExistingIssues []model.Issue          `json:"existing_issues,omitempty"`
	ExistingLabels []string               `json:"existing_labels,omitempty"`
	Rules          []model.AutomationRule `json:"rules,omitempty"`
	TeamMembers    []model.TeamMember     `json:"team_members,omitempty"`
}

// HookOutput bundles the advisory results of one lifecycle hook. Any
// section may be nil when its sub-step failed or did not apply.
type HookOutput struct {
	Triage      *triage.TriageSuggestion `json:"triage,omitempty"`
	Duplicates  *duplicate.FindOutput    `json:"duplicates,omitempty"`
	RuleResults []model.AutomationResult `json:"rule_results,omitempty"`
}
