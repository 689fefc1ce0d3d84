package model

// ActionType identifies the action a rule dispatches when it matches.
type ActionType string

const (
	ActionAutoTriage      ActionType = "auto_triage"
	ActionAutoLabel       ActionType = "auto_label"
	ActionAutoAssign      ActionType = "auto_assign"
	ActionCheckDuplicates ActionType = "check_duplicates"
	ActionNotify          ActionType = "notify"
	ActionUpdateField     ActionType = "update_field"
	ActionAddComment      ActionType = "add_comment"
	ActionGenerateSummary ActionType = "generate_summary"
	ActionCustomAI        ActionType = "custom_ai"
)

// TriggerConditions are the optional filters a rule declares.
// Every declared filter must match (logical AND); an unset filter
// is vacuously true.
type TriggerConditions struct {
	IssueTypes    []IssueType `json:"issue_types,omitempty"`
	Priorities    []Priority  `json:"priorities,omitempty"`
	LabelsInclude []string    `json:"labels_include,omitempty"`
	LabelsExclude []string    `json:"labels_exclude,omitempty"`
	HasAssignee   *bool       `json:"has_assignee,omitempty"`
	FromStatuses  []string    `json:"from_statuses,omitempty"`
	ToStatuses    []string    `json:"to_statuses,omitempty"`
	BranchPattern string      `json:"branch_pattern,omitempty"`
}

// AutomationRule pairs a trigger with an action. Rules are authored and
// persisted externally and passed in by value on every evaluation.
type AutomationRule struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	WorkspaceID       string             `json:"workspace_id"`
	ProjectID         string             `json:"project_id,omitempty"`
	TriggerType       TriggerType        `json:"trigger_type"`
	TriggerConditions *TriggerConditions `json:"trigger_conditions,omitempty"`
	ActionType        ActionType         `json:"action_type"`
	ActionConfig      map[string]any     `json:"action_config,omitempty"`
	IsEnabled         bool               `json:"is_enabled"`
}

// ResultStatus is the per-rule evaluation outcome.
type ResultStatus string

const (
	ResultSuccess ResultStatus = "success"
	ResultFailed  ResultStatus = "failed"
	ResultSkipped ResultStatus = "skipped"
)

// AutomationResult is the outcome of one matching rule for one event.
// Rules that do not match produce no result at all.
type AutomationResult struct {
	RuleID     string       `json:"rule_id"`
	RuleName   string       `json:"rule_name,omitempty"`
	Status     ResultStatus `json:"status"`
	ActionType ActionType   `json:"action_type"`
	Result     any          `json:"result,omitempty"`
	Error      string       `json:"error,omitempty"`
	DurationMs int64        `json:"duration_ms"`
}
