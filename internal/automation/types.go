package automation

import (
	"issue-intelligence/internal/model"
	"issue-intelligence/internal/triage"
)

// EvalContext carries the caller-fetched data rules may need. The engine
// never queries storage itself.
type EvalContext struct {
	ExistingIssues []model.Issue
	ExistingLabels []string
	TeamMembers    []model.TeamMember
}

// ProcessEventInput is one event plus the rule set to evaluate it
// against.
type ProcessEventInput struct {
	Event   model.AutomationEvent
	Rules   []model.AutomationRule
	Context EvalContext
}

// TriageIntent is the auto_triage executor's result: suggested updates
// for the caller to apply.
type TriageIntent struct {
	Action               string                  `json:"action"`
	Updates              triage.TriageSuggestion `json:"updates"`
	RequiresConfirmation bool                    `json:"requires_confirmation"`
}

// Notification is the notify executor's static payload.
type Notification struct {
	Recipients []string `json:"recipients"`
	Message    string   `json:"message"`
}

// FieldUpdate is the update_field executor's pass-through intent.
type FieldUpdate struct {
	Field string `json:"field"`
	Value any    `json:"value"`
}

// Comment is a drafted comment body. Generated marks gateway-written
// bodies as opposed to configured templates.
type Comment struct {
	Body      string `json:"body"`
	Generated bool   `json:"generated"`
}

// Summary is the generate_summary executor's result.
type Summary struct {
	Text string `json:"text"`
}
