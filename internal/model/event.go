package model

import "time"

// TriggerType identifies the kind of event a rule listens for.
type TriggerType string

const (
	TriggerIssueCreated  TriggerType = "issue_created"
	TriggerIssueUpdated  TriggerType = "issue_updated"
	TriggerStatusChanged TriggerType = "status_changed"
	TriggerCommentAdded  TriggerType = "comment_added"
	TriggerPROpened      TriggerType = "pr_opened"
	TriggerPRMerged      TriggerType = "pr_merged"
)

// EventPayload carries the snapshots attached to an automation event.
// Previous holds field values before an update (keyed by field name);
// ChangedFields names the fields that changed.
type EventPayload struct {
	Issue         *Issue         `json:"issue,omitempty"`
	Previous      map[string]any `json:"previous,omitempty"`
	ChangedFields []string       `json:"changed_fields,omitempty"`
	PullRequest   *PullRequest   `json:"pull_request,omitempty"`
	Actor         *User          `json:"actor,omitempty"`
}

// AutomationEvent is a single event evaluated against automation rules.
type AutomationEvent struct {
	ID          string       `json:"id,omitempty"`
	Type        TriggerType  `json:"type"`
	WorkspaceID string       `json:"workspace_id"`
	Payload     EventPayload `json:"payload"`
	Timestamp   time.Time    `json:"timestamp"`
}
