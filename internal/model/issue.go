package model

import "time"

// IssueType classifies what kind of work an issue represents.
type IssueType string

const (
	IssueTypeBug       IssueType = "BUG"
	IssueTypeTask      IssueType = "TASK"
	IssueTypeStory     IssueType = "STORY"
	IssueTypeEpic      IssueType = "EPIC"
	IssueTypeSubtask   IssueType = "SUBTASK"
	IssueTypeMilestone IssueType = "MILESTONE"
)

// IssueTypes lists all valid issue types.
var IssueTypes = []IssueType{
	IssueTypeBug,
	IssueTypeTask,
	IssueTypeStory,
	IssueTypeEpic,
	IssueTypeSubtask,
	IssueTypeMilestone,
}

// IsValid reports whether t is a known issue type.
func (t IssueType) IsValid() bool {
	for _, known := range IssueTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Priority is the urgency level of an issue.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// IsValid reports whether p is a known priority.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Issue status values used by workload analysis and rule conditions.
const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusBlocked    = "blocked"
	StatusInReview   = "in_review"
	StatusDone       = "done"
)

// Issue is a snapshot of an issue as provided by the caller.
// The issue store owns the durable record; nothing here is persisted.
type Issue struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	ProjectID   string    `json:"project_id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Type        IssueType `json:"type,omitempty"`
	Priority    Priority  `json:"priority,omitempty"`
	Status      string    `json:"status,omitempty"`
	Labels      []string  `json:"labels,omitempty"`
	AssigneeID  string    `json:"assignee_id,omitempty"`
	StoryPoints *int      `json:"story_points,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}

// Availability is a team member's current availability signal.
type Availability string

const (
	AvailabilityAvailable Availability = "available"
	AvailabilityBusy      Availability = "busy"
	AvailabilityAway      Availability = "away"
)

// TeamMember is a snapshot of an assignable team member.
// CurrentWorkload is nil when the caller has no workload data.
type TeamMember struct {
	UserID           string       `json:"user_id"`
	UserName         string       `json:"user_name"`
	Expertise        []string     `json:"expertise,omitempty"`
	RecentlyAssigned []string     `json:"recently_assigned,omitempty"`
	Availability     Availability `json:"availability,omitempty"`
	CurrentWorkload  *int         `json:"current_workload,omitempty"`
}

// User identifies the actor that triggered an event.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// PullRequest is a snapshot of a pull request carried on PR events.
type PullRequest struct {
	ID     string `json:"id"`
	Title  string `json:"title,omitempty"`
	Branch string `json:"branch"`
	Author string `json:"author,omitempty"`
	State  string `json:"state,omitempty"`
}
