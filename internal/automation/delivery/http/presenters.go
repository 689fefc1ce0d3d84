package http

import (
	"issue-intelligence/internal/assignment"
	"issue-intelligence/internal/automation"
	"issue-intelligence/internal/duplicate"
	"issue-intelligence/internal/lifecycle"
	"issue-intelligence/internal/model"
	"issue-intelligence/internal/triage"
)

// --- Request DTOs ---

type contextReq struct {
	ExistingIssues []model.Issue          `json:"existing_issues"`
	ExistingLabels []string               `json:"existing_labels"`
	Rules          []model.AutomationRule `json:"rules"`
	TeamMembers    []model.TeamMember     `json:"team_members"`
}

func (r contextReq) toAutomationContext() lifecycle.AutomationContext {
	return lifecycle.AutomationContext{
		ExistingIssues: r.ExistingIssues,
		ExistingLabels: r.ExistingLabels,
		Rules:          r.Rules,
		TeamMembers:    r.TeamMembers,
	}
}

func (r contextReq) toEvalContext() automation.EvalContext {
	return automation.EvalContext{
		ExistingIssues: r.ExistingIssues,
		ExistingLabels: r.ExistingLabels,
		TeamMembers:    r.TeamMembers,
	}
}

type eventReq struct {
	Type        model.TriggerType  `json:"type" binding:"required"`
	WorkspaceID string             `json:"workspace_id" binding:"required"`
	Payload     model.EventPayload `json:"payload"`
	Context     contextReq         `json:"context"`
}

type analyzeReq struct {
	Title            string   `json:"title" binding:"required,max=500"`
	Description      string   `json:"description"`
	ProjectContext   string   `json:"project_context"`
	WorkspaceContext string   `json:"workspace_context"`
	ExistingLabels   []string `json:"existing_labels"`
}

func (r analyzeReq) toInput() triage.AnalyzeInput {
	return triage.AnalyzeInput{
		Title:            r.Title,
		Description:      r.Description,
		ProjectContext:   r.ProjectContext,
		WorkspaceContext: r.WorkspaceContext,
		ExistingLabels:   r.ExistingLabels,
	}
}

type labelsReq struct {
	Title          string   `json:"title" binding:"required,max=500"`
	Description    string   `json:"description"`
	ExistingLabels []string `json:"existing_labels"`
}

type duplicateSearchReq struct {
	Issue              model.Issue   `json:"issue" binding:"required"`
	ExistingIssues     []model.Issue `json:"existing_issues"`
	Threshold          float64       `json:"threshold"`
	MaxCandidates      int           `json:"max_candidates"`
	IncludeExplanation bool          `json:"include_explanation"`
}

func (r duplicateSearchReq) toOptions() duplicate.Options {
	return duplicate.Options{
		Threshold:          r.Threshold,
		MaxCandidates:      r.MaxCandidates,
		IncludeExplanation: r.IncludeExplanation,
	}
}

type duplicateCheckReq struct {
	Issue          model.Issue   `json:"issue" binding:"required"`
	ExistingIssues []model.Issue `json:"existing_issues"`
}

type suggestAssigneesReq struct {
	Issue          model.Issue        `json:"issue" binding:"required"`
	TeamMembers    []model.TeamMember `json:"team_members"`
	MaxSuggestions int                `json:"max_suggestions"`
	IgnoreWorkload bool               `json:"ignore_workload"`
}

func (r suggestAssigneesReq) toOptions() assignment.Options {
	return assignment.Options{
		MaxSuggestions: r.MaxSuggestions,
		IgnoreWorkload: r.IgnoreWorkload,
	}
}

type workloadReq struct {
	TeamMembers    []model.TeamMember `json:"team_members" binding:"required"`
	AssignedIssues []model.Issue      `json:"assigned_issues"`
}

// --- Response DTOs ---

type eventResp struct {
	EventType model.TriggerType        `json:"event_type"`
	Hook      *lifecycle.HookOutput    `json:"hook,omitempty"`
	Results   []model.AutomationResult `json:"results,omitempty"`
}

type workloadResp struct {
	Analysis assignment.WorkloadAnalysis `json:"analysis"`
	Balance  assignment.BalanceReport    `json:"balance"`
}
