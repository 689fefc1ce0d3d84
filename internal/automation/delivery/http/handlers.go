package http

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"issue-intelligence/internal/automation"
	"issue-intelligence/internal/duplicate"
	"issue-intelligence/internal/lifecycle"
	"issue-intelligence/internal/model"
	"issue-intelligence/internal/triage"
	"issue-intelligence/pkg/response"
)

var errIssueRequired = errors.New("payload.issue is required for this event type")

// HandleEvent routes an incoming event: issue_created and issue_updated
// go through the lifecycle hooks, everything else straight to the rule
// engine.
func (h *handler) HandleEvent(c *gin.Context) {
	ctx := c.Request.Context()

	var req eventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	sc := model.Scope{WorkspaceID: req.WorkspaceID}
	actx := req.Context.toAutomationContext()

	switch req.Type {
	case model.TriggerIssueCreated:
		if req.Payload.Issue == nil {
			response.Error(c, errIssueRequired)
			return
		}
		out, err := h.lifecycleSvc.OnIssueCreated(ctx, sc, lifecycle.IssueCreatedPayload{
			Issue: *req.Payload.Issue,
			Actor: req.Payload.Actor,
		}, actx)
		if err != nil {
			h.l.Errorf(ctx, "lifecycleSvc.OnIssueCreated: %v", err)
			response.InternalError(c)
			return
		}
		response.OK(c, eventResp{EventType: req.Type, Hook: &out})

	case model.TriggerIssueUpdated:
		if req.Payload.Issue == nil {
			response.Error(c, errIssueRequired)
			return
		}
		out, err := h.lifecycleSvc.OnIssueUpdated(ctx, sc, lifecycle.IssueUpdatedPayload{
			Issue:         *req.Payload.Issue,
			Previous:      req.Payload.Previous,
			ChangedFields: req.Payload.ChangedFields,
			Actor:         req.Payload.Actor,
		}, actx)
		if err != nil {
			h.l.Errorf(ctx, "lifecycleSvc.OnIssueUpdated: %v", err)
			response.InternalError(c)
			return
		}
		response.OK(c, eventResp{EventType: req.Type, Hook: &out})

	default:
		results, err := h.engine.ProcessEvent(ctx, sc, automation.ProcessEventInput{
			Event: model.AutomationEvent{
				ID:          uuid.NewString(),
				Type:        req.Type,
				WorkspaceID: req.WorkspaceID,
				Payload:     req.Payload,
				Timestamp:   time.Now(),
			},
			Rules:   req.Context.Rules,
			Context: req.Context.toEvalContext(),
		})
		if err != nil {
			h.l.Errorf(ctx, "engine.ProcessEvent: %v", err)
			response.InternalError(c)
			return
		}
		response.OK(c, eventResp{EventType: req.Type, Results: results})
	}
}

// AnalyzeTriage runs the full classification for an issue draft.
func (h *handler) AnalyzeTriage(c *gin.Context) {
	ctx := c.Request.Context()

	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	suggestion, err := h.triageSvc.AnalyzeIssue(ctx, req.toInput())
	if err != nil {
		if errors.Is(err, triage.ErrEmptyTitle) {
			response.Error(c, err)
			return
		}
		h.l.Errorf(ctx, "triageSvc.AnalyzeIssue: %v", err)
		response.InternalError(c)
		return
	}
	response.OK(c, suggestion)
}

// SuggestLabels is the label-only fast path.
func (h *handler) SuggestLabels(c *gin.Context) {
	ctx := c.Request.Context()

	var req labelsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	labels, err := h.triageSvc.SuggestLabels(ctx, req.Title, req.Description, req.ExistingLabels)
	if err != nil {
		h.l.Errorf(ctx, "triageSvc.SuggestLabels: %v", err)
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"labels": labels})
}

// SearchDuplicates runs a duplicate search over caller-provided issues.
func (h *handler) SearchDuplicates(c *gin.Context) {
	ctx := c.Request.Context()

	var req duplicateSearchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.duplicateSvc.FindDuplicates(ctx, req.Issue, req.ExistingIssues, req.toOptions())
	if err != nil {
		if errors.Is(err, duplicate.ErrEmptyTitle) {
			response.Error(c, err)
			return
		}
		h.l.Errorf(ctx, "duplicateSvc.FindDuplicates: %v", err)
		response.InternalError(c)
		return
	}
	response.OK(c, out)
}

// CheckDuplicate is the strict yes/no duplicate check.
func (h *handler) CheckDuplicate(c *gin.Context) {
	ctx := c.Request.Context()

	var req duplicateCheckReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.duplicateSvc.IsDuplicate(ctx, req.Issue, req.ExistingIssues)
	if err != nil {
		if errors.Is(err, duplicate.ErrEmptyTitle) {
			response.Error(c, err)
			return
		}
		h.l.Errorf(ctx, "duplicateSvc.IsDuplicate: %v", err)
		response.InternalError(c)
		return
	}
	response.OK(c, out)
}

// SuggestAssignees ranks team members for an issue.
func (h *handler) SuggestAssignees(c *gin.Context) {
	ctx := c.Request.Context()

	var req suggestAssigneesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.assignSvc.SuggestAssignees(ctx, req.Issue, req.TeamMembers, req.toOptions())
	if err != nil {
		h.l.Errorf(ctx, "assignSvc.SuggestAssignees: %v", err)
		response.InternalError(c)
		return
	}
	response.OK(c, out)
}

// AnalyzeWorkload aggregates team workload and reports balance.
func (h *handler) AnalyzeWorkload(c *gin.Context) {
	ctx := c.Request.Context()

	var req workloadReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	analysis := h.assignSvc.AnalyzeWorkload(ctx, req.TeamMembers, req.AssignedIssues)
	balance := h.assignSvc.IsWorkloadBalanced(ctx, analysis)
	response.OK(c, workloadResp{Analysis: analysis, Balance: balance})
}
