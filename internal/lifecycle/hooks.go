package lifecycle

import (
	"context"
	"time"

	"github.com/google/uuid"

	"issue-intelligence/internal/automation"
	"issue-intelligence/internal/duplicate"
	"issue-intelligence/internal/model"
	"issue-intelligence/internal/triage"
)

// OnIssueCreated composes triage, duplicate detection, and the
// issue_created rule evaluation. Each sub-step is advisory: its failure
// is logged and its section omitted, the hook itself still succeeds.
func (s *service) OnIssueCreated(ctx context.Context, sc model.Scope, payload IssueCreatedPayload, actx AutomationContext) (HookOutput, error) {
	issue := payload.Issue
	out := HookOutput{}

	suggestion, err := s.triageSvc.AnalyzeIssue(ctx, triage.AnalyzeInput{
		Title:          issue.Title,
		Description:    issue.Description,
		ExistingLabels: actx.ExistingLabels,
	})
	if err != nil {
		s.l.Warnf(ctx, "OnIssueCreated: triage failed for issue %s: %v", issue.ID, err)
	} else {
		out.Triage = &suggestion
	}

	if len(actx.ExistingIssues) > 0 {
		duplicates, err := s.duplicateSvc.FindDuplicates(ctx, issue, actx.ExistingIssues, duplicate.Options{})
		if err != nil {
			s.l.Warnf(ctx, "OnIssueCreated: duplicate search failed for issue %s: %v", issue.ID, err)
		} else {
			out.Duplicates = &duplicates
		}
	}

	event := s.newEvent(model.TriggerIssueCreated, sc.WorkspaceID, model.EventPayload{
		Issue: &issue,
		Actor: payload.Actor,
	})
	out.RuleResults = s.evaluate(ctx, sc, event, actx)

	return out, nil
}

// OnIssueUpdated invalidates the embedding cache and re-runs duplicate
// detection when the issue text changed, and emits an extra
// status_changed event when the status changed. issue_updated rules
// always run.
func (s *service) OnIssueUpdated(ctx context.Context, sc model.Scope, payload IssueUpdatedPayload, actx AutomationContext) (HookOutput, error) {
	issue := payload.Issue
	out := HookOutput{}

	if fieldsChanged(payload.ChangedFields, "title", "description") {
		s.duplicateSvc.InvalidateCache(issue.ID)
		if len(actx.ExistingIssues) > 0 {
			duplicates, err := s.duplicateSvc.FindDuplicates(ctx, issue, actx.ExistingIssues, duplicate.Options{})
			if err != nil {
				s.l.Warnf(ctx, "OnIssueUpdated: duplicate search failed for issue %s: %v", issue.ID, err)
			} else {
				out.Duplicates = &duplicates
			}
		}
	}

	eventPayload := model.EventPayload{
		Issue:         &issue,
		Previous:      payload.Previous,
		ChangedFields: payload.ChangedFields,
		Actor:         payload.Actor,
	}

	updated := s.newEvent(model.TriggerIssueUpdated, sc.WorkspaceID, eventPayload)
	out.RuleResults = s.evaluate(ctx, sc, updated, actx)

	if fieldsChanged(payload.ChangedFields, "status") {
		statusChanged := s.newEvent(model.TriggerStatusChanged, sc.WorkspaceID, eventPayload)
		out.RuleResults = append(out.RuleResults, s.evaluate(ctx, sc, statusChanged, actx)...)
	}

	return out, nil
}

func (s *service) evaluate(ctx context.Context, sc model.Scope, event model.AutomationEvent, actx AutomationContext) []model.AutomationResult {
	results, err := s.engine.ProcessEvent(ctx, sc, automation.ProcessEventInput{
		Event: event,
		Rules: actx.Rules,
		Context: automation.EvalContext{
			ExistingIssues: actx.ExistingIssues,
			ExistingLabels: actx.ExistingLabels,
			TeamMembers:    actx.TeamMembers,
		},
	})
	if err != nil {
		s.l.Warnf(ctx, "lifecycle: rule evaluation failed for event %s: %v", event.ID, err)
		return nil
	}
	return results
}

func (s *service) newEvent(trigger model.TriggerType, workspaceID string, payload model.EventPayload) model.AutomationEvent {
	return model.AutomationEvent{
		ID:          uuid.NewString(),
		Type:        trigger,
		WorkspaceID: workspaceID,
		Payload:     payload,
		Timestamp:   time.Now(),
	}
}

func fieldsChanged(changed []string, fields ...string) bool {
	for _, c := range changed {
		for _, f := range fields {
			if c == f {
				return true
			}
		}
	}
	return false
}
