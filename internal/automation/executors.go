package automation

import (
	"context"
	"fmt"
	"strings"

	"issue-intelligence/internal/assignment"
	"issue-intelligence/internal/duplicate"
	"issue-intelligence/internal/gateway"
	"issue-intelligence/internal/model"
	"issue-intelligence/internal/triage"
)

// requireIssue guards issue-triggered executors against events that
// carry no issue snapshot.
func requireIssue(event model.AutomationEvent) (*model.Issue, error) {
	if event.Payload.Issue == nil {
		return nil, ErrMissingIssue
	}
	return event.Payload.Issue, nil
}

func (s *service) executeAutoTriage(ctx context.Context, rule model.AutomationRule, event model.AutomationEvent, evalCtx EvalContext) (any, error) {
	issue, err := requireIssue(event)
	if err != nil {
		return nil, err
	}

	suggestion, err := s.triageSvc.AnalyzeIssue(ctx, triage.AnalyzeInput{
		Title:          issue.Title,
		Description:    issue.Description,
		ExistingLabels: evalCtx.ExistingLabels,
	})
	if err != nil {
		return nil, err
	}

	return TriageIntent{
		Action:               string(model.ActionAutoTriage),
		Updates:              suggestion,
		RequiresConfirmation: configBool(rule.ActionConfig, "require_confirmation"),
	}, nil
}

func (s *service) executeAutoLabel(ctx context.Context, rule model.AutomationRule, event model.AutomationEvent, evalCtx EvalContext) (any, error) {
	issue, err := requireIssue(event)
	if err != nil {
		return nil, err
	}

	// Statically configured labels short-circuit the model call.
	if static := configStrings(rule.ActionConfig, "labels"); len(static) > 0 {
		labels := make([]triage.LabelSuggestion, 0, len(static))
		for _, name := range static {
			labels = append(labels, triage.LabelSuggestion{
				Name:       strings.ToLower(name),
				IsExisting: true,
				Confidence: 1.0,
			})
		}
		return labels, nil
	}

	return s.triageSvc.SuggestLabels(ctx, issue.Title, issue.Description, evalCtx.ExistingLabels)
}

func (s *service) executeAutoAssign(ctx context.Context, rule model.AutomationRule, event model.AutomationEvent, evalCtx EvalContext) (any, error) {
	issue, err := requireIssue(event)
	if err != nil {
		return nil, err
	}
	return s.assignSvc.SuggestAssignees(ctx, *issue, evalCtx.TeamMembers, assignment.Options{
		MaxSuggestions: configInt(rule.ActionConfig, "max_suggestions"),
		IgnoreWorkload: configBool(rule.ActionConfig, "ignore_workload"),
	})
}

func (s *service) executeCheckDuplicates(ctx context.Context, rule model.AutomationRule, event model.AutomationEvent, evalCtx EvalContext) (any, error) {
	issue, err := requireIssue(event)
	if err != nil {
		return nil, err
	}
	return s.duplicateSvc.FindDuplicates(ctx, *issue, evalCtx.ExistingIssues, duplicate.Options{
		Threshold:          configFloat(rule.ActionConfig, "threshold"),
		MaxCandidates:      configInt(rule.ActionConfig, "max_candidates"),
		IncludeExplanation: configBool(rule.ActionConfig, "include_explanation"),
	})
}

func (s *service) executeNotify(ctx context.Context, rule model.AutomationRule, event model.AutomationEvent, evalCtx EvalContext) (any, error) {
	message := configString(rule.ActionConfig, "message")
	if message == "" {
		return nil, fmt.Errorf("%w: message", ErrMissingConfig)
	}
	if issue := event.Payload.Issue; issue != nil {
		message = strings.ReplaceAll(message, "{{title}}", issue.Title)
		message = strings.ReplaceAll(message, "{{id}}", issue.ID)
	}
	return Notification{
		Recipients: configStrings(rule.ActionConfig, "recipients"),
		Message:    message,
	}, nil
}

func (s *service) executeUpdateField(ctx context.Context, rule model.AutomationRule, event model.AutomationEvent, evalCtx EvalContext) (any, error) {
	field := configString(rule.ActionConfig, "field")
	if field == "" {
		return nil, fmt.Errorf("%w: field", ErrMissingConfig)
	}
	return FieldUpdate{Field: field, Value: rule.ActionConfig["value"]}, nil
}

func (s *service) executeAddComment(ctx context.Context, rule model.AutomationRule, event model.AutomationEvent, evalCtx EvalContext) (any, error) {
	if template := configString(rule.ActionConfig, "template"); template != "" {
		return Comment{Body: template}, nil
	}

	issue, err := requireIssue(event)
	if err != nil {
		return nil, err
	}
	body, err := s.gw.Complete(ctx, gateway.CompleteInput{
		Prompt: fmt.Sprintf(
			"Write a short, helpful comment acknowledging this new issue and suggesting next steps.\n\nTitle: %s\nDescription: %s",
			issue.Title, issue.Description),
		Temperature: 0.5,
		MaxTokens:   256,
	})
	if err != nil {
		return nil, err
	}
	return Comment{Body: strings.TrimSpace(body), Generated: true}, nil
}

func (s *service) executeGenerateSummary(ctx context.Context, rule model.AutomationRule, event model.AutomationEvent, evalCtx EvalContext) (any, error) {
	issue, err := requireIssue(event)
	if err != nil {
		return nil, err
	}
	text, err := s.gw.Complete(ctx, gateway.CompleteInput{
		Prompt: fmt.Sprintf(
			"Summarize this issue in two sentences for a status report.\n\nTitle: %s\nDescription: %s",
			issue.Title, issue.Description),
		Temperature: 0.3,
		MaxTokens:   256,
	})
	if err != nil {
		return nil, err
	}
	return Summary{Text: strings.TrimSpace(text)}, nil
}

func (s *service) executeCustomAI(ctx context.Context, rule model.AutomationRule, event model.AutomationEvent, evalCtx EvalContext) (any, error) {
	prompt := configString(rule.ActionConfig, "prompt")
	if prompt == "" {
		return nil, fmt.Errorf("%w: prompt", ErrMissingConfig)
	}
	if issue := event.Payload.Issue; issue != nil {
		prompt = strings.ReplaceAll(prompt, "{{title}}", issue.Title)
		prompt = strings.ReplaceAll(prompt, "{{description}}", issue.Description)
	}
	return s.gw.Complete(ctx, gateway.CompleteInput{
		Prompt:      prompt,
		Temperature: configFloat(rule.ActionConfig, "temperature"),
		MaxTokens:   512,
	})
}

// Action config accessors. Config maps come straight from JSON, so
// numbers arrive as float64.

func configString(config map[string]any, key string) string {
	v, _ := config[key].(string)
	return v
}

func configBool(config map[string]any, key string) bool {
	v, _ := config[key].(bool)
	return v
}

func configInt(config map[string]any, key string) int {
	switch v := config[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}

func configFloat(config map[string]any, key string) float64 {
	switch v := config[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

func configStrings(config map[string]any, key string) []string {
	switch v := config[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
