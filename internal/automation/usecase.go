package automation

import (
	"context"
	"fmt"
	"time"

	"issue-intelligence/internal/model"
)

// ProcessEvent evaluates every enabled, matching rule against the event.
// Each rule runs in isolation: a panic or error inside one executor is
// recorded on that rule's result and never stops the remaining rules.
func (s *service) ProcessEvent(ctx context.Context, sc model.Scope, input ProcessEventInput) ([]model.AutomationResult, error) {
	event := input.Event
	results := make([]model.AutomationResult, 0)

	matched := 0
	for _, rule := range input.Rules {
		if !rule.IsEnabled || rule.TriggerType != event.Type {
			continue
		}
		if !matchesConditions(rule.TriggerConditions, event.Payload) {
			continue
		}
		matched++
		results = append(results, s.runRule(ctx, rule, event, input.Context))
	}

	s.l.Infof(ctx, "ProcessEvent: event %s (%s) matched %d of %d rules for workspace %s",
		event.ID, event.Type, matched, len(input.Rules), sc.WorkspaceID)

	return results, nil
}

// runRule dispatches to the registered executor. DurationMs covers the
// executor call only, not the condition match.
func (s *service) runRule(ctx context.Context, rule model.AutomationRule, event model.AutomationEvent, evalCtx EvalContext) (result model.AutomationResult) {
	result = model.AutomationResult{
		RuleID:     rule.ID,
		RuleName:   rule.Name,
		ActionType: rule.ActionType,
	}

	executor, ok := s.executors[rule.ActionType]
	if !ok {
		result.Status = model.ResultFailed
		result.Error = fmt.Sprintf("%v: %s", ErrUnknownAction, rule.ActionType)
		return result
	}

	start := time.Now()
	defer func() {
		result.DurationMs = time.Since(start).Milliseconds()
		if r := recover(); r != nil {
			s.l.Errorf(ctx, "ProcessEvent: rule %s panicked: %v", rule.ID, r)
			result.Status = model.ResultFailed
			result.Error = fmt.Sprintf("executor panic: %v", r)
		}
	}()

	out, err := executor(ctx, rule, event, evalCtx)
	if err != nil {
		s.l.Warnf(ctx, "ProcessEvent: rule %s (%s) failed: %v", rule.ID, rule.ActionType, err)
		result.Status = model.ResultFailed
		result.Error = err.Error()
		return result
	}

	result.Status = model.ResultSuccess
	result.Result = out
	return result
}
