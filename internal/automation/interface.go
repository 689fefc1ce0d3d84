package automation

import (
	"context"

	"issue-intelligence/internal/model"
)

// Service is the rule engine. It evaluates one event against a rule set
// and returns one result per matching rule. The engine never mutates
// issues; every result describes intent for the caller to apply.
type Service interface {
	ProcessEvent(ctx context.Context, sc model.Scope, input ProcessEventInput) ([]model.AutomationResult, error)
}
