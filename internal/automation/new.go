package automation

import (
	"context"

	"issue-intelligence/internal/assignment"
	"issue-intelligence/internal/duplicate"
	"issue-intelligence/internal/gateway"
	"issue-intelligence/internal/model"
	"issue-intelligence/internal/triage"
	"issue-intelligence/pkg/log"
)

type executorFunc func(ctx context.Context, rule model.AutomationRule, event model.AutomationEvent, evalCtx EvalContext) (any, error)

type service struct {
	triageSvc    triage.Service
	duplicateSvc duplicate.Service
	assignSvc    assignment.Service
	gw           gateway.ModelGateway
	l            log.Logger

	executors map[model.ActionType]executorFunc
}

// New creates the rule engine Service wired to the three specialist
// services and the model gateway.
func New(l log.Logger, triageSvc triage.Service, duplicateSvc duplicate.Service, assignSvc assignment.Service, gw gateway.ModelGateway) Service {
	s := &service{
		triageSvc:    triageSvc,
		duplicateSvc: duplicateSvc,
		assignSvc:    assignSvc,
		gw:           gw,
		l:            l,
	}
	s.executors = map[model.ActionType]executorFunc{
		model.ActionAutoTriage:      s.executeAutoTriage,
		model.ActionAutoLabel:       s.executeAutoLabel,
		model.ActionAutoAssign:      s.executeAutoAssign,
		model.ActionCheckDuplicates: s.executeCheckDuplicates,
		model.ActionNotify:          s.executeNotify,
		model.ActionUpdateField:     s.executeUpdateField,
		model.ActionAddComment:      s.executeAddComment,
		model.ActionGenerateSummary: s.executeGenerateSummary,
		model.ActionCustomAI:        s.executeCustomAI,
	}
	return s
}
