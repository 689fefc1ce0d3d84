package lifecycle

import (
	"issue-intelligence/internal/automation"
	"issue-intelligence/internal/duplicate"
	"issue-intelligence/internal/triage"
	"issue-intelligence/pkg/log"
)

type service struct {
	triageSvc    triage.Service
	duplicateSvc duplicate.Service
	engine       automation.Service
	l            log.Logger
}

// New creates the lifecycle hook Service.
func New(l log.Logger, triageSvc triage.Service, duplicateSvc duplicate.Service, engine automation.Service) Service {
	return &service{
		triageSvc:    triageSvc,
		duplicateSvc: duplicateSvc,
		engine:       engine,
		l:            l,
	}
}
