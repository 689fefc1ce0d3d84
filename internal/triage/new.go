package triage

import (
	"issue-intelligence/internal/gateway"
	"issue-intelligence/pkg/log"
)

type service struct {
	gw gateway.ModelGateway
	l  log.Logger
}

// New creates the triage Service.
func New(l log.Logger, gw gateway.ModelGateway) Service {
	return &service{
		gw: gw,
		l:  l,
	}
}
