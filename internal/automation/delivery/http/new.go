package http

import (
	"github.com/gin-gonic/gin"

	"issue-intelligence/internal/assignment"
	"issue-intelligence/internal/automation"
	"issue-intelligence/internal/duplicate"
	"issue-intelligence/internal/lifecycle"
	"issue-intelligence/internal/triage"
	"issue-intelligence/pkg/log"
)

// Handler is the public interface for the automation HTTP delivery layer.
type Handler interface {
	HandleEvent(c *gin.Context)
	AnalyzeTriage(c *gin.Context)
	SuggestLabels(c *gin.Context)
	SearchDuplicates(c *gin.Context)
	CheckDuplicate(c *gin.Context)
	SuggestAssignees(c *gin.Context)
	AnalyzeWorkload(c *gin.Context)
}

type handler struct {
	l            log.Logger
	lifecycleSvc lifecycle.Service
	engine       automation.Service
	triageSvc    triage.Service
	duplicateSvc duplicate.Service
	assignSvc    assignment.Service
}

// New creates the HTTP handler for the automation domain.
func New(l log.Logger, lifecycleSvc lifecycle.Service, engine automation.Service, triageSvc triage.Service, duplicateSvc duplicate.Service, assignSvc assignment.Service) Handler {
	return &handler{
		l:            l,
		lifecycleSvc: lifecycleSvc,
		engine:       engine,
		triageSvc:    triageSvc,
		duplicateSvc: duplicateSvc,
		assignSvc:    assignSvc,
	}
}
