package http

import (
	"github.com/gin-gonic/gin"

	"issue-intelligence/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The event
// ingest endpoint is rate-limited; the fast paths are not.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	automation := rg.Group("/automation")
	{
		automation.POST("/events", mw.RateLimit(), h.HandleEvent)
	}

	triage := rg.Group("/triage")
	{
		triage.POST("/analyze", h.AnalyzeTriage)
		triage.POST("/labels", h.SuggestLabels)
	}

	duplicates := rg.Group("/duplicates")
	{
		duplicates.POST("/search", h.SearchDuplicates)
		duplicates.POST("/check", h.CheckDuplicate)
	}

	assignees := rg.Group("/assignees")
	{
		assignees.POST("/suggest", h.SuggestAssignees)
	}

	workload := rg.Group("/workload")
	{
		workload.POST("/analyze", h.AnalyzeWorkload)
	}
}
