package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	automationHTTP "issue-intelligence/internal/automation/delivery/http"
)

func (srv *HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestLog())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}

func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")
	automationHTTP.RegisterRoutes(api, srv.automationHandler, srv.mw)

	srv.l.Infof(ctx, "Automation routes registered under /api/v1")
}
