package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"issue-intelligence/config"
	"issue-intelligence/internal/assignment"
	"issue-intelligence/internal/automation"
	automationHTTP "issue-intelligence/internal/automation/delivery/http"
	"issue-intelligence/internal/duplicate"
	"issue-intelligence/internal/gateway"
	"issue-intelligence/internal/httpserver"
	"issue-intelligence/internal/lifecycle"
	"issue-intelligence/internal/middleware"
	"issue-intelligence/internal/triage"
	"issue-intelligence/pkg/llmprovider"
	"issue-intelligence/pkg/log"
	"issue-intelligence/pkg/voyage"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Issue Intelligence...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Model gateway: LLM providers + embedding client
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDuration(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, time.Minute),
	}, logger)

	var embedder voyage.IVoyage
	if cfg.Voyage.APIKey != "" {
		client, vErr := voyage.New(cfg.Voyage.APIKey)
		if vErr != nil {
			logger.Warnf(ctx, "Voyage client not available, duplicate detection degraded: %v", vErr)
		} else {
			if cfg.Voyage.Model != "" {
				client = client.WithModel(cfg.Voyage.Model)
			}
			embedder = client
		}
	} else {
		logger.Warn(ctx, "VOYAGE_API_KEY not set, duplicate detection will run title-match only")
	}

	gw := gateway.New(logger, manager, embedder)

	// 4. Intelligence services
	triageSvc := triage.New(logger, gw)

	duplicateSvc, err := duplicate.New(logger, gw, duplicate.Config{
		CacheSize:  cfg.Automation.EmbeddingCacheSize,
		Dimensions: cfg.Automation.EmbeddingDimensions,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize duplicate detector: ", err)
		return
	}

	assignSvc := assignment.New(logger)
	engine := automation.New(logger, triageSvc, duplicateSvc, assignSvc, gw)
	lifecycleSvc := lifecycle.New(logger, triageSvc, duplicateSvc, engine)

	// 5. HTTP server
	mw := middleware.New(logger, cfg.Webhook.RateLimitPerMin)
	handler := automationHTTP.New(logger, lifecycleSvc, engine, triageSvc, duplicateSvc, assignSvc)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		Middleware:        mw,
		AutomationHandler: handler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
