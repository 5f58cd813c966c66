// Agnox control-plane producer. Admits test runs, feeds the worker queue,
// streams live results to dashboards, and owns the tenant data model.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/agnox-io/agnox/pkg/api"
	"github.com/agnox-io/agnox/pkg/auth"
	"github.com/agnox-io/agnox/pkg/cache"
	"github.com/agnox-io/agnox/pkg/cleanup"
	"github.com/agnox-io/agnox/pkg/config"
	"github.com/agnox-io/agnox/pkg/database"
	"github.com/agnox-io/agnox/pkg/dispatch"
	"github.com/agnox-io/agnox/pkg/events"
	"github.com/agnox-io/agnox/pkg/ingest"
	"github.com/agnox-io/agnox/pkg/queue"
	"github.com/agnox-io/agnox/pkg/ratelimit"
	"github.com/agnox-io/agnox/pkg/reports"
	"github.com/agnox-io/agnox/pkg/scheduler"
	"github.com/agnox-io/agnox/pkg/secrets"
	"github.com/agnox-io/agnox/pkg/services"
	"github.com/agnox-io/agnox/pkg/version"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	slog.Info("Starting agnox producer", "version", version.Full())

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database (runs embedded migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Cache. The producer runs without it: ingest degrades to the
	// in-process fallback and rate limiting fails open.
	cacheClient, err := cache.NewClient(ctx, cfg.Redis.URL)
	if err != nil {
		slog.Warn("Cache unavailable, running degraded", "error", err)
		cacheClient = nil
	} else {
		defer func() {
			if err := cacheClient.Close(); err != nil {
				slog.Error("Error closing cache client", "error", err)
			}
		}()
		slog.Info("Connected to Redis")
	}

	// 4. Task queue
	publisher, err := queue.NewPublisher(cfg.Queue.URL, cfg.Queue.Name, slog.Default())
	if err != nil {
		slog.Error("Failed to connect to task queue", "error", err)
		os.Exit(1)
	}
	defer publisher.Close()
	slog.Info("Task queue ready", "queue", cfg.Queue.Name)

	// 5. Auth + crypto
	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.JWTTTL)
	cipher, err := secrets.NewCipherFromHex(cfg.Secrets.EncryptionKeyHex)
	if err != nil {
		slog.Error("Failed to initialize env-var cipher", "error", err)
		os.Exit(1)
	}
	reportTokens := reports.NewTokenService(cfg.Reports.TokenSecret, cfg.Reports.TokenTTL)

	// 6. Realtime hub
	hub := events.NewHub(tokens, 10*time.Second, slog.Default())

	// 7. Domain services
	planService := services.NewPlanService(dbClient.Client)
	orgService := services.NewOrgService(dbClient.Client)
	userService := services.NewUserService(dbClient.Client, planService)
	apiKeyService := services.NewAPIKeyService(dbClient.Client)
	projectService := services.NewProjectService(dbClient.Client, planService)
	envVarService := services.NewEnvVarService(dbClient.Client, cipher)
	executionService := services.NewExecutionService(dbClient.Client)
	cycleService := services.NewCycleService(dbClient.Client)
	scheduleService := services.NewScheduleService(dbClient.Client)
	analyticsService := services.NewAnalyticsService(dbClient.Client)
	slog.Info("Services initialized")

	// 8. Dispatch pipeline + ingest manager
	pipeline := dispatch.NewPipeline(planService, envVarService, executionService,
		publisher, hub, cfg.Dispatch, slog.Default())

	fallback := ingest.NewFallbackStore(cfg.Ingest.FallbackTTL, slog.Default())
	fallback.Start()
	ingestManager := ingest.NewManager(dbClient.Client, cacheClient, fallback,
		projectService, executionService, cycleService, hub, cfg.Ingest, slog.Default())

	// 9. Cron scheduler: load persisted active schedules, then start firing
	cronScheduler := scheduler.New(pipeline, slog.Default())
	activeSchedules, err := scheduleService.ListActive(ctx)
	if err != nil {
		slog.Error("Failed to load schedules", "error", err)
		os.Exit(1)
	}
	cronScheduler.Load(activeSchedules)
	cronScheduler.Start()

	// 10. Retention loop
	cleanupService := cleanup.NewService(cfg.Retention, dbClient.Client)
	cleanupService.Start(ctx)

	// 11. HTTP server
	limiter := ratelimit.NewLimiter(cacheClient, slog.Default())
	server := api.NewServer(api.Deps{
		Config:     cfg,
		DB:         dbClient,
		Cache:      cacheClient,
		Publisher:  publisher,
		Hub:        hub,
		Pipeline:   pipeline,
		Ingest:     ingestManager,
		Scheduler:  cronScheduler,
		Limiter:    limiter,
		Tokens:     tokens,
		Reports:    reportTokens,
		Orgs:       orgService,
		Users:      userService,
		APIKeys:    apiKeyService,
		Plan:       planService,
		Projects:   projectService,
		EnvVars:    envVarService,
		Executions: executionService,
		Cycles:     cycleService,
		Schedules:  scheduleService,
		Analytics:  analyticsService,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(":" + cfg.HTTP.Port); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Agnox producer started", "http_port", cfg.HTTP.Port)

	// 12. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 13. Graceful shutdown: stop producing first, then drain the surface.
	cronScheduler.StopAll()
	slog.Info("Scheduler stopped")

	cleanupService.Stop()
	fallback.Stop()

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP server shutdown incomplete", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}

	slog.Info("Agnox producer stopped")
}
