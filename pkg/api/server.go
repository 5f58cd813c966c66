// Package api is the HTTP surface of the producer: dashboard routes under
// /api, worker callbacks under /executions, token-gated static reports under
// /reports, and the realtime socket at /ws.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/agnox-io/agnox/pkg/auth"
	"github.com/agnox-io/agnox/pkg/cache"
	"github.com/agnox-io/agnox/pkg/config"
	"github.com/agnox-io/agnox/pkg/database"
	"github.com/agnox-io/agnox/pkg/dispatch"
	"github.com/agnox-io/agnox/pkg/events"
	"github.com/agnox-io/agnox/pkg/ingest"
	"github.com/agnox-io/agnox/pkg/queue"
	"github.com/agnox-io/agnox/pkg/ratelimit"
	"github.com/agnox-io/agnox/pkg/reports"
	"github.com/agnox-io/agnox/pkg/scheduler"
	"github.com/agnox-io/agnox/pkg/services"
)

// Deps carries everything the server needs. All fields are required unless
// noted; cacheClient may be nil when the cache is unavailable.
type Deps struct {
	Config    *config.Config
	DB        *database.Client
	Cache     *cache.Client
	Publisher queue.TaskPublisher
	Hub       *events.Hub
	Pipeline  *dispatch.Pipeline
	Ingest    *ingest.Manager
	Scheduler *scheduler.Scheduler
	Limiter   *ratelimit.Limiter
	Tokens    *auth.TokenIssuer
	Reports   *reports.TokenService

	Orgs       *services.OrgService
	Users      *services.UserService
	APIKeys    *services.APIKeyService
	Plan       *services.PlanService
	Projects   *services.ProjectService
	EnvVars    *services.EnvVarService
	Executions *services.ExecutionService
	Cycles     *services.CycleService
	Schedules  *services.ScheduleService
	Analytics  *services.AnalyticsService
}

// Server is the HTTP API server.
type Server struct {
	cfg       *config.Config
	dbClient  *database.Client
	cache     *cache.Client
	publisher queue.TaskPublisher
	hub       *events.Hub
	pipeline  *dispatch.Pipeline
	ingest    *ingest.Manager
	scheduler *scheduler.Scheduler
	limiter   *ratelimit.Limiter
	tokens    *auth.TokenIssuer
	reports   *reports.TokenService

	orgs       *services.OrgService
	users      *services.UserService
	apiKeys    *services.APIKeyService
	plan       *services.PlanService
	projects   *services.ProjectService
	envVars    *services.EnvVarService
	executions *services.ExecutionService
	cycles     *services.CycleService
	schedules  *services.ScheduleService
	analytics  *services.AnalyticsService

	echo       *echo.Echo
	httpServer *http.Server
}

// NewServer creates the server and registers all routes.
func NewServer(deps Deps) *Server {
	s := &Server{
		cfg:        deps.Config,
		dbClient:   deps.DB,
		cache:      deps.Cache,
		publisher:  deps.Publisher,
		hub:        deps.Hub,
		pipeline:   deps.Pipeline,
		ingest:     deps.Ingest,
		scheduler:  deps.Scheduler,
		limiter:    deps.Limiter,
		tokens:     deps.Tokens,
		reports:    deps.Reports,
		orgs:       deps.Orgs,
		users:      deps.Users,
		apiKeys:    deps.APIKeys,
		plan:       deps.Plan,
		projects:   deps.Projects,
		envVars:    deps.EnvVars,
		executions: deps.Executions,
		cycles:     deps.Cycles,
		schedules:  deps.Schedules,
		analytics:  deps.Analytics,
	}

	e := echo.New()
	e.HTTPErrorHandler = httpErrorHandler
	e.Use(securityHeaders(s.cfg.HTTP.Production))
	e.Use(cors(s.cfg.HTTP.AllowedOrigins, s.cfg.HTTP.Production))

	s.registerRoutes(e)
	s.echo = e
	return s
}

func (s *Server) registerRoutes(e *echo.Echo) {
	// Public surface.
	e.GET("/health", s.healthHandler)
	e.GET("/config/defaults", s.configDefaultsHandler)
	e.GET("/ws", s.wsHandler)
	e.GET("/reports/:orgId/:taskId/*", s.reportFileHandler, reports.Middleware(s.reports))

	e.POST("/api/auth/signup", s.signupHandler)
	e.POST("/api/auth/login", s.loginHandler)

	// Dashboard API: bearer JWT or API key, per-org rate budget.
	api := e.Group("/api", s.requireAuth, s.rateLimited(ratelimit.BucketAPI))

	api.GET("/auth/me", s.meHandler)

	api.POST("/execution-request", s.executionRequestHandler, developerOrAdmin())
	api.GET("/executions", s.listExecutionsHandler)
	api.GET("/executions/:id", s.getExecutionHandler)
	api.DELETE("/executions/:id", s.deleteExecutionHandler, developerOrAdmin())

	api.GET("/metrics/:image", s.imageMetricsHandler)
	api.GET("/analytics/kpis", s.kpisHandler)

	api.GET("/projects", s.listProjectsHandler)
	api.POST("/projects", s.createProjectHandler, developerOrAdmin())
	api.GET("/projects/:id", s.getProjectHandler)
	api.DELETE("/projects/:id", s.deleteProjectHandler, developerOrAdmin())

	api.GET("/projects/:id/env", s.listEnvVarsHandler, developerOrAdmin())
	api.POST("/projects/:id/env", s.createEnvVarHandler, developerOrAdmin())
	api.PUT("/projects/:id/env/:varId", s.updateEnvVarHandler, developerOrAdmin())
	api.DELETE("/projects/:id/env/:varId", s.deleteEnvVarHandler, developerOrAdmin())

	api.GET("/test-cycles", s.listCyclesHandler)
	api.GET("/test-cycles/:id", s.getCycleHandler)
	api.POST("/test-cycles", s.createCycleHandler, developerOrAdmin())
	api.PUT("/test-cycles/:id/items/:itemId", s.updateCycleItemHandler, developerOrAdmin())

	api.GET("/schedules", s.listSchedulesHandler)
	api.POST("/schedules", s.createScheduleHandler, developerOrAdmin())
	api.DELETE("/schedules/:id", s.deleteScheduleHandler, developerOrAdmin())

	api.GET("/users", s.listUsersHandler)
	api.POST("/users", s.inviteUserHandler, adminOnly())
	api.PATCH("/users/:id/role", s.changeUserRoleHandler, adminOnly())
	api.DELETE("/users/:id", s.deleteUserHandler, adminOnly())

	api.GET("/api-keys", s.listAPIKeysHandler, adminOnly())
	api.POST("/api-keys", s.createAPIKeyHandler, adminOnly())
	api.DELETE("/api-keys/:id", s.revokeAPIKeyHandler, adminOnly())

	// Reporter ingest: API key only, with its own rate buckets.
	ing := e.Group("/api/ingest", s.requireAPIKey)
	ing.POST("/setup", s.ingestSetupHandler, s.rateLimited(ratelimit.BucketIngestLifecycle))
	ing.POST("/event", s.ingestEventHandler, s.rateLimited(ratelimit.BucketIngestEvent))
	ing.POST("/teardown", s.ingestTeardownHandler, s.rateLimited(ratelimit.BucketIngestLifecycle))

	// Worker callbacks: shared secret only.
	workers := e.Group("/executions", s.requireWorkerSecret)
	workers.POST("/update", s.updateExecutionHandler)
	workers.POST("/log", s.appendLogHandler)
}

// Start runs the HTTP server until Shutdown or a listen error.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("HTTP server starting", "addr", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Echo exposes the router for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}
