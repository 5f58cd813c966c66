package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/agnox-io/agnox/pkg/cache"
	"github.com/agnox-io/agnox/pkg/database"
	"github.com/agnox-io/agnox/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /health.
// Only the database failing marks the process unhealthy; cache and queue
// degradation is reported but must not trigger orchestrator restarts.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	status := healthStatusHealthy

	dbHealth, err := database.Health(reqCtx, s.dbClient.DB())
	if err != nil {
		status = healthStatusUnhealthy
	}

	cacheHealth := cache.Health(reqCtx, s.cache)
	if cacheHealth.Status != healthStatusHealthy && status == healthStatusHealthy {
		status = healthStatusDegraded
	}

	queueHealth := &QueueHealth{Status: healthStatusHealthy}
	if s.publisher != nil {
		stats, err := s.publisher.Stats(reqCtx)
		if err != nil {
			queueHealth.Status = healthStatusUnhealthy
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
		} else {
			queueHealth.MessageCount = stats.MessageCount
			queueHealth.ConsumerCount = stats.ConsumerCount
		}
	} else {
		queueHealth.Status = "unavailable"
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, &HealthResponse{
		Status:   status,
		Version:  version.GitCommit,
		Database: dbHealth,
		Cache:    cacheHealth,
		Queue:    queueHealth,
	})
}
