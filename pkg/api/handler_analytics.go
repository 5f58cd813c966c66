package api

import (
	"fmt"
	"net/http"

	echo "github.com/labstack/echo/v5"
	"github.com/redis/go-redis/v9"
)

// kpisHandler handles GET /api/analytics/kpis.
func (s *Server) kpisHandler(c *echo.Context) error {
	principal, _ := principalFrom(c)

	kpis, err := s.analytics.KPIs(c.Request().Context(), principal.OrgID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, kpis)
}

// imageMetricsHandler handles GET /api/metrics/:image.
// Workers write per-image perf rollups to metrics:{orgId}:{image}; this
// endpoint only reads them back, scoped by the caller's org.
func (s *Server) imageMetricsHandler(c *echo.Context) error {
	principal, _ := principalFrom(c)
	image := c.Param("image")
	if image == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "image is required")
	}
	if s.cache == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Metrics not found")
	}

	key := fmt.Sprintf("metrics:%s:%s", principal.OrgID, image)
	raw, err := s.cache.Get(c.Request().Context(), key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return echo.NewHTTPError(http.StatusNotFound, "Metrics not found")
		}
		return mapServiceError(err)
	}
	return c.JSONBlob(http.StatusOK, raw)
}
