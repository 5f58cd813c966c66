package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/agnox-io/agnox/pkg/ingest"
)

// ingestSetupHandler handles POST /api/ingest/setup.
func (s *Server) ingestSetupHandler(c *echo.Context) error {
	principal, _ := principalFrom(c)

	var req IngestSetupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := s.ingest.Setup(c.Request().Context(), principal.OrgID, ingest.SetupInput{
		ProjectID:       req.ProjectID,
		RunName:         req.RunName,
		Framework:       req.Framework,
		ReporterVersion: req.ReporterVersion,
		TotalTests:      req.TotalTests,
		Environment:     req.Environment,
		CIContext:       req.CIContext,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, result)
}

// ingestEventHandler handles POST /api/ingest/event.
// Cache writes are pipelined and fire-and-forget; the response returns as
// soon as the batch is validated and broadcast.
func (s *Server) ingestEventHandler(c *echo.Context) error {
	principal, _ := principalFrom(c)

	var req IngestEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.SessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "sessionId is required")
	}

	if err := s.ingest.Event(c.Request().Context(), principal.OrgID, req.SessionID, req.Events); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"success": true})
}

// ingestTeardownHandler handles POST /api/ingest/teardown.
func (s *Server) ingestTeardownHandler(c *echo.Context) error {
	principal, _ := principalFrom(c)

	var req IngestTeardownRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.SessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "sessionId is required")
	}

	if err := s.ingest.Teardown(c.Request().Context(), principal.OrgID, ingest.TeardownInput{
		SessionID: req.SessionID,
		Status:    req.Status,
		Summary:   req.Summary,
	}); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"success": true})
}
