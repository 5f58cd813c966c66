package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/agnox-io/agnox/pkg/events"
	"github.com/agnox-io/agnox/pkg/ingest"
	"github.com/agnox-io/agnox/pkg/services"
)

// updateExecutionHandler handles POST /executions/update.
// Workers report status transitions here. A callback without an orgId is
// dropped with a warning; without the org there is no row to address and no
// room to broadcast to.
func (s *Server) updateExecutionHandler(c *echo.Context) error {
	var req WorkerUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.TaskID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "taskId is required")
	}
	if req.OrgID == "" {
		slog.Warn("Dropping worker callback without orgId", "task_id", req.TaskID)
		return c.JSON(http.StatusOK, map[string]interface{}{"success": true, "dropped": true})
	}

	update := services.WorkerUpdate{
		TaskID: req.TaskID,
		OrgID:  req.OrgID,
		Status: req.Status,
		Output: req.Output,
	}
	if req.EndTime != nil {
		t := time.UnixMilli(*req.EndTime)
		update.EndTime = &t
	}

	exec, err := s.executions.UpdateFromWorker(c.Request().Context(), update)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			// Unknown (taskId, orgId): nothing to mutate, nothing to retry.
			slog.Warn("Ignoring worker callback for unknown execution",
				"task_id", req.TaskID, "org_id", req.OrgID)
			return c.JSON(http.StatusOK, map[string]interface{}{"success": true, "dropped": true})
		}
		return mapServiceError(err)
	}

	payload := events.ExecutionUpdatedPayload{
		TaskID:  exec.TaskID,
		OrgID:   req.OrgID,
		Status:  string(exec.Status),
		Source:  string(exec.Source),
		Trigger: string(exec.Trigger),
	}
	if exec.EndTime != nil {
		payload.EndTime = exec.EndTime.UnixMilli()
	}
	s.hub.Broadcast(events.RoomForOrg(req.OrgID), events.EventExecutionUpdated, payload)
	return c.JSON(http.StatusOK, map[string]interface{}{"success": true})
}

// appendLogHandler handles POST /executions/log.
// Live output accumulates under live:logs:{taskId} until teardown or TTL.
func (s *Server) appendLogHandler(c *echo.Context) error {
	var req WorkerLogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.TaskID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "taskId is required")
	}
	if req.OrgID == "" {
		slog.Warn("Dropping worker log without orgId", "task_id", req.TaskID)
		return c.JSON(http.StatusOK, map[string]interface{}{"success": true, "dropped": true})
	}

	if s.cache != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		key := ingest.LogKey(req.TaskID)
		pipe := s.cache.Pipeline()
		pipe.Append(ctx, key, req.Log)
		pipe.Expire(ctx, key, s.cfg.Ingest.LogTTL)
		if _, err := pipe.Exec(ctx); err != nil {
			slog.Warn("Failed to cache worker log", "task_id", req.TaskID, "error", err)
		}
	}

	s.hub.Broadcast(events.RoomForOrg(req.OrgID), events.EventExecutionLog, events.ExecutionLogPayload{
		TaskID: req.TaskID,
		OrgID:  req.OrgID,
		Log:    req.Log,
	})
	return c.JSON(http.StatusOK, map[string]interface{}{"success": true})
}
