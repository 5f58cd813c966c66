package api

import (
	"errors"
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/agnox-io/agnox/pkg/dispatch"
	"github.com/agnox-io/agnox/pkg/models"
	"github.com/agnox-io/agnox/pkg/services"
)

// executionRequestHandler handles POST /api/execution-request.
// The synchronous admission path: validate, enforce the plan, resolve env
// vars, upsert the row, publish, broadcast.
func (s *Server) executionRequestHandler(c *echo.Context) error {
	principal, _ := principalFrom(c)

	var req ExecutionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	msg, err := s.pipeline.Dispatch(c.Request().Context(), principal.OrgID, dispatch.Request{
		TaskID:        req.TaskID,
		ProjectID:     req.ProjectID,
		Image:         req.Image,
		Command:       req.Command,
		Folder:        req.Folder,
		Tests:         req.Tests,
		Environment:   req.Config.Environment,
		BaseURL:       req.Config.BaseURL,
		RetryAttempts: req.Config.RetryAttempts,
		EnvVars:       req.Config.EnvVars,
		Trigger:       req.Trigger,
		GroupName:     req.GroupName,
		BatchID:       req.BatchID,
		Framework:     req.Framework,
		CycleID:       req.CycleID,
		CycleItemID:   req.CycleItemID,
	})
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &DispatchResponse{
		Status: "Message queued successfully",
		TaskID: msg.TaskID,
	})
}

// listExecutionsHandler handles GET /api/executions.
func (s *Server) listExecutionsHandler(c *echo.Context) error {
	principal, _ := principalFrom(c)

	params := models.ListParams{Page: 1, PageSize: 20}
	if v := c.QueryParam("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			params.Page = p
		}
	}
	if v := c.QueryParam("pageSize"); v != "" {
		if ps, err := strconv.Atoi(v); err == nil && ps > 0 && ps <= 100 {
			params.PageSize = ps
		}
	}
	params.Status = c.QueryParam("status")

	executions, total, err := s.executions.List(c.Request().Context(), principal.OrgID, params)
	if err != nil {
		return mapServiceError(err)
	}

	views := make([]ExecutionView, 0, len(executions))
	for _, e := range executions {
		views = append(views, toExecutionView(e))
	}
	return c.JSON(http.StatusOK, &ExecutionListResponse{
		Executions: views,
		Total:      total,
		Page:       params.Page,
		PageSize:   params.PageSize,
	})
}

// getExecutionHandler handles GET /api/executions/:id. The id is the
// external taskId.
func (s *Server) getExecutionHandler(c *echo.Context) error {
	principal, _ := principalFrom(c)
	taskID := c.Param("id")
	if taskID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	exec, err := s.executions.Get(c.Request().Context(), principal.OrgID, taskID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Execution not found")
		}
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, toExecutionView(exec))
}

// deleteExecutionHandler handles DELETE /api/executions/:id.
// Cross-tenant ids miss the org-scoped lookup and come back 404.
func (s *Server) deleteExecutionHandler(c *echo.Context) error {
	principal, _ := principalFrom(c)
	taskID := c.Param("id")
	if taskID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	if err := s.executions.SoftDelete(c.Request().Context(), principal.OrgID, taskID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Execution not found")
		}
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"success": true, "taskId": taskID})
}
