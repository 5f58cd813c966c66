package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/agnox-io/agnox/pkg/services"
)

// listSchedulesHandler handles GET /api/schedules.
func (s *Server) listSchedulesHandler(c *echo.Context) error {
	principal, _ := principalFrom(c)

	schedules, err := s.schedules.List(c.Request().Context(), principal.OrgID)
	if err != nil {
		return mapServiceError(err)
	}

	views := make([]ScheduleView, 0, len(schedules))
	for _, sched := range schedules {
		views = append(views, toScheduleView(sched))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"schedules": views})
}

// createScheduleHandler handles POST /api/schedules.
// The persisted schedule registers with the in-process cron scheduler
// immediately; no restart needed.
func (s *Server) createScheduleHandler(c *echo.Context) error {
	principal, _ := principalFrom(c)

	var req CreateScheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sched, err := s.schedules.Create(c.Request().Context(), principal.OrgID, services.ScheduleInput{
		Name:        req.Name,
		ProjectID:   req.ProjectID,
		CronExpr:    req.CronExpression,
		Environment: req.Environment,
		Image:       req.Image,
		Folder:      req.Folder,
		BaseURL:     req.BaseURL,
	})
	if err != nil {
		return mapServiceError(err)
	}

	if err := s.scheduler.AddScheduledJob(sched); err != nil {
		// The row exists but never fires; surface it rather than return a
		// schedule that silently does nothing.
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, toScheduleView(sched))
}

// deleteScheduleHandler handles DELETE /api/schedules/:id.
func (s *Server) deleteScheduleHandler(c *echo.Context) error {
	principal, _ := principalFrom(c)
	scheduleID := c.Param("id")
	if scheduleID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "schedule id is required")
	}

	if err := s.schedules.Delete(c.Request().Context(), principal.OrgID, scheduleID); err != nil {
		return mapServiceError(err)
	}
	s.scheduler.RemoveScheduledJob(scheduleID)

	return c.NoContent(http.StatusNoContent)
}
