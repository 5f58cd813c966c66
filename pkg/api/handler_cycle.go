package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/agnox-io/agnox/pkg/models"
	"github.com/agnox-io/agnox/pkg/services"
)

// listCyclesHandler handles GET /api/test-cycles.
func (s *Server) listCyclesHandler(c *echo.Context) error {
	principal, _ := principalFrom(c)

	cycles, err := s.cycles.List(c.Request().Context(), principal.OrgID, c.QueryParam("projectId"))
	if err != nil {
		return mapServiceError(err)
	}

	views := make([]CycleView, 0, len(cycles))
	for _, cy := range cycles {
		views = append(views, toCycleView(cy))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"cycles": views})
}

// getCycleHandler handles GET /api/test-cycles/:id.
func (s *Server) getCycleHandler(c *echo.Context) error {
	principal, _ := principalFrom(c)
	cycleID := c.Param("id")
	if cycleID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "cycle id is required")
	}

	cycle, err := s.cycles.Get(c.Request().Context(), principal.OrgID, cycleID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, toCycleView(cycle))
}

// createCycleHandler handles POST /api/test-cycles.
func (s *Server) createCycleHandler(c *echo.Context) error {
	principal, _ := principalFrom(c)

	var req CreateCycleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.ProjectID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "projectId is required")
	}

	items := make([]services.CycleItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		steps := make([]models.ManualStep, 0, len(item.ManualSteps))
		for _, step := range item.ManualSteps {
			steps = append(steps, models.ManualStep{Action: step.Action, Expected: step.Expected})
		}
		items = append(items, services.CycleItemInput{
			TestCaseID:  item.TestCaseID,
			Type:        item.Type,
			Title:       item.Title,
			ExecutionID: item.ExecutionID,
			ManualSteps: steps,
		})
	}

	cycle, err := s.cycles.Create(c.Request().Context(), principal.OrgID, req.ProjectID, req.Name, items)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, toCycleView(cycle))
}

// updateCycleItemHandler handles PUT /api/test-cycles/:id/items/:itemId.
// Records a manual run's outcome and recomputes the cycle summary.
func (s *Server) updateCycleItemHandler(c *echo.Context) error {
	principal, _ := principalFrom(c)
	cycleID := c.Param("id")
	itemID := c.Param("itemId")
	if cycleID == "" || itemID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "cycle id and item id are required")
	}

	var req UpdateCycleItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Status == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "status is required")
	}

	cycle, err := s.cycles.UpdateItemStatus(c.Request().Context(), principal.OrgID, cycleID, itemID, req.Status)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, toCycleView(cycle))
}
