package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// listEnvVarsHandler handles GET /api/projects/:id/env.
// Secret values are masked; only dispatch sees them in cleartext.
func (s *Server) listEnvVarsHandler(c *echo.Context) error {
	principal, _ := principalFrom(c)
	projectID := c.Param("id")
	if projectID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "project id is required")
	}

	vars, err := s.envVars.List(c.Request().Context(), principal.OrgID, projectID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"envVars": vars})
}

// createEnvVarHandler handles POST /api/projects/:id/env.
func (s *Server) createEnvVarHandler(c *echo.Context) error {
	principal, _ := principalFrom(c)
	projectID := c.Param("id")
	if projectID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "project id is required")
	}

	var req EnvVarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := s.envVars.Create(c.Request().Context(), principal.OrgID, projectID, req.Key, req.Value, req.IsSecret)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, view)
}

// updateEnvVarHandler handles PUT /api/projects/:id/env/:varId.
func (s *Server) updateEnvVarHandler(c *echo.Context) error {
	principal, _ := principalFrom(c)
	projectID := c.Param("id")
	varID := c.Param("varId")
	if projectID == "" || varID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "project id and variable id are required")
	}

	var req EnvVarRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := s.envVars.Update(c.Request().Context(), principal.OrgID, projectID, varID, req.Value, req.IsSecret)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, view)
}

// deleteEnvVarHandler handles DELETE /api/projects/:id/env/:varId.
func (s *Server) deleteEnvVarHandler(c *echo.Context) error {
	principal, _ := principalFrom(c)
	projectID := c.Param("id")
	varID := c.Param("varId")
	if projectID == "" || varID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "project id and variable id are required")
	}

	if err := s.envVars.Delete(c.Request().Context(), principal.OrgID, projectID, varID); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
