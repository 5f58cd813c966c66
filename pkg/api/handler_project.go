package api

import (
	"errors"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/agnox-io/agnox/pkg/services"
)

// listProjectsHandler handles GET /api/projects.
func (s *Server) listProjectsHandler(c *echo.Context) error {
	principal, _ := principalFrom(c)

	projects, err := s.projects.List(c.Request().Context(), principal.OrgID)
	if err != nil {
		return mapServiceError(err)
	}

	views := make([]ProjectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, toProjectView(p))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"projects": views})
}

// createProjectHandler handles POST /api/projects.
func (s *Server) createProjectHandler(c *echo.Context) error {
	principal, _ := principalFrom(c)

	var req CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	proj, err := s.projects.Create(c.Request().Context(), principal.OrgID, req.Name)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyExists) {
			return echo.NewHTTPError(http.StatusConflict, "a project with this name already exists")
		}
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, toProjectView(proj))
}

// getProjectHandler handles GET /api/projects/:id.
func (s *Server) getProjectHandler(c *echo.Context) error {
	principal, _ := principalFrom(c)
	projectID := c.Param("id")
	if projectID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "project id is required")
	}

	proj, err := s.projects.Get(c.Request().Context(), principal.OrgID, projectID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, toProjectView(proj))
}

// deleteProjectHandler handles DELETE /api/projects/:id.
func (s *Server) deleteProjectHandler(c *echo.Context) error {
	principal, _ := principalFrom(c)
	projectID := c.Param("id")
	if projectID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "project id is required")
	}

	if err := s.projects.Delete(c.Request().Context(), principal.OrgID, projectID); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
