package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/agnox-io/agnox/pkg/services"
)

// listUsersHandler handles GET /api/users.
func (s *Server) listUsersHandler(c *echo.Context) error {
	principal, _ := principalFrom(c)

	users, err := s.users.List(c.Request().Context(), principal.OrgID)
	if err != nil {
		return mapServiceError(err)
	}

	views := make([]UserView, 0, len(users))
	for _, u := range users {
		views = append(views, toUserView(u))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"users": views})
}

// inviteUserHandler handles POST /api/users.
func (s *Server) inviteUserHandler(c *echo.Context) error {
	principal, _ := principalFrom(c)

	var req InviteUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	usr, err := s.users.Invite(c.Request().Context(), principal.OrgID, services.InviteInput{
		Email:    req.Email,
		Name:     req.Name,
		Role:     req.Role,
		Password: req.Password,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, toUserView(usr))
}

// changeUserRoleHandler handles PATCH /api/users/:id/role.
func (s *Server) changeUserRoleHandler(c *echo.Context) error {
	principal, _ := principalFrom(c)
	userID := c.Param("id")
	if userID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user id is required")
	}

	var req ChangeRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	usr, err := s.users.ChangeRole(c.Request().Context(), principal.OrgID, principal.UserID, userID, req.Role)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, toUserView(usr))
}

// deleteUserHandler handles DELETE /api/users/:id.
func (s *Server) deleteUserHandler(c *echo.Context) error {
	principal, _ := principalFrom(c)
	userID := c.Param("id")
	if userID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user id is required")
	}

	if err := s.users.Delete(c.Request().Context(), principal.OrgID, userID); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
