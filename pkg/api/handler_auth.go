package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/agnox-io/agnox/pkg/auth"
	"github.com/agnox-io/agnox/pkg/services"
)

// signupHandler handles POST /api/auth/signup.
// Creates an organization with its first admin and returns a signed JWT.
func (s *Server) signupHandler(c *echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := s.orgs.Signup(c.Request().Context(), services.SignupInput{
		OrgName:  req.OrganizationName,
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		return mapServiceError(err)
	}

	principal := auth.Principal{
		UserID: result.User.ID,
		OrgID:  result.Org.ID,
		Role:   auth.Role(result.User.Role),
	}
	token, err := s.tokens.Issue(principal)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, &AuthResponse{
		Token: token,
		User:  toUserView(result.User),
		Org:   toOrgView(result.Org),
	})
}

// loginHandler handles POST /api/auth/login.
func (s *Server) loginHandler(c *echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email and password are required")
	}

	usr, err := s.users.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return mapServiceError(err)
	}

	org, err := s.orgs.Get(c.Request().Context(), usr.OrgID)
	if err != nil {
		return mapServiceError(err)
	}

	principal := auth.Principal{
		UserID: usr.ID,
		OrgID:  usr.OrgID,
		Role:   auth.Role(usr.Role),
	}
	token, err := s.tokens.Issue(principal)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &AuthResponse{
		Token: token,
		User:  toUserView(usr),
		Org:   toOrgView(org),
	})
}

// meHandler handles GET /api/auth/me.
func (s *Server) meHandler(c *echo.Context) error {
	principal, ok := principalFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	usr, err := s.users.Get(c.Request().Context(), principal.OrgID, principal.UserID)
	if err != nil {
		return mapServiceError(err)
	}
	org, err := s.orgs.Get(c.Request().Context(), principal.OrgID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"user":         toUserView(usr),
		"organization": toOrgView(org),
	})
}
