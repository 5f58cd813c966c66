package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// listAPIKeysHandler handles GET /api/api-keys.
func (s *Server) listAPIKeysHandler(c *echo.Context) error {
	principal, _ := principalFrom(c)

	keys, err := s.apiKeys.List(c.Request().Context(), principal.OrgID)
	if err != nil {
		return mapServiceError(err)
	}

	views := make([]APIKeyView, 0, len(keys))
	for _, k := range keys {
		views = append(views, toAPIKeyView(k))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"apiKeys": views})
}

// createAPIKeyHandler handles POST /api/api-keys.
// The plaintext key appears in this response only; the store keeps the hash.
func (s *Server) createAPIKeyHandler(c *echo.Context) error {
	principal, _ := principalFrom(c)

	var req CreateAPIKeyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := s.apiKeys.Create(c.Request().Context(), principal.OrgID, principal.UserID, req.Name)
	if err != nil {
		return mapServiceError(err)
	}

	view := toAPIKeyView(result.Key)
	view.Plaintext = result.Plaintext
	return c.JSON(http.StatusCreated, view)
}

// revokeAPIKeyHandler handles DELETE /api/api-keys/:id.
func (s *Server) revokeAPIKeyHandler(c *echo.Context) error {
	principal, _ := principalFrom(c)
	keyID := c.Param("id")
	if keyID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "key id is required")
	}

	if err := s.apiKeys.Revoke(c.Request().Context(), principal.OrgID, keyID); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
