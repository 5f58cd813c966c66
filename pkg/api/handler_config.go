package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// configDefaultsHandler handles GET /config/defaults.
// Unauthenticated: the dashboard bootstraps its run form from this before
// the user logs in. Nothing secret leaves here.
func (s *Server) configDefaultsHandler(c *echo.Context) error {
	return c.JSON(http.StatusOK, &ConfigDefaultsResponse{
		DefaultImage: s.cfg.Dispatch.DefaultImage,
		Environments: []string{"dev", "staging", "prod"},
		BaseURLs:     s.cfg.Dispatch.BaseURLs,
	})
}
