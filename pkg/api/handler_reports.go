package api

import (
	"net/http"
	"path/filepath"
	"strings"

	echo "github.com/labstack/echo/v5"
)

// reportFileHandler serves GET /reports/:orgId/:taskId/*.
// The reports.Middleware in front has already verified the token for this
// (orgId, taskId) scope; this handler only maps the path onto the reports
// directory and refuses traversal out of it.
func (s *Server) reportFileHandler(c *echo.Context) error {
	orgID := c.Param("orgId")
	taskID := c.Param("taskId")
	rest := c.Param("*")
	if rest == "" {
		rest = "index.html"
	}

	rel := filepath.Join(orgID, taskID, filepath.Clean("/"+rest))
	path := filepath.Join(s.cfg.Reports.Dir, rel)
	if !strings.HasPrefix(path, filepath.Clean(s.cfg.Reports.Dir)+string(filepath.Separator)) {
		return echo.NewHTTPError(http.StatusBadRequest, "report path is malformed")
	}

	http.ServeFile(c.Response(), c.Request(), path)
	return nil
}
