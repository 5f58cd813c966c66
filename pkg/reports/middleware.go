package reports

import (
	"fmt"
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// CookieName carries a verified report token across sub-resource requests.
const CookieName = "report_token"

// Middleware guards /reports/:orgId/:taskId/* routes. A token arrives in
// the query string on the first request; verification plants a cookie
// scoped to that one report so images and scripts load without the query
// string.
func Middleware(tokens *TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			orgID := c.Param("orgId")
			taskID := c.Param("taskId")
			if orgID == "" || taskID == "" {
				return echo.NewHTTPError(http.StatusBadRequest, "report path is malformed")
			}

			if token := c.QueryParam("token"); token != "" {
				if err := tokens.Verify(token, orgID, taskID); err != nil {
					return echo.NewHTTPError(http.StatusUnauthorized, "report token rejected")
				}
				c.SetCookie(&http.Cookie{
					Name:     CookieName,
					Value:    token,
					Path:     fmt.Sprintf("/reports/%s/%s/", orgID, taskID),
					MaxAge:   int(tokens.TTL().Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
				return next(c)
			}

			cookie, err := c.Cookie(CookieName)
			if err != nil || tokens.Verify(cookie.Value, orgID, taskID) != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "report token required")
			}
			return next(c)
		}
	}
}
