package api

import (
	"log/slog"
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/agnox-io/agnox/pkg/auth"
)

// principalKey stores the authenticated Principal in the request context.
const principalKey = "principal"

// principalFrom returns the request's Principal, if authentication ran.
func principalFrom(c *echo.Context) (auth.Principal, bool) {
	p, ok := c.Get(principalKey).(auth.Principal)
	return p, ok
}

// bearerToken extracts the Authorization bearer value.
func bearerToken(c *echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	if after, found := strings.CutPrefix(header, "Bearer "); found {
		return after
	}
	return ""
}

// apiKeyFrom returns the caller's API key credential: the x-api-key header
// first, then a bearer value carrying the key prefix.
func apiKeyFrom(c *echo.Context) string {
	if key := c.Request().Header.Get("x-api-key"); key != "" {
		return key
	}
	if token := bearerToken(c); auth.IsAPIKey(token) {
		return token
	}
	return ""
}

// requireAuth resolves the caller's credential, API key or JWT. The
// resolved Principal lands in the request context.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c *echo.Context) error {
		var principal auth.Principal
		var err error
		if key := apiKeyFrom(c); key != "" {
			principal, err = s.apiKeys.Authenticate(c.Request().Context(), key)
		} else if token := bearerToken(c); token != "" {
			principal, err = s.tokens.Verify(token)
		} else {
			return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
		}
		if err != nil {
			return mapServiceError(err)
		}

		c.Set(principalKey, principal)
		return next(c)
	}
}

// requireAPIKey admits only API-key credentials. Ingest endpoints bind a
// reporter process to its org this way; a user JWT is not a reporter.
func (s *Server) requireAPIKey(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c *echo.Context) error {
		key := apiKeyFrom(c)
		if key == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "API key required")
		}

		principal, err := s.apiKeys.Authenticate(c.Request().Context(), key)
		if err != nil {
			return mapServiceError(err)
		}

		c.Set(principalKey, principal)
		return next(c)
	}
}

// requireRole returns middleware admitting only the given roles. 401
// without a Principal, 403 with one of the wrong role.
func requireRole(roles ...auth.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			principal, ok := principalFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if !principal.HasRole(roles...) {
				return echo.NewHTTPError(http.StatusForbidden, "Insufficient permissions")
			}
			return next(c)
		}
	}
}

// Convenience role sets.
func adminOnly() echo.MiddlewareFunc {
	return requireRole(auth.RoleAdmin)
}

func developerOrAdmin() echo.MiddlewareFunc {
	return requireRole(auth.RoleAdmin, auth.RoleDeveloper)
}

// requireWorkerSecret authenticates worker callbacks by shared secret.
// Workers never hold a user JWT. The transition flag admits unauthenticated
// callbacks with a warning while a worker fleet rolls the secret out.
func (s *Server) requireWorkerSecret(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c *echo.Context) error {
		presented := c.Request().Header.Get("Authorization")
		presented = strings.TrimPrefix(presented, "Bearer ")

		if auth.SecureCompare(presented, s.cfg.Auth.WorkerSecret) {
			return next(c)
		}

		if s.cfg.Auth.WorkerTransition {
			slog.Warn("Admitting worker callback without valid secret (transition mode)",
				"path", c.Request().URL.Path)
			return next(c)
		}
		return echo.NewHTTPError(http.StatusUnauthorized, "worker secret required")
	}
}
