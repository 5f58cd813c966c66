package api

import (
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/agnox-io/agnox/pkg/ratelimit"
)

// securityHeaders returns middleware that sets standard security response headers.
func securityHeaders(production bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-XSS-Protection", "1; mode=block")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			if production {
				h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}
			return next(c)
		}
	}
}

// cors returns middleware implementing the credentialed CORS policy: a
// configured allow-list, plus localhost origins outside production.
func cors(allowedOrigins []string, production bool) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}

	originAllowed := func(origin string) bool {
		if allowed[origin] {
			return true
		}
		if production {
			return false
		}
		return strings.HasPrefix(origin, "http://localhost:") ||
			strings.HasPrefix(origin, "http://127.0.0.1:")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			origin := c.Request().Header.Get("Origin")
			if origin != "" && originAllowed(origin) {
				h := c.Response().Header()
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Credentials", "true")
				h.Set("Vary", "Origin")

				if c.Request().Method == http.MethodOptions {
					h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
					h.Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
					h.Set("Access-Control-Max-Age", "86400")
					return c.NoContent(http.StatusNoContent)
				}
			}
			return next(c)
		}
	}
}

// rateLimited returns middleware counting authenticated requests against a
// bucket. Runs after requireAuth; unauthenticated routes are not throttled
// per org.
func (s *Server) rateLimited(bucket ratelimit.Bucket) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			principal, ok := principalFrom(c)
			if !ok {
				return next(c)
			}
			if !s.limiter.Allow(c.Request().Context(), bucket, principal.OrgID) {
				return echo.NewHTTPError(http.StatusTooManyRequests, bucket.Message)
			}
			return next(c)
		}
	}
}
