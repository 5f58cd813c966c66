package api

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"

	"github.com/agnox-io/agnox/pkg/auth"
	"github.com/agnox-io/agnox/pkg/ratelimit"
)

func okHandler(c *echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestSecurityHeaders(t *testing.T) {
	e := echo.New()
	e.Use(securityHeaders(false))
	e.GET("/test", okHandler)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "1; mode=block", rec.Header().Get("X-XSS-Protection"))
	assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
	assert.Empty(t, rec.Header().Get("Strict-Transport-Security"))
}

func TestSecurityHeadersProductionHSTS(t *testing.T) {
	e := echo.New()
	e.Use(securityHeaders(true))
	e.GET("/test", okHandler)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Contains(t, rec.Header().Get("Strict-Transport-Security"), "max-age=")
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name        string
		production  bool
		origin      string
		wantAllowed bool
	}{
		{
			name:        "configured origin allowed",
			production:  true,
			origin:      "https://app.agnox.io",
			wantAllowed: true,
		},
		{
			name:        "unknown origin rejected in production",
			production:  true,
			origin:      "https://evil.example.com",
			wantAllowed: false,
		},
		{
			name:        "localhost allowed in development",
			production:  false,
			origin:      "http://localhost:5173",
			wantAllowed: true,
		},
		{
			name:        "localhost rejected in production",
			production:  true,
			origin:      "http://localhost:5173",
			wantAllowed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(cors([]string{"https://app.agnox.io"}, tt.production))
			e.GET("/test", okHandler)

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			if tt.wantAllowed {
				assert.Equal(t, tt.origin, rec.Header().Get("Access-Control-Allow-Origin"))
				assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
			} else {
				assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	e := echo.New()
	e.Use(cors(nil, false))
	e.GET("/test", okHandler)

	req := httptest.NewRequest(http.MethodOptions, "/test", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestRateLimitedFailsOpenWithoutCache(t *testing.T) {
	// A nil cache client means no counters; every request is admitted.
	s := &Server{limiter: ratelimit.NewLimiter(nil, slog.Default())}

	e := echo.New()
	e.GET("/test", okHandler, func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			c.Set(principalKey, auth.Principal{UserID: "u1", OrgID: "org-a", Role: auth.RoleAdmin})
			return next(c)
		}
	}, s.rateLimited(ratelimit.BucketAPI))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitedSkipsAnonymousRoutes(t *testing.T) {
	s := &Server{limiter: ratelimit.NewLimiter(nil, slog.Default())}

	e := echo.New()
	e.GET("/test", okHandler, s.rateLimited(ratelimit.BucketAPI))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
