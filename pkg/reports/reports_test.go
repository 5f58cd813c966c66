package reports

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateVerifyRoundTrip(t *testing.T) {
	s := NewTokenService([]byte("secret"), 5*time.Minute)

	token, err := s.Generate("org-1", "t1")
	require.NoError(t, err)
	assert.NoError(t, s.Verify(token, "org-1", "t1"))
}

func TestVerifyRejectsWrongScope(t *testing.T) {
	s := NewTokenService([]byte("secret"), 5*time.Minute)

	token, err := s.Generate("org-1", "t1")
	require.NoError(t, err)

	assert.ErrorIs(t, s.Verify(token, "org-2", "t1"), ErrScopeMismatch)
	assert.ErrorIs(t, s.Verify(token, "org-1", "t2"), ErrScopeMismatch)
}

func TestVerifyRejectsTamperedPayload(t *testing.T) {
	s := NewTokenService([]byte("secret"), 5*time.Minute)

	token, err := s.Generate("org-1", "t1")
	require.NoError(t, err)

	parts := strings.SplitN(token, ".", 2)
	forged := parts[0][:len(parts[0])-2] + "xx." + parts[1]
	assert.ErrorIs(t, s.Verify(forged, "org-1", "t1"), ErrBadSignature)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	a := NewTokenService([]byte("secret-a"), 5*time.Minute)
	b := NewTokenService([]byte("secret-b"), 5*time.Minute)

	token, err := a.Generate("org-1", "t1")
	require.NoError(t, err)
	assert.ErrorIs(t, b.Verify(token, "org-1", "t1"), ErrBadSignature)
}

func TestVerifyRejectsExpired(t *testing.T) {
	s := NewTokenService([]byte("secret"), -time.Minute)

	token, err := s.Generate("org-1", "t1")
	require.NoError(t, err)
	assert.ErrorIs(t, s.Verify(token, "org-1", "t1"), ErrTokenExpired)
}

func TestVerifyRejectsMalformed(t *testing.T) {
	s := NewTokenService([]byte("secret"), 5*time.Minute)

	for _, token := range []string{"", "no-dot", ".leading", "trailing.", "a.b"} {
		err := s.Verify(token, "org-1", "t1")
		assert.Error(t, err, token)
	}
}

func newReportEcho(tokens *TokenService) *echo.Echo {
	e := echo.New()
	e.GET("/reports/:orgId/:taskId/*", func(c *echo.Context) error {
		return c.String(http.StatusOK, "report body")
	}, Middleware(tokens))
	return e
}

func TestMiddlewareQueryTokenSetsCookie(t *testing.T) {
	tokens := NewTokenService([]byte("secret"), 5*time.Minute)
	e := newReportEcho(tokens)

	token, err := tokens.Generate("org-1", "t1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/reports/org-1/t1/index.html?token="+token, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, CookieName, cookie.Name)
	assert.Equal(t, token, cookie.Value)
	assert.Equal(t, "/reports/org-1/t1/", cookie.Path)
	assert.Equal(t, 300, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

func TestMiddlewareAcceptsCookie(t *testing.T) {
	tokens := NewTokenService([]byte("secret"), 5*time.Minute)
	e := newReportEcho(tokens)

	token, err := tokens.Generate("org-1", "t1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/reports/org-1/t1/assets/app.js", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMiddlewareRejectsMissingToken(t *testing.T) {
	tokens := NewTokenService([]byte("secret"), 5*time.Minute)
	e := newReportEcho(tokens)

	req := httptest.NewRequest(http.MethodGet, "/reports/org-1/t1/index.html", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddlewareRejectsCrossReportCookie(t *testing.T) {
	tokens := NewTokenService([]byte("secret"), 5*time.Minute)
	e := newReportEcho(tokens)

	// Token for a different task must not open this report.
	token, err := tokens.Generate("org-1", "other-task")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/reports/org-1/t1/index.html", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
