package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agnox-io/agnox/pkg/auth"
	"github.com/agnox-io/agnox/pkg/config"
	"github.com/agnox-io/agnox/pkg/events"
)

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func TestConfigDefaultsHandler(t *testing.T) {
	s := &Server{cfg: &config.Config{Dispatch: config.DispatchConfig{
		DefaultImage: "agnox/runner:latest",
		BaseURLs: map[string]string{
			"dev":     "http://localhost:3000",
			"staging": "https://staging.example.com",
		},
	}}}

	e := echo.New()
	e.GET("/config/defaults", s.configDefaultsHandler)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/config/defaults", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp ConfigDefaultsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "agnox/runner:latest", resp.DefaultImage)
	assert.ElementsMatch(t, []string{"dev", "staging", "prod"}, resp.Environments)
	assert.Equal(t, "https://staging.example.com", resp.BaseURLs["staging"])
}

func TestUpdateExecutionHandlerValidation(t *testing.T) {
	s := &Server{}
	e := echo.New()

	t.Run("missing taskId is 400", func(t *testing.T) {
		c := e.NewContext(jsonRequest(http.MethodPost, "/executions/update", `{"orgId":"org-a","status":"PASSED"}`), httptest.NewRecorder())
		err := s.updateExecutionHandler(c)
		require.Error(t, err)
		he, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, he.Code)
	})

	t.Run("missing orgId is dropped, not applied", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(jsonRequest(http.MethodPost, "/executions/update", `{"taskId":"t1","status":"PASSED"}`), rec)
		// No store wired: the drop must happen before any lookup.
		require.NoError(t, s.updateExecutionHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"dropped":true`)
	})
}

func TestAppendLogHandlerBroadcastsWithoutCache(t *testing.T) {
	hub := events.NewHub(auth.NewTokenIssuer([]byte("secret"), time.Hour), time.Second, slog.Default())
	s := &Server{
		hub: hub,
		cfg: &config.Config{Ingest: config.IngestConfig{LogTTL: 4 * time.Hour}},
	}

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/executions/log", `{"taskId":"t1","orgId":"org-a","log":"line one"}`), rec)

	require.NoError(t, s.appendLogHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAppendLogHandlerDropsWithoutOrg(t *testing.T) {
	s := &Server{}
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/executions/log", `{"taskId":"t1","log":"x"}`), rec)

	require.NoError(t, s.appendLogHandler(c))
	assert.Contains(t, rec.Body.String(), `"dropped":true`)
}

func TestIngestHandlersRequireSessionID(t *testing.T) {
	s := &Server{}
	e := echo.New()

	t.Run("event", func(t *testing.T) {
		c := e.NewContext(jsonRequest(http.MethodPost, "/api/ingest/event", `{"events":[{"type":"log","chunk":"x","timestamp":1}]}`), httptest.NewRecorder())
		c.Set(principalKey, auth.Principal{UserID: "u1", OrgID: "org-a", Role: auth.RoleDeveloper})
		err := s.ingestEventHandler(c)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, err.(*echo.HTTPError).Code)
	})

	t.Run("teardown", func(t *testing.T) {
		c := e.NewContext(jsonRequest(http.MethodPost, "/api/ingest/teardown", `{"status":"PASSED"}`), httptest.NewRecorder())
		c.Set(principalKey, auth.Principal{UserID: "u1", OrgID: "org-a", Role: auth.RoleDeveloper})
		err := s.ingestTeardownHandler(c)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, err.(*echo.HTTPError).Code)
	})
}

func TestReportFileHandlerRejectsTraversal(t *testing.T) {
	s := &Server{cfg: &config.Config{Reports: config.ReportsConfig{Dir: t.TempDir()}}}

	e := echo.New()
	e.GET("/reports/:orgId/:taskId/*", s.reportFileHandler)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reports/org-a/t1/..%2f..%2f..%2fetc%2fpasswd", nil))

	// Either the path cleans inside the reports dir and misses (404), or the
	// traversal guard fires (400). It must never escape the directory.
	assert.Contains(t, []int{http.StatusBadRequest, http.StatusNotFound}, rec.Code)
}
