package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agnox-io/agnox/pkg/auth"
	"github.com/agnox-io/agnox/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{
			name:       "validation error maps to 400",
			err:        services.NewValidationError("name", "required"),
			expectCode: http.StatusBadRequest,
			expectMsg:  "required",
		},
		{
			name:       "not found maps to 404",
			err:        fmt.Errorf("wrapped: %w", services.ErrNotFound),
			expectCode: http.StatusNotFound,
			expectMsg:  "resource not found",
		},
		{
			name:       "already exists maps to 409",
			err:        fmt.Errorf("wrapped: %w", services.ErrAlreadyExists),
			expectCode: http.StatusConflict,
			expectMsg:  "resource already exists",
		},
		{
			name:       "invalid credentials maps to 401",
			err:        services.ErrInvalidCredentials,
			expectCode: http.StatusUnauthorized,
			expectMsg:  "invalid credentials",
		},
		{
			name:       "forbidden maps to 403",
			err:        services.ErrForbidden,
			expectCode: http.StatusForbidden,
			expectMsg:  "Insufficient permissions",
		},
		{
			name:       "last admin maps to 409",
			err:        services.ErrLastAdmin,
			expectCode: http.StatusConflict,
			expectMsg:  "at least one admin",
		},
		{
			name:       "self role change maps to 403",
			err:        services.ErrSelfRoleChange,
			expectCode: http.StatusForbidden,
			expectMsg:  "You cannot change your own role",
		},
		{
			name:       "expired token maps to 401",
			err:        auth.ErrExpiredToken,
			expectCode: http.StatusUnauthorized,
			expectMsg:  "invalid or expired credential",
		},
		{
			name:       "unknown error maps to 500",
			err:        fmt.Errorf("something unexpected happened"),
			expectCode: http.StatusInternalServerError,
			expectMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := mapServiceError(tt.err)
			assert.IsType(t, &echo.HTTPError{}, he)
			assert.Equal(t, tt.expectCode, he.Code)
			assert.Contains(t, he.Error(), tt.expectMsg)
		})
	}
}

func TestMapServiceErrorPlanLimit(t *testing.T) {
	he := mapServiceError(&services.LimitExceededError{
		Action:  services.ActionRunTest,
		Limit:   100,
		Current: 100,
	})

	assert.Equal(t, http.StatusForbidden, he.Code)
	envelope, ok := he.Message.(ErrorEnvelope)
	require.True(t, ok)
	assert.Equal(t, "Plan limit exceeded", envelope.Error)
	require.NotNil(t, envelope.Limit)
	require.NotNil(t, envelope.Current)
	assert.Equal(t, 100, *envelope.Limit)
	assert.Equal(t, 100, *envelope.Current)
}

func TestHTTPErrorHandlerEnvelope(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = httpErrorHandler
	e.GET("/missing", func(c *echo.Context) error {
		return mapServiceError(services.ErrNotFound)
	})
	e.GET("/limited", func(c *echo.Context) error {
		return mapServiceError(&services.LimitExceededError{Action: services.ActionRunTest, Limit: 5, Current: 5})
	})
	e.GET("/boom", func(c *echo.Context) error {
		return fmt.Errorf("internal detail that must not leak")
	})

	t.Run("not found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		var envelope ErrorEnvelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.False(t, envelope.Success)
		assert.Equal(t, "resource not found", envelope.Error)
	})

	t.Run("plan limit carries limit and current", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/limited", nil))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		var envelope ErrorEnvelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.Equal(t, "Plan limit exceeded", envelope.Error)
		require.NotNil(t, envelope.Limit)
		assert.Equal(t, 5, *envelope.Limit)
	})

	t.Run("internals never leak", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "internal detail")
	})
}
