package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/agnox-io/agnox/pkg/auth"
	"github.com/agnox-io/agnox/pkg/services"
)

// ErrorEnvelope is the wire shape of every error response.
type ErrorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Limit   *int   `json:"limit,omitempty"`
	Current *int   `json:"current,omitempty"`
}

// mapServiceError maps service-layer errors to HTTP error responses.
func mapServiceError(err error) *echo.HTTPError {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return echo.NewHTTPError(http.StatusBadRequest, validErr.Error())
	}

	var limitErr *services.LimitExceededError
	if errors.As(err, &limitErr) {
		return echo.NewHTTPError(http.StatusForbidden, ErrorEnvelope{
			Error:   "Plan limit exceeded",
			Message: limitErr.Error(),
			Limit:   &limitErr.Limit,
			Current: &limitErr.Current,
		})
	}

	switch {
	case errors.Is(err, services.ErrNotFound):
		// Cross-tenant lookups land here too; 404 never discloses whether
		// the resource exists in another org.
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	case errors.Is(err, services.ErrAlreadyExists):
		return echo.NewHTTPError(http.StatusConflict, "resource already exists")
	case errors.Is(err, services.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, services.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, "Insufficient permissions")
	case errors.Is(err, services.ErrLastAdmin):
		return echo.NewHTTPError(http.StatusConflict, "organization must keep at least one admin")
	case errors.Is(err, services.ErrSelfRoleChange):
		return echo.NewHTTPError(http.StatusForbidden, "You cannot change your own role")
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrExpiredToken):
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired credential")
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}

// httpErrorHandler renders every error as the {success:false, ...} envelope.
// Stack traces and wrapped internals never reach the caller.
func httpErrorHandler(c *echo.Context, err error) {
	if r, _ := echo.UnwrapResponse(c.Response()); r != nil && r.Committed {
		return
	}

	code := http.StatusInternalServerError
	envelope := ErrorEnvelope{Error: "internal server error"}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		switch msg := he.Message.(type) {
		case ErrorEnvelope:
			envelope = msg
		case string:
			envelope.Error = msg
		default:
			envelope.Error = http.StatusText(code)
		}
	} else {
		slog.Error("Unhandled error reached the error handler", "error", err)
	}

	if c.Request().Method == http.MethodHead {
		if err := c.NoContent(code); err != nil {
			slog.Warn("Failed to write error response", "error", err)
		}
		return
	}
	if err := c.JSON(code, envelope); err != nil {
		slog.Warn("Failed to write error response", "error", err)
	}
}
