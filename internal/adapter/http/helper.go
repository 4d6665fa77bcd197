package http

import (
	"errors"
	"net/http"
	"strings"

	"rentease-backend/internal/domain/fault"

	"github.com/labstack/echo/v4"
)

// envelope is the uniform response body: {success, message?, data?}.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func ok(c echo.Context, status int, data any) error {
	return c.JSON(status, envelope{Success: true, Data: data})
}

func okMsg(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, envelope{Success: true, Message: message, Data: data})
}

// writeErr maps the usecase error taxonomy to status codes. Anything
// outside the taxonomy is a 500 with no detail leaked.
func writeErr(c echo.Context, err error) error {
	switch {
	case fault.IsValidation(err):
		return c.JSON(http.StatusBadRequest, envelope{Success: false, Message: err.Error()})
	case fault.IsNotFound(err):
		return c.JSON(http.StatusNotFound, envelope{Success: false, Message: err.Error()})
	case fault.IsStateConflict(err):
		return c.JSON(http.StatusConflict, envelope{Success: false, Message: err.Error()})
	case errors.Is(err, fault.ErrSignatureMismatch):
		return c.JSON(http.StatusBadRequest, envelope{Success: false, Message: err.Error()})
	}
	c.Logger().Errorf("internal error on %s %s: %v", c.Request().Method, c.Path(), err)
	return c.JSON(http.StatusInternalServerError, envelope{Success: false, Message: "internal error"})
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, envelope{Success: false, Message: msg})
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, envelope{Success: false, Message: "authentication required"})
}

// ---- test helpers ----

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
