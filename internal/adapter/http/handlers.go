package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	started time.Time
}

func NewHandler() *Handler { return &Handler{started: time.Now()} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
		"uptime": time.Since(h.started).Round(time.Millisecond).String(),
	})
}
