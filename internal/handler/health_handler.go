package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"userservice/internal/errors"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler reports liveness of the service and its datastore.
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler creates a health handler.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Healthz answers 200 "ok" when the database responds to a ping.
func (h *HealthHandler) Healthz(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, errors.ErrorResponse{
			Error: "database unavailable",
			Code:  "DB_UNAVAILABLE",
		}).SetInternal(err)
	}
	return c.String(http.StatusOK, "ok")
}
