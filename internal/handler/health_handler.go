package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"lingorelay/internal/db"
)

// HealthHandler reports process and store health.
type HealthHandler struct {
	gormDB *gorm.DB
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(gormDB *gorm.DB) *HealthHandler {
	return &HealthHandler{gormDB: gormDB}
}

// HealthResponse represents a health check response.
type HealthResponse struct {
	Status         string `json:"status"`
	StoreConnected bool   `json:"storeConnected"`
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c echo.Context) error {
	connected := db.Ping(c.Request().Context(), h.gormDB) == nil
	return c.JSON(http.StatusOK, HealthResponse{
		Status:         "ok",
		StoreConnected: connected,
	})
}
