package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/becas/internal/server/http/dto"
)

// StatusHandler answers liveness and readiness probes.
type StatusHandler struct {
	facade HealthFacade
	logger *slog.Logger
}

// NewStatusHandler creates StatusHandler instance.
func NewStatusHandler(facade HealthFacade, logger *slog.Logger) *StatusHandler {
	return &StatusHandler{facade: facade, logger: logger}
}

// Root handles GET /.
func (h *StatusHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, dto.StatusResponse{Status: "online", Message: msgWelcome})
}

// Health handles GET /api/health.
func (h *StatusHandler) Health(c *gin.Context) {
	if err := h.facade.Health(c.Request.Context()); err != nil {
		h.logger.Warn("store health check failed", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, dto.StatusResponse{Status: "unavailable"})
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Status: "ok"})
}
