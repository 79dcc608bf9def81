package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/becas/internal/domain/errors"
	"github.com/polkiloo/becas/internal/server/http/dto"
	"github.com/polkiloo/becas/internal/server/http/middleware"
)

// BecaHandler serves the scholarship catalog.
type BecaHandler struct {
	facade BecasFacade
	logger *slog.Logger
}

// NewBecaHandler creates BecaHandler instance.
func NewBecaHandler(facade BecasFacade, logger *slog.Logger) *BecaHandler {
	return &BecaHandler{facade: facade, logger: logger}
}

// List handles GET /api/becas.
func (h *BecaHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewBecaList(h.facade.Becas(c.Request.Context())))
}

// Create handles POST /api/becas.
func (h *BecaHandler) Create(c *gin.Context) {
	var req dto.BecaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: msgMissingBecaFields})
		return
	}
	if err := normalizeForm(c.Request.Context(), &req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: msgMissingBecaFields})
		return
	}

	beca, err := h.facade.AddBeca(c.Request.Context(), req.Nombre, req.Descripcion)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidBeca) {
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: msgMissingBecaFields})
			return
		}
		h.logger.Error("add beca failed",
			slog.String("request_id", middleware.RequestIDFrom(c)),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: msgServerError})
		return
	}

	c.JSON(http.StatusCreated, dto.NewBecaResponse(*beca))
}
