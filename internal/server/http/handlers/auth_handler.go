package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/becas/internal/server/http/dto"
	"github.com/polkiloo/becas/internal/server/http/middleware"
	"github.com/polkiloo/becas/internal/usecase"
)

// AuthHandler processes login.
type AuthHandler struct {
	facade AuthFacade
	logger *slog.Logger
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{facade: facade, logger: logger}
}

// Login handles POST /api/auth/login.
//
// Credentials never reach the log; only the outcome and the request id do.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: msgMissingCredentials})
		return
	}

	user, err := h.facade.Login(c.Request.Context(), req.Email, req.Password)
	requestID := slog.String("request_id", middleware.RequestIDFrom(c))
	switch usecase.OutcomeOf(err) {
	case usecase.OutcomeSuccess:
		c.JSON(http.StatusOK, dto.LoginResponse{Message: msgLoginOK, User: user})
	case usecase.OutcomeMalformedRequest:
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: msgMissingCredentials})
	case usecase.OutcomeInvalidCredentials:
		h.logger.Debug("login rejected", requestID)
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: msgInvalidCredentials})
	default:
		h.logger.Error("login failed", requestID, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: msgServerError})
	}
}
