package dto

import "github.com/polkiloo/becas/internal/domain/model"

// LoginRequest describes email/password payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Message string            `json:"message"`
	User    *model.PublicUser `json:"user"`
}

// MessageResponse carries a human readable message.
type MessageResponse struct {
	Message string `json:"message"`
}
