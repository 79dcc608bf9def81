package dto

import "github.com/polkiloo/becas/internal/domain/model"

// BecaRequest is the payload for creating a beca.
type BecaRequest struct {
	Nombre      string `json:"nombre" mod:"trim" validate:"required"`
	Descripcion string `json:"descripcion" mod:"trim" validate:"required"`
}

// BecaResponse represents a beca in API responses.
type BecaResponse struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	Monto       int64  `json:"monto"`
}

// NewBecaResponse converts domain beca to response DTO.
func NewBecaResponse(b model.Beca) BecaResponse {
	return BecaResponse{
		ID:          b.ID,
		Nombre:      b.Name,
		Descripcion: b.Description,
		Monto:       b.Amount,
	}
}

// NewBecaList converts a slice of becas, never returning nil.
func NewBecaList(items []model.Beca) []BecaResponse {
	out := make([]BecaResponse, 0, len(items))
	for _, b := range items {
		out = append(out, NewBecaResponse(b))
	}
	return out
}
