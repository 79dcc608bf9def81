package handlers

import (
	"context"

	"github.com/polkiloo/becas/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Login(ctx context.Context, email, password string) (*model.PublicUser, error)
}

// BecasFacade exposes the scholarship catalog.
type BecasFacade interface {
	Becas(ctx context.Context) []model.Beca
	AddBeca(ctx context.Context, name, description string) (*model.Beca, error)
}

// HealthFacade reports backing store health.
type HealthFacade interface {
	Health(ctx context.Context) error
}

// PortalFacade aggregates the full set of operations used across handlers.
type PortalFacade interface {
	AuthFacade
	BecasFacade
	HealthFacade
}
