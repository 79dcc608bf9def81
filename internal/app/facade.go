package app

import (
	"context"

	"github.com/polkiloo/becas/internal/domain/model"
	"github.com/polkiloo/becas/internal/domain/repository"
	"github.com/polkiloo/becas/internal/usecase"
)

// PortalFacade exposes the use cases the HTTP layer needs.
type PortalFacade struct {
	auth  *usecase.AuthUseCase
	becas *usecase.BecaUseCase
	store repository.Factory
}

func NewPortalFacade(auth *usecase.AuthUseCase, becas *usecase.BecaUseCase, store repository.Factory) *PortalFacade {
	return &PortalFacade{auth: auth, becas: becas, store: store}
}

func (f *PortalFacade) Login(ctx context.Context, email, password string) (*model.PublicUser, error) {
	return f.auth.Verify(ctx, email, password)
}

func (f *PortalFacade) Becas(ctx context.Context) []model.Beca {
	return f.becas.List(ctx)
}

func (f *PortalFacade) AddBeca(ctx context.Context, name, description string) (*model.Beca, error) {
	return f.becas.Add(ctx, name, description)
}

// Health reports whether the credential store answers.
func (f *PortalFacade) Health(ctx context.Context) error {
	return f.store.HealthCheck(ctx)
}
