package test

import (
	"context"

	"github.com/polkiloo/becas/internal/domain/model"
	pkgAuth "github.com/polkiloo/becas/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn   func(string) (string, error)
	VerifyFn func(string, string) (bool, error)
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Verify reports whether hash was produced by Hash for password.
func (h HasherStub) Verify(password, hash string) (bool, error) {
	if h.VerifyFn != nil {
		return h.VerifyFn(password, hash)
	}
	return hash == "hash:"+password, nil
}

// AuthFacadeStub simulates credential verification.
type AuthFacadeStub struct {
	LoginFn func(context.Context, string, string) (*model.PublicUser, error)
}

// Login returns a fixed user unless overridden.
func (s AuthFacadeStub) Login(ctx context.Context, email, password string) (*model.PublicUser, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, email, password)
	}
	return &model.PublicUser{ID: 1, Email: email, Name: "usuario"}, nil
}

// BecasFacadeStub simulates the scholarship catalog.
type BecasFacadeStub struct {
	ListFn func(context.Context) []model.Beca
	AddFn  func(context.Context, string, string) (*model.Beca, error)
}

// Becas returns configured items or a single default beca.
func (s BecasFacadeStub) Becas(ctx context.Context) []model.Beca {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return []model.Beca{{ID: 1, Name: "Beca Deportiva", Description: "Para atletas", Amount: 3500}}
}

// AddBeca echoes the input as a new beca unless overridden.
func (s BecasFacadeStub) AddBeca(ctx context.Context, name, description string) (*model.Beca, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, name, description)
	}
	return &model.Beca{ID: 4, Name: name, Description: description, Amount: 1000}, nil
}

// HealthFacadeStub reports configured store health.
type HealthFacadeStub struct {
	Err error
}

// Health returns the configured error.
func (s HealthFacadeStub) Health(context.Context) error {
	return s.Err
}

// PortalFacadeStub aggregates facade dependencies for HTTP layer tests.
type PortalFacadeStub struct {
	AuthFacadeStub
	BecasFacadeStub
	HealthFacadeStub
}

var _ pkgAuth.PasswordHasher = HasherStub{}
