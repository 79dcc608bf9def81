package test

import (
	"context"
	"time"

	domainErrors "github.com/polkiloo/becas/internal/domain/errors"
	"github.com/polkiloo/becas/internal/domain/model"
	"github.com/polkiloo/becas/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users     map[string]*model.User
	Next      int64
	Err       error
	FindCalls int
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, email, name, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	now := time.Now().UTC()
	user := &model.User{
		ID:           s.Next,
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.Next++
	s.Users[email] = user
	return user, nil
}

// FindByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	s.FindCalls++
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// StoreStub is an in-memory credential store backend.
type StoreStub struct {
	Repo      *UserRepositoryStub
	HealthErr error
	Closed    bool
}

// NewStoreStub constructs StoreStub with an empty user repository.
func NewStoreStub() *StoreStub {
	return &StoreStub{Repo: NewUserRepositoryStub()}
}

// Users returns the backing user repository stub.
func (s *StoreStub) Users() repository.UserRepository {
	return s.Repo
}

// HealthCheck returns the configured error.
func (s *StoreStub) HealthCheck(context.Context) error {
	return s.HealthErr
}

// Close marks the store closed.
func (s *StoreStub) Close() {
	s.Closed = true
}

var _ repository.Factory = (*StoreStub)(nil)
