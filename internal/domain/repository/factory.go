package repository

import "context"

// Factory describes a credential store backend.
type Factory interface {
	Users() UserRepository
	HealthCheck(ctx context.Context) error
	Close()
}
