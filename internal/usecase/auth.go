package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domainErrors "github.com/polkiloo/becas/internal/domain/errors"
	"github.com/polkiloo/becas/internal/domain/model"
	"github.com/polkiloo/becas/internal/domain/repository"
	pkgAuth "github.com/polkiloo/becas/internal/pkg/auth"
)

// decoyPassword is hashed when the use case is built and compared against
// when the email is unknown, so both failure branches pay for one hash
// comparison.
const decoyPassword = "becas-decoy-password"

// Outcome is the kind of result a login verification produced.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeMalformedRequest
	OutcomeInvalidCredentials
	OutcomeStoreUnavailable
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeMalformedRequest:
		return "malformed_request"
	case OutcomeInvalidCredentials:
		return "invalid_credentials"
	case OutcomeStoreUnavailable:
		return "store_unavailable"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// OutcomeOf classifies an error returned by Verify.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, domainErrors.ErrMalformedRequest):
		return OutcomeMalformedRequest
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		return OutcomeInvalidCredentials
	default:
		return OutcomeStoreUnavailable
	}
}

// AuthUseCase verifies credentials against the credential store.
type AuthUseCase struct {
	users     repository.UserRepository
	hasher    pkgAuth.PasswordHasher
	decoyHash string
}

// NewAuthUseCase constructs AuthUseCase. If the decoy hash cannot be
// computed, unknown emails skip the decoy comparison.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher) *AuthUseCase {
	decoy, err := hasher.Hash(decoyPassword)
	if err != nil {
		decoy = ""
	}
	return &AuthUseCase{users: users, hasher: hasher, decoyHash: decoy}
}

// Verify checks email and password and returns the matching user without
// its password hash.
//
// Email and password are used exactly as given; only empty values are
// malformed. Unknown emails and wrong passwords both yield
// ErrInvalidCredentials.
// Failures of the store or the hasher are wrapped with ErrStoreUnavailable.
// Nothing is persisted and no session is created.
func (u *AuthUseCase) Verify(ctx context.Context, email, password string) (*model.PublicUser, error) {
	if email == "" || password == "" {
		return nil, domainErrors.ErrMalformedRequest
	}

	usr, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			u.compareDecoy(password)
			return nil, domainErrors.ErrInvalidCredentials
		}
		return nil, domainErrors.Unavailable(fmt.Errorf("find user: %w", err))
	}

	ok, err := u.hasher.Verify(password, usr.PasswordHash)
	if err != nil {
		return nil, domainErrors.Unavailable(fmt.Errorf("verify password: %w", err))
	}
	if !ok {
		return nil, domainErrors.ErrInvalidCredentials
	}

	return usr.Public(), nil
}

func (u *AuthUseCase) compareDecoy(password string) {
	if u.decoyHash != "" {
		_, _ = u.hasher.Verify(password, u.decoyHash)
	}
}

// Register creates a user with a freshly hashed password. The email is
// stored as given, matching the exact lookup done by Verify.
func (u *AuthUseCase) Register(ctx context.Context, email, name, password string) (*model.PublicUser, error) {
	name = strings.TrimSpace(name)
	if email == "" || password == "" {
		return nil, domainErrors.ErrMalformedRequest
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	usr, err := u.users.Create(ctx, email, name, hash)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, domainErrors.Unavailable(fmt.Errorf("create user: %w", err))
	}

	return usr.Public(), nil
}
