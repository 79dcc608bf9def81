package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	domainErrors "github.com/polkiloo/becas/internal/domain/errors"
	pkgAuth "github.com/polkiloo/becas/internal/pkg/auth"
	testhelpers "github.com/polkiloo/becas/internal/test"
)

func seededVerifier(t *testing.T) (*AuthUseCase, *testhelpers.UserRepositoryStub) {
	t.Helper()
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, pkgAuth.NewBcryptHasher(bcrypt.MinCost))
	_, err := uc.Register(context.Background(), "usuario@correo.com", "usuario", "123")
	require.NoError(t, err)
	return uc, repo
}

func TestVerifyScenario(t *testing.T) {
	uc, _ := seededVerifier(t)
	ctx := context.Background()

	user, err := uc.Verify(ctx, "usuario@correo.com", "123")
	require.NoError(t, err)
	assert.Equal(t, OutcomeSuccess, OutcomeOf(err))
	assert.Equal(t, "usuario@correo.com", user.Email)
	assert.Equal(t, "usuario", user.Name)

	_, err = uc.Verify(ctx, "usuario@correo.com", "wrong")
	assert.Equal(t, OutcomeInvalidCredentials, OutcomeOf(err))

	_, err = uc.Verify(ctx, "nobody@x.com", "123")
	assert.Equal(t, OutcomeInvalidCredentials, OutcomeOf(err))

	_, err = uc.Verify(ctx, "", "123")
	assert.Equal(t, OutcomeMalformedRequest, OutcomeOf(err))
}

func TestVerifySuccessNeverCarriesHash(t *testing.T) {
	uc, repo := seededVerifier(t)

	user, err := uc.Verify(context.Background(), "usuario@correo.com", "123")
	require.NoError(t, err)

	raw, err := json.Marshal(user)
	require.NoError(t, err)
	stored := repo.Users["usuario@correo.com"].PasswordHash
	assert.NotContains(t, string(raw), stored)
	assert.NotContains(t, strings.ToLower(string(raw)), "password")
	assert.NotContains(t, strings.ToLower(string(raw)), "hash")
}

func TestVerifyUnknownEmailAndWrongPasswordAreIndistinguishable(t *testing.T) {
	uc, _ := seededVerifier(t)
	ctx := context.Background()

	userA, errWrong := uc.Verify(ctx, "usuario@correo.com", "wrong")
	userB, errMissing := uc.Verify(ctx, "nobody@x.com", "wrong")

	assert.Nil(t, userA)
	assert.Nil(t, userB)
	assert.Equal(t, errWrong, errMissing)
	assert.Equal(t, errWrong.Error(), errMissing.Error())
}

func TestVerifyComparesHashForUnknownEmail(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	var compared []string
	hasher := testhelpers.HasherStub{VerifyFn: func(password, hash string) (bool, error) {
		compared = append(compared, hash)
		return false, nil
	}}
	uc := NewAuthUseCase(repo, hasher)

	_, err := uc.Verify(context.Background(), "nobody@x.com", "123")
	assert.ErrorIs(t, err, domainErrors.ErrInvalidCredentials)
	require.Len(t, compared, 1)
	assert.Equal(t, "hash:"+decoyPassword, compared[0])

	_, _ = uc.Verify(context.Background(), "nobody@x.com", "456")
	assert.Len(t, compared, 2, "decoy comparison runs on every miss")
}

func TestVerifySkipsDecoyWhenHashingFails(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	verifies := 0
	hasher := testhelpers.HasherStub{
		HashFn: func(string) (string, error) { return "", errors.New("no entropy") },
		VerifyFn: func(string, string) (bool, error) {
			verifies++
			return false, nil
		},
	}
	uc := NewAuthUseCase(repo, hasher)

	_, err := uc.Verify(context.Background(), "nobody@x.com", "123")
	assert.ErrorIs(t, err, domainErrors.ErrInvalidCredentials)
	assert.Zero(t, verifies)
}

func TestVerifyIsIdempotent(t *testing.T) {
	uc, _ := seededVerifier(t)
	ctx := context.Background()

	inputs := []struct{ email, password string }{
		{"usuario@correo.com", "123"},
		{"usuario@correo.com", "wrong"},
		{"nobody@x.com", "123"},
		{"", "123"},
		{"usuario@correo.com", ""},
	}
	for _, in := range inputs {
		_, first := uc.Verify(ctx, in.email, in.password)
		for i := 0; i < 3; i++ {
			_, again := uc.Verify(ctx, in.email, in.password)
			assert.Equal(t, OutcomeOf(first), OutcomeOf(again), "input %q/%q", in.email, in.password)
		}
	}
}

func TestVerifyMalformedNeverTouchesStore(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{})

	for _, in := range []struct{ email, password string }{
		{"", ""},
		{"", "123"},
		{"usuario@correo.com", ""},
	} {
		_, err := uc.Verify(context.Background(), in.email, in.password)
		assert.ErrorIs(t, err, domainErrors.ErrMalformedRequest)
	}
	assert.Zero(t, repo.FindCalls)
}

func TestVerifyStoreFailureIsNotInvalidCredentials(t *testing.T) {
	uc, repo := seededVerifier(t)
	repo.Err = errors.New("connection refused")

	_, err := uc.Verify(context.Background(), "usuario@correo.com", "123")
	assert.Equal(t, OutcomeStoreUnavailable, OutcomeOf(err))
	assert.NotErrorIs(t, err, domainErrors.ErrInvalidCredentials)
}

func TestVerifyCorruptStoredHash(t *testing.T) {
	uc, repo := seededVerifier(t)
	repo.Users["usuario@correo.com"].PasswordHash = "garbage"

	_, err := uc.Verify(context.Background(), "usuario@correo.com", "123")
	assert.Equal(t, OutcomeStoreUnavailable, OutcomeOf(err))
}

func TestVerifyWhitespaceEmailIsLookedUp(t *testing.T) {
	uc, repo := seededVerifier(t)

	_, err := uc.Verify(context.Background(), " \t", "123")
	assert.ErrorIs(t, err, domainErrors.ErrInvalidCredentials)
	assert.Equal(t, 1, repo.FindCalls)

	_, err = uc.Verify(context.Background(), " usuario@correo.com ", "123")
	assert.ErrorIs(t, err, domainErrors.ErrInvalidCredentials, "emails are matched exactly")
}

func TestVerifyDecoyHashIsBuiltUpFront(t *testing.T) {
	var hashes, verifies int
	hasher := testhelpers.HasherStub{
		HashFn: func(password string) (string, error) {
			hashes++
			return "hash:" + password, nil
		},
		VerifyFn: func(string, string) (bool, error) {
			verifies++
			return false, nil
		},
	}

	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), hasher)
	require.Equal(t, 1, hashes)

	_, err := uc.Verify(context.Background(), "nobody@x.com", "123")
	assert.ErrorIs(t, err, domainErrors.ErrInvalidCredentials)
	assert.Equal(t, 1, hashes, "first unknown email pays only for a comparison")
	assert.Equal(t, 1, verifies)
}
