package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/polkiloo/becas/internal/config"
	domainErrors "github.com/polkiloo/becas/internal/domain/errors"
	pkgAuth "github.com/polkiloo/becas/internal/pkg/auth"
	"github.com/polkiloo/becas/internal/storage"
	"github.com/polkiloo/becas/internal/usecase"
)

const (
	defaultEmail    = "usuario@correo.com"
	defaultName     = "usuario"
	defaultPassword = "123"
)

type seedOptions struct {
	Config   *config.Config
	Email    string
	Name     string
	Password string
}

// parseOptions reads the shared service configuration plus the SEED_* keys.
func parseOptions(args []string, lookup config.Lookup) (seedOptions, error) {
	fs := flag.NewFlagSet("becas-seed", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	finish := config.Bind(fs, lookup)

	opts := seedOptions{}
	fs.StringVar(&opts.Email, "email", config.Env(lookup, "SEED_EMAIL", defaultEmail), "Email of the seeded user")
	fs.StringVar(&opts.Name, "name", config.Env(lookup, "SEED_NAME", defaultName), "Display name of the seeded user")
	fs.StringVar(&opts.Password, "password", config.Env(lookup, "SEED_PASSWORD", defaultPassword), "Password of the seeded user")
	if err := fs.Parse(args); err != nil {
		return opts, fmt.Errorf("parse flags: %w", err)
	}

	cfg, err := finish()
	if err != nil {
		return opts, err
	}
	opts.Config = cfg
	return opts, nil
}

// seed registers the configured user. An existing user is left untouched.
func seed(ctx context.Context, opts seedOptions, logger *slog.Logger) error {
	store, err := storage.Open(ctx, opts.Config.DatabaseURI, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	uc := usecase.NewAuthUseCase(store.Users(), pkgAuth.NewBcryptHasher(opts.Config.BcryptCost))
	user, err := uc.Register(ctx, opts.Email, opts.Name, opts.Password)
	switch {
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		logger.Info("seed user already present")
		return nil
	case err != nil:
		return fmt.Errorf("register seed user: %w", err)
	}

	logger.Info("seed user created", slog.Int64("id", user.ID))
	return nil
}
