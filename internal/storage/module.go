// Package storage selects and wires the credential store backend.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"go.uber.org/fx"

	"github.com/polkiloo/becas/internal/config"
	"github.com/polkiloo/becas/internal/domain/repository"
	"github.com/polkiloo/becas/internal/storage/postgres"
	"github.com/polkiloo/becas/internal/storage/sqlite"
)

// Module wires the credential store and its user repository.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(func(s repository.Factory) repository.UserRepository { return s.Users() }),
	fx.Invoke(registerLifecycle),
)

var (
	openPostgres = func(ctx context.Context, dsn string, logger *slog.Logger) (repository.Factory, error) {
		st, err := postgres.New(ctx, dsn, logger)
		if err != nil {
			return nil, err
		}
		return st, nil
	}
	openSQLite = func(ctx context.Context, path string, logger *slog.Logger) (repository.Factory, error) {
		st, err := sqlite.New(ctx, path, logger)
		if err != nil {
			return nil, err
		}
		return st, nil
	}
)

// Open connects to the backend named by the DSN scheme.
func Open(ctx context.Context, dsn string, logger *slog.Logger) (repository.Factory, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return openPostgres(ctx, dsn, logger)
	case strings.HasPrefix(dsn, "sqlite://"):
		return openSQLite(ctx, strings.TrimPrefix(dsn, "sqlite://"), logger)
	case strings.HasPrefix(dsn, "sqlite:"):
		return openSQLite(ctx, strings.TrimPrefix(dsn, "sqlite:"), logger)
	case strings.HasPrefix(dsn, "file:"):
		return openSQLite(ctx, dsn, logger)
	default:
		return nil, fmt.Errorf("unsupported database uri scheme in %q", redact(dsn))
	}
}

func redact(dsn string) string {
	if i := strings.Index(dsn, "://"); i >= 0 {
		return dsn[:i+3] + "..."
	}
	if i := strings.Index(dsn, ":"); i >= 0 {
		return dsn[:i+1] + "..."
	}
	return "..."
}

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (repository.Factory, error) {
	return Open(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, storage repository.Factory) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
