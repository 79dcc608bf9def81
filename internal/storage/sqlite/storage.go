// Package sqlite implements the credential store on top of an embedded SQLite
// database. It is meant for local runs and tests.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/pressly/goose/v3"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	domainErrors "github.com/polkiloo/becas/internal/domain/errors"
	"github.com/polkiloo/becas/internal/domain/model"
	"github.com/polkiloo/becas/internal/domain/repository"
	"github.com/polkiloo/becas/internal/storage/migrations"
)

// Storage is the credential store backed by SQLite.
type Storage struct {
	db        *sql.DB
	logger    *slog.Logger
	writeLock sync.Mutex // sqlite serializes writers
	now       func() time.Time
}

type userRepository struct {
	storage *Storage
}

var _ repository.Factory = (*Storage)(nil)

// New opens the database at path and applies pending migrations.
func New(ctx context.Context, path string, logger *slog.Logger) (*Storage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	// Every connection to an in-memory database sees its own empty database.
	// Recycling that single connection would drop the data.
	if isMemory(path) {
		db.SetMaxOpenConns(1)
	} else {
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}

	if err := migrations.Up(ctx, db, goose.DialectSQLite3); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	logger.Info("sqlite credential store ready", slog.String("path", path))
	return &Storage{db: db, logger: logger, now: time.Now}, nil
}

func isMemory(path string) bool {
	return strings.Contains(path, ":memory:") || strings.Contains(path, "mode=memory")
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Warn("close sqlite", slog.String("error", err.Error()))
		}
	}
}

// Users returns the user repository.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

// HealthCheck verifies the database is reachable.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.db.PingContext(ctx)
}

func (r *userRepository) Create(ctx context.Context, email, name, passwordHash string) (*model.User, error) {
	r.storage.writeLock.Lock()
	defer r.storage.writeLock.Unlock()

	now := r.storage.now().UTC().Truncate(time.Second)
	res, err := r.storage.db.ExecContext(ctx,
		"INSERT INTO users (email, nombre, password_hash, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		email, name, passwordHash, now.Unix(), now.Unix(),
	)
	if err != nil {
		var liteErr *sqlite.Error
		if errors.As(err, &liteErr) && liteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("read user id: %w", err)
	}

	return &model.User{
		ID:           id,
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var (
		u                model.User
		created, updated int64
	)
	err := r.storage.db.QueryRowContext(ctx,
		"SELECT id, email, nombre, password_hash, created_at, updated_at FROM users WHERE email = ?",
		email,
	).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &created, &updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, fmt.Errorf("query user: %w", err)
	}
	u.CreatedAt = time.Unix(created, 0).UTC()
	u.UpdatedAt = time.Unix(updated, 0).UTC()
	return &u, nil
}
