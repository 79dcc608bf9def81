package di

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/becas/internal/app"
	"github.com/polkiloo/becas/internal/config"
	"github.com/polkiloo/becas/internal/domain/repository"
	"github.com/polkiloo/becas/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:      ":0",
		DatabaseURI:     "postgres://stub",
		BcryptCost:      4,
		ShutdownTimeout: time.Millisecond,
		LogLevel:        slog.LevelInfo,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	store := test.NewStoreStub()
	if _, err := store.Repo.Create(context.Background(), "usuario@correo.com", "usuario", "unused"); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	var (
		facade *app.PortalFacade
		engine *gin.Engine
	)
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(fx.Annotate(store, fx.As(new(repository.Factory)))),
		),
		fx.Populate(&facade, &engine),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected portal facade instance")
	}

	if err := facade.Health(context.Background()); err != nil {
		t.Fatalf("expected healthy stub store, got %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"nobody@x.com","password":"123"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 through the wired graph, got %d", resp.Code)
	}
	if store.Repo.FindCalls != 1 {
		t.Fatalf("expected one store lookup, got %d", store.Repo.FindCalls)
	}
}
