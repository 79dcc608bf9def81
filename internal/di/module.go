package di

import (
	"github.com/polkiloo/becas/internal/app"
	"github.com/polkiloo/becas/internal/config"
	"github.com/polkiloo/becas/internal/logger"
	"github.com/polkiloo/becas/internal/pkg/auth"
	"github.com/polkiloo/becas/internal/server/http/router"
	"github.com/polkiloo/becas/internal/storage"
	"github.com/polkiloo/becas/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		storage.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
