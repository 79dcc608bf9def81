package router

import (
	"go.uber.org/fx"

	"github.com/polkiloo/becas/internal/app"
	"github.com/polkiloo/becas/internal/server/http/handlers"
)

// Module builds the gin engine on top of the application facade.
var Module = fx.Options(
	fx.Provide(func(f *app.PortalFacade) handlers.PortalFacade { return f }),
	fx.Provide(Setup),
)
