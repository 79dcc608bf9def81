package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/becas/internal/server/http/handlers"
	"github.com/polkiloo/becas/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.PortalFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade, logger)
	becaHandler := handlers.NewBecaHandler(facade, logger)
	statusHandler := handlers.NewStatusHandler(facade, logger)

	engine.GET("/", statusHandler.Root)

	api := engine.Group("/api")
	api.GET("/health", statusHandler.Health)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/becas", becaHandler.List)
	api.POST("/becas", becaHandler.Create)

	return engine
}
