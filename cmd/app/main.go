package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"tourgether/cmd/fx/ai_fx"
	"tourgether/cmd/fx/catalog_fx"
	"tourgether/cmd/fx/db_fx"
	"tourgether/cmd/fx/itinerary_fx"
	"tourgether/cmd/fx/logger_fx"
	"tourgether/cmd/fx/memcache_fx"
	"tourgether/cmd/fx/websearch_fx"
	"tourgether/internal/api/controllers"
	"tourgether/pkg/middleware"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		logger_fx.Module,
		db_fx.Module,
		ai_fx.Module,
		memcache_fx.Module,
		websearch_fx.Module,
		catalog_fx.Module,
		itinerary_fx.Module,

		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func ProvideRouter(
	itineraryController *controllers.ItineraryController,
	searchController *controllers.SearchController,
	importController *controllers.ImportController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, itineraryController, searchController, importController)

	return r
}

func RegisterRoutes(
	r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	searchController *controllers.SearchController,
	importController *controllers.ImportController,
) {
	api := r.Group("/api")
	api.Use(middleware.OptionalAuthMiddleware())
	api.POST("/itineraries/generate", itineraryController.GenerateItineraryHandler)
	api.POST("/search", searchController.SearchHandler)

	admin := r.Group("/api/admin")
	admin.Use(middleware.RequireAuthMiddleware())
	admin.POST("/import", importController.ImportHandler)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, logger *zap.Logger) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("starting HTTP server", zap.String("port", port))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
