package main

import (
	"context"
	"time"

	"github.com/billfold/billfold/internal/api"
	v1 "github.com/billfold/billfold/internal/api/v1"
	"github.com/billfold/billfold/internal/config"
	"github.com/billfold/billfold/internal/httpclient"
	"github.com/billfold/billfold/internal/logger"
	"github.com/billfold/billfold/internal/pdfgen"
	"github.com/billfold/billfold/internal/service"
	"github.com/billfold/billfold/internal/validator"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

// @title Billfold API
// @version 1.0
// @description Financial document rendering service
// @BasePath /v1
// @schemes http https

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	app := fx.New(
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// HTTP Client
			httpclient.NewDefaultClient,

			// Rendering engine
			pdfgen.NewEngine,

			// Services
			service.NewPDFService,

			// API
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(startServer),
	)
	app.Run()
}

func provideHandlers(
	logger *logger.Logger,
	pdfService service.PDFService,
) api.Handlers {
	return api.Handlers{
		Health:   v1.NewHealthHandler(logger),
		Document: v1.NewDocumentHandler(pdfService, logger),
	}
}

func provideRouter(handlers api.Handlers, logger *logger.Logger) *gin.Engine {
	return api.NewRouter(handlers, logger)
}

func startServer(
	lc fx.Lifecycle,
	r *gin.Engine,
	cfg *config.Configuration,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting API server...")
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return nil
		},
	})
}
