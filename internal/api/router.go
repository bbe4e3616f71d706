package api

import (
	v1 "github.com/billfold/billfold/internal/api/v1"
	"github.com/billfold/billfold/internal/logger"
	"github.com/billfold/billfold/internal/rest/middleware"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health   *v1.HealthHandler
	Document *v1.DocumentHandler
}

func NewRouter(handlers Handlers, log *logger.Logger) *gin.Engine {
	router := gin.New()

	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		middleware.ErrorHandler(),
	)

	router.GET("/health", handlers.Health.Health)

	// v1 routes
	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	// Document routes
	documents := router.Group("/documents")
	{
		documents.POST("/render", handlers.Document.RenderDocument)
	}
}
