// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	_ "humanness-tasks/swagger" // Import generated swagger docs

	"humanness-tasks/internal/handler"
	"humanness-tasks/internal/middleware"
	"humanness-tasks/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	CatalogHandler *handler.CatalogHandler
	TaskHandler    *handler.TaskHandler
	SessionHandler *handler.SessionHandler
	NoiseHandler   *handler.NoiseHandler
	TokenManager   auth.TokenManager
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.Default()

	// Global middleware
	r.Use(middleware.CORS())

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1
	v1 := r.Group("/api/v1")
	{
		// Public routes
		v1.GET("/products", cfg.CatalogHandler.ListProducts)
		v1.GET("/tasks", cfg.TaskHandler.ListTasks)
		v1.POST("/sessions", cfg.SessionHandler.CreateSession)

		// Session routes (protected)
		s := v1.Group("/session")
		s.Use(middleware.Auth(cfg.TokenManager))
		{
			s.GET("", cfg.SessionHandler.GetSession)
			s.DELETE("", cfg.SessionHandler.EndSession)
			s.POST("/advance", cfg.SessionHandler.Advance)
			s.POST("/back", cfg.SessionHandler.GoBack)
			s.GET("/history", cfg.SessionHandler.History)

			// Noise check
			s.POST("/noise-test", cfg.NoiseHandler.RunNoiseTest)
			s.GET("/noise-test/stream", cfg.NoiseHandler.StreamNoiseTest)

			// Text reading
			s.GET("/recording", cfg.SessionHandler.RecordingStatus)
			s.POST("/recording/start", cfg.SessionHandler.StartRecording)
			s.POST("/recording/stop", cfg.SessionHandler.StopRecording)
			s.POST("/recording/reset", cfg.SessionHandler.ResetRecording)
			s.POST("/submit", cfg.SessionHandler.Submit)
		}
	}

	return r
}
