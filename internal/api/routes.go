package api

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/playmatatu/pong/internal/api/handlers"
	"github.com/playmatatu/pong/internal/config"
	"github.com/playmatatu/pong/internal/middleware"
	"github.com/playmatatu/pong/internal/session"
	"github.com/playmatatu/pong/internal/ws"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, cfg *config.Config, frames handlers.FrameSource, hub *ws.Hub, sessions *session.Manager) {
	router.Use(middleware.CORSMiddleware(cfg))

	if cfg.Environment != "production" {
		router.Use(func(c *gin.Context) {
			c.Header("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
			c.Header("Pragma", "no-cache")
			c.Header("Expires", "0")
			c.Next()
		})
		log.Println("[DEV MODE] No-cache headers enabled for all routes")
	}

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", handlers.HealthCheck)
		v1.GET("/config", handlers.GetConfig(cfg, sessions.PINRequired()))
		v1.GET("/state", handlers.GetGameState(frames))

		// Controller sessions
		v1.POST("/session", handlers.CreateSession(sessions))

		// Frames, cues and input
		v1.GET("/ws", middleware.WebSocketCORSCheck(cfg), handlers.HandleGameWebSocket(hub, sessions))
	}
}
