package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/playmatatu/pong/internal/api"
	"github.com/playmatatu/pong/internal/config"
	"github.com/playmatatu/pong/internal/game"
	"github.com/playmatatu/pong/internal/redis"
	"github.com/playmatatu/pong/internal/session"
	"github.com/playmatatu/pong/internal/ws"
)

func main() {
	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := ws.NewHub()
	go hub.Run(ctx)

	renderers := game.MultiRenderer{hub}
	audio := game.MultiAudio{hub}

	// Redis mirroring is optional
	if cfg.RedisURL != "" {
		rdb, err := redis.Connect(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer rdb.Close()

		pub := redis.NewPublisher(rdb, cfg.RedisPublishEvery)
		go pub.Run(ctx)
		renderers = append(renderers, pub)
		audio = append(audio, pub)
		redis.StartInputRelay(ctx, rdb, hub.Input())
		log.Printf("[REDIS] Publishing frames and cues, relaying input")
	} else {
		log.Printf("[REDIS] REDIS_URL not set, frames are not published")
	}

	sessions := session.NewManager(cfg.JWTSecret, cfg.ControllerPINHash, time.Duration(cfg.SessionTTLMinutes)*time.Minute)
	if !sessions.PINRequired() {
		log.Printf("[SESSION] CONTROLLER_PIN_HASH not set, any browser may control the paddle")
	}

	loop := game.NewLoop(cfg.Game, game.NewRand(cfg.Game.Seed), hub.Input(),
		game.WithRenderer(renderers),
		game.WithAudio(audio),
	)

	// Set up Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	api.SetupRoutes(router, cfg, loop, hub, sessions)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Starting Pong server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// The match ends on quit, declined replay or a signal.
	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("[LOOP] Stopped: %v", err)
	}
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Printf("Server stopped")
}
