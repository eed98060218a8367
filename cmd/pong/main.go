package main

import (
	"log"

	"github.com/playmatatu/pong/internal/config"
	"github.com/playmatatu/pong/internal/desktop"
	"github.com/playmatatu/pong/internal/game"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := desktop.Run(cfg.Game, game.NewRand(cfg.Game.Seed)); err != nil {
		log.Fatalf("Desktop host failed: %v", err)
	}
}
