package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/playmatatu/pong/internal/game"
)

// FrameSource is satisfied by *game.Loop.
type FrameSource interface {
	Frame() game.Frame
}

// GetGameState returns the most recent frame
func GetGameState(frames FrameSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, frames.Frame())
	}
}
