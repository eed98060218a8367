package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/playmatatu/pong/internal/config"
)

// GetConfig returns the geometry and rules the browser needs to draw a match
func GetConfig(cfg *config.Config, pinRequired bool) gin.HandlerFunc {
	g := cfg.Game
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"field_width":   g.FieldWidth,
			"field_height":  g.FieldHeight,
			"paddle_width":  g.PaddleWidth,
			"paddle_height": g.PaddleHeight,
			"ball_size":     g.BallSize,
			"win_score":     g.WinScore,
			"tick_rate":     g.TickRate,
			"pin_required":  pinRequired,
		})
	}
}
