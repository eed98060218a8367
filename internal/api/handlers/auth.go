package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/playmatatu/pong/internal/session"
)

// CreateSession exchanges the controller PIN for a signed token. The body
// may be empty when no PIN is configured.
func CreateSession(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			PIN string `json:"pin"`
		}
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		token, exp, err := sessions.Issue(strings.TrimSpace(req.PIN))
		if errors.Is(err, session.ErrInvalidPIN) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid pin"})
			return
		}
		if err != nil {
			log.Printf("[API] Failed to issue session: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token":      token,
			"expires_at": exp.Unix(),
			"role":       "controller",
		})
	}
}
