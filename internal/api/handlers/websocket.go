package handlers

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/playmatatu/pong/internal/session"
	"github.com/playmatatu/pong/internal/ws"
)

// HandleGameWebSocket attaches a browser to the hub. A valid session token
// makes it the controller; without one it only watches, unless no PIN is
// configured at all.
func HandleGameWebSocket(hub *ws.Hub, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := ws.RoleSpectator
		if !sessions.PINRequired() {
			role = ws.RoleController
		} else if token := c.Query("token"); token != "" {
			if _, err := sessions.Verify(token); err == nil {
				role = ws.RoleController
			} else {
				log.Printf("[WS] Rejected session token: %v", err)
			}
		}

		if err := hub.Serve(c.Writer, c.Request, role, ws.ParseFormat(c.Query("format"))); err != nil {
			log.Printf("[WS] Failed to attach client: %v", err)
		}
	}
}
