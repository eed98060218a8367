package ws

import (
	"log"
	"time"

	"github.com/gorilla/websocket"
)

// Client represents a connected WebSocket client
type Client struct {
	id     string
	hub    *Hub
	conn   *websocket.Conn
	role   Role
	format Format
	send   chan []byte
}

// queue encodes message for this client and sends it without blocking.
// Callers must hold the hub lock or be the hub goroutine.
func (c *Client) queue(message interface{}) {
	data, err := Encode(c.format, message)
	if err != nil {
		log.Printf("[WS] Error encoding message for client %s: %v", c.id, err)
		return
	}
	select {
	case c.send <- data:
	default:
		log.Printf("[WS] Send buffer full for client %s, dropping message", c.id)
	}
}

// writePump writes messages to the WebSocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub closed the channel.
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(c.format.messageType(), message); err != nil {
				log.Printf("[WS] Write error for client %s: %v", c.id, err)
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Printf("[WS] Ping error for client %s: %v", c.id, err)
				return
			}
		}
	}
}

// readPump decodes client messages. Spectator messages are read and dropped.
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(4096)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		mt, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WS] Unexpected close for client %s: %v", c.id, err)
			}
			break
		}
		if c.role != RoleController {
			continue
		}

		format := FormatJSON
		if mt == websocket.BinaryMessage {
			format = FormatMsgpack
		}
		var msg ClientMessage
		if err := Decode(format, data, &msg); err != nil {
			c.sendError("Invalid message")
			continue
		}
		if !c.hub.input.Apply(msg) {
			c.sendError("Unknown message type")
		}
	}
}

// sendError sends an error message to the client
func (c *Client) sendError(message string) {
	c.hub.sendTo(c, ErrorMessage{Type: "error", Message: message})
}
