package ws

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/playmatatu/pong/internal/game"
)

var errHubStopped = errors.New("hub stopped")

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Origin is checked by middleware.WebSocketCORSCheck
	},
}

// Role decides whether a client's messages reach the game.
type Role int8

const (
	RoleSpectator Role = iota
	RoleController
)

func (r Role) String() string {
	if r == RoleController {
		return "controller"
	}
	return "spectator"
}

// Hub maintains the set of connected browsers. It is the loop's render and
// audio sink for the browser host and, through its InputState, the input
// source.
type Hub struct {
	clients    map[string]*Client // clientID -> Client
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mu         sync.RWMutex

	input *InputState

	lastMu   sync.RWMutex
	last     game.Frame
	hasFrame bool
}

// NewHub creates a new Hub. Call Run before serving clients.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		input:      &InputState{},
	}
}

// Input is the hub's game.InputSource.
func (h *Hub) Input() *InputState {
	return h.input
}

// Run processes registrations until ctx is cancelled, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.mu.Lock()
			for id, client := range h.clients {
				close(client.send)
				delete(h.clients, id)
			}
			h.mu.Unlock()
			log.Printf("[WS] Hub stopped")
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.id] = client
			h.mu.Unlock()
			log.Printf("[WS] Client %s connected as %s (%s)", client.id, client.role, client.format)

			client.queue(WelcomeMessage{Type: "welcome", ClientID: client.id, Role: client.role.String()})
			h.lastMu.RLock()
			if h.hasFrame {
				client.queue(FrameMessage{Type: "frame", Frame: h.last})
			}
			h.lastMu.RUnlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if cur, ok := h.clients[client.id]; ok && cur == client {
				delete(h.clients, client.id)
				close(client.send)
				log.Printf("[WS] Client %s disconnected", client.id)
				if client.role == RoleController {
					h.input.Release()
				}
			}
			h.mu.Unlock()
		}
	}
}

// Serve upgrades the request and attaches the connection to the hub.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, role Role, format Format) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		return err
	}

	client := &Client{
		id:     uuid.NewString(),
		hub:    h,
		conn:   conn,
		role:   role,
		format: format,
		send:   make(chan []byte, 256),
	}

	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return errHubStopped
	}

	go client.writePump()
	go client.readPump()
	return nil
}

// sendTo queues message for c if it is still registered.
func (h *Hub) sendTo(c *Client, message interface{}) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if cur, ok := h.clients[c.id]; ok && cur == c {
		c.queue(message)
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Render implements game.Renderer. Each format is encoded at most once per frame.
func (h *Hub) Render(f game.Frame) {
	h.lastMu.Lock()
	h.last = f
	h.hasFrame = true
	h.lastMu.Unlock()

	h.broadcast(FrameMessage{Type: "frame", Frame: f})
}

// Play implements game.AudioSink. Browsers synthesise the tone themselves.
func (h *Hub) Play(c game.Cue) {
	h.broadcast(CueMessage{Type: "cue", Cue: c.String(), Tone: c.Tone()})
}

func (h *Hub) broadcast(message interface{}) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.clients) == 0 {
		return
	}

	encoded := make(map[Format][]byte, len(formats))
	for _, client := range h.clients {
		data, ok := encoded[client.format]
		if !ok {
			var err error
			data, err = Encode(client.format, message)
			if err != nil {
				log.Printf("[WS] Error encoding %s message: %v", client.format, err)
				continue
			}
			encoded[client.format] = data
		}
		select {
		case client.send <- data:
		default:
			// Client's buffer is full
			log.Printf("[WS] Send buffer full for client %s, dropping message", client.id)
		}
	}
}

// writeWait bounds every write, pingPeriod keeps idle connections alive.
const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)
