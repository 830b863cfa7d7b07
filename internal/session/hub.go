// Package session serves editing sessions over websockets. Every connection
// gets its own engine.Editor and talks to it with JSON messages.
package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/inamate/wireframe/backend-go/internal/engine"
	"github.com/inamate/wireframe/backend-go/internal/renderer"
)

// Hub tracks the open sessions and creates their editors.
type Hub struct {
	renderers *renderer.Service
	cfg       engine.Config
	log       *slog.Logger

	mu      sync.RWMutex
	clients map[string]*Client

	register   chan *Client
	unregister chan *Client
	done       chan struct{}
}

func NewHub(renderers *renderer.Service, cfg engine.Config, log *slog.Logger) *Hub {
	if log == nil {
		log = slog.Default()
	}
	return &Hub{
		renderers:  renderers,
		cfg:        cfg,
		log:        log,
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run processes registrations until ctx is cancelled, then closes every
// remaining session.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		case <-ctx.Done():
			h.closeAll()
			return
		}
	}
}

// NewClient creates a session for conn with a fresh editor.
func (h *Hub) NewClient(conn *websocket.Conn, subject string) *Client {
	clientID := uuid.New().String()
	log := h.log.With("session", clientID, "subject", subject)
	return &Client{
		hub:      h,
		conn:     conn,
		send:     make(chan []byte, 256),
		editor:   engine.NewEditor(h.renderers, h.cfg, log),
		log:      log,
		Subject:  subject,
		ClientID: clientID,
	}
}

// Register adds client and greets it. It returns false once the hub has
// stopped.
func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Count returns the number of open sessions.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	h.clients[client.ClientID] = client
	h.mu.Unlock()

	client.Send(reply(TypeWelcome, 0, WelcomePayload{
		ClientID:  client.ClientID,
		Subject:   client.Subject,
		Renderers: h.renderers.Renderers(),
	}))
	client.log.Info("session opened")
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	if _, ok := h.clients[client.ClientID]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, client.ClientID)
	h.mu.Unlock()

	client.closeSend()
	client.log.Info("session closed")
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	clients := make([]*Client, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		h.removeClient(c)
		c.conn.Close(websocket.StatusGoingAway, "server shutting down")
	}
}
