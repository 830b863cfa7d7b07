package session

import (
	"net/http"

	"github.com/coder/websocket"

	"github.com/inamate/wireframe/backend-go/internal/auth"
)

// Handler upgrades authenticated requests to editing sessions. The token is
// passed as the token query parameter since browsers cannot set headers on
// websocket requests.
type Handler struct {
	hub            *Hub
	auth           *auth.Service
	originPatterns []string
}

func NewHandler(hub *Hub, authSvc *auth.Service, originPatterns []string) *Handler {
	return &Handler{hub: hub, auth: authSvc, originPatterns: originPatterns}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "missing token", http.StatusUnauthorized)
		return
	}

	subject, err := h.auth.ValidateToken(token)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: h.originPatterns,
	})
	if err != nil {
		h.hub.log.Error("websocket accept", "error", err)
		return
	}

	client := h.hub.NewClient(conn, subject)
	if !h.hub.Register(client) {
		client.editor.Close()
		conn.Close(websocket.StatusGoingAway, "server shutting down")
		return
	}

	ctx := r.Context()
	go client.WritePump(ctx)
	client.ReadPump(ctx)
}
