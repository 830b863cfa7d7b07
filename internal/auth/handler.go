package auth

import (
	"log/slog"
	"net/http"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type tokenResponse struct {
	Token   string `json:"token"`
	Subject string `json:"subject"`
}

// Refresh exchanges the caller's valid token for a new one. It runs behind
// AuthMiddleware.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	subject := SubjectFromContext(r.Context())
	if subject == "" {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	token, err := h.service.IssueToken(subject)
	if err != nil {
		slog.Error("refresh token", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: token, Subject: subject})
}

// Me reports the subject of the caller's token.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"subject": SubjectFromContext(r.Context())})
}
