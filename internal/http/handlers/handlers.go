package handlers

import (
	"log/slog"
	nethttp "net/http"

	"roster-service/internal/feed"
	"roster-service/internal/roster"
	"roster-service/internal/session"
)

// Handler wires HTTP routes to the roster store, feed controller, and
// session store. It contains no business rules: every decision is delegated
// to the engines and only mapped onto status codes here.
type Handler struct {
	roster  *roster.Store
	feed    *feed.Controller
	session *session.Store
	logger  *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(rosterStore *roster.Store, feedCtrl *feed.Controller, sessionStore *session.Store, logger *slog.Logger) *Handler {
	return &Handler{
		roster:  rosterStore,
		feed:    feedCtrl,
		session: sessionStore,
		logger:  logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic. The engines are constructed before the
// server accepts connections, so readiness follows health here.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}
