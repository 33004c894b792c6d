package handlers

import (
	"encoding/json"
	"errors"
	nethttp "net/http"

	"roster-service/internal/session"
)

type loginRequest struct {
	Name string `json:"name"`
}

type sessionResponse struct {
	Name *string `json:"name"`
}

// Session serves the display-name identity: GET reads it, POST logs in,
// DELETE logs out.
func (h *Handler) Session(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch r.Method {
	case nethttp.MethodGet:
		writeJSON(w, nethttp.StatusOK, h.sessionBody(), h.logger)
	case nethttp.MethodPost:
		h.login(w, r)
	case nethttp.MethodDelete:
		h.session.Logout()
		w.WriteHeader(nethttp.StatusNoContent)
	default:
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

func (h *Handler) login(w nethttp.ResponseWriter, r *nethttp.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if err := h.session.Login(req.Name); err != nil {
		if errors.Is(err, session.ErrEmptyName) {
			writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
			return
		}
		writeError(w, r, nethttp.StatusInternalServerError, "internal error", h.logger)
		return
	}

	writeJSON(w, nethttp.StatusOK, h.sessionBody(), h.logger)
}

func (h *Handler) sessionBody() sessionResponse {
	if name, ok := h.session.Name(); ok {
		return sessionResponse{Name: &name}
	}
	return sessionResponse{}
}
