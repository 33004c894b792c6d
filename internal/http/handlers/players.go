package handlers

import (
	"context"
	"errors"
	nethttp "net/http"
)

// Players serves the accumulated player collection along with the feed state
// and any advisory message.
func (h *Handler) Players(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, h.feed.View(), h.logger)
}

// PlayersNext drives the feed controller forward by one page and returns the
// resulting snapshot. Rate limiting and feed failures are not HTTP errors:
// they surface through the snapshot's state and advisory message.
func (h *Handler) PlayersNext(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodPost {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	if err := h.feed.LoadNextPage(r.Context()); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			writeError(w, r, nethttp.StatusServiceUnavailable, "request cancelled", h.logger)
			return
		}
		writeError(w, r, nethttp.StatusInternalServerError, "internal error", h.logger)
		return
	}

	writeJSON(w, nethttp.StatusOK, h.feed.View(), h.logger)
}
