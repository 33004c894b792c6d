package http

import (
	nethttp "net/http"

	"roster-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/teams", handler.Teams)
	mux.HandleFunc("/teams/", handler.TeamSubtree)
	mux.HandleFunc("/players", handler.Players)
	mux.HandleFunc("/players/next", handler.PlayersNext)
	mux.HandleFunc("/session", handler.Session)
	return mux
}
