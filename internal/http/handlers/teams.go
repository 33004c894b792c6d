package handlers

import (
	"encoding/json"
	"errors"
	nethttp "net/http"
	"strconv"
	"strings"

	domain "roster-service/internal/domain/roster"
	"roster-service/internal/logging"
	"roster-service/internal/roster"
)

type createTeamRequest struct {
	Name    string `json:"name"`
	Region  string `json:"region"`
	Country string `json:"country"`
}

type updateTeamRequest struct {
	Name    *string `json:"name"`
	Region  *string `json:"region"`
	Country *string `json:"country"`
}

type assignPlayerRequest struct {
	PlayerID int `json:"playerId"`
}

// Teams serves the /teams collection: GET lists, POST creates.
func (h *Handler) Teams(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch r.Method {
	case nethttp.MethodGet:
		writeJSON(w, nethttp.StatusOK, map[string]any{"teams": h.roster.Teams()}, h.logger)
	case nethttp.MethodPost:
		h.createTeam(w, r)
	default:
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

func (h *Handler) createTeam(w nethttp.ResponseWriter, r *nethttp.Request) {
	var req createTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	name := strings.TrimSpace(req.Name)
	region := strings.TrimSpace(req.Region)
	country := strings.TrimSpace(req.Country)
	if name == "" || region == "" || country == "" {
		writeError(w, r, nethttp.StatusBadRequest, "all fields are required", h.logger)
		return
	}

	id, err := h.roster.CreateTeam(name, region, country)
	if err != nil {
		h.writeRosterError(w, r, err)
		return
	}

	team, _ := h.roster.Team(id)
	logging.Info(loggerFromContext(r, h.logger), "team created", logging.FieldTeamID, id)
	writeJSON(w, nethttp.StatusCreated, team, h.logger)
}

// TeamSubtree routes /teams/{id} and /teams/{id}/players[/{playerID}].
func (h *Handler) TeamSubtree(w nethttp.ResponseWriter, r *nethttp.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/teams/"), "/")
	parts := strings.Split(rest, "/")

	switch {
	case len(parts) == 1 && parts[0] != "":
		h.teamByID(w, r, parts[0])
	case len(parts) == 2 && parts[1] == "players":
		h.assignPlayer(w, r, parts[0])
	case len(parts) == 3 && parts[1] == "players":
		h.removePlayer(w, r, parts[0], parts[2])
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

func (h *Handler) teamByID(w nethttp.ResponseWriter, r *nethttp.Request, id string) {
	switch r.Method {
	case nethttp.MethodGet:
		team, ok := h.roster.Team(id)
		if !ok {
			writeError(w, r, nethttp.StatusNotFound, domain.ErrTeamNotFound.Error(), h.logger)
			return
		}
		writeJSON(w, nethttp.StatusOK, team, h.logger)
	case nethttp.MethodPatch, nethttp.MethodPut:
		h.updateTeam(w, r, id)
	case nethttp.MethodDelete:
		h.roster.DeleteTeam(id)
		logging.Info(loggerFromContext(r, h.logger), "team deleted", logging.FieldTeamID, id)
		w.WriteHeader(nethttp.StatusNoContent)
	default:
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

func (h *Handler) updateTeam(w nethttp.ResponseWriter, r *nethttp.Request, id string) {
	var req updateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	patch := roster.TeamPatch{Region: req.Region, Country: req.Country}
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if trimmed == "" {
			writeError(w, r, nethttp.StatusBadRequest, "team name is required", h.logger)
			return
		}
		patch.Name = &trimmed
	}

	if err := h.roster.UpdateTeam(id, patch); err != nil {
		h.writeRosterError(w, r, err)
		return
	}

	team, _ := h.roster.Team(id)
	writeJSON(w, nethttp.StatusOK, team, h.logger)
}

func (h *Handler) assignPlayer(w nethttp.ResponseWriter, r *nethttp.Request, teamID string) {
	if r.Method != nethttp.MethodPost {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req assignPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PlayerID <= 0 {
		writeError(w, r, nethttp.StatusBadRequest, "playerId is required", h.logger)
		return
	}

	if err := h.roster.AddPlayer(teamID, req.PlayerID); err != nil {
		h.writeRosterError(w, r, err)
		return
	}

	logging.Info(loggerFromContext(r, h.logger), "player assigned",
		logging.FieldTeamID, teamID,
		logging.FieldPlayerID, req.PlayerID,
	)
	w.WriteHeader(nethttp.StatusNoContent)
}

func (h *Handler) removePlayer(w nethttp.ResponseWriter, r *nethttp.Request, teamID, rawPlayerID string) {
	if r.Method != nethttp.MethodDelete {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	playerID, err := strconv.Atoi(rawPlayerID)
	if err != nil || playerID <= 0 {
		writeError(w, r, nethttp.StatusBadRequest, "invalid player id", h.logger)
		return
	}

	h.roster.RemovePlayer(teamID, playerID)
	w.WriteHeader(nethttp.StatusNoContent)
}

func (h *Handler) writeRosterError(w nethttp.ResponseWriter, r *nethttp.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrDuplicateName), errors.Is(err, domain.ErrPlayerAssigned):
		writeError(w, r, nethttp.StatusConflict, err.Error(), h.logger)
	case errors.Is(err, domain.ErrTeamNotFound):
		writeError(w, r, nethttp.StatusNotFound, err.Error(), h.logger)
	default:
		logging.Error(loggerFromContext(r, h.logger), "roster operation failed", err)
		writeError(w, r, nethttp.StatusInternalServerError, "internal error", h.logger)
	}
}

