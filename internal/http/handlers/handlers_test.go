package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roster-service/internal/domain/players"
	"roster-service/internal/feed"
	apphttp "roster-service/internal/http"
	"roster-service/internal/http/handlers"
	"roster-service/internal/roster"
	"roster-service/internal/session"
	"roster-service/internal/storage"
)

type stubSource struct {
	fetch func(page, perPage int) ([]players.Player, error)
}

func (s stubSource) FetchPlayers(_ context.Context, page, perPage int) ([]players.Player, error) {
	return s.fetch(page, perPage)
}

func fullPage(page, n int) []players.Player {
	out := make([]players.Player, 0, n)
	for i := 0; i < n; i++ {
		id := page*1000 + i
		out = append(out, players.Player{ID: id, FirstName: "Player", LastName: fmt.Sprintf("%d", id)})
	}
	return out
}

type fixture struct {
	router nethttp.Handler
	roster *roster.Store
}

func newFixture(t *testing.T, apiKey string) *fixture {
	t.Helper()
	store := storage.NewFSStore(t.TempDir())
	rosterStore := roster.NewStore(store, nil, nil)

	feedCtrl := feed.NewController(feed.Config{
		Source: stubSource{fetch: func(page, perPage int) ([]players.Player, error) {
			return fullPage(page, perPage), nil
		}},
		Clock:  clockwork.NewFakeClock(),
		APIKey: apiKey,
	})
	sessionStore := session.NewStore(store, nil)

	handler := handlers.NewHandler(rosterStore, feedCtrl, sessionStore, nil)
	return &fixture{router: apphttp.NewRouter(handler), roster: rosterStore}
}

func (f *fixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func (f *fixture) createTeam(t *testing.T, name string) string {
	t.Helper()
	rec := f.do(t, nethttp.MethodPost, "/teams",
		fmt.Sprintf(`{"name": %q, "region": "West", "country": "USA"}`, name))
	require.Equal(t, nethttp.StatusCreated, rec.Code)
	return decodeBody(t, rec)["id"].(string)
}

func TestHealthAndReady(t *testing.T) {
	f := newFixture(t, "key")

	rec := f.do(t, nethttp.MethodGet, "/health", "")
	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody(t, rec)["status"])

	rec = f.do(t, nethttp.MethodGet, "/ready", "")
	assert.Equal(t, nethttp.StatusOK, rec.Code)

	rec = f.do(t, nethttp.MethodPost, "/health", "")
	assert.Equal(t, nethttp.StatusMethodNotAllowed, rec.Code)
}

func TestCreateTeam(t *testing.T) {
	f := newFixture(t, "key")

	rec := f.do(t, nethttp.MethodPost, "/teams",
		`{"name": "Wolves", "region": "Minnesota", "country": "USA"}`)
	require.Equal(t, nethttp.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, "Wolves", body["name"])
	assert.Equal(t, "Minnesota", body["region"])
	assert.Equal(t, "USA", body["country"])
	assert.Empty(t, body["playerIds"])
}

func TestCreateTeamMissingFields(t *testing.T) {
	f := newFixture(t, "key")

	rec := f.do(t, nethttp.MethodPost, "/teams", `{"name": "Wolves", "region": "  "}`)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	assert.Equal(t, "all fields are required", decodeBody(t, rec)["error"])
}

func TestCreateTeamDuplicateName(t *testing.T) {
	f := newFixture(t, "key")
	f.createTeam(t, "Wolves")

	rec := f.do(t, nethttp.MethodPost, "/teams",
		`{"name": " wolves ", "region": "East", "country": "USA"}`)
	assert.Equal(t, nethttp.StatusConflict, rec.Code)
}

func TestListTeams(t *testing.T) {
	f := newFixture(t, "key")
	f.createTeam(t, "Wolves")
	f.createTeam(t, "Hawks")

	rec := f.do(t, nethttp.MethodGet, "/teams", "")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	teams := decodeBody(t, rec)["teams"].([]any)
	assert.Len(t, teams, 2)
}

func TestGetTeamNotFound(t *testing.T) {
	f := newFixture(t, "key")

	rec := f.do(t, nethttp.MethodGet, "/teams/nope", "")
	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
}

func TestUpdateTeam(t *testing.T) {
	f := newFixture(t, "key")
	id := f.createTeam(t, "Wolves")

	rec := f.do(t, nethttp.MethodPatch, "/teams/"+id, `{"region": "North"}`)
	require.Equal(t, nethttp.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Wolves", body["name"])
	assert.Equal(t, "North", body["region"])
}

func TestUpdateTeamEmptyName(t *testing.T) {
	f := newFixture(t, "key")
	id := f.createTeam(t, "Wolves")

	rec := f.do(t, nethttp.MethodPatch, "/teams/"+id, `{"name": "   "}`)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	assert.Equal(t, "team name is required", decodeBody(t, rec)["error"])
}

func TestUpdateUnknownTeam(t *testing.T) {
	f := newFixture(t, "key")

	rec := f.do(t, nethttp.MethodPatch, "/teams/nope", `{"region": "North"}`)
	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
}

func TestUpdateTeamDuplicateName(t *testing.T) {
	f := newFixture(t, "key")
	f.createTeam(t, "Wolves")
	id := f.createTeam(t, "Hawks")

	rec := f.do(t, nethttp.MethodPatch, "/teams/"+id, `{"name": "WOLVES"}`)
	assert.Equal(t, nethttp.StatusConflict, rec.Code)
}

func TestDeleteTeam(t *testing.T) {
	f := newFixture(t, "key")
	id := f.createTeam(t, "Wolves")

	rec := f.do(t, nethttp.MethodDelete, "/teams/"+id, "")
	assert.Equal(t, nethttp.StatusNoContent, rec.Code)

	rec = f.do(t, nethttp.MethodGet, "/teams/"+id, "")
	assert.Equal(t, nethttp.StatusNotFound, rec.Code)

	// Deleting again is still a 204.
	rec = f.do(t, nethttp.MethodDelete, "/teams/"+id, "")
	assert.Equal(t, nethttp.StatusNoContent, rec.Code)
}

func TestAssignPlayer(t *testing.T) {
	f := newFixture(t, "key")
	id := f.createTeam(t, "Wolves")

	rec := f.do(t, nethttp.MethodPost, "/teams/"+id+"/players", `{"playerId": 19}`)
	assert.Equal(t, nethttp.StatusNoContent, rec.Code)

	rec = f.do(t, nethttp.MethodGet, "/teams/"+id, "")
	body := decodeBody(t, rec)
	assert.Equal(t, []any{float64(19)}, body["playerIds"])
}

func TestAssignPlayerRequiresID(t *testing.T) {
	f := newFixture(t, "key")
	id := f.createTeam(t, "Wolves")

	rec := f.do(t, nethttp.MethodPost, "/teams/"+id+"/players", `{}`)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestAssignPlayerToUnknownTeam(t *testing.T) {
	f := newFixture(t, "key")

	rec := f.do(t, nethttp.MethodPost, "/teams/nope/players", `{"playerId": 19}`)
	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
}

func TestAssignPlayerAlreadyOnAnotherTeam(t *testing.T) {
	f := newFixture(t, "key")
	first := f.createTeam(t, "Wolves")
	second := f.createTeam(t, "Hawks")

	rec := f.do(t, nethttp.MethodPost, "/teams/"+first+"/players", `{"playerId": 19}`)
	require.Equal(t, nethttp.StatusNoContent, rec.Code)

	rec = f.do(t, nethttp.MethodPost, "/teams/"+second+"/players", `{"playerId": 19}`)
	assert.Equal(t, nethttp.StatusConflict, rec.Code)
}

func TestRemovePlayer(t *testing.T) {
	f := newFixture(t, "key")
	id := f.createTeam(t, "Wolves")
	require.Equal(t, nethttp.StatusNoContent,
		f.do(t, nethttp.MethodPost, "/teams/"+id+"/players", `{"playerId": 19}`).Code)

	rec := f.do(t, nethttp.MethodDelete, "/teams/"+id+"/players/19", "")
	assert.Equal(t, nethttp.StatusNoContent, rec.Code)

	body := decodeBody(t, f.do(t, nethttp.MethodGet, "/teams/"+id, ""))
	assert.Empty(t, body["playerIds"])
}

func TestRemovePlayerInvalidID(t *testing.T) {
	f := newFixture(t, "key")
	id := f.createTeam(t, "Wolves")

	rec := f.do(t, nethttp.MethodDelete, "/teams/"+id+"/players/abc", "")
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestUnknownTeamSubtreePath(t *testing.T) {
	f := newFixture(t, "key")

	rec := f.do(t, nethttp.MethodGet, "/teams/a/b/c/d", "")
	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
}

func TestSessionFlow(t *testing.T) {
	f := newFixture(t, "key")

	rec := f.do(t, nethttp.MethodGet, "/session", "")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Nil(t, decodeBody(t, rec)["name"])

	rec = f.do(t, nethttp.MethodPost, "/session", `{"name": "  Ada  "}`)
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Equal(t, "Ada", decodeBody(t, rec)["name"])

	rec = f.do(t, nethttp.MethodGet, "/session", "")
	assert.Equal(t, "Ada", decodeBody(t, rec)["name"])

	rec = f.do(t, nethttp.MethodDelete, "/session", "")
	assert.Equal(t, nethttp.StatusNoContent, rec.Code)

	rec = f.do(t, nethttp.MethodGet, "/session", "")
	assert.Nil(t, decodeBody(t, rec)["name"])
}

func TestSessionLoginEmptyName(t *testing.T) {
	f := newFixture(t, "key")

	rec := f.do(t, nethttp.MethodPost, "/session", `{"name": "   "}`)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestPlayersEmptyBeforeFirstLoad(t *testing.T) {
	f := newFixture(t, "key")

	rec := f.do(t, nethttp.MethodGet, "/players", "")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "idle", body["state"])
	assert.Len(t, body["players"], 0)
}

func TestPlayersNextLoadsPage(t *testing.T) {
	f := newFixture(t, "key")

	rec := f.do(t, nethttp.MethodPost, "/players/next", "")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "idle", body["state"])
	assert.Len(t, body["players"], 10)
	assert.Equal(t, float64(2), body["page"])
}

func TestPlayersNextWithoutAPIKeyDegrades(t *testing.T) {
	f := newFixture(t, "")

	rec := f.do(t, nethttp.MethodPost, "/players/next", "")
	require.Equal(t, nethttp.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "degraded", body["state"])
	assert.Len(t, body["players"], 20)
	assert.Equal(t, "No API key configured. Showing sample data.", body["message"])
}

func TestPlayersMethodNotAllowed(t *testing.T) {
	f := newFixture(t, "key")

	assert.Equal(t, nethttp.StatusMethodNotAllowed, f.do(t, nethttp.MethodPost, "/players", "").Code)
	assert.Equal(t, nethttp.StatusMethodNotAllowed, f.do(t, nethttp.MethodGet, "/players/next", "").Code)
}
