package roster

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	domain "roster-service/internal/domain/roster"
	"roster-service/internal/logging"
	"roster-service/internal/metrics"
	"roster-service/internal/storage"
)

// StateKey is the storage slot holding the serialized roster state.
const StateKey = "fluffy_teams_v1"

// TeamPatch describes a partial team update; nil fields are left unchanged.
type TeamPatch struct {
	Name    *string
	Region  *string
	Country *string
}

// Store owns the team collection and the player->team assignment index.
// All mutations are serialized under one mutex, validate against the current
// state, apply collection and index together, persist the full state, and
// notify subscribers. Recoverable failures come back as domain errors with no
// state change.
type Store struct {
	mu      sync.Mutex
	storage storage.Store
	logger  *slog.Logger
	metrics *metrics.Recorder
	state   domain.State
	newID   func() string
	subs    []func()
}

// NewStore constructs a Store, rehydrating from the storage slot. An absent
// slot starts empty; a corrupt slot is logged and discarded, never surfaced.
func NewStore(st storage.Store, logger *slog.Logger, recorder *metrics.Recorder) *Store {
	s := &Store{
		storage: st,
		logger:  logger,
		metrics: recorder,
		state:   domain.EmptyState(),
		newID:   uuid.NewString,
	}

	var loaded domain.State
	ok, err := st.Load(StateKey, &loaded)
	switch {
	case err != nil:
		logging.Warn(logger, "discarding corrupt roster state", "error", err)
	case ok:
		s.state = normalize(loaded)
	}
	return s
}

func normalize(state domain.State) domain.State {
	if state.Teams == nil {
		state.Teams = []domain.Team{}
	}
	for i := range state.Teams {
		if state.Teams[i].PlayerIDs == nil {
			state.Teams[i].PlayerIDs = []int{}
		}
	}
	if state.PlayerTeam == nil {
		state.PlayerTeam = map[int]string{}
	}
	return state
}

// Subscribe registers a callback invoked after every successful mutation.
// Callbacks run synchronously outside the store lock.
func (s *Store) Subscribe(fn func()) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// CreateTeam appends a new team with a fresh id and an empty assignment
// sequence. Uniqueness is checked on trimmed, case-folded names.
func (s *Store) CreateTeam(name, region, country string) (string, error) {
	s.mu.Lock()

	if s.nameTakenLocked(name, "") {
		s.mu.Unlock()
		return "", domain.ErrDuplicateName
	}

	id := s.newID()
	s.state.Teams = append(s.state.Teams, domain.Team{
		ID:        id,
		Name:      name,
		Region:    region,
		Country:   country,
		PlayerIDs: []int{},
	})
	s.commitAndUnlock("create_team")
	return id, nil
}

// UpdateTeam applies the present patch fields. A name change is revalidated
// against all other teams. Unknown ids fail with ErrTeamNotFound.
func (s *Store) UpdateTeam(id string, patch TeamPatch) error {
	s.mu.Lock()

	team := s.findLocked(id)
	if team == nil {
		s.mu.Unlock()
		return domain.ErrTeamNotFound
	}

	if patch.Name != nil && s.nameTakenLocked(*patch.Name, id) {
		s.mu.Unlock()
		return domain.ErrDuplicateName
	}

	if patch.Name != nil {
		team.Name = *patch.Name
	}
	if patch.Region != nil {
		team.Region = *patch.Region
	}
	if patch.Country != nil {
		team.Country = *patch.Country
	}
	s.commitAndUnlock("update_team")
	return nil
}

// DeleteTeam removes the team and cascades: every assignment index entry
// pointing at it is purged. Deleting an unknown id is an idempotent no-op.
func (s *Store) DeleteTeam(id string) {
	s.mu.Lock()

	idx := -1
	for i := range s.state.Teams {
		if s.state.Teams[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return
	}

	for _, pid := range s.state.Teams[idx].PlayerIDs {
		delete(s.state.PlayerTeam, pid)
	}
	s.state.Teams = append(s.state.Teams[:idx], s.state.Teams[idx+1:]...)
	s.commitAndUnlock("delete_team")
}

// AddPlayer assigns a player to a team. A player indexed to a different team
// is rejected, never silently reassigned; re-adding to the same team is an
// idempotent success.
func (s *Store) AddPlayer(teamID string, playerID int) error {
	s.mu.Lock()

	if current, ok := s.state.PlayerTeam[playerID]; ok && current != teamID {
		s.mu.Unlock()
		return domain.ErrPlayerAssigned
	}

	team := s.findLocked(teamID)
	if team == nil {
		s.mu.Unlock()
		return domain.ErrTeamNotFound
	}

	if containsInt(team.PlayerIDs, playerID) {
		s.mu.Unlock()
		return nil
	}

	team.PlayerIDs = append(team.PlayerIDs, playerID)
	s.state.PlayerTeam[playerID] = teamID
	s.commitAndUnlock("add_player")
	return nil
}

// RemovePlayer clears the player from the named team's sequence and its index
// entry. Removing an absent assignment is an idempotent no-op.
func (s *Store) RemovePlayer(teamID string, playerID int) {
	s.mu.Lock()

	changed := false
	if team := s.findLocked(teamID); team != nil && containsInt(team.PlayerIDs, playerID) {
		filtered := team.PlayerIDs[:0]
		for _, pid := range team.PlayerIDs {
			if pid != playerID {
				filtered = append(filtered, pid)
			}
		}
		team.PlayerIDs = filtered
		changed = true
	}
	if current, ok := s.state.PlayerTeam[playerID]; ok && current == teamID {
		delete(s.state.PlayerTeam, playerID)
		changed = true
	}

	if !changed {
		s.mu.Unlock()
		return
	}
	s.commitAndUnlock("remove_player")
}

// Teams returns a copy of the team collection in creation order.
func (s *Store) Teams() []domain.Team {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Team, len(s.state.Teams))
	for i, t := range s.state.Teams {
		out[i] = t.Clone()
	}
	return out
}

// Team returns a copy of a single team.
func (s *Store) Team(id string) (domain.Team, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t := s.findLocked(id); t != nil {
		return t.Clone(), true
	}
	return domain.Team{}, false
}

// TeamForPlayer reports which team, if any, the player is assigned to.
func (s *Store) TeamForPlayer(playerID int) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.state.PlayerTeam[playerID]
	return id, ok
}

// State returns a deep copy of the full roster state.
func (s *Store) State() domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// commitAndUnlock persists the full state, releases the lock, and notifies
// subscribers. Persistence failures are logged, never propagated: the
// in-memory state stays authoritative even when the snapshot write fails.
func (s *Store) commitAndUnlock(op string) {
	if err := s.storage.Save(StateKey, s.state); err != nil {
		logging.Warn(s.logger, "failed to persist roster state", "error", err)
	}
	s.metrics.RecordRosterMutation(op)
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

func (s *Store) findLocked(id string) *domain.Team {
	for i := range s.state.Teams {
		if s.state.Teams[i].ID == id {
			return &s.state.Teams[i]
		}
	}
	return nil
}

func (s *Store) nameTakenLocked(name, excludeID string) bool {
	trimmed := strings.TrimSpace(name)
	for _, t := range s.state.Teams {
		if t.ID == excludeID {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(t.Name), trimmed) {
			return true
		}
	}
	return false
}

func containsInt(haystack []int, needle int) bool {
	for _, v := range haystack {
		if v == needle {
			return true
		}
	}
	return false
}
