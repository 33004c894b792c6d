package session

import (
	"errors"
	"log/slog"
	"strings"
	"sync"

	"roster-service/internal/logging"
	"roster-service/internal/storage"
)

// StateKey is the storage slot holding the persisted display name.
const StateKey = "fluffy_auth_v1"

// ErrEmptyName signals a login with a name that is empty after trimming.
var ErrEmptyName = errors.New("display name is required")

type persisted struct {
	Name *string `json:"name"`
}

// Store holds the optional display name used for cosmetic personalization.
// It is independent of teams and players and persists under its own key.
type Store struct {
	mu      sync.Mutex
	storage storage.Store
	logger  *slog.Logger
	name    string
}

// NewStore rehydrates the session from storage. An absent or corrupt slot
// simply means logged out.
func NewStore(st storage.Store, logger *slog.Logger) *Store {
	s := &Store{storage: st, logger: logger}

	var loaded persisted
	ok, err := st.Load(StateKey, &loaded)
	switch {
	case err != nil:
		logging.Warn(logger, "discarding corrupt session state", "error", err)
	case ok && loaded.Name != nil:
		s.name = strings.TrimSpace(*loaded.Name)
	}
	return s
}

// Login stores the trimmed display name and persists it.
func (s *Store) Login(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = trimmed
	if err := s.storage.Save(StateKey, persisted{Name: &trimmed}); err != nil {
		logging.Warn(s.logger, "failed to persist session", "error", err)
	}
	return nil
}

// Logout clears the display name and removes the persisted slot.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = ""
	if err := s.storage.Delete(StateKey); err != nil {
		logging.Warn(s.logger, "failed to clear session", "error", err)
	}
}

// Name returns the current display name and whether one is set.
func (s *Store) Name() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name, s.name != ""
}
