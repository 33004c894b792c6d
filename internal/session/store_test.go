package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roster-service/internal/storage"
)

func newStore(t *testing.T) (*Store, storage.Store) {
	t.Helper()
	fs := storage.NewFSStore(t.TempDir())
	return NewStore(fs, nil), fs
}

func TestLoginStoresTrimmedName(t *testing.T) {
	s, _ := newStore(t)

	require.NoError(t, s.Login("  Ada  "))

	name, ok := s.Name()
	require.True(t, ok)
	assert.Equal(t, "Ada", name)
}

func TestLoginEmptyNameRejected(t *testing.T) {
	s, _ := newStore(t)

	assert.ErrorIs(t, s.Login("   "), ErrEmptyName)
	_, ok := s.Name()
	assert.False(t, ok)
}

func TestLogoutClearsNameAndSlot(t *testing.T) {
	s, fs := newStore(t)
	require.NoError(t, s.Login("Ada"))

	s.Logout()

	_, ok := s.Name()
	assert.False(t, ok)

	var loaded persisted
	present, err := fs.Load(StateKey, &loaded)
	require.NoError(t, err)
	assert.False(t, present)
}

func TestSessionRoundTrip(t *testing.T) {
	fs := storage.NewFSStore(t.TempDir())
	s := NewStore(fs, nil)
	require.NoError(t, s.Login("Ada"))

	restored := NewStore(fs, nil)
	name, ok := restored.Name()
	require.True(t, ok)
	assert.Equal(t, "Ada", name)
}

func TestCorruptSlotMeansLoggedOut(t *testing.T) {
	fs := storage.NewFSStore(t.TempDir())
	require.NoError(t, fs.Save(StateKey, "not an object"))

	s := NewStore(fs, nil)
	_, ok := s.Name()
	assert.False(t, ok)
}
