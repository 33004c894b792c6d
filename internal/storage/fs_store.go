package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// FSStore persists each key as a JSON file under a base directory. Writes go
// through a temp file and rename so a crash mid-write never leaves a
// half-written slot behind.
type FSStore struct {
	basePath string
}

// NewFSStore constructs a filesystem-backed store rooted at basePath. The
// directory is created lazily on first write.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

func (s *FSStore) path(key string) string {
	return filepath.Join(s.basePath, key+".json")
}

// Load reads and decodes the document stored under key. A missing key is not
// an error; it reports (false, nil).
func (s *FSStore) Load(key string, into any) (bool, error) {
	f, err := os.Open(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(into); err != nil {
		return false, err
	}
	return true, nil
}

// Save encodes value and atomically replaces the document under key.
func (s *FSStore) Save(key string, value any) error {
	target := s.path(key)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}

// Delete removes the document under key. Deleting an absent key is a no-op.
func (s *FSStore) Delete(key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
