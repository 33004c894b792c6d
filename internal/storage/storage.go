package storage

// Store is durable string-keyed storage holding one opaque JSON document per
// key. Load reports (false, nil) when the key has never been written;
// malformed content comes back as an error so callers can degrade to their
// default state instead of failing.
type Store interface {
	Load(key string, into any) (bool, error)
	Save(key string, value any) error
	Delete(key string) error
}
