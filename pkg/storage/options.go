package storage

type StoreOption func(*Store)

// WithStorageKey overrides the key the document blob persists under
// (default "schoolData").
func WithStorageKey(key string) StoreOption {
	return func(s *Store) {
		s.storageKey = key
	}
}

// WithIDGenerator overrides the record id generator (default uuid v4).
// Useful for deterministic ids in tests.
func WithIDGenerator(newID func() string) StoreOption {
	return func(s *Store) {
		s.newID = newID
	}
}
