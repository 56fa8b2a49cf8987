package store

import "iter"

// AutoSync wraps a Store and persists after every mutation.
type AutoSync[V any] struct {
	store *Store[V]
}

// NewAutoSync wraps s.
func NewAutoSync[V any](s *Store[V]) *AutoSync[V] {
	return &AutoSync[V]{store: s}
}

// Get delegates to the wrapped store.
func (a *AutoSync[V]) Get(key string) (V, bool) {
	return a.store.Get(key)
}

// Set stores value and syncs. The in-memory write stands even if the sync fails.
func (a *AutoSync[V]) Set(key string, value V) error {
	a.store.Set(key, value)
	return a.store.Sync()
}

// Delete removes key and syncs when it was present.
func (a *AutoSync[V]) Delete(key string) (bool, error) {
	if _, ok := a.store.Delete(key); !ok {
		return false, nil
	}
	return true, a.store.Sync()
}

// All delegates to the wrapped store.
func (a *AutoSync[V]) All() iter.Seq2[string, V] {
	return a.store.All()
}

// Len delegates to the wrapped store.
func (a *AutoSync[V]) Len() int {
	return a.store.Len()
}
