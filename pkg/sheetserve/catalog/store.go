package catalog

import "sync/atomic"

// Store publishes the active catalog snapshot. Readers take the whole
// snapshot with Current and never observe a partially rebuilt catalog;
// reloads build a fresh Catalog and swap it in with Replace.
type Store struct {
	current atomic.Pointer[Catalog]
}

// Replace swaps cat in as the active snapshot.
func (s *Store) Replace(cat *Catalog) {
	s.current.Store(cat)
}

// Current returns the active snapshot, or nil before the first Replace.
func (s *Store) Current() *Catalog {
	return s.current.Load()
}
