package store

import (
	"sync"
	"time"
)

// MemStore is an in-memory Store for tests and ephemeral use.
// Snapshots are copied on the way in and out.
type MemStore struct {
	mu    sync.RWMutex
	snaps map[string]Snapshot
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{snaps: make(map[string]Snapshot)}
}

// Save stores a copy of the snapshot.
func (s *MemStore) Save(snap *Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *snap
	if cp.UpdatedAt == 0 {
		cp.UpdatedAt = time.Now().Unix()
	}
	s.snaps[cp.ConversationID] = cp
	return nil
}

// Load returns a copy of the stored snapshot, or ErrNotFound.
func (s *MemStore) Load(conversationID string) (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, ok := s.snaps[conversationID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := snap
	return &cp, nil
}

// Delete removes the snapshot, if any.
func (s *MemStore) Delete(conversationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.snaps, conversationID)
	return nil
}

// List returns the conversation ids with stored snapshots.
func (s *MemStore) List() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.snaps))
	for id := range s.snaps {
		ids = append(ids, id)
	}
	return ids, nil
}

// Close implements Store.
func (s *MemStore) Close() error { return nil }
