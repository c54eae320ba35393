package memory

import (
	"context"
	"sync"

	"github.com/veldt-labs/detent/pkg/domain"
)

// Store implements ports.SnapshotStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string][]byte
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string][]byte),
	}
}

// Save persists the snapshot in memory.
func (s *Store) Save(ctx context.Context, machineID string, data []byte) error {
	// Copy so the caller can't mutate stored bytes afterwards.
	buf := make([]byte, len(data))
	copy(buf, data)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[machineID] = buf
	return nil
}

// Load retrieves the snapshot from memory.
func (s *Store) Load(ctx context.Context, machineID string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.data[machineID]
	if !ok {
		return nil, domain.ErrMachineNotFound
	}

	buf := make([]byte, len(data))
	copy(buf, data)
	return buf, nil
}

// Delete removes the snapshot.
func (s *Store) Delete(ctx context.Context, machineID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, machineID)
	return nil
}

// List returns the IDs of persisted machines.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	return ids, nil
}
