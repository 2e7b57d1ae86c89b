package trips

import (
	"context"
	"sort"
	"sync"
)

// Store persists trips keyed by id.
type Store interface {
	Save(ctx context.Context, t *Trip) error
	Get(ctx context.Context, id string) (*Trip, error)
	// ListByUser returns the user's trips, newest first.
	ListByUser(ctx context.Context, userID string) ([]*Trip, error)
}

// MemoryStore keeps trips in process memory. Used for local runs and tests.
type MemoryStore struct {
	mu    sync.RWMutex
	trips map[string]Trip
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{trips: make(map[string]Trip)}
}

func (s *MemoryStore) Save(_ context.Context, t *Trip) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trips[t.ID] = *t
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.trips[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &t, nil
}

func (s *MemoryStore) ListByUser(_ context.Context, userID string) ([]*Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*Trip
	for _, t := range s.trips {
		if t.UserID == userID {
			t := t
			out = append(out, &t)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func sortNewestFirst(ts []*Trip) {
	sort.Slice(ts, func(i, j int) bool { return ts[i].CreatedAt.After(ts[j].CreatedAt) })
}
