package trips

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const DefaultCacheTTL = 30 * time.Minute

// CachedStore puts a Redis read-through cache in front of another Store.
// Only single-trip reads are cached; cache errors never fail a request.
type CachedStore struct {
	next Store
	rdb  *redis.Client
	ttl  time.Duration
}

func NewCachedStore(next Store, rdb *redis.Client, ttl time.Duration) *CachedStore {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedStore{next: next, rdb: rdb, ttl: ttl}
}

func cacheKey(id string) string { return "trip:" + id }

func (s *CachedStore) Save(ctx context.Context, t *Trip) error {
	if err := s.next.Save(ctx, t); err != nil {
		return err
	}
	s.put(ctx, t)
	return nil
}

func (s *CachedStore) Get(ctx context.Context, id string) (*Trip, error) {
	b, err := s.rdb.Get(ctx, cacheKey(id)).Bytes()
	if err == nil {
		var t Trip
		if err := json.Unmarshal(b, &t); err == nil {
			return &t, nil
		}
		log.Printf("trips cache: drop corrupt entry id=%s", id)
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("trips cache: get id=%s: %v", id, err)
	}

	t, err := s.next.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.put(ctx, t)
	return t, nil
}

func (s *CachedStore) ListByUser(ctx context.Context, userID string) ([]*Trip, error) {
	return s.next.ListByUser(ctx, userID)
}

func (s *CachedStore) put(ctx context.Context, t *Trip) {
	b, err := json.Marshal(t)
	if err != nil {
		log.Printf("trips cache: encode id=%s: %v", t.ID, err)
		return
	}
	if err := s.rdb.Set(ctx, cacheKey(t.ID), b, s.ttl).Err(); err != nil {
		log.Printf("trips cache: set id=%s: %v", t.ID, err)
	}
}
