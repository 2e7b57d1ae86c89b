// README: Google Places lookup that resolves a destination name to a place id, memoized in-process.
package maps

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"googlemaps.github.io/maps"
)

// ErrPlaceNotFound is returned when the text search has no results.
var ErrPlaceNotFound = errors.New("place not found")

const DefaultPlaceCacheTTL = 24 * time.Hour

// Place represents a simplified location result.
type Place struct {
	PlaceID string  `json:"placeId"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// PlacesService handles interactions with Google Places API.
type PlacesService struct {
	client *maps.Client
	cache  *cache.Cache
}

// NewPlacesService creates a new PlacesService with the given API Key.
// Extra client options are passed through to the maps client.
func NewPlacesService(apiKey string, ttl time.Duration, opts ...maps.ClientOption) (*PlacesService, error) {
	client, err := maps.NewClient(append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	if ttl <= 0 {
		ttl = DefaultPlaceCacheTTL
	}
	return &PlacesService{
		client: client,
		cache:  cache.New(ttl, ttl/4),
	}, nil
}

// Resolve looks up the best match for a free-text destination name.
func (s *PlacesService) Resolve(ctx context.Context, name string) (*Place, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return nil, ErrPlaceNotFound
	}
	if cached, found := s.cache.Get(key); found {
		p := cached.(Place)
		return &p, nil
	}

	resp, err := s.client.TextSearch(ctx, &maps.TextSearchRequest{Query: name})
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}
	if len(resp.Results) == 0 {
		return nil, ErrPlaceNotFound
	}

	r := resp.Results[0]
	p := Place{
		PlaceID: r.PlaceID,
		Name:    r.Name,
		Address: r.FormattedAddress,
		Lat:     r.Geometry.Location.Lat,
		Lng:     r.Geometry.Location.Lng,
	}
	s.cache.Set(key, p, cache.DefaultExpiration)
	return &p, nil
}
