package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"googlemaps.github.io/maps"
)

const estimateTTL = time.Hour

// Estimate is an advisory drive-time figure attached to quotes. It never
// affects the fare.
type Estimate struct {
	Duration time.Duration `json:"duration"`
	Distance string        `json:"distance"`
}

// RouteService handles interactions with the Google Maps API, with a Redis
// cache in front since the same handful of routes is quoted constantly.
type RouteService struct {
	client *maps.Client
	cache  *redis.Client
}

// NewRouteService creates a RouteService with the given API key. cache may be
// nil to skip caching.
func NewRouteService(apiKey string, cache *redis.Client) (*RouteService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &RouteService{client: client, cache: cache}, nil
}

// GetTravelEstimate returns the driving duration and distance for a leg.
// It assumes driving mode and biases results to Singapore/Malaysia.
func (s *RouteService) GetTravelEstimate(ctx context.Context, origin, destination string) (Estimate, error) {
	key := cacheKey(origin, destination)
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, key).Result(); err == nil {
			var est Estimate
			if json.Unmarshal([]byte(raw), &est) == nil {
				return est, nil
			}
		}
	}

	r := &maps.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
		Mode:        maps.TravelModeDriving,
		Language:    "en",
		Region:      "SG",
	}
	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		return Estimate{}, fmt.Errorf("maps api error: %w", err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return Estimate{}, fmt.Errorf("no route found")
	}

	leg := routes[0].Legs[0]
	est := Estimate{Duration: leg.Duration, Distance: leg.Distance.HumanReadable}

	if s.cache != nil {
		if raw, err := json.Marshal(est); err == nil {
			s.cache.Set(ctx, key, raw, estimateTTL)
		}
	}
	return est, nil
}

func cacheKey(origin, destination string) string {
	return "est:" + strings.ToLower(origin) + "|" + strings.ToLower(destination)
}
