package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/barbatjuan/ruteo/internal/ports"
)

const geocodeKeyPrefix = "geocode:"

// RedisGeocodeCache stores resolved addresses in Redis with a TTL so repeat
// geocode traffic (CSV imports, recurring clients) skips the external API.
// Only successful resolutions are cached; misses are always re-queried.
type RedisGeocodeCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisGeocodeCache(client *redis.Client, ttl time.Duration) *RedisGeocodeCache {
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &RedisGeocodeCache{Client: client, TTL: ttl}
}

type cachedGeocode struct {
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	Normalized string  `json:"normalized"`
}

// Get returns the cached resolution for a normalized address.
// The second return value is false on a cache miss.
func (c *RedisGeocodeCache) Get(ctx context.Context, address string) (ports.GeocodeResult, bool, error) {
	if c.Client == nil {
		return ports.GeocodeResult{}, false, errors.New("geocode cache: client is nil")
	}
	if address == "" {
		return ports.GeocodeResult{}, false, errors.New("geocode cache: address must be non-empty")
	}

	raw, err := c.Client.Get(ctx, geocodeKeyPrefix+address).Bytes()
	if errors.Is(err, redis.Nil) {
		return ports.GeocodeResult{}, false, nil
	}
	if err != nil {
		return ports.GeocodeResult{}, false, fmt.Errorf("geocode cache get %q: %w", address, err)
	}

	var entry cachedGeocode
	if err := json.Unmarshal(raw, &entry); err != nil {
		return ports.GeocodeResult{}, false, fmt.Errorf("geocode cache decode %q: %w", address, err)
	}

	return ports.GeocodeResult{
		Address:    address,
		Lat:        entry.Lat,
		Lng:        entry.Lng,
		Normalized: entry.Normalized,
		Found:      true,
	}, true, nil
}

// Put stores a successful resolution. Unresolved results are ignored.
func (c *RedisGeocodeCache) Put(ctx context.Context, address string, result ports.GeocodeResult) error {
	if c.Client == nil {
		return errors.New("geocode cache: client is nil")
	}
	if address == "" {
		return errors.New("geocode cache: address must be non-empty")
	}
	if !result.Found {
		return nil
	}

	raw, err := json.Marshal(cachedGeocode{
		Lat:        result.Lat,
		Lng:        result.Lng,
		Normalized: result.Normalized,
	})
	if err != nil {
		return fmt.Errorf("geocode cache encode %q: %w", address, err)
	}

	if err := c.Client.Set(ctx, geocodeKeyPrefix+address, raw, c.TTL).Err(); err != nil {
		return fmt.Errorf("geocode cache set %q: %w", address, err)
	}

	return nil
}
