package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/barbatjuan/ruteo/internal/ports"
)

func testCache(t *testing.T) (*RedisGeocodeCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisGeocodeCache(client, time.Hour), mr
}

func TestGeocodeCacheRoundTrip(t *testing.T) {
	c, _ := testCache(t)
	ctx := context.Background()

	stored := ports.GeocodeResult{
		Address:    "av. italia 1234",
		Lat:        -34.88,
		Lng:        -56.12,
		Normalized: "Av. Italia 1234, Montevideo",
		Found:      true,
	}
	if err := c.Put(ctx, "av. italia 1234", stored); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := c.Get(ctx, "av. italia 1234")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatalf("expected a cache hit")
	}
	if got.Lat != stored.Lat || got.Lng != stored.Lng || got.Normalized != stored.Normalized {
		t.Fatalf("got %+v, want %+v", got, stored)
	}
	if !got.Found {
		t.Fatalf("cached entries are always resolved")
	}
}

func TestGeocodeCacheMiss(t *testing.T) {
	c, _ := testCache(t)

	_, ok, err := c.Get(context.Background(), "never stored")
	if err != nil {
		t.Fatalf("a miss must not be an error: %v", err)
	}
	if ok {
		t.Fatalf("expected a miss")
	}
}

func TestGeocodeCacheSkipsUnresolved(t *testing.T) {
	c, mr := testCache(t)

	err := c.Put(context.Background(), "nowhere", ports.GeocodeResult{Address: "nowhere"})
	if err != nil {
		t.Fatalf("put: %v", err)
	}
	if mr.Exists(geocodeKeyPrefix + "nowhere") {
		t.Fatalf("unresolved results must not be cached")
	}
}

func TestGeocodeCacheExpiry(t *testing.T) {
	c, mr := testCache(t)
	ctx := context.Background()

	res := ports.GeocodeResult{Address: "a", Lat: 1, Lng: 2, Normalized: "A", Found: true}
	if err := c.Put(ctx, "a", res); err != nil {
		t.Fatalf("put: %v", err)
	}

	mr.FastForward(2 * time.Hour)

	_, ok, err := c.Get(ctx, "a")
	if err != nil {
		t.Fatalf("get after expiry: %v", err)
	}
	if ok {
		t.Fatalf("entry should have expired")
	}
}

func TestGeocodeCacheRejectsEmptyAddress(t *testing.T) {
	c, _ := testCache(t)

	if _, _, err := c.Get(context.Background(), ""); err == nil {
		t.Fatalf("expected an error for an empty address")
	}
	if err := c.Put(context.Background(), "", ports.GeocodeResult{Found: true}); err == nil {
		t.Fatalf("expected an error for an empty address")
	}
}
