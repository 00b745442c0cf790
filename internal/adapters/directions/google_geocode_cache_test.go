package directions

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/barbatjuan/ruteo/internal/adapters/cache"
)

func TestGeocodeUsesCacheOnSecondCall(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	calls := 0
	provider, _ := testProvider(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, `{
			"status": "OK",
			"results": [{
				"formatted_address": "Bulevar Artigas 100, Montevideo",
				"geometry": {"location": {"lat": -34.89, "lng": -56.17}}
			}]
		}`)
	})
	provider.geocodeCache = cache.NewRedisGeocodeCache(client, time.Hour)

	ctx := context.Background()

	first, err := provider.Geocode(ctx, "bulevar artigas 100")
	if err != nil {
		t.Fatalf("first geocode: %v", err)
	}
	if !first.Found {
		t.Fatalf("expected a resolved address")
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}

	// Same address with different spacing normalizes to the same cache key.
	second, err := provider.Geocode(ctx, "  bulevar   artigas 100 ")
	if err != nil {
		t.Fatalf("second geocode: %v", err)
	}
	if !second.Found || second.Lat != first.Lat || second.Lng != first.Lng {
		t.Fatalf("cached result = %+v, want %+v", second, first)
	}
	if calls != 1 {
		t.Fatalf("calls = %d, cached lookup must not reach the API", calls)
	}
}
