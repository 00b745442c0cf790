package directions

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/barbatjuan/ruteo/internal/adapters/cache"
)

// GoogleProvider implements the directions, geocoding and places ports
// against the Google Maps web service APIs.
//
// It coordinates:
//   - Typed classification of provider failures at the adapter boundary
//   - A single retry of transient directions failures
//   - Optional Redis-backed geocode caching
//
// The provider is safe for concurrent use.
type GoogleProvider struct {
	session      *http.Client
	apiKey       string
	baseURL      string
	language     string
	region       string
	geocodeCache *cache.RedisGeocodeCache
}

func NewGoogleProvider(
	apiKey string,
	language string,
	region string,
	geocodeCache *cache.RedisGeocodeCache,
) (*GoogleProvider, error) {
	if apiKey == "" {
		return nil, errors.New("google maps api key is empty")
	}

	provider := &GoogleProvider{
		session:      &http.Client{Timeout: 10 * time.Second},
		apiKey:       apiKey,
		baseURL:      "https://maps.googleapis.com",
		language:     language,
		region:       region,
		geocodeCache: geocodeCache,
	}

	return provider, nil
}

// normalize ensures consistent cache keys by collapsing whitespace.
func (g *GoogleProvider) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func formatLatLng(lat, lng float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lng, 'f', -1, 64)
}
