package ports

import "context"

// GeocodeResult is the resolution of one free-text address.
// Found is false when the provider had no match; the address string is
// preserved and coordinates are meaningless in that case.
type GeocodeResult struct {
	Address    string
	Lat        float64
	Lng        float64
	Normalized string
	Found      bool
}

// Contract for resolving free-text addresses to coordinates.
type Geocoder interface {
	// Resolve a single address to its best match.
	Geocode(ctx context.Context, address string) (GeocodeResult, error)
	// Resolve many addresses. One result per input, in input order;
	// individual misses or failures never abort the batch.
	GeocodeBatch(ctx context.Context, addresses []string) ([]GeocodeResult, error)
}
