package directions

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"sync"

	"github.com/barbatjuan/ruteo/internal/platform/obs"
	"github.com/barbatjuan/ruteo/internal/ports"
)

type geocodeResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode resolves one free-text address (/maps/api/geocode). A miss is a
// Found=false result with the address preserved, never an error.
func (g *GoogleProvider) Geocode(ctx context.Context, address string) (_ ports.GeocodeResult, err error) {
	defer obs.Time(ctx, "google.geocode")(&err)

	norm := g.normalize(address)
	if norm == "" {
		return ports.GeocodeResult{Address: address}, nil
	}

	if g.geocodeCache != nil {
		hit, ok, cerr := g.geocodeCache.Get(ctx, norm)
		if cerr != nil {
			log.Printf("geocode cache read failed: %v", cerr)
		} else if ok {
			hit.Address = address
			return hit, nil
		}
	}

	params := url.Values{}
	params.Set("address", norm)

	req, err := g.newRequest(ctx, "/maps/api/geocode/json", params)
	if err != nil {
		return ports.GeocodeResult{}, fmt.Errorf("geocode request: %w", err)
	}

	resp, err := g.do(req)
	if err != nil {
		return ports.GeocodeResult{}, classifyTransport(err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.GeocodeResult{}, fmt.Errorf("decode geocode response: %w", err)
	}

	if decoded.Status == "ZERO_RESULTS" || (decoded.Status == "OK" && len(decoded.Results) == 0) {
		return ports.GeocodeResult{Address: address}, nil
	}

	if err := classifyStatus(decoded.Status, decoded.ErrorMessage); err != nil {
		return ports.GeocodeResult{}, err
	}

	r := decoded.Results[0]
	out := ports.GeocodeResult{
		Address:    address,
		Lat:        r.Geometry.Location.Lat,
		Lng:        r.Geometry.Location.Lng,
		Normalized: r.FormattedAddress,
		Found:      true,
	}
	if out.Normalized == "" {
		out.Normalized = address
	}

	if g.geocodeCache != nil {
		if cerr := g.geocodeCache.Put(ctx, norm, out); cerr != nil {
			log.Printf("geocode cache write failed: %v", cerr)
		}
	}

	return out, nil
}

// GeocodeBatch resolves many addresses with bounded concurrency. Individual
// failures degrade to unresolved entries so one bad address never aborts an
// import of many.
func (g *GoogleProvider) GeocodeBatch(ctx context.Context, addresses []string) ([]ports.GeocodeResult, error) {
	results := make([]ports.GeocodeResult, len(addresses))

	sem := make(chan struct{}, 4)
	var wg sync.WaitGroup

	for i, a := range addresses {
		wg.Add(1)
		go func(i int, a string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			r, err := g.Geocode(ctx, a)
			if err != nil {
				log.Printf("geocode batch: address=%q err=%v", a, err)
				r = ports.GeocodeResult{Address: a}
			}
			results[i] = r
		}(i, a)
	}

	wg.Wait()
	return results, nil
}
