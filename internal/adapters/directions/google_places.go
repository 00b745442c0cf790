package directions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/barbatjuan/ruteo/internal/platform/obs"
	"github.com/barbatjuan/ruteo/internal/ports"
)

const minAutocompleteChars = 3

type autocompleteResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Predictions  []struct {
		Description string `json:"description"`
		PlaceID     string `json:"place_id"`
	} `json:"predictions"`
}

type detailsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Result       struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"result"`
}

// Autocomplete returns place predictions for a partial query.
// Queries under minAutocompleteChars return an empty list without a call.
func (g *GoogleProvider) Autocomplete(ctx context.Context, query, session string) (_ []ports.PlaceSuggestion, err error) {
	input := strings.TrimSpace(query)
	if len([]rune(input)) < minAutocompleteChars {
		return []ports.PlaceSuggestion{}, nil
	}

	defer obs.Time(ctx, "google.autocomplete")(&err)

	params := url.Values{}
	params.Set("input", input)
	if session != "" {
		params.Set("sessiontoken", session)
	}

	req, err := g.newRequest(ctx, "/maps/api/place/autocomplete/json", params)
	if err != nil {
		return nil, fmt.Errorf("autocomplete request: %w", err)
	}

	resp, err := g.do(req)
	if err != nil {
		return nil, classifyTransport(err)
	}
	defer resp.Body.Close()

	var decoded autocompleteResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode autocomplete response: %w", err)
	}

	if decoded.Status == "ZERO_RESULTS" {
		return []ports.PlaceSuggestion{}, nil
	}
	if err := classifyStatus(decoded.Status, decoded.ErrorMessage); err != nil {
		return nil, err
	}

	out := make([]ports.PlaceSuggestion, 0, len(decoded.Predictions))
	for _, p := range decoded.Predictions {
		out = append(out, ports.PlaceSuggestion{
			Description: p.Description,
			PlaceID:     p.PlaceID,
		})
	}

	return out, nil
}

// Details resolves a place id to coordinates and a formatted address.
func (g *GoogleProvider) Details(ctx context.Context, placeID, session string) (_ ports.PlaceDetails, err error) {
	if strings.TrimSpace(placeID) == "" {
		return ports.PlaceDetails{}, errors.New("place details: place id must be non-empty")
	}

	defer obs.Time(ctx, "google.place_details")(&err)

	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", "place_id,formatted_address,geometry")
	if session != "" {
		params.Set("sessiontoken", session)
	}

	req, err := g.newRequest(ctx, "/maps/api/place/details/json", params)
	if err != nil {
		return ports.PlaceDetails{}, fmt.Errorf("place details request: %w", err)
	}

	resp, err := g.do(req)
	if err != nil {
		return ports.PlaceDetails{}, classifyTransport(err)
	}
	defer resp.Body.Close()

	var decoded detailsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.PlaceDetails{}, fmt.Errorf("decode place details response: %w", err)
	}

	if decoded.Status == "ZERO_RESULTS" || decoded.Status == "NOT_FOUND" {
		return ports.PlaceDetails{}, fmt.Errorf("place %q: %w", placeID, ports.ErrPlaceNotFound)
	}
	if err := classifyStatus(decoded.Status, decoded.ErrorMessage); err != nil {
		return ports.PlaceDetails{}, err
	}

	return ports.PlaceDetails{
		Lat:        decoded.Result.Geometry.Location.Lat,
		Lng:        decoded.Result.Geometry.Location.Lng,
		Normalized: decoded.Result.FormattedAddress,
	}, nil
}
