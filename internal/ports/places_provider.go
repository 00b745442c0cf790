package ports

import (
	"context"
	"errors"
)

// ErrPlaceNotFound is returned when a place id resolves to nothing.
var ErrPlaceNotFound = errors.New("place not found")

// PlaceSuggestion is one autocomplete prediction.
type PlaceSuggestion struct {
	Description string
	PlaceID     string
}

// PlaceDetails is the resolved location of a place id.
type PlaceDetails struct {
	Lat        float64
	Lng        float64
	Normalized string
}

// Contract for address autocompletion and place resolution.
//
// The session token groups an autocomplete/details call pair for provider
// billing and result consistency. It is threaded explicitly by the caller;
// an empty token means no grouping. It is a cost optimization, not a
// correctness requirement.
type PlacesProvider interface {
	Autocomplete(ctx context.Context, query, session string) ([]PlaceSuggestion, error)
	Details(ctx context.Context, placeID, session string) (PlaceDetails, error)
}
