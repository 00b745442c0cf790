package dto

type GeocodeRequestItem struct {
	Address string `json:"address"`
}

// Unresolved addresses keep their input string with null coordinates.
type GeocodeResponseItem struct {
	Address    string   `json:"address"`
	Lat        *float64 `json:"lat"`
	Lng        *float64 `json:"lng"`
	Normalized *string  `json:"normalized"`
}

type PlaceSuggestion struct {
	Description string `json:"description"`
	PlaceID     string `json:"place_id"`
}

type PlaceDetailsResponse struct {
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	Normalized string  `json:"normalized"`
}
