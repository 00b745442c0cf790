package dto

type Point struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
}

type RouteOptions struct {
	Origin    *Point `json:"origin,omitempty"`
	RoundTrip bool   `json:"roundTrip,omitempty"`
}

type CalculateRouteRequest struct {
	Points  []Point      `json:"points"`
	Options RouteOptions `json:"options"`
}

type StopResponse struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Label   string  `json:"label,omitempty"`
}

type CalculateRouteResponse struct {
	Stops       []StopResponse `json:"stops"`
	DistanceKm  float64        `json:"distance_km"`
	DurationMin float64        `json:"duration_min"`
}
