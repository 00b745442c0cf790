package domain

// Stop is a single delivery point subject to route sequencing.
// ID is caller-assigned and preserved through reordering; coordinates are
// the identity key when reconciling provider output back to caller stops.
type Stop struct {
	ID      string
	Address string
	Lat     float64
	Lng     float64
	Label   string
}

// Point returns the stop's location as a bare Point.
func (s Stop) Point() Point {
	return Point{Lat: s.Lat, Lng: s.Lng, Address: s.Address}
}

// RouteOptions control how the visiting order is computed.
type RouteOptions struct {
	// Fixed starting point, possibly distinct from every stop. When nil the
	// caller's first stop anchors the route.
	Origin *Point
	// When true the route closes back on its starting point.
	RoundTrip bool
}

// RoutePlan is the result of sequencing a set of stops.
// Sequence is the visiting order including origin and destination;
// metrics are totals over all road legs, zero when unknown.
type RoutePlan struct {
	Sequence    []Stop
	DistanceKm  float64
	DurationMin float64
}
