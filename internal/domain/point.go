package domain

import "math"

// CoordTolerance is the coordinate equality tolerance in degrees (~0.1m).
// Two points whose latitude and longitude both differ by less than this
// are treated as the same physical location.
const CoordTolerance = 1e-6

// Geographic point together with the address it was resolved from.
type Point struct {
	Lat     float64
	Lng     float64
	Address string
}

// SamePoint reports whether two coordinate pairs are equal within CoordTolerance.
func SamePoint(aLat, aLng, bLat, bLng float64) bool {
	return math.Abs(aLat-bLat) < CoordTolerance && math.Abs(aLng-bLng) < CoordTolerance
}

// PlanarDistance is the Euclidean distance between two coordinate pairs in
// raw degree space. Not geodesic: it is only used to rank candidate
// destinations by "farther from the origin", where a monotone measure is enough.
func PlanarDistance(aLat, aLng, bLat, bLng float64) float64 {
	return math.Hypot(aLat-bLat, aLng-bLng)
}
