package planner

import "github.com/barbatjuan/ruteo/internal/domain"

// Partition is the origin/destination/waypoints split handed to the
// directions provider. Waypoints keep their input order; the provider
// decides the visiting order.
type Partition struct {
	Origin      domain.Point
	Destination domain.Point
	Waypoints   []domain.Stop
	HasOrigin   bool
	RoundTrip   bool
	Empty       bool
}

// PartitionStops decides which points anchor each end of the route.
//
// With a fixed origin, any stop coordinate-equal to it is dropped so the
// starting point is not counted as a delivery twice. One-way routes pick
// the remaining stop farthest from the origin (planar distance, first
// occurrence wins ties) as the destination. Without a fixed origin the
// caller's first and last stops anchor the route and only the middle
// stops are subject to reordering.
//
// The function is pure: identical inputs always yield the same partition.
func PartitionStops(stops []domain.Stop, opts domain.RouteOptions) Partition {
	if len(stops) == 0 {
		return Partition{Empty: true}
	}

	if opts.Origin != nil {
		origin := *opts.Origin

		rest := make([]domain.Stop, 0, len(stops))
		for _, s := range stops {
			if domain.SamePoint(s.Lat, s.Lng, origin.Lat, origin.Lng) {
				continue
			}
			rest = append(rest, s)
		}

		if len(rest) == 0 {
			return Partition{
				Origin:      origin,
				Destination: origin,
				HasOrigin:   true,
				RoundTrip:   opts.RoundTrip,
			}
		}

		if opts.RoundTrip {
			return Partition{
				Origin:      origin,
				Destination: origin,
				Waypoints:   rest,
				HasOrigin:   true,
				RoundTrip:   true,
			}
		}

		far := 0
		farDist := domain.PlanarDistance(rest[0].Lat, rest[0].Lng, origin.Lat, origin.Lng)
		for i := 1; i < len(rest); i++ {
			if d := domain.PlanarDistance(rest[i].Lat, rest[i].Lng, origin.Lat, origin.Lng); d > farDist {
				far = i
				farDist = d
			}
		}

		waypoints := make([]domain.Stop, 0, len(rest)-1)
		waypoints = append(waypoints, rest[:far]...)
		waypoints = append(waypoints, rest[far+1:]...)

		return Partition{
			Origin:      origin,
			Destination: rest[far].Point(),
			Waypoints:   waypoints,
			HasOrigin:   true,
		}
	}

	first := stops[0]
	if opts.RoundTrip {
		return Partition{
			Origin:      first.Point(),
			Destination: first.Point(),
			Waypoints:   append([]domain.Stop(nil), stops[1:]...),
			RoundTrip:   true,
		}
	}

	last := stops[len(stops)-1]
	var middle []domain.Stop
	if len(stops) > 2 {
		middle = append([]domain.Stop(nil), stops[1:len(stops)-1]...)
	}

	return Partition{
		Origin:      first.Point(),
		Destination: last.Point(),
		Waypoints:   middle,
	}
}

// degenerate reports whether the partition needs no directions call:
// nothing to visit beyond a single point.
func (p Partition) degenerate() bool {
	return !p.Empty &&
		len(p.Waypoints) == 0 &&
		domain.SamePoint(p.Origin.Lat, p.Origin.Lng, p.Destination.Lat, p.Destination.Lng)
}
