package planner

import (
	"math"
	"strconv"

	"github.com/google/uuid"

	"github.com/barbatjuan/ruteo/internal/domain"
	"github.com/barbatjuan/ruteo/internal/ports"
)

// Project rebuilds the visiting sequence from the provider's waypoint
// permutation and recovers caller stop identity by coordinate matching
// against the original input. Unmatched route points become synthetic
// stops with fresh ids.
//
// Labeling: with a fixed origin, entries at the origin are labeled "0"
// and the rest "1".."N" in visiting order; without one, all entries are
// numbered from "1".
//
// Metrics: distance is rounded to 2 decimals (km), duration to 1 decimal
// (minutes). Legs with missing values contribute zero.
func Project(part Partition, order []int, legs []ports.RouteLeg, original []domain.Stop) domain.RoutePlan {
	if part.Empty {
		return domain.RoutePlan{Sequence: []domain.Stop{}}
	}

	points := sequencePoints(part, order)

	used := make([]bool, len(original))
	match := func(p domain.Point) domain.Stop {
		for i, s := range original {
			if used[i] || !domain.SamePoint(s.Lat, s.Lng, p.Lat, p.Lng) {
				continue
			}
			used[i] = true
			if p.Address != "" {
				s.Address = p.Address
			}
			return s
		}
		return domain.Stop{
			ID:      uuid.NewString(),
			Address: p.Address,
			Lat:     p.Lat,
			Lng:     p.Lng,
		}
	}

	counter := 1
	sequence := make([]domain.Stop, 0, len(points))
	for _, p := range points {
		s := match(p)
		if part.HasOrigin && domain.SamePoint(p.Lat, p.Lng, part.Origin.Lat, part.Origin.Lng) {
			s.Label = "0"
		} else {
			s.Label = strconv.Itoa(counter)
			counter++
		}
		sequence = append(sequence, s)
	}

	distanceM, durationS := 0, 0
	for _, l := range legs {
		distanceM += l.DistanceMeters
		durationS += l.DurationSeconds
	}

	return domain.RoutePlan{
		Sequence:    sequence,
		DistanceKm:  math.Round(float64(distanceM)/1000*100) / 100,
		DurationMin: math.Round(float64(durationS)/60*10) / 10,
	}
}

// sequencePoints expands the partition plus permutation into the full
// ordered point list. A permutation whose length does not cover the
// waypoints is replaced by input order, so a provider that returned no
// usable ordering still yields a complete sequence.
func sequencePoints(part Partition, order []int) []domain.Point {
	if part.degenerate() {
		return []domain.Point{part.Origin}
	}

	if len(order) != len(part.Waypoints) {
		order = identityOrder(len(part.Waypoints))
	}

	points := make([]domain.Point, 0, len(part.Waypoints)+2)
	points = append(points, part.Origin)
	for _, i := range order {
		if i < 0 || i >= len(part.Waypoints) {
			continue
		}
		points = append(points, part.Waypoints[i].Point())
	}
	if part.RoundTrip {
		points = append(points, part.Origin)
	} else {
		points = append(points, part.Destination)
	}
	return points
}

func identityOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}
