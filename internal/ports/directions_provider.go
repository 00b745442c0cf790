package ports

import (
	"context"
	"errors"

	"github.com/barbatjuan/ruteo/internal/domain"
)

// ErrNoRoute signals that the provider found no drivable route between the
// requested points. Callers degrade to the caller-supplied stop order
// instead of failing the planning flow.
var ErrNoRoute = errors.New("no route found")

// TransientError marks a provider failure worth retrying: rate limits,
// 5xx responses, network errors, or the provider's generic unknown-error
// class. Classification happens at the adapter boundary, never by
// inspecting error text at the call site.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string { return "transient provider failure: " + e.Err.Error() }
func (e *TransientError) Unwrap() error { return e.Err }

// RouteLeg carries metrics for one hop between consecutive route points.
type RouteLeg struct {
	DistanceMeters  int
	DurationSeconds int
}

// DirectionsResult is the provider's answer for one optimization request.
// WaypointOrder is a zero-based permutation of the request waypoints in
// visiting order; Legs has len(waypoints)+1 entries covering every
// consecutive hop from origin to destination.
type DirectionsResult struct {
	WaypointOrder []int
	Legs          []RouteLeg
}

// Contract for a road-network routing provider that performs waypoint-order
// optimization. The returned order is the provider's heuristic, not an
// optimal tour; it is treated as a black box.
type DirectionsProvider interface {
	Route(ctx context.Context, origin, destination domain.Point, waypoints []domain.Point) (DirectionsResult, error)
}
