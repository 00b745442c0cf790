package planner

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/barbatjuan/ruteo/internal/domain"
	"github.com/barbatjuan/ruteo/internal/ports"
)

// PlanRoute computes the visiting order for a set of stops plus aggregate
// distance and duration metrics.
//
// Degenerate inputs (empty list, a single point) return without calling
// the provider. When the provider finds no route, or a transient failure
// survives the adapter's retry, the caller's order is kept with zero
// metrics rather than surfacing an error. Permanent provider failures
// (bad request, missing credentials) are returned to the caller.
func PlanRoute(
	ctx context.Context,
	stops []domain.Stop,
	opts domain.RouteOptions,
	provider ports.DirectionsProvider,
) (domain.RoutePlan, error) {
	part := PartitionStops(stops, opts)
	if part.Empty || part.degenerate() {
		return Project(part, nil, nil, stops), nil
	}

	waypoints := make([]domain.Point, 0, len(part.Waypoints))
	for _, s := range part.Waypoints {
		waypoints = append(waypoints, s.Point())
	}

	res, err := provider.Route(ctx, part.Origin, part.Destination, waypoints)
	if err != nil {
		var transient *ports.TransientError
		if errors.Is(err, ports.ErrNoRoute) || errors.As(err, &transient) {
			// Degrade to the caller-supplied order instead of failing the flow.
			log.Printf("plan route: degrading to input order: %v", err)
			return Project(part, identityOrder(len(part.Waypoints)), nil, stops), nil
		}
		return domain.RoutePlan{}, fmt.Errorf("plan route: directions: %w", err)
	}

	return Project(part, res.WaypointOrder, res.Legs, stops), nil
}
