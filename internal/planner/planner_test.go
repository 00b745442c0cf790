package planner

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/barbatjuan/ruteo/internal/adapters/directions"
	"github.com/barbatjuan/ruteo/internal/domain"
	"github.com/barbatjuan/ruteo/internal/ports"
)

func TestPlanRouteOrdersStopsAndSumsMetrics(t *testing.T) {
	origin := domain.Point{Lat: 0, Lng: 0, Address: "base"}
	stops := []domain.Stop{stop("a", 1, 1), stop("b", 2, 2), stop("c", 5, 5)}

	provider := &directions.MockDirectionsProvider{
		Result: ports.DirectionsResult{
			WaypointOrder: []int{1, 0},
			Legs: []ports.RouteLeg{
				{DistanceMeters: 1000, DurationSeconds: 300},
				{DistanceMeters: 2000, DurationSeconds: 600},
				{DistanceMeters: 1500, DurationSeconds: 450},
			},
		},
	}

	plan, err := PlanRoute(context.Background(), stops, domain.RouteOptions{Origin: &origin}, provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// N stops with an external origin, one-way: origin + (N-1) waypoints + destination.
	if len(plan.Sequence) != len(stops)+1 {
		t.Fatalf("sequence length = %d, want %d", len(plan.Sequence), len(stops)+1)
	}
	if plan.Sequence[1].ID != "b" || plan.Sequence[2].ID != "a" || plan.Sequence[3].ID != "c" {
		t.Fatalf("visiting order = [%s %s %s], want [b a c]",
			plan.Sequence[1].ID, plan.Sequence[2].ID, plan.Sequence[3].ID)
	}
	if plan.DistanceKm != 4.5 {
		t.Fatalf("distance = %v, want 4.5", plan.DistanceKm)
	}
	if plan.DurationMin != 22.5 {
		t.Fatalf("duration = %v, want 22.5", plan.DurationMin)
	}
	if provider.Calls != 1 {
		t.Fatalf("provider calls = %d, want 1", provider.Calls)
	}
}

func TestPlanRouteOriginNeverDuplicated(t *testing.T) {
	origin := domain.Point{Lat: 1, Lng: 1, Address: "base"}
	stops := []domain.Stop{
		stop("dup", 1.0000003, 1.0000001), // coordinate-equal to the origin
		stop("a", 2, 2),
		stop("b", 3, 3),
	}

	provider := &directions.MockDirectionsProvider{
		Result: ports.DirectionsResult{WaypointOrder: []int{0}},
	}

	plan, err := PlanRoute(context.Background(), stops, domain.RouteOptions{Origin: &origin}, provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	count := 0
	for _, s := range plan.Sequence {
		if domain.SamePoint(s.Lat, s.Lng, origin.Lat, origin.Lng) {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("origin appears %d times in a one-way sequence, want 1", count)
	}
}

func TestPlanRouteSingleStopSkipsProvider(t *testing.T) {
	stops := []domain.Stop{stop("only", 1, 1)}
	provider := &directions.MockDirectionsProvider{}

	plan, err := PlanRoute(context.Background(), stops, domain.RouteOptions{}, provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if provider.Calls != 0 {
		t.Fatalf("degenerate input must not call the provider, got %d calls", provider.Calls)
	}
	if len(plan.Sequence) != 1 || plan.Sequence[0].ID != "only" {
		t.Fatalf("sequence = %+v, want the single input stop", plan.Sequence)
	}
	if plan.DistanceKm != 0 || plan.DurationMin != 0 {
		t.Fatalf("metrics = (%v, %v), want zero", plan.DistanceKm, plan.DurationMin)
	}
}

func TestPlanRouteEmptyInput(t *testing.T) {
	provider := &directions.MockDirectionsProvider{}

	plan, err := PlanRoute(context.Background(), nil, domain.RouteOptions{}, provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Sequence) != 0 {
		t.Fatalf("sequence = %+v, want empty", plan.Sequence)
	}
	if provider.Calls != 0 {
		t.Fatalf("empty input must not call the provider")
	}
}

func TestPlanRouteFallsBackOnTransientFailure(t *testing.T) {
	stops := []domain.Stop{stop("a", 1, 1), stop("b", 2, 2), stop("c", 3, 3), stop("d", 4, 4)}
	provider := &directions.MockDirectionsProvider{
		Err: &ports.TransientError{Err: errors.New("upstream hiccup")},
	}

	plan, err := PlanRoute(context.Background(), stops, domain.RouteOptions{}, provider)
	if err != nil {
		t.Fatalf("transient failure must degrade, not error: %v", err)
	}

	if len(plan.Sequence) != len(stops) {
		t.Fatalf("sequence length = %d, want %d", len(plan.Sequence), len(stops))
	}
	for i, s := range plan.Sequence {
		if s.ID != stops[i].ID {
			t.Fatalf("fallback must keep caller order, got %q at %d", s.ID, i)
		}
	}
	if plan.DistanceKm != 0 || plan.DurationMin != 0 {
		t.Fatalf("fallback metrics = (%v, %v), want zero", plan.DistanceKm, plan.DurationMin)
	}
}

func TestPlanRouteFallsBackOnNoRoute(t *testing.T) {
	stops := []domain.Stop{stop("a", 1, 1), stop("b", 2, 2)}
	provider := &directions.MockDirectionsProvider{
		Err: fmt.Errorf("empty routes: %w", ports.ErrNoRoute),
	}

	plan, err := PlanRoute(context.Background(), stops, domain.RouteOptions{}, provider)
	if err != nil {
		t.Fatalf("no-route must degrade, not error: %v", err)
	}
	if plan.Sequence[0].ID != "a" || plan.Sequence[1].ID != "b" {
		t.Fatalf("fallback must keep caller order")
	}
}

func TestPlanRoutePermanentFailurePropagates(t *testing.T) {
	stops := []domain.Stop{stop("a", 1, 1), stop("b", 2, 2)}
	provider := &directions.MockDirectionsProvider{
		Err: errors.New("provider status REQUEST_DENIED"),
	}

	_, err := PlanRoute(context.Background(), stops, domain.RouteOptions{}, provider)
	if err == nil {
		t.Fatalf("permanent provider failure must surface to the caller")
	}
}
