package ports

import (
	"context"
	"errors"

	"github.com/barbatjuan/ruteo/internal/domain"
)

// ErrRouteNotFound is returned when a route id does not exist for the tenant.
var ErrRouteNotFound = errors.New("route not found")

// RouteWithStats pairs a saved route with its stop counters.
type RouteWithStats struct {
	domain.Route
	domain.RouteStats
}

// Port: boundary for persisting and querying saved routes.
// Every operation is scoped to a tenant.
type RouteRepository interface {
	// Persist a route and its stops atomically.
	CreateRoute(ctx context.Context, route domain.Route, stops []domain.SavedStop) error
	// Return the tenant's routes, newest first, with stop stats.
	ListRoutes(ctx context.Context, tenantID string) ([]RouteWithStats, error)
	// Return one route and its stops in sequence order.
	GetRoute(ctx context.Context, tenantID, routeID string) (domain.Route, []domain.SavedStop, error)
	// Assign or unassign (empty userID) a driver.
	AssignDriver(ctx context.Context, tenantID, routeID, userID string) error
	// Aggregate counters for the dashboard on a given date.
	DashboardStats(ctx context.Context, tenantID, date string) (domain.DashboardStats, error)
}
