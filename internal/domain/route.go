package domain

import "time"

// Route lifecycle statuses as persisted.
const (
	RouteStatusPlanned    = "planned"
	RouteStatusInProgress = "in_progress"
	RouteStatusCompleted  = "completed"
	RouteStatusCancelled  = "cancelled"
)

// Stop statuses within a persisted route.
const (
	StopStatusPending   = "pending"
	StopStatusCompleted = "completed"
)

// Route is a saved delivery route, scoped to a tenant.
// AssignedTo holds the driver's user id, empty when unassigned.
type Route struct {
	ID         string
	TenantID   string
	Name       string
	Date       string // YYYY-MM-DD
	Status     string
	AssignedTo string
	CreatedAt  time.Time
}

// SavedStop is one persisted stop of a route, ordered by Sequence.
type SavedStop struct {
	Sequence int
	Address  string
	Lat      float64
	Lng      float64
	Status   string
}

// RouteStats are per-route stop counters attached to listings.
type RouteStats struct {
	TotalStops     int
	PendingStops   int
	CompletedStops int
}

// DashboardStats aggregates a tenant's activity for a single date.
type DashboardStats struct {
	RoutesToday        int
	InProgress         int
	StopsTotalToday    int
	StopsPendingToday  int
	DriversActiveToday int
}
