package dto

import "time"

type SaveStop struct {
	Sequence int     `json:"sequence"`
	Address  string  `json:"address"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
}

type CreateRouteRequest struct {
	Name       string     `json:"name"`
	Date       string     `json:"date"`
	Status     string     `json:"status,omitempty"`
	AssignedTo string     `json:"assigned_to,omitempty"`
	Stops      []SaveStop `json:"stops"`
}

type CreateRouteResponse struct {
	RouteID string `json:"route_id"`
}

type RouteSummary struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Date           string    `json:"date"`
	Status         string    `json:"status"`
	AssignedTo     string    `json:"assigned_to,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	TotalStops     int       `json:"total_stops"`
	PendingStops   int       `json:"pending_stops"`
	CompletedStops int       `json:"completed_stops"`
}

type ListRoutesResponse struct {
	Routes []RouteSummary `json:"routes"`
}

type SavedStopResponse struct {
	Sequence int     `json:"sequence"`
	Address  string  `json:"address"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Status   string  `json:"status"`
}

type RouteDetailResponse struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	Date       string              `json:"date"`
	Status     string              `json:"status"`
	AssignedTo string              `json:"assigned_to,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
	Stops      []SavedStopResponse `json:"stops"`
}

type AssignDriverRequest struct {
	UserID string `json:"user_id"`
}

type DashboardStatsResponse struct {
	RoutesToday        int `json:"routes_today"`
	InProgress         int `json:"in_progress"`
	StopsTotalToday    int `json:"stops_total_today"`
	StopsPendingToday  int `json:"stops_pending_today"`
	DriversActiveToday int `json:"drivers_active_today"`
}
