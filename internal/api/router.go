package api

import (
	"net/http"

	"github.com/barbatjuan/ruteo/internal/api/handlers"
	"github.com/barbatjuan/ruteo/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	provider ports.DirectionsProvider,
	geocoder ports.Geocoder,
	places ports.PlacesProvider,
	repo ports.RouteRepository,
) http.Handler {
	mux := http.NewServeMux()

	planHandler := &handlers.PlanHandler{Provider: provider}
	geocodeHandler := &handlers.GeocodeHandler{Geocoder: geocoder}
	placesHandler := &handlers.PlacesHandler{Places: places}
	routesHandler := &handlers.RoutesHandler{Repo: repo}
	dashboardHandler := &handlers.DashboardHandler{Repo: repo}

	mux.HandleFunc("GET /health", handlers.Health)
	mux.HandleFunc("POST /geocode", geocodeHandler.Geocode)
	mux.HandleFunc("POST /calculate-route", planHandler.Calculate)
	mux.HandleFunc("GET /places/autocomplete", placesHandler.Autocomplete)
	mux.HandleFunc("GET /places/details", placesHandler.Details)

	mux.Handle("POST /routes", requireTenant(http.HandlerFunc(routesHandler.Create)))
	mux.Handle("GET /routes", requireTenant(http.HandlerFunc(routesHandler.List)))
	mux.Handle("GET /routes/{id}", requireTenant(http.HandlerFunc(routesHandler.Get)))
	mux.Handle("POST /routes/{id}/assign", requireTenant(http.HandlerFunc(routesHandler.Assign)))
	mux.Handle("GET /dashboard/stats", requireTenant(http.HandlerFunc(dashboardHandler.Stats)))

	return loggingMiddleware(mux)
}
