package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/barbatjuan/ruteo/internal/api/dto"
	"github.com/barbatjuan/ruteo/internal/domain"
	"github.com/barbatjuan/ruteo/internal/ports"
)

type RoutesHandler struct {
	Repo ports.RouteRepository
}

// Create persists a planned route and its stop sequence for the tenant.
func (h *RoutesHandler) Create(w http.ResponseWriter, r *http.Request) {
	tenantID := TenantFrom(r.Context())

	var req dto.CreateRouteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		writeError(w, r, http.StatusBadRequest, "name is required")
		return
	}

	status := req.Status
	if status == "" {
		status = domain.RouteStatusPlanned
	}

	route := domain.Route{
		ID:         uuid.NewString(),
		TenantID:   tenantID,
		Name:       req.Name,
		Date:       req.Date,
		Status:     status,
		AssignedTo: req.AssignedTo,
	}

	stops := make([]domain.SavedStop, 0, len(req.Stops))
	for _, s := range req.Stops {
		stops = append(stops, domain.SavedStop{
			Sequence: s.Sequence,
			Address:  s.Address,
			Lat:      s.Lat,
			Lng:      s.Lng,
			Status:   domain.StopStatusPending,
		})
	}

	if err := h.Repo.CreateRoute(r.Context(), route, stops); err != nil {
		log.Printf("create route failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.CreateRouteResponse{RouteID: route.ID})
}

// List returns the tenant's routes with stop counters, newest first.
func (h *RoutesHandler) List(w http.ResponseWriter, r *http.Request) {
	tenantID := TenantFrom(r.Context())

	routes, err := h.Repo.ListRoutes(r.Context(), tenantID)
	if err != nil {
		log.Printf("list routes failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListRoutesResponse{Routes: make([]dto.RouteSummary, 0, len(routes))}
	for _, rt := range routes {
		res.Routes = append(res.Routes, dto.RouteSummary{
			ID:             rt.ID,
			Name:           rt.Name,
			Date:           rt.Date,
			Status:         rt.Status,
			AssignedTo:     rt.AssignedTo,
			CreatedAt:      rt.CreatedAt,
			TotalStops:     rt.TotalStops,
			PendingStops:   rt.PendingStops,
			CompletedStops: rt.CompletedStops,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Get returns one route with its stops in sequence order.
func (h *RoutesHandler) Get(w http.ResponseWriter, r *http.Request) {
	tenantID := TenantFrom(r.Context())
	routeID := r.PathValue("id")

	route, stops, err := h.Repo.GetRoute(r.Context(), tenantID, routeID)
	if err != nil {
		if errors.Is(err, ports.ErrRouteNotFound) {
			writeError(w, r, http.StatusNotFound, "route not found")
			return
		}
		log.Printf("get route failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.RouteDetailResponse{
		ID:         route.ID,
		Name:       route.Name,
		Date:       route.Date,
		Status:     route.Status,
		AssignedTo: route.AssignedTo,
		CreatedAt:  route.CreatedAt,
		Stops:      make([]dto.SavedStopResponse, 0, len(stops)),
	}
	for _, s := range stops {
		res.Stops = append(res.Stops, dto.SavedStopResponse{
			Sequence: s.Sequence,
			Address:  s.Address,
			Lat:      s.Lat,
			Lng:      s.Lng,
			Status:   s.Status,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Assign sets or clears (empty user_id) the driver of a route.
func (h *RoutesHandler) Assign(w http.ResponseWriter, r *http.Request) {
	tenantID := TenantFrom(r.Context())
	routeID := r.PathValue("id")

	var req dto.AssignDriverRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	if err := h.Repo.AssignDriver(r.Context(), tenantID, routeID, req.UserID); err != nil {
		if errors.Is(err, ports.ErrRouteNotFound) {
			writeError(w, r, http.StatusNotFound, "route not found")
			return
		}
		log.Printf("assign driver failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
