package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/barbatjuan/ruteo/internal/api/dto"
	"github.com/barbatjuan/ruteo/internal/domain"
	"github.com/barbatjuan/ruteo/internal/planner"
	"github.com/barbatjuan/ruteo/internal/ports"
)

type PlanHandler struct {
	Provider ports.DirectionsProvider
}

// Calculate sequences a set of delivery points into an optimized visiting
// order with aggregate metrics. Transient provider trouble degrades to the
// caller's order inside the planner; only permanent failures reach the
// error path here.
func (h *PlanHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req dto.CalculateRouteRequest

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

	stops := make([]domain.Stop, 0, len(req.Points))
	for _, p := range req.Points {
		stops = append(stops, domain.Stop{
			ID:      uuid.NewString(),
			Address: p.Address,
			Lat:     p.Lat,
			Lng:     p.Lng,
		})
	}

	opts := domain.RouteOptions{RoundTrip: req.Options.RoundTrip}
	if req.Options.Origin != nil {
		opts.Origin = &domain.Point{
			Lat:     req.Options.Origin.Lat,
			Lng:     req.Options.Origin.Lng,
			Address: req.Options.Origin.Address,
		}
	}

	plan, err := planner.PlanRoute(r.Context(), stops, opts, h.Provider)
	if err != nil {
		log.Printf("calculate route failed: %v", err)
		writeError(w, r, http.StatusBadGateway, "route calculation failed")
		return
	}

	res := dto.CalculateRouteResponse{
		Stops:       make([]dto.StopResponse, 0, len(plan.Sequence)),
		DistanceKm:  plan.DistanceKm,
		DurationMin: plan.DurationMin,
	}
	for _, s := range plan.Sequence {
		res.Stops = append(res.Stops, dto.StopResponse{
			Address: s.Address,
			Lat:     s.Lat,
			Lng:     s.Lng,
			Label:   s.Label,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
