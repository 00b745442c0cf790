package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/barbatjuan/ruteo/internal/api/dto"
	"github.com/barbatjuan/ruteo/internal/ports"
)

type DashboardHandler struct {
	Repo ports.RouteRepository
}

// Stats returns the tenant's aggregate counters for one date
// (today when the date query parameter is absent).
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	tenantID := TenantFrom(r.Context())

	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		writeError(w, r, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	stats, err := h.Repo.DashboardStats(r.Context(), tenantID, date)
	if err != nil {
		log.Printf("dashboard stats failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.DashboardStatsResponse{
		RoutesToday:        stats.RoutesToday,
		InProgress:         stats.InProgress,
		StopsTotalToday:    stats.StopsTotalToday,
		StopsPendingToday:  stats.StopsPendingToday,
		DriversActiveToday: stats.DriversActiveToday,
	})
}
