package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/barbatjuan/ruteo/internal/api/dto"
	"github.com/barbatjuan/ruteo/internal/ports"
)

type GeocodeHandler struct {
	Geocoder ports.Geocoder
}

// Geocode resolves a batch of free-text addresses. Per-item misses come
// back as null coordinates; one bad address never fails the batch.
func (h *GeocodeHandler) Geocode(w http.ResponseWriter, r *http.Request) {
	var req []dto.GeocodeRequestItem

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	addresses := make([]string, 0, len(req))
	for _, item := range req {
		addresses = append(addresses, item.Address)
	}

	results, err := h.Geocoder.GeocodeBatch(r.Context(), addresses)
	if err != nil {
		log.Printf("geocode batch failed: %v", err)
		writeError(w, r, http.StatusBadGateway, "geocoding failed")
		return
	}

	out := make([]dto.GeocodeResponseItem, 0, len(results))
	for _, res := range results {
		item := dto.GeocodeResponseItem{Address: res.Address}
		if res.Found {
			lat, lng, norm := res.Lat, res.Lng, res.Normalized
			item.Lat = &lat
			item.Lng = &lng
			item.Normalized = &norm
		}
		out = append(out, item)
	}

	writeJSON(w, r, http.StatusOK, out)
}
