package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/barbatjuan/ruteo/internal/api/dto"
	"github.com/barbatjuan/ruteo/internal/ports"
)

type PlacesHandler struct {
	Places ports.PlacesProvider
}

// Autocomplete returns place predictions for a partial query. Upstream
// failures degrade to an empty list so the address form stays usable.
func (h *PlacesHandler) Autocomplete(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	session := r.URL.Query().Get("session")

	suggestions, err := h.Places.Autocomplete(r.Context(), query, session)
	if err != nil {
		log.Printf("places autocomplete failed: q=%q err=%v", query, err)
		writeJSON(w, r, http.StatusOK, []dto.PlaceSuggestion{})
		return
	}

	out := make([]dto.PlaceSuggestion, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, dto.PlaceSuggestion{Description: s.Description, PlaceID: s.PlaceID})
	}

	writeJSON(w, r, http.StatusOK, out)
}

// Details resolves a place id to coordinates and a normalized address.
func (h *PlacesHandler) Details(w http.ResponseWriter, r *http.Request) {
	placeID := r.URL.Query().Get("place_id")
	if placeID == "" {
		writeError(w, r, http.StatusBadRequest, "place_id required")
		return
	}
	session := r.URL.Query().Get("session")

	details, err := h.Places.Details(r.Context(), placeID, session)
	if err != nil {
		if errors.Is(err, ports.ErrPlaceNotFound) {
			writeError(w, r, http.StatusNotFound, "not_found")
			return
		}
		log.Printf("places details failed: place_id=%q err=%v", placeID, err)
		writeError(w, r, http.StatusBadGateway, "upstream_error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.PlaceDetailsResponse{
		Lat:        details.Lat,
		Lng:        details.Lng,
		Normalized: details.Normalized,
	})
}
