package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/barbatjuan/ruteo/internal/api/dto"
	"github.com/barbatjuan/ruteo/internal/ports"
)

type stubPlaces struct {
	suggestions []ports.PlaceSuggestion
	details     ports.PlaceDetails
	err         error

	lastSession string
}

func (s *stubPlaces) Autocomplete(ctx context.Context, query, session string) ([]ports.PlaceSuggestion, error) {
	s.lastSession = session
	return s.suggestions, s.err
}

func (s *stubPlaces) Details(ctx context.Context, placeID, session string) (ports.PlaceDetails, error) {
	s.lastSession = session
	return s.details, s.err
}

func TestAutocompleteReturnsSuggestions(t *testing.T) {
	stub := &stubPlaces{suggestions: []ports.PlaceSuggestion{
		{Description: "Av. Italia 1234", PlaceID: "pid-1"},
	}}
	h := &PlacesHandler{Places: stub}

	req := httptest.NewRequest(http.MethodGet, "/places/autocomplete?q=av.+italia&session=sess-1", nil)
	rec := httptest.NewRecorder()
	h.Autocomplete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if stub.lastSession != "sess-1" {
		t.Fatalf("session = %q, want sess-1", stub.lastSession)
	}

	var out []dto.PlaceSuggestion
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(out) != 1 || out[0].PlaceID != "pid-1" {
		t.Fatalf("suggestions = %+v", out)
	}
}

func TestAutocompleteDegradesToEmptyList(t *testing.T) {
	h := &PlacesHandler{Places: &stubPlaces{err: errors.New("upstream down")}}

	req := httptest.NewRequest(http.MethodGet, "/places/autocomplete?q=av.+italia", nil)
	rec := httptest.NewRecorder()
	h.Autocomplete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("autocomplete failures must degrade to 200, got %d", rec.Code)
	}

	var out []dto.PlaceSuggestion
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("suggestions = %+v, want empty", out)
	}
}

func TestDetailsHappyPath(t *testing.T) {
	h := &PlacesHandler{Places: &stubPlaces{
		details: ports.PlaceDetails{Lat: -34.9, Lng: -56.16, Normalized: "Av. Italia 1234"},
	}}

	req := httptest.NewRequest(http.MethodGet, "/places/details?place_id=pid-1", nil)
	rec := httptest.NewRecorder()
	h.Details(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var out dto.PlaceDetailsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Lat != -34.9 || out.Normalized != "Av. Italia 1234" {
		t.Fatalf("details = %+v", out)
	}
}

func TestDetailsMissingPlaceID(t *testing.T) {
	h := &PlacesHandler{Places: &stubPlaces{}}

	req := httptest.NewRequest(http.MethodGet, "/places/details", nil)
	rec := httptest.NewRecorder()
	h.Details(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestDetailsNotFoundAndUpstreamError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ports.ErrPlaceNotFound, http.StatusNotFound},
		{errors.New("timeout"), http.StatusBadGateway},
	}

	for _, tc := range cases {
		h := &PlacesHandler{Places: &stubPlaces{err: tc.err}}

		req := httptest.NewRequest(http.MethodGet, "/places/details?place_id=pid-1", nil)
		rec := httptest.NewRecorder()
		h.Details(rec, req)

		if rec.Code != tc.want {
			t.Fatalf("err %v: status = %d, want %d", tc.err, rec.Code, tc.want)
		}
	}
}
