package directions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/barbatjuan/ruteo/internal/domain"
	"github.com/barbatjuan/ruteo/internal/platform/obs"
	"github.com/barbatjuan/ruteo/internal/ports"
)

type legValue struct {
	Value int `json:"value"`
}

type directionsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Routes       []struct {
		WaypointOrder []int `json:"waypoint_order"`
		Legs          []struct {
			Distance legValue `json:"distance"`
			Duration legValue `json:"duration"`
		} `json:"legs"`
	} `json:"routes"`
}

// Route requests a waypoint-optimized driving route (/maps/api/directions).
// Transient failures are retried exactly once before being handed back to
// the caller for fallback handling.
func (g *GoogleProvider) Route(
	ctx context.Context,
	origin domain.Point,
	destination domain.Point,
	waypoints []domain.Point,
) (_ ports.DirectionsResult, err error) {
	defer obs.Time(ctx, "google.directions")(&err)

	res, err := g.routeOnce(ctx, origin, destination, waypoints)
	if err == nil {
		return res, nil
	}

	var transient *ports.TransientError
	if !errors.As(err, &transient) {
		return ports.DirectionsResult{}, err
	}

	if cerr := ctx.Err(); cerr != nil {
		return ports.DirectionsResult{}, cerr
	}

	return g.routeOnce(ctx, origin, destination, waypoints)
}

func (g *GoogleProvider) routeOnce(
	ctx context.Context,
	origin domain.Point,
	destination domain.Point,
	waypoints []domain.Point,
) (ports.DirectionsResult, error) {
	params := url.Values{}
	params.Set("origin", formatLatLng(origin.Lat, origin.Lng))
	params.Set("destination", formatLatLng(destination.Lat, destination.Lng))
	params.Set("mode", "driving")

	if len(waypoints) > 0 {
		parts := make([]string, 0, len(waypoints)+1)
		parts = append(parts, "optimize:true")
		for _, w := range waypoints {
			parts = append(parts, formatLatLng(w.Lat, w.Lng))
		}
		params.Set("waypoints", strings.Join(parts, "|"))
	}

	req, err := g.newRequest(ctx, "/maps/api/directions/json", params)
	if err != nil {
		return ports.DirectionsResult{}, fmt.Errorf("directions request: %w", err)
	}

	resp, err := g.do(req)
	if err != nil {
		return ports.DirectionsResult{}, classifyTransport(err)
	}
	defer resp.Body.Close()

	var decoded directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.DirectionsResult{}, fmt.Errorf("decode directions response: %w", err)
	}

	if err := classifyStatus(decoded.Status, decoded.ErrorMessage); err != nil {
		return ports.DirectionsResult{}, err
	}

	if len(decoded.Routes) == 0 {
		return ports.DirectionsResult{}, fmt.Errorf("empty routes: %w", ports.ErrNoRoute)
	}

	route := decoded.Routes[0]
	legs := make([]ports.RouteLeg, 0, len(route.Legs))
	for _, l := range route.Legs {
		legs = append(legs, ports.RouteLeg{
			DistanceMeters:  l.Distance.Value,
			DurationSeconds: l.Duration.Value,
		})
	}

	return ports.DirectionsResult{
		WaypointOrder: route.WaypointOrder,
		Legs:          legs,
	}, nil
}
