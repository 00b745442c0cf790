package directions

import (
	"context"

	"github.com/barbatjuan/ruteo/internal/domain"
	"github.com/barbatjuan/ruteo/internal/ports"
)

// MockDirectionsProvider is a canned DirectionsProvider for tests.
type MockDirectionsProvider struct {
	Result ports.DirectionsResult
	Err    error
	Calls  int
}

func (m *MockDirectionsProvider) Route(
	ctx context.Context,
	origin domain.Point,
	destination domain.Point,
	waypoints []domain.Point,
) (ports.DirectionsResult, error) {
	m.Calls++
	if m.Err != nil {
		return ports.DirectionsResult{}, m.Err
	}
	return m.Result, nil
}
