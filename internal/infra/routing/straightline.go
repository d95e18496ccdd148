package routing

import (
	"context"

	"tracker/internal/domain/constants"
	"tracker/internal/domain/geo"
	"tracker/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// StraightLineProvider answers with the great-circle segment between the two points.
type StraightLineProvider struct {
	speeds geo.SpeedTable
}

// NewStraightLineProvider creates a provider that never needs the network.
func NewStraightLineProvider(speeds geo.SpeedTable) *StraightLineProvider {
	return &StraightLineProvider{speeds: speeds}
}

func (p *StraightLineProvider) Name() string {
	return constants.RoutingProviderStraightLine
}

func (p *StraightLineProvider) Route(_ context.Context, origin, destination orb.Point, mode geo.TravelMode) (*service.ProviderRoute, error) {
	distance, err := geo.DistanceMeters(origin, destination)
	if err != nil {
		return nil, errors.Wrap(err, "straight line distance")
	}

	return &service.ProviderRoute{
		Geometry:        geo.StraightLine(origin, destination),
		DistanceMeters:  distance,
		DurationSeconds: float64(p.speeds.EstimateDurationSeconds(distance, mode)),
	}, nil
}
