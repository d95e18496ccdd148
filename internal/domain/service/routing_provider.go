package service

import (
	"context"

	"tracker/internal/domain/geo"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// ErrRouteProviderUnavailable is returned by providers that cannot answer right now.
var ErrRouteProviderUnavailable = errors.New("route provider unavailable")

// ProviderRoute is the raw answer of a routing provider.
type ProviderRoute struct {
	Geometry        orb.LineString
	DistanceMeters  float64
	DurationSeconds float64
	RouteID         string
}

// RoutingProvider computes a path between two points.
type RoutingProvider interface {
	// Name identifies the provider in stored routes and logs
	Name() string

	// Route returns the path from origin to destination for the given mode
	Route(ctx context.Context, origin, destination orb.Point, mode geo.TravelMode) (*ProviderRoute, error)
}
