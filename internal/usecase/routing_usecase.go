package usecase

import (
	"context"
	"time"

	"tracker/internal/domain/entity"
	"tracker/internal/domain/geo"

	"github.com/paulmach/orb"
)

// RoutePlan is a computed path between two points
type RoutePlan struct {
	Geometry        orb.LineString `json:"geometry"`
	DistanceMeters  float64        `json:"distance_meters"`
	DurationSeconds int            `json:"duration_seconds"`
	TravelMode      geo.TravelMode `json:"travel_mode"`
	Provider        string         `json:"provider"`
	ProviderRouteID string         `json:"provider_route_id,omitempty"`
	Fallback        bool           `json:"fallback"` // True when the plan is a straight line after a provider failure
}

// ETA is the remaining travel estimate towards the route destination
type ETA struct {
	Minutes             int       `json:"minutes"`
	Arrival             time.Time `json:"arrival"`
	RemainingDistanceKm float64   `json:"remaining_distance_km"`
	Arrived             bool      `json:"arrived"`
}

// RoutingUsecase defines the route planning and ETA use cases
type RoutingUsecase interface {
	// CalculateRoute plans a route with the configured provider.
	// It never fails: provider errors and timeouts yield a straight-line plan.
	CalculateRoute(ctx context.Context, origin, destination orb.Point, mode geo.TravelMode) *RoutePlan

	// RecomputeETA estimates the remaining trip from current to the route destination.
	// A nil current position uses the stored route totals.
	RecomputeETA(route *entity.Route, current *orb.Point) ETA
}
