package entity

import (
	"time"

	"tracker/internal/domain/geo"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Route is the planned path of a delivery. It is only ever replaced as a whole,
// so Geometry, DistanceMeters and DurationSeconds always describe the same plan.
type Route struct {
	ID              uuid.UUID      `json:"id"`
	DeliveryID      uuid.UUID      `json:"delivery_id"`
	PickupLat       float64        `json:"pickup_latitude"`
	PickupLng       float64        `json:"pickup_longitude"`
	DropoffLat      float64        `json:"delivery_latitude"`
	DropoffLng      float64        `json:"delivery_longitude"`
	Geometry        string         `json:"geometry"` // Encoded polyline.
	DistanceMeters  int            `json:"distance_meters"`
	DurationSeconds int            `json:"estimated_duration_seconds"`
	TravelMode      geo.TravelMode `json:"travel_mode"`
	Provider        string         `json:"provider"`
	ProviderRouteID *string        `json:"provider_route_id,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// Pickup returns the route origin.
func (r *Route) Pickup() orb.Point {
	return geo.NewPoint(r.PickupLat, r.PickupLng)
}

// Dropoff returns the route destination.
func (r *Route) Dropoff() orb.Point {
	return geo.NewPoint(r.DropoffLat, r.DropoffLng)
}
