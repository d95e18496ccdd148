package usecase

import (
	"context"
	"time"

	"tracker/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
)

// Actor is the authenticated caller of a tracking operation
type Actor struct {
	UserID uuid.UUID
	Roles  entity.Roles
}

// IsDispatcher reports whether the actor may act on any delivery
func (a Actor) IsDispatcher() bool {
	return a.Roles.Contains(entity.RoleDispatcher)
}

// CanView reports whether the actor may follow the delivery
func (a Actor) CanView(delivery *entity.Delivery) bool {
	return a.IsDispatcher() || delivery.IsStakeholder(a.UserID)
}

// LocationUpdate is a position reported by the courier device
type LocationUpdate struct {
	DeliveryID uuid.UUID
	CourierID  uuid.UUID
	Latitude   float64
	Longitude  float64
	Heading    *float64
	Speed      *float64
	Accuracy   *float64
	RecordedAt *time.Time // Device clock; the server clock is used when nil.
}

// StatusChange requests a delivery status transition
type StatusChange struct {
	DeliveryID  uuid.UUID
	Status      entity.DeliveryStatus
	Actor       Actor
	Description string
	Latitude    *float64
	Longitude   *float64
	Metadata    string
}

// RouteView is a stored route with its geometry decoded for clients
type RouteView struct {
	*entity.Route
	Coordinates [][2]float64 `json:"coordinates"` // [lat, lng] pairs
	MapsLink    string       `json:"maps_link"`
}

// TrackingInitialization is the outcome of InitializeTracking
type TrackingInitialization struct {
	Delivery *entity.Delivery           `json:"delivery"`
	Route    *RouteView                 `json:"route"`
	Entry    *entity.StatusHistoryEntry `json:"status_entry,omitempty"`
	Fallback bool                       `json:"fallback"`
}

// RouteRecalculation is the outcome of RecalculateRoute
type RouteRecalculation struct {
	Route    *RouteView `json:"route"`
	Fallback bool       `json:"fallback"`
}

// LocationReport is the outcome of ReportLocation
type LocationReport struct {
	Ping *entity.LocationPing `json:"ping"`
	ETA  *ETA                 `json:"eta,omitempty"`
}

// StatusChangeResult is the outcome of AdvanceStatus
type StatusChangeResult struct {
	Delivery *entity.Delivery           `json:"delivery"`
	Previous entity.DeliveryStatus      `json:"previous_status"`
	Entry    *entity.StatusHistoryEntry `json:"status_entry,omitempty"`
	Changed  bool                       `json:"changed"`
}

// TrackingSnapshot hydrates a viewer before incremental events take over
type TrackingSnapshot struct {
	Delivery      *entity.Delivery             `json:"delivery"`
	ActivePing    *entity.LocationPing         `json:"active_ping,omitempty"`
	Route         *RouteView                   `json:"route,omitempty"`
	StatusHistory []*entity.StatusHistoryEntry `json:"status_history"`
	ETA           *ETA                         `json:"eta,omitempty"`
}

// TrackingUsecase is the tracking facade used by the API layer and courier devices
type TrackingUsecase interface {
	// InitializeTracking plans the route and records the first assigned entry.
	InitializeTracking(ctx context.Context, deliveryID uuid.UUID, actor Actor) (*TrackingInitialization, error)

	// ReportLocation stores a courier position and broadcasts the refreshed ETA.
	// It never changes the delivery status.
	ReportLocation(ctx context.Context, update LocationUpdate) (*LocationReport, error)

	// AdvanceStatus moves the delivery through its lifecycle.
	// Repeating the current status is a no-op.
	AdvanceStatus(ctx context.Context, change StatusChange) (*StatusChangeResult, error)

	// GetSnapshot returns the full current tracking state of a delivery.
	GetSnapshot(ctx context.Context, deliveryID uuid.UUID, actor Actor) (*TrackingSnapshot, error)

	// GetLocationTrail exports recorded pings as GeoJSON.
	GetLocationTrail(ctx context.Context, deliveryID uuid.UUID, actor Actor, limit int) (*geojson.FeatureCollection, error)

	// RecalculateRoute re-plans the route from the delivery's current pickup and
	// dropoff coordinates and replaces the stored one.
	RecalculateRoute(ctx context.Context, deliveryID uuid.UUID, actor Actor) (*RouteRecalculation, error)

	// ListNotificationLogs returns the push outcomes of a delivery, newest first.
	ListNotificationLogs(ctx context.Context, deliveryID uuid.UUID, actor Actor, limit int) ([]*entity.NotificationLog, error)

	// ListCourierDeliveries returns a courier's deliveries, most recently assigned first.
	ListCourierDeliveries(ctx context.Context, courierID uuid.UUID, actor Actor, limit int) ([]*entity.Delivery, error)
}
