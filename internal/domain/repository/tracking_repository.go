package repository

import (
	"context"
	"time"

	"tracker/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for tracking persistence.
var (
	// ErrDeliveryNotFound is returned when a delivery row does not exist.
	ErrDeliveryNotFound = errors.New("delivery not found")
	// ErrRouteNotFound is returned when a delivery has no planned route.
	ErrRouteNotFound = errors.New("route not found")
	// ErrPingNotFound is returned when a delivery has no active location ping.
	ErrPingNotFound = errors.New("location ping not found")
	// ErrRouteAlreadyExists is returned when creating a route for a delivery that already has one.
	ErrRouteAlreadyExists = errors.New("route already exists")
)

// DeliveryStatusUpdate carries the columns written on a status transition.
// Nil timestamps leave the stored value untouched.
type DeliveryStatusUpdate struct {
	Status      entity.DeliveryStatus
	AssignedAt  *time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
}

// TrackingRepository defines the persistence operations of the tracking core.
type TrackingRepository interface {
	// InsertPing locks the delivery row, deactivates the current active ping and
	// stores the new one as active. Callers should run it inside a transaction.
	InsertPing(ctx context.Context, ping *entity.LocationPing) error

	// GetActivePing returns the current position of the delivery's courier.
	GetActivePing(ctx context.Context, deliveryID uuid.UUID) (*entity.LocationPing, error)

	// ListPings returns recorded pings oldest first, at most limit rows.
	ListPings(ctx context.Context, deliveryID uuid.UUID, limit int) ([]*entity.LocationPing, error)

	// CreateRoute stores the first route of a delivery.
	CreateRoute(ctx context.Context, route *entity.Route) error

	// UpsertRoute replaces the route of a delivery in a single statement.
	UpsertRoute(ctx context.Context, route *entity.Route) error

	// GetRoute returns the planned route of a delivery.
	GetRoute(ctx context.Context, deliveryID uuid.UUID) (*entity.Route, error)

	// AppendStatusHistory stores one immutable history entry.
	AppendStatusHistory(ctx context.Context, entry *entity.StatusHistoryEntry) error

	// GetStatusHistory returns all entries of a delivery, newest first.
	GetStatusHistory(ctx context.Context, deliveryID uuid.UUID) ([]*entity.StatusHistoryEntry, error)

	// LatestStatusEntry returns the newest history entry, or nil when there is none.
	LatestStatusEntry(ctx context.Context, deliveryID uuid.UUID) (*entity.StatusHistoryEntry, error)

	// GetDelivery reads a delivery without locking.
	GetDelivery(ctx context.Context, deliveryID uuid.UUID) (*entity.Delivery, error)

	// ListDeliveriesByCourier returns the deliveries assigned to a courier, most
	// recently assigned first, at most limit rows.
	ListDeliveriesByCourier(ctx context.Context, courierID uuid.UUID, limit int) ([]*entity.Delivery, error)

	// GetDeliveryForUpdate reads a delivery and holds its row lock until the transaction ends.
	GetDeliveryForUpdate(ctx context.Context, deliveryID uuid.UUID) (*entity.Delivery, error)

	// UpdateDeliveryStatus writes the status and lifecycle timestamps of a delivery.
	UpdateDeliveryStatus(ctx context.Context, deliveryID uuid.UUID, update DeliveryStatusUpdate) error
}
