package service

import (
	"context"

	"tracker/internal/domain/entity"

	"github.com/google/uuid"
)

// DeliveryNotification describes a push notification about a delivery.
type DeliveryNotification struct {
	Type       entity.MessageType
	Delivery   *entity.Delivery
	Status     entity.DeliveryStatus
	Recipients []uuid.UUID
}

// NotificationDispatcher hands delivery notifications to the push pipeline.
// Callers log failures; they never undo tracking writes.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, notification DeliveryNotification) error
}
