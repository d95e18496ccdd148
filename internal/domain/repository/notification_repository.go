package repository

import (
	"context"

	"tracker/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationRepository stores per-device push outcomes.
type NotificationRepository interface {
	// BatchCreateNotificationLogs persists multiple notification log entries in one statement.
	BatchCreateNotificationLogs(ctx context.Context, logs []*entity.NotificationLog) error

	// FindLogsByDelivery returns the push outcomes recorded for a delivery, newest first.
	FindLogsByDelivery(ctx context.Context, deliveryID uuid.UUID, limit int) ([]*entity.NotificationLog, error)
}
