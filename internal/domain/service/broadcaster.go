package service

import (
	"context"

	"tracker/internal/domain/entity"

	"github.com/google/uuid"
)

// Broadcaster fans a realtime message out to every live session of the given users.
// Delivery is best effort: users without sessions are skipped and failed sessions are dropped.
type Broadcaster interface {
	Broadcast(ctx context.Context, userIDs []uuid.UUID, msg entity.TrackingMessage) error
}
