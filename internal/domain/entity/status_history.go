package entity

import (
	"time"

	"github.com/google/uuid"
)

// StatusHistoryEntry records one applied status transition. Entries are never
// edited and are strictly ordered by RecordedAt within a delivery.
type StatusHistoryEntry struct {
	ID          uuid.UUID      `json:"id"`
	DeliveryID  uuid.UUID      `json:"delivery_id"`
	Status      DeliveryStatus `json:"status"`
	Description string         `json:"description,omitempty"`
	Latitude    *float64       `json:"latitude,omitempty"`
	Longitude   *float64       `json:"longitude,omitempty"`
	UpdatedBy   *uuid.UUID     `json:"updated_by,omitempty"`
	RecordedAt  time.Time      `json:"recorded_at"`
	Metadata    string         `json:"metadata,omitempty"` // Opaque JSON supplied by the caller.
}
