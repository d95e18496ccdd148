package service

import "github.com/google/uuid"

// ShareCodeService renders scannable codes that open a delivery's live tracking view.
type ShareCodeService interface {
	// GenerateTrackingCode returns a PNG encoding the delivery's tracking payload.
	GenerateTrackingCode(deliveryID uuid.UUID) ([]byte, error)
	// ParseTrackingCode extracts the delivery id from a scanned payload.
	ParseTrackingCode(payload string) (uuid.UUID, error)
}
