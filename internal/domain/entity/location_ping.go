package entity

import (
	"time"

	"tracker/internal/domain/geo"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// LocationPing is one position reported by a courier device.
// At most one ping per delivery is active; it is the courier's current location.
type LocationPing struct {
	ID         uuid.UUID `json:"id"`
	DeliveryID uuid.UUID `json:"delivery_id"`
	CourierID  uuid.UUID `json:"courier_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Heading    *float64  `json:"heading,omitempty"`  // Degrees clockwise from north.
	Speed      *float64  `json:"speed,omitempty"`    // km/h as reported by the device.
	Accuracy   *float64  `json:"accuracy,omitempty"` // GPS accuracy radius in meters.
	RecordedAt time.Time `json:"recorded_at"`
	IsActive   bool      `json:"is_active"`
}

// Point returns the ping position.
func (p *LocationPing) Point() orb.Point {
	return geo.NewPoint(p.Latitude, p.Longitude)
}
