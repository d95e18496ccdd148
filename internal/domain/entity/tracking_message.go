package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// MessageType names a realtime event pushed to viewers.
type MessageType string

const (
	MessageLocationUpdate MessageType = "location_update"
	MessageStatusUpdate   MessageType = "status_update"
	MessageRouteUpdate    MessageType = "route_update"
	MessageConnected      MessageType = "connected"
)

// TrackingMessage is the envelope written to viewer connections.
type TrackingMessage struct {
	Type MessageType `json:"type"`
	Data any         `json:"data"`
}

// Encode marshals the envelope to its wire form.
func (m TrackingMessage) Encode() ([]byte, error) {
	return json.Marshal(m)
}

// LocationUpdatePayload carries a courier position and the ETA derived from it.
type LocationUpdatePayload struct {
	DeliveryID          uuid.UUID  `json:"delivery_id"`
	OrderID             uuid.UUID  `json:"order_id"`
	Latitude            float64    `json:"latitude"`
	Longitude           float64    `json:"longitude"`
	Heading             *float64   `json:"heading,omitempty"`
	Speed               *float64   `json:"speed,omitempty"`
	ETAMinutes          *int       `json:"eta_minutes,omitempty"`
	ETAArrival          *time.Time `json:"eta_arrival,omitempty"`
	RemainingDistanceKm *float64   `json:"remaining_distance_km,omitempty"`
	Timestamp           time.Time  `json:"timestamp"`
}

// StatusUpdatePayload announces an applied status transition.
type StatusUpdatePayload struct {
	DeliveryID  uuid.UUID      `json:"delivery_id"`
	OrderID     uuid.UUID      `json:"order_id"`
	Status      DeliveryStatus `json:"status"`
	Description string         `json:"description,omitempty"`
	Latitude    *float64       `json:"latitude,omitempty"`
	Longitude   *float64       `json:"longitude,omitempty"`
	Timestamp   time.Time      `json:"timestamp"`
}

// RouteUpdatePayload announces a newly planned route.
type RouteUpdatePayload struct {
	DeliveryID      uuid.UUID    `json:"delivery_id"`
	OrderID         uuid.UUID    `json:"order_id"`
	DistanceMeters  int          `json:"distance_meters"`
	DurationSeconds int          `json:"duration_seconds"`
	Geometry        string       `json:"geometry"`
	Coordinates     [][2]float64 `json:"coordinates"` // [lat, lng] pairs.
	MapsLink        string       `json:"maps_link"`
	Timestamp       time.Time    `json:"timestamp"`
}

// ConnectedPayload greets a freshly registered session.
type ConnectedPayload struct {
	SessionID string    `json:"session_id"`
	UserID    uuid.UUID `json:"user_id"`
	UserType  UserType  `json:"user_type"`
	Timestamp time.Time `json:"timestamp"`
}
