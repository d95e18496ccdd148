package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationPingModel mirrors the 'delivery_location_pings' table.
// The partial unique index keeps at most one active ping per delivery.
type LocationPingModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	DeliveryID uuid.UUID `gorm:"type:uuid;not null;index:idx_location_pings_delivery_recorded,priority:1;uniqueIndex:uniq_location_pings_active,where:is_active"`
	CourierID  uuid.UUID `gorm:"type:uuid;not null"`
	Latitude   float64   `gorm:"type:decimal(10,8);not null"`
	Longitude  float64   `gorm:"type:decimal(11,8);not null"`
	Heading    *float64  `gorm:"type:decimal(5,2)"`
	Speed      *float64  `gorm:"type:decimal(6,2)"`
	Accuracy   *float64  `gorm:"type:decimal(8,2)"`
	RecordedAt time.Time `gorm:"not null;index:idx_location_pings_delivery_recorded,priority:2"`
	IsActive   bool      `gorm:"not null;default:true"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationPingModel) TableName() string {
	return "delivery_location_pings"
}

// RouteModel mirrors the 'delivery_routes' table. One row per delivery, replaced as a whole.
type RouteModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	DeliveryID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	PickupLat       float64   `gorm:"column:pickup_latitude;type:decimal(10,8);not null"`
	PickupLng       float64   `gorm:"column:pickup_longitude;type:decimal(11,8);not null"`
	DropoffLat      float64   `gorm:"column:delivery_latitude;type:decimal(10,8);not null"`
	DropoffLng      float64   `gorm:"column:delivery_longitude;type:decimal(11,8);not null"`
	Geometry        string    `gorm:"column:route_geometry;type:text;not null"`
	DistanceMeters  int       `gorm:"not null"`
	DurationSeconds int       `gorm:"column:estimated_duration_seconds;not null"`
	TravelMode      string    `gorm:"type:varchar(20);not null;default:'driving'"`
	Provider        string    `gorm:"type:varchar(50);not null"`
	ProviderRouteID *string   `gorm:"type:varchar(255)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (RouteModel) TableName() string {
	return "delivery_routes"
}

// StatusHistoryModel mirrors the append-only 'delivery_status_history' table.
type StatusHistoryModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	DeliveryID  uuid.UUID  `gorm:"type:uuid;not null;index:idx_status_history_delivery_recorded,priority:1"`
	Status      string     `gorm:"type:varchar(32);not null"`
	Description string     `gorm:"type:text"`
	Latitude    *float64   `gorm:"type:decimal(10,8)"`
	Longitude   *float64   `gorm:"type:decimal(11,8)"`
	UpdatedBy   *uuid.UUID `gorm:"type:uuid"`
	RecordedAt  time.Time  `gorm:"not null;index:idx_status_history_delivery_recorded,priority:2"`
	Metadata    string     `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (StatusHistoryModel) TableName() string {
	return "delivery_status_history"
}
