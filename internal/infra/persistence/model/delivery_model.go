package model

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryModel mirrors the 'deliveries' table. Rows are written by the order
// service; tracking only updates status and the lifecycle timestamps.
type DeliveryModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	CourierID       *uuid.UUID `gorm:"type:uuid;index"`
	CustomerID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	StoreOwnerID    *uuid.UUID `gorm:"type:uuid"`
	Status          string     `gorm:"type:varchar(32);not null;default:'order_placed'"`
	PickupAddress   string     `gorm:"type:text;not null"`
	DeliveryAddress string     `gorm:"type:text;not null"`
	PickupLat       *float64   `gorm:"column:pickup_latitude;type:decimal(10,8)"`
	PickupLng       *float64   `gorm:"column:pickup_longitude;type:decimal(11,8)"`
	DropoffLat      *float64   `gorm:"column:delivery_latitude;type:decimal(10,8)"`
	DropoffLng      *float64   `gorm:"column:delivery_longitude;type:decimal(11,8)"`
	DeliveryFee     float64    `gorm:"type:decimal(10,2);not null;default:0"`
	AssignedAt      *time.Time
	PickedUpAt      *time.Time
	DeliveredAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryModel) TableName() string {
	return "deliveries"
}
