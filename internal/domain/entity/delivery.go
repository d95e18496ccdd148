// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"tracker/internal/domain/geo"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Delivery is one order-fulfilment attempt. It is written by the order service;
// tracking only moves Status and the lifecycle timestamps.
type Delivery struct {
	ID              uuid.UUID      `json:"id"`
	OrderID         uuid.UUID      `json:"order_id"`
	CourierID       *uuid.UUID     `json:"courier_id,omitempty"`     // Nil until a courier is assigned.
	CustomerID      uuid.UUID      `json:"customer_id"`              // The buyer who placed the order.
	StoreOwnerID    *uuid.UUID     `json:"store_owner_id,omitempty"` // The shopkeeper account, if the store has one.
	Status          DeliveryStatus `json:"status"`
	PickupAddress   string         `json:"pickup_address"`
	DeliveryAddress string         `json:"delivery_address"`
	PickupLat       *float64       `json:"pickup_latitude,omitempty"`
	PickupLng       *float64       `json:"pickup_longitude,omitempty"`
	DropoffLat      *float64       `json:"delivery_latitude,omitempty"`
	DropoffLng      *float64       `json:"delivery_longitude,omitempty"`
	DeliveryFee     float64        `json:"delivery_fee"`
	AssignedAt      *time.Time     `json:"assigned_at,omitempty"`
	PickedUpAt      *time.Time     `json:"picked_up_at,omitempty"`
	DeliveredAt     *time.Time     `json:"delivered_at,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}

// PickupPoint returns the pickup coordinate when both components are known.
func (d *Delivery) PickupPoint() (orb.Point, bool) {
	if d.PickupLat == nil || d.PickupLng == nil {
		return orb.Point{}, false
	}

	return geo.NewPoint(*d.PickupLat, *d.PickupLng), true
}

// DropoffPoint returns the customer coordinate when both components are known.
func (d *Delivery) DropoffPoint() (orb.Point, bool) {
	if d.DropoffLat == nil || d.DropoffLng == nil {
		return orb.Point{}, false
	}

	return geo.NewPoint(*d.DropoffLat, *d.DropoffLng), true
}

// IsCourier reports whether userID is the assigned courier.
func (d *Delivery) IsCourier(userID uuid.UUID) bool {
	return d.CourierID != nil && *d.CourierID == userID
}

// IsStakeholder reports whether userID may follow this delivery.
func (d *Delivery) IsStakeholder(userID uuid.UUID) bool {
	if d.CustomerID == userID || d.IsCourier(userID) {
		return true
	}

	return d.StoreOwnerID != nil && *d.StoreOwnerID == userID
}
