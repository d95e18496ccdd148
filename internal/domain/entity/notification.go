// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationStatus is the outcome of one push attempt to one device.
type NotificationStatus string

const (
	NotificationStatusSent   NotificationStatus = "sent"
	NotificationStatusFailed NotificationStatus = "failed"
)

// NotificationLog represents a log entry for a single push sent to a user device.
type NotificationLog struct {
	ID           uuid.UUID          `json:"id"`             // The Global Unique Identifier (GUID) for the log entry.
	EventID      uuid.UUID          `json:"event_id"`       // The dispatched event this attempt belongs to.
	DeliveryID   uuid.UUID          `json:"delivery_id"`    // The delivery the event was about.
	UserID       uuid.UUID          `json:"user_id"`        // The ID of the user who received the notification.
	DeviceID     uuid.UUID          `json:"device_id"`      // The ID of the device that received the notification.
	Type         string             `json:"type"`           // Event type, e.g. status_update.
	Status       NotificationStatus `json:"status"`         // The status of the notification (sent, failed).
	FCMMessageID string             `json:"fcm_message_id"` // The Firebase Cloud Messaging message ID.
	ErrorMessage string             `json:"error_message"`  // Error message if the notification failed.
	SentAt       time.Time          `json:"sent_at"`        // Timestamp of when the notification was sent.
}
