package service

import (
	"context"
)

// NotificationEvent is a delivery notification handed to the notify worker
type NotificationEvent struct {
	RequestID    string            `json:"request_id,omitempty"` // For distributed tracing
	EventID      string            `json:"event_id"`
	Type         string            `json:"type"`
	DeliveryID   string            `json:"delivery_id"`
	OrderID      string            `json:"order_id"`
	Status       string            `json:"status,omitempty"`
	Title        string            `json:"title"`
	Body         string            `json:"body"`
	RecipientIDs []string          `json:"recipient_ids"`
	Data         map[string]string `json:"data,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishNotificationEvent publishes a notification event for async processing
	PublishNotificationEvent(ctx context.Context, event *NotificationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
