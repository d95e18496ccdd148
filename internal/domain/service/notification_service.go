package service

import (
	"context"
)

// MaxPushBatchSize is the largest multicast FCM accepts.
const MaxPushBatchSize = 500

// PushResult is the outcome for one device token of a batch.
type PushResult struct {
	Token     string
	MessageID string
	Err       error
	Invalid   bool // Token is unregistered or malformed and should be removed.
}

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendBatchNotification sends one notification to up to MaxPushBatchSize tokens.
	// Results are in token order. The error is only set when the whole batch failed.
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) ([]PushResult, error)
}
