// Package notification turns delivery events into push notifications.
package notification

import (
	"context"
	"log/slog"

	deliverycontext "tracker/internal/delivery/context"
	"tracker/internal/domain/entity"
	"tracker/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type pushCopy struct {
	title string
	body  string
}

var statusCopy = map[entity.DeliveryStatus]pushCopy{
	entity.StatusAssigned:        {"Courier assigned", "A courier has been assigned to your order."},
	entity.StatusEnRoutePickup:   {"Courier on the way", "Your courier is heading to the store."},
	entity.StatusArrivedPickup:   {"Courier at the store", "Your courier has arrived at the store."},
	entity.StatusPickedUp:        {"Order picked up", "Your order has been picked up."},
	entity.StatusEnRouteDelivery: {"Order on the way", "Your order is on its way to you."},
	entity.StatusArrivedDelivery: {"Courier has arrived", "Your courier is at the delivery address."},
	entity.StatusDelivered:       {"Order delivered", "Your order has been delivered. Enjoy!"},
	entity.StatusCancelled:       {"Delivery cancelled", "The delivery of your order was cancelled."},
}

// eventDispatcher publishes notifications to the event bus for the notify worker.
type eventDispatcher struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewNotificationDispatcher creates a dispatcher on top of the event publisher
func NewNotificationDispatcher(publisher service.EventPublisher, logger *slog.Logger) service.NotificationDispatcher {
	return &eventDispatcher{
		publisher: publisher,
		logger:    logger,
	}
}

// Dispatch publishes one event addressed to all recipients.
func (d *eventDispatcher) Dispatch(ctx context.Context, notification service.DeliveryNotification) error {
	if len(notification.Recipients) == 0 || notification.Delivery == nil {
		return nil
	}

	copyText := copyFor(notification.Type, notification.Status)
	recipients := make([]string, 0, len(notification.Recipients))
	for _, id := range notification.Recipients {
		recipients = append(recipients, id.String())
	}

	event := &service.NotificationEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		EventID:      uuid.NewString(),
		Type:         string(notification.Type),
		DeliveryID:   notification.Delivery.ID.String(),
		OrderID:      notification.Delivery.OrderID.String(),
		Status:       string(notification.Status),
		Title:        copyText.title,
		Body:         copyText.body,
		RecipientIDs: recipients,
		Data: map[string]string{
			"type":        string(notification.Type),
			"delivery_id": notification.Delivery.ID.String(),
			"order_id":    notification.Delivery.OrderID.String(),
			"status":      string(notification.Status),
		},
	}

	if err := d.publisher.PublishNotificationEvent(ctx, event); err != nil {
		return errors.Wrap(err, "publish notification event")
	}

	deliverycontext.GetLoggerOrDefault(ctx, d.logger).InfoContext(ctx, "Notification dispatched",
		slog.String("event_id", event.EventID),
		slog.String("delivery_id", event.DeliveryID),
		slog.String("status", event.Status),
		slog.Int("recipient_count", len(recipients)),
	)

	return nil
}

// routeReadyCopy is sent to the courier once tracking starts and the route is planned.
var routeReadyCopy = pushCopy{"New delivery assigned", "Your route to the pickup is ready. Open the app to start navigating."}

// copyFor returns the push title and body for a delivery event.
func copyFor(msgType entity.MessageType, status entity.DeliveryStatus) pushCopy {
	if msgType == entity.MessageRouteUpdate {
		return routeReadyCopy
	}
	if text, ok := statusCopy[status]; ok {
		return text
	}

	return pushCopy{"Delivery update", "There is an update on your delivery."}
}
