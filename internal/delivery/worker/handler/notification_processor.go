package handler

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "tracker/internal/delivery/context"
	"tracker/internal/domain/entity"
	"tracker/internal/domain/repository"
	"tracker/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// retryableError marks a failure the event source should redeliver
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return "retryable: " + e.err.Error()
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// IsRetryableError reports whether the event should be redelivered.
func IsRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// ProcessResult summarizes one processed event
type ProcessResult struct {
	Devices int
	Sent    int
	Failed  int
	Pruned  int
}

// NotificationProcessor turns a notification event into FCM pushes for every
// active device of the recipients. It is shared by the push endpoint and the
// Kafka consumer.
type NotificationProcessor struct {
	logger           *slog.Logger
	notificationSvc  service.NotificationService
	deviceRepo       repository.DeviceRepository
	notificationRepo repository.NotificationRepository
	now              func() time.Time
}

// NotificationProcessorParams holds dependencies for the processor
type NotificationProcessorParams struct {
	fx.In

	Logger           *slog.Logger
	NotificationSvc  service.NotificationService
	DeviceRepo       repository.DeviceRepository
	NotificationRepo repository.NotificationRepository
}

// NewNotificationProcessor creates a processor
func NewNotificationProcessor(params NotificationProcessorParams) *NotificationProcessor {
	return &NotificationProcessor{
		logger:           params.Logger,
		notificationSvc:  params.NotificationSvc,
		deviceRepo:       params.DeviceRepo,
		notificationRepo: params.NotificationRepo,
		now:              time.Now,
	}
}

// Process sends the event. Malformed events are dropped with a plain error;
// failures worth a redelivery come back as retryable errors.
func (p *NotificationProcessor) Process(ctx context.Context, event *service.NotificationEvent) (*ProcessResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, p.logger)

	eventID, deliveryID, recipients, err := parseEventIDs(event)
	if err != nil {
		return nil, err
	}

	result := &ProcessResult{}
	if len(recipients) == 0 {
		logger.Info("[Worker] No recipients to notify", slog.String("event_id", event.EventID))

		return result, nil
	}

	devices, err := p.deviceRepo.FindActiveDevicesByUsers(ctx, recipients)
	if err != nil {
		return nil, newRetryableError(errors.Wrap(err, "find recipient devices"))
	}
	result.Devices = len(devices)

	if len(devices) == 0 {
		logger.Info("[Worker] Recipients have no active devices",
			slog.String("event_id", event.EventID),
			slog.Int("recipient_count", len(recipients)),
		)

		return result, nil
	}

	data := pushData(event)
	var (
		logs       []*entity.NotificationLog
		sentIDs    []uuid.UUID
		invalidIDs []uuid.UUID
		batchErr   error
	)

	for start := 0; start < len(devices); start += service.MaxPushBatchSize {
		batch := devices[start:min(start+service.MaxPushBatchSize, len(devices))]
		tokens := make([]string, len(batch))
		for idx, device := range batch {
			tokens[idx] = device.FCMToken
		}

		pushResults, sendErr := p.notificationSvc.SendBatchNotification(ctx, tokens, event.Title, event.Body, data)
		sentAt := p.now().UTC()

		if sendErr != nil {
			logger.Error("[Worker] Failed to send batch",
				slog.Int("batch_start", start),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", sendErr),
			)
			batchErr = sendErr
			result.Failed += len(batch)
			for _, device := range batch {
				logs = append(logs, p.newLog(eventID, deliveryID, event.Type, device, sentAt, "", "batch send error: "+sendErr.Error()))
			}

			continue
		}

		for idx, device := range batch {
			if idx >= len(pushResults) {
				result.Failed++
				logs = append(logs, p.newLog(eventID, deliveryID, event.Type, device, sentAt, "", "missing send result"))

				continue
			}

			pushResult := pushResults[idx]
			switch {
			case pushResult.Err == nil:
				result.Sent++
				sentIDs = append(sentIDs, device.ID)
				logs = append(logs, p.newLog(eventID, deliveryID, event.Type, device, sentAt, pushResult.MessageID, ""))
			case pushResult.Invalid:
				result.Failed++
				invalidIDs = append(invalidIDs, device.ID)
				logs = append(logs, p.newLog(eventID, deliveryID, event.Type, device, sentAt, "", "invalid or unregistered token"))
			default:
				result.Failed++
				logs = append(logs, p.newLog(eventID, deliveryID, event.Type, device, sentAt, "", pushResult.Err.Error()))
			}
		}
	}

	if result.Sent == 0 && batchErr != nil && result.Failed == result.Devices {
		return result, newRetryableError(errors.Wrap(batchErr, "every push batch failed"))
	}

	result.Pruned = p.pruneDevices(ctx, logger, invalidIDs)

	if len(logs) > 0 {
		if err := p.notificationRepo.BatchCreateNotificationLogs(ctx, logs); err != nil {
			logger.Error("[Worker] Failed to create notification logs", slog.Any("error", err))
		}
	}

	if err := p.deviceRepo.TouchDevices(ctx, sentIDs); err != nil {
		logger.Warn("[Worker] Failed to touch devices", slog.Any("error", err))
	}

	logger.Info("[Worker] Notification sending completed",
		slog.String("event_id", event.EventID),
		slog.String("delivery_id", event.DeliveryID),
		slog.Int("total_sent", result.Sent),
		slog.Int("total_failed", result.Failed),
		slog.Int("pruned_devices", result.Pruned),
	)

	return result, nil
}

func (p *NotificationProcessor) pruneDevices(ctx context.Context, logger *slog.Logger, deviceIDs []uuid.UUID) int {
	pruned := 0
	for _, deviceID := range deviceIDs {
		if err := p.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
			if !errors.Is(err, repository.ErrDeviceNotFound) {
				logger.Warn("[Worker] Failed to delete invalid device",
					slog.String("device_id", deviceID.String()),
					slog.Any("error", err),
				)
			}

			continue
		}
		pruned++
	}

	return pruned
}

func (p *NotificationProcessor) newLog(eventID, deliveryID uuid.UUID, eventType string, device *entity.UserDevice, sentAt time.Time, messageID, errMsg string) *entity.NotificationLog {
	status := entity.NotificationStatusSent
	if errMsg != "" {
		status = entity.NotificationStatusFailed
	}

	return &entity.NotificationLog{
		ID:           uuid.New(),
		EventID:      eventID,
		DeliveryID:   deliveryID,
		UserID:       device.UserID,
		DeviceID:     device.ID,
		Type:         eventType,
		Status:       status,
		FCMMessageID: messageID,
		ErrorMessage: errMsg,
		SentAt:       sentAt,
	}
}

// parseEventIDs validates the event ids. Unparseable recipients are skipped.
func parseEventIDs(event *service.NotificationEvent) (eventID, deliveryID uuid.UUID, recipients []uuid.UUID, err error) {
	eventID, err = uuid.Parse(event.EventID)
	if err != nil {
		return uuid.Nil, uuid.Nil, nil, errors.Wrap(err, "invalid event_id")
	}

	deliveryID, err = uuid.Parse(event.DeliveryID)
	if err != nil {
		return uuid.Nil, uuid.Nil, nil, errors.Wrap(err, "invalid delivery_id")
	}

	seen := make(map[uuid.UUID]struct{}, len(event.RecipientIDs))
	recipients = make([]uuid.UUID, 0, len(event.RecipientIDs))
	for _, raw := range event.RecipientIDs {
		id, parseErr := uuid.Parse(raw)
		if parseErr != nil {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		recipients = append(recipients, id)
	}

	return eventID, deliveryID, recipients, nil
}

// pushData is the FCM data payload: the event data plus its identifiers.
func pushData(event *service.NotificationEvent) map[string]string {
	data := make(map[string]string, len(event.Data)+4)
	for key, value := range event.Data {
		data[key] = value
	}
	data["event_id"] = event.EventID
	data["type"] = event.Type
	data["delivery_id"] = event.DeliveryID
	if event.Status != "" {
		data["status"] = event.Status
	}

	return data
}
