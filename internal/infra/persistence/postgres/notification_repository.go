package postgres

import (
	"context"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const notificationLogBatchSize = 100

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// BatchCreateNotificationLogs persists multiple notification log entries in batches.
func (repo *notificationRepository) BatchCreateNotificationLogs(ctx context.Context, logs []*entity.NotificationLog) error {
	if len(logs) == 0 {
		return nil
	}

	logModels := make([]*model.NotificationLogModel, 0, len(logs))
	for _, log := range logs {
		logModels = append(logModels, fromNotificationLogDomain(log))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(logModels, notificationLogBatchSize).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required notification log information in batch")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to batch create notification logs")
	}

	for i, logM := range logModels {
		logs[i].ID = logM.ID
		logs[i].SentAt = logM.SentAt
	}

	return nil
}

// FindLogsByDelivery returns the push outcomes of a delivery, newest first.
func (repo *notificationRepository) FindLogsByDelivery(ctx context.Context, deliveryID uuid.UUID, limit int) ([]*entity.NotificationLog, error) {
	var logModels []*model.NotificationLogModel

	query := repo.db.WithContext(ctx).
		Where("delivery_id = ?", deliveryID).
		Order("sent_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notification logs by delivery")
	}

	logs := make([]*entity.NotificationLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, toNotificationLogDomain(logM))
	}

	return logs, nil
}

// --- Mapper Functions ---

func toNotificationLogDomain(data *model.NotificationLogModel) *entity.NotificationLog {
	if data == nil {
		return nil
	}

	return &entity.NotificationLog{
		ID:           data.ID,
		EventID:      data.EventID,
		DeliveryID:   data.DeliveryID,
		UserID:       data.UserID,
		DeviceID:     data.DeviceID,
		Type:         data.Type,
		Status:       entity.NotificationStatus(data.Status),
		FCMMessageID: data.FCMMessageID,
		ErrorMessage: data.ErrorMessage,
		SentAt:       data.SentAt,
	}
}

func fromNotificationLogDomain(data *entity.NotificationLog) *model.NotificationLogModel {
	if data == nil {
		return nil
	}

	return &model.NotificationLogModel{
		ID:           data.ID,
		EventID:      data.EventID,
		DeliveryID:   data.DeliveryID,
		UserID:       data.UserID,
		DeviceID:     data.DeviceID,
		Type:         data.Type,
		Status:       string(data.Status),
		FCMMessageID: data.FCMMessageID,
		ErrorMessage: data.ErrorMessage,
		SentAt:       data.SentAt,
	}
}
