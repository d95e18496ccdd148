package postgres

import (
	"context"
	"time"

	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/repository"
	"tracker/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deviceRepository stores the push targets of tracking participants.
// Soft-deleted rows are hidden by gorm's DeletedAt scope.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

func ownedBy(userIDs ...uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(userIDs) == 1 {
			return db.Where("user_id = ?", userIDs[0])
		}

		return db.Where("user_id IN ?", userIDs)
	}
}

// pushable keeps devices that may still receive notifications.
func pushable(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

// CreateDevice registers a device; the generated id and timestamps are copied back.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.UserDevice) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		return deviceWriteError(err, "failed to register device")
	}

	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error) {
	var deviceM model.UserDeviceModel

	err := repo.db.WithContext(ctx).Where("id = ?", id).Take(&deviceM).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrDeviceNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load device %s", id)
	}

	return toDeviceDomain(&deviceM), nil
}

// FindDevicesByUser includes devices whose token was disabled.
func (repo *deviceRepository) FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	return repo.findDevices(ctx, "user devices", ownedBy(userID))
}

func (repo *deviceRepository) FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	return repo.findDevices(ctx, "active user devices", ownedBy(userID), pushable)
}

// FindActiveDevicesByUsers resolves every push target of a notification in one query.
func (repo *deviceRepository) FindActiveDevicesByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.UserDevice, error) {
	if len(userIDs) == 0 {
		return []*entity.UserDevice{}, nil
	}

	return repo.findDevices(ctx, "recipient devices", ownedBy(userIDs...), pushable)
}

// TouchDevices records a successful push. updated_at is left alone so it keeps
// tracking registration changes only.
func (repo *deviceRepository) TouchDevices(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	err := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("id IN ?", ids).
		UpdateColumn("last_used_at", time.Now().UTC()).Error
	if err != nil {
		return errors.Wrapf(err, "failed to stamp %d pushed devices", len(ids))
	}

	return nil
}

// UpdateFCMToken rotates the push token. A fresh token makes the device
// reachable again, so it is reactivated.
func (repo *deviceRepository) UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("id = ?", deviceID).
		Updates(map[string]any{
			"fcm_token": fcmToken,
			"is_active": true,
		})
	if result.Error != nil {
		return deviceWriteError(result.Error, "failed to rotate push token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeleteDevice soft-deletes a device. The notify worker calls it for tokens FCM reports as unregistered.
func (repo *deviceRepository) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.UserDeviceModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to delete device %s", id)
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// findDevices lists devices newest first, grouped by owner when several users match.
func (repo *deviceRepository) findDevices(ctx context.Context, what string, scopes ...func(*gorm.DB) *gorm.DB) ([]*entity.UserDevice, error) {
	var deviceModels []*model.UserDeviceModel

	if err := repo.db.WithContext(ctx).
		Scopes(scopes...).
		Order("user_id").
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to find %s", what)
	}

	devices := make([]*entity.UserDevice, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// deviceWriteError maps constraint violations on user_devices to domain errors.
func deviceWriteError(err error, message string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return repository.ErrDuplicateDevice
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage("device owner does not exist")
	case isNotNullConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage("device token, id and platform are required")
	default:
		return domainerrors.NewDatabaseExecuteError(err, message)
	}
}

func toDeviceDomain(data *model.UserDeviceModel) *entity.UserDevice {
	return &entity.UserDevice{
		ID:         data.ID,
		UserID:     data.UserID,
		FCMToken:   data.FCMToken,
		DeviceID:   data.DeviceID,
		Platform:   data.Platform,
		IsActive:   data.IsActive,
		LastUsedAt: data.LastUsedAt,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromDeviceDomain(data *entity.UserDevice) *model.UserDeviceModel {
	return &model.UserDeviceModel{
		ID:         data.ID,
		UserID:     data.UserID,
		FCMToken:   data.FCMToken,
		DeviceID:   data.DeviceID,
		Platform:   data.Platform,
		IsActive:   data.IsActive,
		LastUsedAt: data.LastUsedAt,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
