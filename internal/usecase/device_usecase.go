package usecase

import (
	"context"

	"tracker/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo identifies a push endpoint on one of the caller's devices.
// Platform is one of entity.PlatformIOS, PlatformAndroid or PlatformWeb.
type DeviceInfo struct {
	FCMToken string `json:"fcm_token"`
	DeviceID string `json:"device_id"`
	Platform string `json:"platform"`
}

// DeviceUsecase manages where a stakeholder receives delivery status pushes.
// Every operation is scoped to devices owned by userID.
type DeviceUsecase interface {
	// RegisterDevice is idempotent per DeviceID: re-registering refreshes the token.
	RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *DeviceInfo) (*entity.UserDevice, error)
	UpdateFCMToken(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID, fcmToken string) error
	GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)
	// DeactivateDevice stops pushes to the device.
	DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
