package impl

import (
	"context"
	"testing"

	"tracker/internal/domain/entity"
	"tracker/internal/domain/repository"
	mockRepo "tracker/internal/mocks/repository"
	"tracker/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(DeviceServiceParams{
		DeviceRepo: deviceRepo,
		Logger:     discardLogger(),
	})

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceInfo := &usecase.DeviceInfo{
		FCMToken: "test-fcm-token",
		DeviceID: "device-123",
		Platform: entity.PlatformAndroid,
	}

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{}, nil)

	fx.deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, userID, deviceInfo)
	require.NoError(t, err)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, deviceInfo.FCMToken, device.FCMToken)
	assert.Equal(t, deviceInfo.DeviceID, device.DeviceID)
	assert.Equal(t, entity.PlatformAndroid, device.Platform)
	assert.True(t, device.IsActive)
	assert.NotEqual(t, uuid.Nil, device.ID)
}

func TestDeviceService_RegisterDevice_RefreshesExistingToken(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()
	existing := &entity.UserDevice{
		ID:       deviceID,
		UserID:   userID,
		FCMToken: "old-token",
		DeviceID: "device-123",
		Platform: entity.PlatformIOS,
		IsActive: true,
	}
	updated := *existing
	updated.FCMToken = "new-fcm-token"

	fx.deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{existing}, nil)
	fx.deviceRepo.EXPECT().
		UpdateFCMToken(ctx, deviceID, "new-fcm-token").
		Return(nil)
	fx.deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&updated, nil)

	device, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{
		FCMToken: "new-fcm-token",
		DeviceID: "device-123",
		Platform: entity.PlatformIOS,
	})
	require.NoError(t, err)
	assert.Equal(t, "new-fcm-token", device.FCMToken)
}

func TestDeviceService_RegisterDevice_Validation(t *testing.T) {
	tests := []struct {
		name string
		info *usecase.DeviceInfo
	}{
		{name: "nil input", info: nil},
		{name: "missing token", info: &usecase.DeviceInfo{DeviceID: "d", Platform: entity.PlatformWeb}},
		{name: "missing device id", info: &usecase.DeviceInfo{FCMToken: "t", Platform: entity.PlatformWeb}},
		{name: "unknown platform", info: &usecase.DeviceInfo{FCMToken: "t", DeviceID: "d", Platform: "symbian"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)

			device, err := fx.service.RegisterDevice(context.Background(), uuid.New(), tt.info)
			assert.Nil(t, device)
			requireAppError(t, err, "VALIDATION_FAILED")
		})
	}
}

func TestDeviceService_RegisterDevice_RepositoryErrors(t *testing.T) {
	info := &usecase.DeviceInfo{FCMToken: "token", DeviceID: "device-1", Platform: entity.PlatformWeb}

	t.Run("lookup fails", func(t *testing.T) {
		fx := createTestDeviceService(t)
		ctx := context.Background()
		userID := uuid.New()

		fx.deviceRepo.EXPECT().
			FindDevicesByUser(ctx, userID).
			Return(nil, errors.New("database error"))

		_, err := fx.service.RegisterDevice(ctx, userID, info)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to find devices by user")
	})

	t.Run("token owned by another device", func(t *testing.T) {
		fx := createTestDeviceService(t)
		ctx := context.Background()
		userID := uuid.New()

		fx.deviceRepo.EXPECT().
			FindDevicesByUser(ctx, userID).
			Return(nil, nil)
		fx.deviceRepo.EXPECT().
			CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
			Return(repository.ErrDuplicateDevice)

		_, err := fx.service.RegisterDevice(ctx, userID, info)
		requireAppError(t, err, "VALIDATION_FAILED")
	})
}

func TestDeviceService_UpdateFCMToken(t *testing.T) {
	userID := uuid.New()
	deviceID := uuid.New()

	tests := []struct {
		name     string
		setup    func(fx deviceServiceFixtures)
		wantCode string
		wantMsg  string
	}{
		{
			name: "success",
			setup: func(fx deviceServiceFixtures) {
				fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, deviceID).
					Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
				fx.deviceRepo.EXPECT().UpdateFCMToken(mock.Anything, deviceID, "new-token").Return(nil)
			},
		},
		{
			name: "device not found",
			setup: func(fx deviceServiceFixtures) {
				fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, deviceID).
					Return(nil, repository.ErrDeviceNotFound)
			},
			wantCode: "DEVICE_NOT_FOUND",
		},
		{
			name: "device of another user",
			setup: func(fx deviceServiceFixtures) {
				fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, deviceID).
					Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil)
			},
			wantCode: "FORBIDDEN",
		},
		{
			name: "update fails",
			setup: func(fx deviceServiceFixtures) {
				fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, deviceID).
					Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
				fx.deviceRepo.EXPECT().UpdateFCMToken(mock.Anything, deviceID, "new-token").
					Return(errors.New("database error"))
			},
			wantMsg: "failed to update FCM token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)
			tt.setup(fx)

			err := fx.service.UpdateFCMToken(context.Background(), userID, deviceID, "new-token")
			switch {
			case tt.wantCode != "":
				requireAppError(t, err, tt.wantCode)
			case tt.wantMsg != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantMsg)
			default:
				require.NoError(t, err)
			}
		})
	}
}

func TestDeviceService_UpdateFCMToken_EmptyToken(t *testing.T) {
	fx := createTestDeviceService(t)

	err := fx.service.UpdateFCMToken(context.Background(), uuid.New(), uuid.New(), "")
	requireAppError(t, err, "VALIDATION_FAILED")
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.UserDevice{
		{ID: uuid.New(), UserID: userID, IsActive: true},
		{ID: uuid.New(), UserID: userID, IsActive: true},
	}

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return(expected, nil)

	devices, err := fx.service.GetUserDevices(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, expected, devices)
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	userID := uuid.New()
	deviceID := uuid.New()

	t.Run("success", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, deviceID).
			Return(&entity.UserDevice{ID: deviceID, UserID: userID, IsActive: true}, nil)
		fx.deviceRepo.EXPECT().DeleteDevice(mock.Anything, deviceID).Return(nil)

		require.NoError(t, fx.service.DeactivateDevice(context.Background(), userID, deviceID))
	})

	t.Run("device of another user", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, deviceID).
			Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil)

		err := fx.service.DeactivateDevice(context.Background(), userID, deviceID)
		requireAppError(t, err, "FORBIDDEN")
	})

	t.Run("deleted concurrently", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, deviceID).
			Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
		fx.deviceRepo.EXPECT().DeleteDevice(mock.Anything, deviceID).
			Return(repository.ErrDeviceNotFound)

		err := fx.service.DeactivateDevice(context.Background(), userID, deviceID)
		requireAppError(t, err, "DEVICE_NOT_FOUND")
	})

	t.Run("delete fails", func(t *testing.T) {
		fx := createTestDeviceService(t)
		fx.deviceRepo.EXPECT().FindDeviceByID(mock.Anything, deviceID).
			Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
		fx.deviceRepo.EXPECT().DeleteDevice(mock.Anything, deviceID).
			Return(errors.New("database error"))

		err := fx.service.DeactivateDevice(context.Background(), userID, deviceID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to delete device")
	})
}
