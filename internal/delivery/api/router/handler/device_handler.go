package handler

import (
	"log/slog"
	"net/http"

	"tracker/internal/delivery/api/middleware"
	"tracker/internal/delivery/api/response"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler lets stakeholders register where status pushes are sent
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

type RegisterDeviceRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	DeviceID string `json:"device_id" validate:"required,max=255"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
}

type UpdateFCMTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
}

// RegisterDevice adds a push endpoint for the caller
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req RegisterDeviceRequest
	if err := bindAndValidate(c, &req, "invalid device payload"); err != nil {
		return err
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), userID, &usecase.DeviceInfo{
		FCMToken: req.FCMToken,
		DeviceID: req.DeviceID,
		Platform: req.Platform,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, device)
}

// GetUserDevices lists the caller's active push endpoints
func (h *DeviceHandler) GetUserDevices(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	devices, err := h.deviceUC.GetUserDevices(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, devices)
}

// UpdateFCMToken rotates the token of one of the caller's devices
func (h *DeviceHandler) UpdateFCMToken(c echo.Context) error {
	userID, deviceID, err := deviceRequest(c)
	if err != nil {
		return err
	}

	var req UpdateFCMTokenRequest
	if err := bindAndValidate(c, &req, "invalid token payload"); err != nil {
		return err
	}

	if err := h.deviceUC.UpdateFCMToken(c.Request().Context(), userID, deviceID, req.FCMToken); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// DeactivateDevice stops pushes to one of the caller's devices
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	userID, deviceID, err := deviceRequest(c)
	if err != nil {
		return err
	}

	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), userID, deviceID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func deviceRequest(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, uuid.Nil, domainerrors.ErrUnauthorized
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid device id")
	}

	return userID, deviceID, nil
}

// bindAndValidate binds the body and runs the struct rules. Binding failures
// become VALIDATION_FAILED with the given detail.
func bindAndValidate(c echo.Context, req any, detail string) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(detail)
	}

	return c.Validate(req)
}
