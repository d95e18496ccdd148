package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"tracker/internal/delivery/api/middleware"
	"tracker/internal/delivery/api/response"
	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/domain/service"
	"tracker/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// TrackingHandlerParams holds dependencies for TrackingHandler, injected by Fx.
type TrackingHandlerParams struct {
	fx.In

	TrackingUC usecase.TrackingUsecase
	ShareCodes service.ShareCodeService
	Logger     *slog.Logger
}

// TrackingHandler exposes the delivery tracking operations
type TrackingHandler struct {
	trackingUC usecase.TrackingUsecase
	shareCodes service.ShareCodeService
	logger     *slog.Logger
}

// NewTrackingHandler is the constructor for TrackingHandler
func NewTrackingHandler(params TrackingHandlerParams) *TrackingHandler {
	return &TrackingHandler{
		trackingUC: params.TrackingUC,
		shareCodes: params.ShareCodes,
		logger:     params.Logger,
	}
}

// ReportLocationRequest is a courier position report. Coordinate ranges are
// checked by the tracking usecase.
type ReportLocationRequest struct {
	Latitude   *float64   `json:"latitude" validate:"required"`
	Longitude  *float64   `json:"longitude" validate:"required"`
	Heading    *float64   `json:"heading" validate:"omitempty,gte=0,lt=360"`
	Speed      *float64   `json:"speed" validate:"omitempty,gte=0"`
	Accuracy   *float64   `json:"accuracy" validate:"omitempty,gte=0"`
	RecordedAt *time.Time `json:"recorded_at"`
}

// AdvanceStatusRequest asks for a status transition
type AdvanceStatusRequest struct {
	Status      string          `json:"status" validate:"required"`
	Description string          `json:"description" validate:"max=500"`
	Latitude    *float64        `json:"latitude" validate:"required_with=Longitude"`
	Longitude   *float64        `json:"longitude" validate:"required_with=Latitude"`
	Metadata    json.RawMessage `json:"metadata"`
}

// ResolveShareCodeRequest carries the text decoded from a scanned share code
type ResolveShareCodeRequest struct {
	Payload string `json:"payload" validate:"required,max=512"`
}

// InitializeTracking plans the route of a delivery and starts tracking it
func (h *TrackingHandler) InitializeTracking(c echo.Context) error {
	deliveryID, actor, err := h.deliveryRequest(c)
	if err != nil {
		return err
	}

	result, err := h.trackingUC.InitializeTracking(c.Request().Context(), deliveryID, actor)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, result)
}

// ReportLocation records a courier position
func (h *TrackingHandler) ReportLocation(c echo.Context) error {
	deliveryID, actor, err := h.deliveryRequest(c)
	if err != nil {
		return err
	}

	var req ReportLocationRequest
	if err := bindAndValidate(c, &req, "invalid location payload"); err != nil {
		return err
	}

	report, err := h.trackingUC.ReportLocation(c.Request().Context(), usecase.LocationUpdate{
		DeliveryID: deliveryID,
		CourierID:  actor.UserID,
		Latitude:   *req.Latitude,
		Longitude:  *req.Longitude,
		Heading:    req.Heading,
		Speed:      req.Speed,
		Accuracy:   req.Accuracy,
		RecordedAt: req.RecordedAt,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, report)
}

// AdvanceStatus moves a delivery to the requested status
func (h *TrackingHandler) AdvanceStatus(c echo.Context) error {
	deliveryID, actor, err := h.deliveryRequest(c)
	if err != nil {
		return err
	}

	var req AdvanceStatusRequest
	if err := bindAndValidate(c, &req, "invalid status payload"); err != nil {
		return err
	}

	change := usecase.StatusChange{
		DeliveryID:  deliveryID,
		Status:      entity.DeliveryStatus(req.Status),
		Actor:       actor,
		Description: req.Description,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}
	if len(req.Metadata) > 0 && string(req.Metadata) != "null" {
		change.Metadata = string(req.Metadata)
	}

	result, err := h.trackingUC.AdvanceStatus(c.Request().Context(), change)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, result)
}

// GetSnapshot returns the current tracking state of a delivery
func (h *TrackingHandler) GetSnapshot(c echo.Context) error {
	deliveryID, actor, err := h.deliveryRequest(c)
	if err != nil {
		return err
	}

	snapshot, err := h.trackingUC.GetSnapshot(c.Request().Context(), deliveryID, actor)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, snapshot)
}

// GetLocationTrail returns the recorded pings as a GeoJSON FeatureCollection.
// The collection is written bare so map clients can load it directly.
func (h *TrackingHandler) GetLocationTrail(c echo.Context) error {
	deliveryID, actor, err := h.deliveryRequest(c)
	if err != nil {
		return err
	}

	limit, err := queryLimit(c)
	if err != nil {
		return err
	}

	trail, err := h.trackingUC.GetLocationTrail(c.Request().Context(), deliveryID, actor, limit)
	if err != nil {
		return err
	}

	body, err := trail.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "marshal trail")
	}

	return c.Blob(http.StatusOK, "application/geo+json", body)
}

// GetShareCode renders a PNG code that opens the delivery's tracking view.
// Only callers allowed to view the delivery may fetch it.
func (h *TrackingHandler) GetShareCode(c echo.Context) error {
	deliveryID, actor, err := h.deliveryRequest(c)
	if err != nil {
		return err
	}

	if _, err := h.trackingUC.GetSnapshot(c.Request().Context(), deliveryID, actor); err != nil {
		return err
	}

	png, err := h.shareCodes.GenerateTrackingCode(deliveryID)
	if err != nil {
		return err
	}

	c.Response().Header().Set("Content-Disposition", "inline; filename=tracking-"+deliveryID.String()+".png")

	return c.Blob(http.StatusOK, "image/png", png)
}

// ResolveShareCode turns a scanned share code into the tracking snapshot it points to.
func (h *TrackingHandler) ResolveShareCode(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}
	roles, _ := middleware.GetRoles(c)

	var req ResolveShareCodeRequest
	if err := bindAndValidate(c, &req, "invalid share code payload"); err != nil {
		return err
	}

	deliveryID, err := h.shareCodes.ParseTrackingCode(req.Payload)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("unrecognized share code")
	}

	snapshot, err := h.trackingUC.GetSnapshot(c.Request().Context(), deliveryID, usecase.Actor{UserID: userID, Roles: roles})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, snapshot)
}

// RecalculateRoute re-plans the route of a delivery after its endpoints changed
func (h *TrackingHandler) RecalculateRoute(c echo.Context) error {
	deliveryID, actor, err := h.deliveryRequest(c)
	if err != nil {
		return err
	}

	result, err := h.trackingUC.RecalculateRoute(c.Request().Context(), deliveryID, actor)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, result)
}

// ListNotificationLogs returns the push outcomes recorded for a delivery
func (h *TrackingHandler) ListNotificationLogs(c echo.Context) error {
	deliveryID, actor, err := h.deliveryRequest(c)
	if err != nil {
		return err
	}

	limit, err := queryLimit(c)
	if err != nil {
		return err
	}

	logs, err := h.trackingUC.ListNotificationLogs(c.Request().Context(), deliveryID, actor, limit)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, logs)
}

// ListCourierDeliveries returns the deliveries assigned to a courier
func (h *TrackingHandler) ListCourierDeliveries(c echo.Context) error {
	courierID, actor, err := pathRequest(c, "courier")
	if err != nil {
		return err
	}

	limit, err := queryLimit(c)
	if err != nil {
		return err
	}

	deliveries, err := h.trackingUC.ListCourierDeliveries(c.Request().Context(), courierID, actor, limit)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, deliveries)
}

// queryLimit reads the optional ?limit= parameter. Zero means the default.
func queryLimit(c echo.Context) (int, error) {
	raw := c.QueryParam("limit")
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("limit must be a non-negative integer")
	}

	return limit, nil
}

// deliveryRequest resolves the path delivery id and the authenticated caller.
func (h *TrackingHandler) deliveryRequest(c echo.Context) (uuid.UUID, usecase.Actor, error) {
	return pathRequest(c, "delivery")
}

// pathRequest parses the :id path parameter; kind names it in the validation error.
func pathRequest(c echo.Context, kind string) (uuid.UUID, usecase.Actor, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, usecase.Actor{}, domainerrors.ErrUnauthorized
	}
	roles, _ := middleware.GetRoles(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, usecase.Actor{}, domainerrors.ErrValidationFailed.WithDetails("invalid " + kind + " id")
	}

	return id, usecase.Actor{UserID: userID, Roles: roles}, nil
}
