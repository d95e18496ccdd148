package qrcode

import (
	"encoding/json"

	"tracker/config"
	"tracker/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize     = 256
	trackingPayload = "tracking"
)

type shareCodeService struct {
	size  int
	level qrcode.RecoveryLevel
}

// Payload is the JSON carried by a tracking share code.
type Payload struct {
	DeliveryID string `json:"delivery_id"`
	Type       string `json:"type"`
}

// NewShareCodeService builds the share code renderer from configuration.
// Unset values fall back to 256px and medium recovery.
func NewShareCodeService(cfg *config.Config) service.ShareCodeService {
	size, level := defaultSize, ""
	if cfg.ShareCode != nil {
		if cfg.ShareCode.Size > 0 {
			size = cfg.ShareCode.Size
		}
		level = cfg.ShareCode.RecoveryLevel
	}

	return &shareCodeService{
		size:  size,
		level: recoveryLevel(level),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

func (s *shareCodeService) GenerateTrackingCode(deliveryID uuid.UUID) ([]byte, error) {
	data, err := json.Marshal(Payload{
		DeliveryID: deliveryID.String(),
		Type:       trackingPayload,
	})
	if err != nil {
		return nil, errors.Wrap(err, "marshal share code payload")
	}

	code, err := qrcode.New(string(data), s.level)
	if err != nil {
		return nil, errors.Wrap(err, "create share code")
	}

	png, err := code.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "render share code")
	}

	return png, nil
}

func (s *shareCodeService) ParseTrackingCode(payload string) (uuid.UUID, error) {
	var data Payload
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return uuid.Nil, errors.Wrap(err, "unmarshal share code payload")
	}

	if data.Type != trackingPayload {
		return uuid.Nil, errors.Errorf("unexpected share code type %q", data.Type)
	}

	deliveryID, err := uuid.Parse(data.DeliveryID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "parse delivery id")
	}

	return deliveryID, nil
}
