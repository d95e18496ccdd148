package qrcode

import (
	"encoding/json"
	"testing"

	"tracker/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payloadFor(t *testing.T, deliveryID, typ string) string {
	t.Helper()

	data, err := json.Marshal(Payload{DeliveryID: deliveryID, Type: typ})
	require.NoError(t, err)

	return string(data)
}

func TestShareCodeService_GenerateTrackingCode(t *testing.T) {
	tests := []struct {
		name  string
		cfg   *config.ShareCodeConfig
		level string
	}{
		{"defaults", nil, ""},
		{"small low recovery", &config.ShareCodeConfig{Size: 128, RecoveryLevel: "L"}, "L"},
		{"large highest recovery", &config.ShareCodeConfig{Size: 512, RecoveryLevel: "H"}, "H"},
		{"unknown level", &config.ShareCodeConfig{Size: 256, RecoveryLevel: "X"}, "X"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewShareCodeService(&config.Config{ShareCode: tt.cfg})

			png, err := svc.GenerateTrackingCode(uuid.New())
			require.NoError(t, err)
			require.Greater(t, len(png), 4)
			assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
		})
	}
}

func TestShareCodeService_ParseTrackingCode(t *testing.T) {
	svc := NewShareCodeService(&config.Config{})
	deliveryID := uuid.New()

	tests := []struct {
		name    string
		payload string
		want    uuid.UUID
		errMsg  string
	}{
		{"valid", payloadFor(t, deliveryID.String(), "tracking"), deliveryID, ""},
		{"not json", "not json", uuid.Nil, "unmarshal share code payload"},
		{"wrong type", payloadFor(t, deliveryID.String(), "subscription"), uuid.Nil, "unexpected share code type"},
		{"bad id", payloadFor(t, "not-a-uuid", "tracking"), uuid.Nil, "parse delivery id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ParseTrackingCode(tt.payload)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecoveryLevel(t *testing.T) {
	svc := NewShareCodeService(&config.Config{ShareCode: &config.ShareCodeConfig{RecoveryLevel: "Q"}}).(*shareCodeService)
	assert.Equal(t, defaultSize, svc.size)
	assert.Equal(t, recoveryLevel("Q"), svc.level)
	assert.Equal(t, recoveryLevel(""), recoveryLevel("M"))
}
