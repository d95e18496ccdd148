package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "tracker/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, write func(c echo.Context) error) (int, map[string]any) {
	t.Helper()

	fixed := time.Date(2026, 3, 1, 9, 30, 0, 0, time.FixedZone("TPE", 8*3600))
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = time.Now })

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")
	require.NoError(t, write(c))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec.Code, body
}

func TestSuccess(t *testing.T) {
	code, body := render(t, func(c echo.Context) error {
		return Success(c, http.StatusCreated, map[string]int{"eta_minutes": 7})
	})

	assert.Equal(t, http.StatusCreated, code)
	assert.Equal(t, map[string]any{"eta_minutes": float64(7)}, body["data"])
	assert.Equal(t, map[string]any{"request_id": "req-1", "server_time": "2026-03-01T01:30:00Z"}, body["meta"])
}

func TestError(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		wantDetails   bool
		wantRetryable bool
	}{
		{"client error keeps details", http.StatusUnprocessableEntity, true, false},
		{"unauthorized hides details", http.StatusUnauthorized, false, false},
		{"forbidden hides details", http.StatusForbidden, false, false},
		{"unavailable is retryable", http.StatusServiceUnavailable, false, true},
		{"internal hides details", http.StatusInternalServerError, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := render(t, func(c echo.Context) error {
				return Error(c, tt.status, "SOME_CODE", "message", "pending -> delivered")
			})

			assert.Equal(t, tt.status, code)
			info := body["error"].(map[string]any)
			assert.Equal(t, "SOME_CODE", info["code"])

			_, hasDetails := info["details"]
			assert.Equal(t, tt.wantDetails, hasDetails)
			_, hasRetryable := info["retryable"]
			assert.Equal(t, tt.wantRetryable, hasRetryable)
		})
	}
}
