// Package response renders the JSON envelope shared by every API route.
package response

import (
	"net/http"
	"time"

	deliverycontext "tracker/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// SuccessResponse wraps a successful payload.
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse wraps a failure.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo describes a failure. Details are only sent for client errors
// other than 401 and 403.
type ErrorInfo struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Details   any    `json:"details,omitempty"`
	Retryable bool   `json:"retryable,omitempty"`
}

// MetaInfo correlates a response with server logs. ServerTime lets viewers
// age courier positions and arrival estimates against the server clock.
type MetaInfo struct {
	RequestID  string    `json:"request_id"`
	ServerTime time.Time `json:"server_time"`
}

var now = time.Now

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{
		RequestID:  deliverycontext.GetRequestID(c),
		ServerTime: now().UTC(),
	}
}

func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: meta(c)})
}

// Error writes an error envelope. A 503 is flagged retryable.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:      errorCode,
			Message:   message,
			Details:   details,
			Retryable: statusCode == http.StatusServiceUnavailable,
		},
		Meta: meta(c),
	})
}
