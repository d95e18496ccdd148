package entity

import (
	"time"

	"github.com/google/uuid"
)

// ViewerSession describes one live connection of a user watching deliveries.
// Sessions are held in memory only.
type ViewerSession struct {
	SessionID      string    `json:"session_id"`
	UserID         uuid.UUID `json:"user_id"`
	UserType       UserType  `json:"user_type"`
	ConnectedAt    time.Time `json:"connected_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
	IsActive       bool      `json:"is_active"`
}
