package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationLogModel is the GORM-specific struct for the 'notification_logs' table.
// It represents one push attempt to a single user device.
type NotificationLogModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	EventID      uuid.UUID `gorm:"type:uuid;not null;index"`
	DeliveryID   uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	DeviceID     uuid.UUID `gorm:"type:uuid;not null"`
	Type         string    `gorm:"type:varchar(32);not null"`
	Status       string    `gorm:"type:text;not null;default:'sent'"`
	FCMMessageID string    `gorm:"type:text"`
	ErrorMessage string    `gorm:"type:text"`
	SentAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationLogModel) TableName() string {
	return "notification_logs"
}
