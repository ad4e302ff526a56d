package model

import (
	"time"

	"github.com/google/uuid"
)

// BroadcastModel is the GORM-specific struct for the 'broadcasts' table.
// It represents an admin-authored message plus its delivery outcome.
type BroadcastModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key"`
	Selector    string     `gorm:"type:varchar(50);not null"`
	RecipientID *uuid.UUID `gorm:"type:uuid"`
	Title       string     `gorm:"type:text;not null"`
	Body        string     `gorm:"type:text;not null"`
	CreatedBy   uuid.UUID  `gorm:"type:uuid;not null;index"`

	// Delivery outcome, written once by the dispatcher.
	NotificationSent  *bool `gorm:"index"`
	SentAt            *time.Time
	SuccessCount      int    `gorm:"not null;default:0"`
	FailureCount      int    `gorm:"not null;default:0"`
	NotificationError string `gorm:"type:text"`
	ProcessedAt       *time.Time

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BroadcastModel) TableName() string {
	return "broadcasts"
}

// DeliveryLogModel is the GORM-specific struct for the 'delivery_logs' table.
// It represents the outcome of a single push sent to a user device.
type DeliveryLogModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	BroadcastID  uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	DeviceID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Status       string    `gorm:"type:varchar(50);not null;default:'sent'"`
	ErrorMessage string    `gorm:"type:text"`
	SentAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryLogModel) TableName() string {
	return "delivery_logs"
}
