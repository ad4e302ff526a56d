package model

import (
	"time"

	"github.com/google/uuid"
)

// BookingModel is the GORM-specific struct for the 'bookings' table.
type BookingModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ListingID     uuid.UUID `gorm:"type:uuid;not null;index"`
	BookingStatus string    `gorm:"type:varchar(50);not null;index"`
	PaymentStatus string    `gorm:"type:varchar(50);not null"`
	CheckIn       time.Time `gorm:"not null"`
	CheckOut      time.Time `gorm:"not null"`
	GuestCount    int       `gorm:"not null;default:1"`
	TotalAmount   int64     `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (BookingModel) TableName() string {
	return "bookings"
}
