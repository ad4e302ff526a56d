// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	// BookingPending indicates a booking awaiting confirmation.
	BookingPending BookingStatus = "pending"
	// BookingConfirmed indicates a confirmed booking.
	BookingConfirmed BookingStatus = "confirmed"
	// BookingCancelled indicates a cancelled booking.
	BookingCancelled BookingStatus = "cancelled"
	// BookingCompleted indicates a completed stay.
	BookingCompleted BookingStatus = "completed"
)

// IsValid checks if the BookingStatus is a valid value.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	default:
		return false
	}
}

// PaymentStatus represents the payment state of a booking.
type PaymentStatus string

const (
	// PaymentPending indicates payment has not settled yet.
	PaymentPending PaymentStatus = "pending"
	// PaymentPaid indicates a successful payment.
	PaymentPaid PaymentStatus = "paid"
	// PaymentFailed indicates a failed payment.
	PaymentFailed PaymentStatus = "failed"
	// PaymentRefunded indicates a refunded payment.
	PaymentRefunded PaymentStatus = "refunded"
)

// IsValid checks if the PaymentStatus is a valid value.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return true
	default:
		return false
	}
}

// Booking represents a farmhouse reservation made by a guest.
// The dispatcher reacts only to transitions of BookingStatus or PaymentStatus,
// never to edits of dates, guest count, or price.
type Booking struct {
	ID            uuid.UUID     `json:"id"`             // The Global Unique Identifier (GUID) for the booking.
	UserID        uuid.UUID     `json:"user_id"`        // The guest who made the booking.
	ListingID     uuid.UUID     `json:"listing_id"`     // The farmhouse being booked.
	BookingStatus BookingStatus `json:"booking_status"` // Lifecycle state of the booking.
	PaymentStatus PaymentStatus `json:"payment_status"` // Payment state of the booking.
	CheckIn       time.Time     `json:"check_in"`       // Check-in date.
	CheckOut      time.Time     `json:"check_out"`      // Check-out date.
	GuestCount    int           `json:"guest_count"`    // Number of guests.
	TotalAmount   int64         `json:"total_amount"`   // Total price in the smallest currency unit.
	CreatedAt     time.Time     `json:"created_at"`     // Timestamp of when this record was created.
	UpdatedAt     time.Time     `json:"updated_at"`     // Timestamp of the last modification.
}
