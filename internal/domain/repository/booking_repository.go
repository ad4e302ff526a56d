// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"farmstay/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBookingNotFound is returned when a booking is not found.
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepository defines the interface for booking-related database operations.
type BookingRepository interface {
	// FindBookingByID retrieves a booking by its unique ID.
	FindBookingByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)

	// CreateBooking persists a new booking.
	CreateBooking(ctx context.Context, booking *entity.Booking) error

	// UpdateStatuses sets the booking and payment status of a booking.
	UpdateStatuses(ctx context.Context, id uuid.UUID, bookingStatus entity.BookingStatus, paymentStatus entity.PaymentStatus) error

	// CountByBookingStatus counts bookings in the given lifecycle state.
	CountByBookingStatus(ctx context.Context, status entity.BookingStatus) (int64, error)
}
