package usecase

import (
	"context"

	"farmstay/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateBookingStatusInput carries the status transitions of a booking update.
// Nil fields are left unchanged.
type UpdateBookingStatusInput struct {
	BookingStatus *entity.BookingStatus `json:"booking_status,omitempty"`
	PaymentStatus *entity.PaymentStatus `json:"payment_status,omitempty"`
}

// BookingUsecase defines the admin-facing booking operations.
type BookingUsecase interface {
	// UpdateBookingStatus applies a status transition and publishes the
	// before/after change event for async dispatch. Publish failure is logged,
	// never surfaced.
	UpdateBookingStatus(ctx context.Context, id uuid.UUID, input UpdateBookingStatusInput) (*entity.Booking, error)
}
