package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"farmstay/internal/domain/entity"
	domainerrors "farmstay/internal/domain/errors"
	"farmstay/internal/domain/repository"
	"farmstay/internal/domain/service"
	"farmstay/internal/usecase"

	"github.com/google/uuid"
)

type bookingService struct {
	bookingRepo repository.BookingRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// NewBookingService creates a new booking service instance.
func NewBookingService(
	bookingRepo repository.BookingRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.BookingUsecase {
	return &bookingService{
		bookingRepo: bookingRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

// UpdateBookingStatus applies the requested status transitions and publishes
// the before/after change event. Only status fields are watched downstream;
// edits to dates or price never reach the dispatcher.
func (s *bookingService) UpdateBookingStatus(ctx context.Context, id uuid.UUID, input usecase.UpdateBookingStatusInput) (*entity.Booking, error) {
	if input.BookingStatus == nil && input.PaymentStatus == nil {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("at least one of booking_status or payment_status is required")
	}
	if input.BookingStatus != nil && !input.BookingStatus.IsValid() {
		return nil, domainerrors.ErrInvalidArgument.WithDetails(fmt.Sprintf("unknown booking status %q", *input.BookingStatus))
	}
	if input.PaymentStatus != nil && !input.PaymentStatus.IsValid() {
		return nil, domainerrors.ErrInvalidArgument.WithDetails(fmt.Sprintf("unknown payment status %q", *input.PaymentStatus))
	}

	booking, err := s.bookingRepo.FindBookingByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("booking not found")
		}

		return nil, fmt.Errorf("failed to find booking: %w", err)
	}

	before := service.BookingSnapshot{
		BookingStatus: string(booking.BookingStatus),
		PaymentStatus: string(booking.PaymentStatus),
	}

	if input.BookingStatus != nil {
		booking.BookingStatus = *input.BookingStatus
	}
	if input.PaymentStatus != nil {
		booking.PaymentStatus = *input.PaymentStatus
	}

	if err := s.bookingRepo.UpdateStatuses(ctx, id, booking.BookingStatus, booking.PaymentStatus); err != nil {
		return nil, fmt.Errorf("failed to update booking statuses: %w", err)
	}
	booking.UpdatedAt = time.Now()

	// Publish after the primary write; a publish failure is logged, not surfaced.
	event := &service.ChangeEvent{
		Type: service.EventBookingUpdated,
		Booking: &service.BookingUpdatedEvent{
			BookingID: booking.ID.String(),
			UserID:    booking.UserID.String(),
			Before:    before,
			After: service.BookingSnapshot{
				BookingStatus: string(booking.BookingStatus),
				PaymentStatus: string(booking.PaymentStatus),
			},
		},
	}
	if err := s.publisher.PublishChangeEvent(ctx, event); err != nil {
		s.logger.Error("failed to publish booking updated event",
			slog.String("booking_id", booking.ID.String()),
			slog.Any("error", err))
	}

	return booking, nil
}
