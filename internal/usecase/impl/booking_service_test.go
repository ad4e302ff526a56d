package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"farmstay/internal/domain/entity"
	domainerrors "farmstay/internal/domain/errors"
	"farmstay/internal/domain/repository"
	"farmstay/internal/domain/service"
	mockRepo "farmstay/internal/mocks/repository"
	mockSvc "farmstay/internal/mocks/service"
	"farmstay/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestBookingService(t *testing.T) (
	usecase.BookingUsecase,
	*mockRepo.MockBookingRepository,
	*mockSvc.MockEventPublisher,
) {
	bookingRepo := mockRepo.NewMockBookingRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewBookingService(bookingRepo, publisher, logger), bookingRepo, publisher
}

func statusPtr(s entity.BookingStatus) *entity.BookingStatus { return &s }

func paymentPtr(s entity.PaymentStatus) *entity.PaymentStatus { return &s }

func TestBookingService_UpdateBookingStatus_PublishesBeforeAfter(t *testing.T) {
	svc, bookingRepo, publisher := createTestBookingService(t)

	ctx := context.Background()
	booking := &entity.Booking{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		BookingStatus: entity.BookingPending,
		PaymentStatus: entity.PaymentPending,
	}

	bookingRepo.EXPECT().FindBookingByID(ctx, booking.ID).Return(booking, nil)
	bookingRepo.EXPECT().
		UpdateStatuses(ctx, booking.ID, entity.BookingConfirmed, entity.PaymentPending).
		Return(nil)

	publisher.EXPECT().
		PublishChangeEvent(ctx, mock.MatchedBy(func(event *service.ChangeEvent) bool {
			return event.Type == service.EventBookingUpdated &&
				event.Booking.Before.BookingStatus == "pending" &&
				event.Booking.After.BookingStatus == "confirmed" &&
				event.Booking.UserID == booking.UserID.String()
		})).
		Return(nil)

	updated, err := svc.UpdateBookingStatus(ctx, booking.ID, usecase.UpdateBookingStatusInput{
		BookingStatus: statusPtr(entity.BookingConfirmed),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.BookingConfirmed, updated.BookingStatus)
	assert.Equal(t, entity.PaymentPending, updated.PaymentStatus)
}

func TestBookingService_UpdateBookingStatus_PublishFailureNotSurfaced(t *testing.T) {
	svc, bookingRepo, publisher := createTestBookingService(t)

	ctx := context.Background()
	booking := &entity.Booking{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		BookingStatus: entity.BookingConfirmed,
		PaymentStatus: entity.PaymentPending,
	}

	bookingRepo.EXPECT().FindBookingByID(ctx, booking.ID).Return(booking, nil)
	bookingRepo.EXPECT().
		UpdateStatuses(ctx, booking.ID, entity.BookingConfirmed, entity.PaymentPaid).
		Return(nil)
	publisher.EXPECT().PublishChangeEvent(ctx, mock.Anything).Return(errors.New("pubsub down"))

	updated, err := svc.UpdateBookingStatus(ctx, booking.ID, usecase.UpdateBookingStatusInput{
		PaymentStatus: paymentPtr(entity.PaymentPaid),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPaid, updated.PaymentStatus)
}

func TestBookingService_UpdateBookingStatus_NoFields(t *testing.T) {
	svc, _, _ := createTestBookingService(t)

	_, err := svc.UpdateBookingStatus(context.Background(), uuid.New(), usecase.UpdateBookingStatusInput{})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestBookingService_UpdateBookingStatus_InvalidStatus(t *testing.T) {
	svc, _, _ := createTestBookingService(t)

	bad := entity.BookingStatus("teleported")
	_, err := svc.UpdateBookingStatus(context.Background(), uuid.New(), usecase.UpdateBookingStatusInput{
		BookingStatus: &bad,
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestBookingService_UpdateBookingStatus_NotFound(t *testing.T) {
	svc, bookingRepo, _ := createTestBookingService(t)

	ctx := context.Background()
	id := uuid.New()
	bookingRepo.EXPECT().FindBookingByID(ctx, id).Return(nil, repository.ErrBookingNotFound)

	_, err := svc.UpdateBookingStatus(ctx, id, usecase.UpdateBookingStatusInput{
		BookingStatus: statusPtr(entity.BookingCancelled),
	})

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
