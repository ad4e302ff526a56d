package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"farmstay/config"
	"farmstay/internal/domain/entity"
	mockRepo "farmstay/internal/mocks/repository"
	"farmstay/internal/usecase"

	"github.com/stretchr/testify/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPendingService(t *testing.T, pollInterval time.Duration) (
	usecase.PendingUsecase,
	*mockRepo.MockBookingRepository,
	*mockRepo.MockListingRepository,
) {
	bookingRepo := mockRepo.NewMockBookingRepository(t)
	listingRepo := mockRepo.NewMockListingRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Pending = &config.PendingConfig{PollInterval: pollInterval}

	return NewPendingService(cfg, bookingRepo, listingRepo, logger), bookingRepo, listingRepo
}

func TestPendingService_Subscribe_EmitsInitialCounts(t *testing.T) {
	svc, bookingRepo, listingRepo := createTestPendingService(t, time.Hour)

	bookingRepo.EXPECT().CountByBookingStatus(mock.Anything, entity.BookingPending).Return(int64(3), nil)
	listingRepo.EXPECT().CountPendingApproval(mock.Anything).Return(int64(1), nil)

	counts, cancel := svc.Subscribe(context.Background())
	defer cancel()

	select {
	case got := <-counts:
		assert.Equal(t, int64(3), got.PendingBookings)
		assert.Equal(t, int64(1), got.PendingListings)
	case <-time.After(time.Second):
		t.Fatal("expected an initial emission")
	}
}

func TestPendingService_Subscribe_EmitsOnlyOnChange(t *testing.T) {
	svc, bookingRepo, listingRepo := createTestPendingService(t, 10*time.Millisecond)

	// First two polls see the same counts, the third sees a change
	bookingRepo.EXPECT().CountByBookingStatus(mock.Anything, entity.BookingPending).Return(int64(2), nil).Times(2)
	listingRepo.EXPECT().CountPendingApproval(mock.Anything).Return(int64(0), nil).Times(2)
	bookingRepo.EXPECT().CountByBookingStatus(mock.Anything, entity.BookingPending).Return(int64(5), nil).Maybe()
	listingRepo.EXPECT().CountPendingApproval(mock.Anything).Return(int64(0), nil).Maybe()

	counts, cancel := svc.Subscribe(context.Background())
	defer cancel()

	first := <-counts
	assert.Equal(t, int64(2), first.PendingBookings)

	select {
	case second := <-counts:
		assert.Equal(t, int64(5), second.PendingBookings)
	case <-time.After(time.Second):
		t.Fatal("expected a second emission after the counts changed")
	}
}

func TestPendingService_Subscribe_CancelClosesChannel(t *testing.T) {
	svc, bookingRepo, listingRepo := createTestPendingService(t, time.Hour)

	bookingRepo.EXPECT().CountByBookingStatus(mock.Anything, entity.BookingPending).Return(int64(0), nil).Maybe()
	listingRepo.EXPECT().CountPendingApproval(mock.Anything).Return(int64(0), nil).Maybe()

	counts, cancel := svc.Subscribe(context.Background())
	cancel()

	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-counts:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel was not closed after cancel")
		}
	}
}

func TestPendingService_Subscribe_ContextCancellation(t *testing.T) {
	svc, bookingRepo, listingRepo := createTestPendingService(t, time.Hour)

	bookingRepo.EXPECT().CountByBookingStatus(mock.Anything, entity.BookingPending).Return(int64(0), nil).Maybe()
	listingRepo.EXPECT().CountPendingApproval(mock.Anything).Return(int64(0), nil).Maybe()

	ctx, cancelCtx := context.WithCancel(context.Background())
	counts, cancel := svc.Subscribe(ctx)
	defer cancel()

	cancelCtx()

	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-counts:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel was not closed after context cancellation")
		}
	}
}

func TestPendingService_Subscribe_PollErrorDoesNotClose(t *testing.T) {
	svc, bookingRepo, listingRepo := createTestPendingService(t, 10*time.Millisecond)

	bookingRepo.EXPECT().CountByBookingStatus(mock.Anything, entity.BookingPending).Return(int64(0), assert.AnError).Once()
	bookingRepo.EXPECT().CountByBookingStatus(mock.Anything, entity.BookingPending).Return(int64(4), nil).Maybe()
	listingRepo.EXPECT().CountPendingApproval(mock.Anything).Return(int64(2), nil).Maybe()

	counts, cancel := svc.Subscribe(context.Background())
	defer cancel()

	// The first poll fails; a later successful poll still comes through
	select {
	case got := <-counts:
		assert.Equal(t, int64(4), got.PendingBookings)
		require.Equal(t, int64(2), got.PendingListings)
	case <-time.After(time.Second):
		t.Fatal("expected an emission after the poll recovered")
	}
}
