package impl

import (
	"context"
	"log/slog"
	"time"

	"farmstay/config"
	"farmstay/internal/domain/entity"
	"farmstay/internal/domain/repository"
	"farmstay/internal/usecase"
)

const defaultPendingPollInterval = 5 * time.Second

type pendingService struct {
	bookingRepo  repository.BookingRepository
	listingRepo  repository.ListingRepository
	pollInterval time.Duration
	logger       *slog.Logger
}

// NewPendingService creates the pending-review count stream service.
func NewPendingService(
	cfg *config.Config,
	bookingRepo repository.BookingRepository,
	listingRepo repository.ListingRepository,
	logger *slog.Logger,
) usecase.PendingUsecase {
	pollInterval := defaultPendingPollInterval
	if cfg.Pending != nil && cfg.Pending.PollInterval > 0 {
		pollInterval = cfg.Pending.PollInterval
	}

	return &pendingService{
		bookingRepo:  bookingRepo,
		listingRepo:  listingRepo,
		pollInterval: pollInterval,
		logger:       logger,
	}
}

// Subscribe emits the current pending counts immediately, then re-polls on the
// configured interval and emits only when a count changed. The stream ends when
// the cancel func runs or the context is done; the channel is closed either way
// so consumers can range over it.
func (s *pendingService) Subscribe(ctx context.Context) (<-chan usecase.PendingCounts, func()) {
	ctx, cancel := context.WithCancel(ctx)
	out := make(chan usecase.PendingCounts, 1)

	go func() {
		defer close(out)

		ticker := time.NewTicker(s.pollInterval)
		defer ticker.Stop()

		var last *usecase.PendingCounts
		for {
			counts, err := s.currentCounts(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				s.logger.Error("pending counts poll failed", slog.Any("error", err))
			} else if last == nil || *last != counts {
				select {
				case out <- counts:
					last = &counts
				case <-ctx.Done():
					return
				}
			}

			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, cancel
}

func (s *pendingService) currentCounts(ctx context.Context) (usecase.PendingCounts, error) {
	pendingBookings, err := s.bookingRepo.CountByBookingStatus(ctx, entity.BookingPending)
	if err != nil {
		return usecase.PendingCounts{}, err
	}

	pendingListings, err := s.listingRepo.CountPendingApproval(ctx)
	if err != nil {
		return usecase.PendingCounts{}, err
	}

	return usecase.PendingCounts{
		PendingBookings: pendingBookings,
		PendingListings: pendingListings,
	}, nil
}
