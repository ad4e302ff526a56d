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

type listingService struct {
	listingRepo repository.ListingRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// NewListingService creates a new listing service instance.
func NewListingService(
	listingRepo repository.ListingRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.ListingUsecase {
	return &listingService{
		listingRepo: listingRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

// SetListingApproval flips the approval flag and publishes the before/after
// change event. Re-approving an already approved listing still publishes, and
// the dispatcher's guard drops it.
func (s *listingService) SetListingApproval(ctx context.Context, id uuid.UUID, approved bool) (*entity.Listing, error) {
	listing, err := s.listingRepo.FindListingByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, domainerrors.ErrNotFound.WithDetails("listing not found")
		}

		return nil, fmt.Errorf("failed to find listing: %w", err)
	}

	approvedBefore := listing.Approved

	if err := s.listingRepo.SetApproval(ctx, id, approved); err != nil {
		return nil, fmt.Errorf("failed to set listing approval: %w", err)
	}
	listing.Approved = approved
	listing.UpdatedAt = time.Now()

	event := &service.ChangeEvent{
		Type: service.EventListingUpdated,
		Listing: &service.ListingUpdatedEvent{
			ListingID:      listing.ID.String(),
			OwnerID:        listing.OwnerID.String(),
			ListingName:    listing.Name,
			ApprovedBefore: approvedBefore,
			ApprovedAfter:  approved,
		},
	}
	if err := s.publisher.PublishChangeEvent(ctx, event); err != nil {
		s.logger.Error("failed to publish listing updated event",
			slog.String("listing_id", listing.ID.String()),
			slog.Any("error", err))
	}

	return listing, nil
}
