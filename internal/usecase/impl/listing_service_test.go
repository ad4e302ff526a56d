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

func createTestListingService(t *testing.T) (
	usecase.ListingUsecase,
	*mockRepo.MockListingRepository,
	*mockSvc.MockEventPublisher,
) {
	listingRepo := mockRepo.NewMockListingRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewListingService(listingRepo, publisher, logger), listingRepo, publisher
}

func TestListingService_SetListingApproval_PublishesTransition(t *testing.T) {
	svc, listingRepo, publisher := createTestListingService(t)

	ctx := context.Background()
	listing := &entity.Listing{
		ID:      uuid.New(),
		OwnerID: uuid.New(),
		Name:    "Willow Farm",
	}

	listingRepo.EXPECT().FindListingByID(ctx, listing.ID).Return(listing, nil)
	listingRepo.EXPECT().SetApproval(ctx, listing.ID, true).Return(nil)
	publisher.EXPECT().
		PublishChangeEvent(ctx, mock.MatchedBy(func(event *service.ChangeEvent) bool {
			return event.Type == service.EventListingUpdated &&
				!event.Listing.ApprovedBefore &&
				event.Listing.ApprovedAfter &&
				event.Listing.ListingName == "Willow Farm" &&
				event.Listing.OwnerID == listing.OwnerID.String()
		})).
		Return(nil)

	updated, err := svc.SetListingApproval(ctx, listing.ID, true)

	require.NoError(t, err)
	assert.True(t, updated.Approved)
}

func TestListingService_SetListingApproval_ReapprovalStillPublishes(t *testing.T) {
	svc, listingRepo, publisher := createTestListingService(t)

	ctx := context.Background()
	listing := &entity.Listing{ID: uuid.New(), OwnerID: uuid.New(), Name: "Willow Farm", Approved: true}

	listingRepo.EXPECT().FindListingByID(ctx, listing.ID).Return(listing, nil)
	listingRepo.EXPECT().SetApproval(ctx, listing.ID, true).Return(nil)

	// The no-op transition is still published; the dispatcher's guard drops it
	publisher.EXPECT().
		PublishChangeEvent(ctx, mock.MatchedBy(func(event *service.ChangeEvent) bool {
			return event.Listing.ApprovedBefore && event.Listing.ApprovedAfter
		})).
		Return(nil)

	_, err := svc.SetListingApproval(ctx, listing.ID, true)

	require.NoError(t, err)
}

func TestListingService_SetListingApproval_PublishFailureNotSurfaced(t *testing.T) {
	svc, listingRepo, publisher := createTestListingService(t)

	ctx := context.Background()
	listing := &entity.Listing{ID: uuid.New(), OwnerID: uuid.New(), Name: "Willow Farm"}

	listingRepo.EXPECT().FindListingByID(ctx, listing.ID).Return(listing, nil)
	listingRepo.EXPECT().SetApproval(ctx, listing.ID, true).Return(nil)
	publisher.EXPECT().PublishChangeEvent(ctx, mock.Anything).Return(errors.New("pubsub down"))

	updated, err := svc.SetListingApproval(ctx, listing.ID, true)

	require.NoError(t, err)
	assert.True(t, updated.Approved)
}

func TestListingService_SetListingApproval_NotFound(t *testing.T) {
	svc, listingRepo, _ := createTestListingService(t)

	ctx := context.Background()
	id := uuid.New()
	listingRepo.EXPECT().FindListingByID(ctx, id).Return(nil, repository.ErrListingNotFound)

	_, err := svc.SetListingApproval(ctx, id, true)

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
