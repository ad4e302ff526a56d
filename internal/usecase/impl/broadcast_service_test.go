package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"farmstay/internal/domain/entity"
	domainerrors "farmstay/internal/domain/errors"
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

func createTestBroadcastService(t *testing.T) (
	usecase.BroadcastUsecase,
	*mockRepo.MockBroadcastRepository,
	*mockSvc.MockEventPublisher,
) {
	broadcastRepo := mockRepo.NewMockBroadcastRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewBroadcastService(broadcastRepo, publisher, logger), broadcastRepo, publisher
}

func TestBroadcastService_CreateBroadcast_Success(t *testing.T) {
	svc, broadcastRepo, publisher := createTestBroadcastService(t)

	ctx := context.Background()
	adminID := uuid.New()

	broadcastRepo.EXPECT().CreateBroadcast(ctx, mock.Anything).Return(nil)
	publisher.EXPECT().
		PublishChangeEvent(ctx, mock.MatchedBy(func(event *service.ChangeEvent) bool {
			return event.Type == service.EventBroadcastCreated && event.Broadcast != nil
		})).
		Return(nil)

	broadcast, err := svc.CreateBroadcast(ctx, adminID, usecase.CreateBroadcastInput{
		Selector: entity.SelectorActiveUsersOnly,
		Title:    "Holiday Discount",
		Body:     "All farmhouses 20% off",
	})

	require.NoError(t, err)
	assert.Equal(t, adminID, broadcast.CreatedBy)
	assert.Nil(t, broadcast.ProcessedAt)
	assert.Nil(t, broadcast.NotificationSent)
}

func TestBroadcastService_CreateBroadcast_PublishFailureNotSurfaced(t *testing.T) {
	svc, broadcastRepo, publisher := createTestBroadcastService(t)

	ctx := context.Background()

	broadcastRepo.EXPECT().CreateBroadcast(ctx, mock.Anything).Return(nil)
	publisher.EXPECT().
		PublishChangeEvent(ctx, mock.Anything).
		Return(errors.New("pubsub unreachable"))

	// The primary write already committed; the caller still gets a success
	broadcast, err := svc.CreateBroadcast(ctx, uuid.New(), usecase.CreateBroadcastInput{
		Selector: entity.SelectorAllUsers,
		Title:    "Hello",
		Body:     "World",
	})

	require.NoError(t, err)
	assert.NotNil(t, broadcast)
}

func TestBroadcastService_CreateBroadcast_InvalidSelector(t *testing.T) {
	svc, _, _ := createTestBroadcastService(t)

	_, err := svc.CreateBroadcast(context.Background(), uuid.New(), usecase.CreateBroadcastInput{
		Selector: "everybody",
		Title:    "Hello",
		Body:     "World",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestBroadcastService_CreateBroadcast_SpecificUserRequiresRecipient(t *testing.T) {
	svc, _, _ := createTestBroadcastService(t)

	_, err := svc.CreateBroadcast(context.Background(), uuid.New(), usecase.CreateBroadcastInput{
		Selector: entity.SelectorSpecificUser,
		Title:    "Hello",
		Body:     "World",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestBroadcastService_CreateBroadcast_MissingContent(t *testing.T) {
	svc, _, _ := createTestBroadcastService(t)

	_, err := svc.CreateBroadcast(context.Background(), uuid.New(), usecase.CreateBroadcastInput{
		Selector: entity.SelectorAllUsers,
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestBroadcastService_CreateBroadcast_RepoError(t *testing.T) {
	svc, broadcastRepo, _ := createTestBroadcastService(t)

	ctx := context.Background()
	broadcastRepo.EXPECT().CreateBroadcast(ctx, mock.Anything).Return(errors.New("insert failed"))

	_, err := svc.CreateBroadcast(ctx, uuid.New(), usecase.CreateBroadcastInput{
		Selector: entity.SelectorAllUsers,
		Title:    "Hello",
		Body:     "World",
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create broadcast")
}

func TestBroadcastService_ListBroadcasts_DefaultsApplied(t *testing.T) {
	svc, broadcastRepo, _ := createTestBroadcastService(t)

	ctx := context.Background()
	expected := []*entity.Broadcast{{ID: uuid.New()}}

	broadcastRepo.EXPECT().ListBroadcasts(ctx, defaultHistoryLimit, 0).Return(expected, nil)

	got, err := svc.ListBroadcasts(ctx, 0, -5)

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestBroadcastService_ListBroadcasts_LimitCapped(t *testing.T) {
	svc, broadcastRepo, _ := createTestBroadcastService(t)

	ctx := context.Background()
	broadcastRepo.EXPECT().ListBroadcasts(ctx, maxHistoryLimit, 10).Return(nil, nil)

	_, err := svc.ListBroadcasts(ctx, 1000, 10)

	require.NoError(t, err)
}
