package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"farmstay/config"
	"farmstay/internal/domain/entity"
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

func createTestDispatchService(t *testing.T, batchSize int) (
	usecase.DispatchUsecase,
	*mockRepo.MockBroadcastRepository,
	*mockRepo.MockUserRepository,
	*mockRepo.MockDeviceRepository,
	*mockSvc.MockPushService,
) {
	broadcastRepo := mockRepo.NewMockBroadcastRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	pushSvc := mockSvc.NewMockPushService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Dispatch = &config.DispatchConfig{BatchSize: batchSize}

	svc := NewDispatchService(cfg, broadcastRepo, userRepo, deviceRepo, pushSvc, logger)

	return svc, broadcastRepo, userRepo, deviceRepo, pushSvc
}

func unprocessedBroadcast(selector entity.RecipientSelector) *entity.Broadcast {
	return &entity.Broadcast{
		ID:        uuid.New(),
		Selector:  selector,
		Title:     "Holiday Discount",
		Body:      "All farmhouses 20% off this weekend",
		CreatedBy: uuid.New(),
	}
}

func TestDispatchService_DispatchBroadcast_Success(t *testing.T) {
	svc, broadcastRepo, userRepo, deviceRepo, pushSvc := createTestDispatchService(t, 500)

	ctx := context.Background()
	broadcast := unprocessedBroadcast(entity.SelectorAllUsers)
	user1 := &entity.User{ID: uuid.New(), Role: entity.RoleUser, IsActive: true}
	user2 := &entity.User{ID: uuid.New(), Role: entity.RoleOwner, IsActive: true}

	broadcastRepo.EXPECT().FindBroadcastByID(ctx, broadcast.ID).Return(broadcast, nil)
	broadcastRepo.EXPECT().ClaimForDelivery(ctx, broadcast.ID).Return(nil)

	userRepo.EXPECT().
		FindBySelector(ctx, entity.SelectorAllUsers, mock.Anything).
		Return([]*entity.User{user1, user2}, nil)

	deviceRepo.EXPECT().
		FindActiveDevicesForUsers(ctx, []uuid.UUID{user1.ID, user2.ID}).
		Return([]*entity.UserDevice{
			{ID: uuid.New(), UserID: user1.ID, FCMToken: "token-1"},
			{ID: uuid.New(), UserID: user2.ID, FCMToken: "token-2"},
		}, nil)

	pushSvc.EXPECT().
		SendBatch(ctx, []string{"token-1", "token-2"}, broadcast.Title, broadcast.Body,
			map[string]string{"communication_id": broadcast.ID.String(), "type": "general"}).
		Return(2, 0, nil, nil)

	broadcastRepo.EXPECT().
		BatchCreateDeliveryLogs(ctx, mock.MatchedBy(func(logs []*entity.DeliveryLog) bool {
			return len(logs) == 2 && logs[0].Status == "sent" && logs[1].Status == "sent"
		})).
		Return(nil)
	broadcastRepo.EXPECT().MarkDelivered(ctx, broadcast.ID, 2, 0).Return(nil)

	err := svc.DispatchBroadcast(ctx, &service.BroadcastCreatedEvent{BroadcastID: broadcast.ID.String()})

	require.NoError(t, err)
}

func TestDispatchService_DispatchBroadcast_AlreadyProcessed(t *testing.T) {
	svc, broadcastRepo, _, _, _ := createTestDispatchService(t, 500)

	ctx := context.Background()
	broadcast := unprocessedBroadcast(entity.SelectorAllUsers)
	processedAt := broadcast.CreatedAt
	broadcast.ProcessedAt = &processedAt

	broadcastRepo.EXPECT().FindBroadcastByID(ctx, broadcast.ID).Return(broadcast, nil)

	// No claim, no send, no write-back
	err := svc.DispatchBroadcast(ctx, &service.BroadcastCreatedEvent{BroadcastID: broadcast.ID.String()})

	require.NoError(t, err)
}

func TestDispatchService_DispatchBroadcast_ClaimLost(t *testing.T) {
	svc, broadcastRepo, _, _, _ := createTestDispatchService(t, 500)

	ctx := context.Background()
	broadcast := unprocessedBroadcast(entity.SelectorAllUsers)

	broadcastRepo.EXPECT().FindBroadcastByID(ctx, broadcast.ID).Return(broadcast, nil)
	broadcastRepo.EXPECT().
		ClaimForDelivery(ctx, broadcast.ID).
		Return(repository.ErrBroadcastAlreadyProcessed)

	// A concurrent delivery won the claim; this one must not send
	err := svc.DispatchBroadcast(ctx, &service.BroadcastCreatedEvent{BroadcastID: broadcast.ID.String()})

	require.NoError(t, err)
}

func TestDispatchService_DispatchBroadcast_LoadErrorIsRetryable(t *testing.T) {
	svc, broadcastRepo, _, _, _ := createTestDispatchService(t, 500)

	ctx := context.Background()
	id := uuid.New()

	broadcastRepo.EXPECT().FindBroadcastByID(ctx, id).Return(nil, errors.New("db down"))

	err := svc.DispatchBroadcast(ctx, &service.BroadcastCreatedEvent{BroadcastID: id.String()})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load broadcast")
}

func TestDispatchService_DispatchBroadcast_RecordMissing(t *testing.T) {
	svc, broadcastRepo, _, _, _ := createTestDispatchService(t, 500)

	ctx := context.Background()
	id := uuid.New()

	broadcastRepo.EXPECT().FindBroadcastByID(ctx, id).Return(nil, repository.ErrBroadcastNotFound)

	// Deleted record is terminal, not retryable
	err := svc.DispatchBroadcast(ctx, &service.BroadcastCreatedEvent{BroadcastID: id.String()})

	require.NoError(t, err)
}

func TestDispatchService_DispatchBroadcast_Batching(t *testing.T) {
	svc, broadcastRepo, userRepo, deviceRepo, pushSvc := createTestDispatchService(t, 2)

	ctx := context.Background()
	broadcast := unprocessedBroadcast(entity.SelectorActiveUsersOnly)

	users := make([]*entity.User, 5)
	devices := make([]*entity.UserDevice, 5)
	userIDs := make([]uuid.UUID, 5)
	for i := range users {
		users[i] = &entity.User{ID: uuid.New(), IsActive: true}
		userIDs[i] = users[i].ID
		devices[i] = &entity.UserDevice{ID: uuid.New(), UserID: users[i].ID, FCMToken: string(rune('a' + i))}
	}

	broadcastRepo.EXPECT().FindBroadcastByID(ctx, broadcast.ID).Return(broadcast, nil)
	broadcastRepo.EXPECT().ClaimForDelivery(ctx, broadcast.ID).Return(nil)
	userRepo.EXPECT().
		FindBySelector(ctx, entity.SelectorActiveUsersOnly, mock.Anything).
		Return(users, nil)
	deviceRepo.EXPECT().FindActiveDevicesForUsers(ctx, userIDs).Return(devices, nil)

	// 5 tokens with a batch size of 2 gives batches of 2, 2, 1
	pushSvc.EXPECT().
		SendBatch(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == 2 }), broadcast.Title, broadcast.Body, mock.Anything).
		Return(2, 0, nil, nil).
		Times(2)
	pushSvc.EXPECT().
		SendBatch(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == 1 }), broadcast.Title, broadcast.Body, mock.Anything).
		Return(1, 0, nil, nil).
		Once()

	broadcastRepo.EXPECT().BatchCreateDeliveryLogs(ctx, mock.Anything).Return(nil)
	broadcastRepo.EXPECT().MarkDelivered(ctx, broadcast.ID, 5, 0).Return(nil)

	err := svc.DispatchBroadcast(ctx, &service.BroadcastCreatedEvent{BroadcastID: broadcast.ID.String()})

	require.NoError(t, err)
}

func TestDispatchService_DispatchBroadcast_ZeroRecipients(t *testing.T) {
	svc, broadcastRepo, userRepo, _, _ := createTestDispatchService(t, 500)

	ctx := context.Background()
	broadcast := unprocessedBroadcast(entity.SelectorAllOwners)

	broadcastRepo.EXPECT().FindBroadcastByID(ctx, broadcast.ID).Return(broadcast, nil)
	broadcastRepo.EXPECT().ClaimForDelivery(ctx, broadcast.ID).Return(nil)
	userRepo.EXPECT().
		FindBySelector(ctx, entity.SelectorAllOwners, mock.Anything).
		Return([]*entity.User{}, nil)
	broadcastRepo.EXPECT().MarkDelivered(ctx, broadcast.ID, 0, 0).Return(nil)

	err := svc.DispatchBroadcast(ctx, &service.BroadcastCreatedEvent{BroadcastID: broadcast.ID.String()})

	require.NoError(t, err)
}

func TestDispatchService_DispatchBroadcast_TokenlessRecipients(t *testing.T) {
	svc, broadcastRepo, userRepo, deviceRepo, _ := createTestDispatchService(t, 500)

	ctx := context.Background()
	broadcast := unprocessedBroadcast(entity.SelectorAllUsers)
	user := &entity.User{ID: uuid.New(), IsActive: true}

	broadcastRepo.EXPECT().FindBroadcastByID(ctx, broadcast.ID).Return(broadcast, nil)
	broadcastRepo.EXPECT().ClaimForDelivery(ctx, broadcast.ID).Return(nil)
	userRepo.EXPECT().
		FindBySelector(ctx, entity.SelectorAllUsers, mock.Anything).
		Return([]*entity.User{user}, nil)
	deviceRepo.EXPECT().
		FindActiveDevicesForUsers(ctx, []uuid.UUID{user.ID}).
		Return([]*entity.UserDevice{}, nil)

	// Recipients without tokens count toward neither success nor failure
	broadcastRepo.EXPECT().MarkDelivered(ctx, broadcast.ID, 0, 0).Return(nil)

	err := svc.DispatchBroadcast(ctx, &service.BroadcastCreatedEvent{BroadcastID: broadcast.ID.String()})

	require.NoError(t, err)
}

func TestDispatchService_DispatchBroadcast_ResolutionFailure(t *testing.T) {
	svc, broadcastRepo, userRepo, _, _ := createTestDispatchService(t, 500)

	ctx := context.Background()
	broadcast := unprocessedBroadcast(entity.SelectorSpecificUser)

	broadcastRepo.EXPECT().FindBroadcastByID(ctx, broadcast.ID).Return(broadcast, nil)
	broadcastRepo.EXPECT().ClaimForDelivery(ctx, broadcast.ID).Return(nil)
	userRepo.EXPECT().
		FindBySelector(ctx, entity.SelectorSpecificUser, mock.Anything).
		Return(nil, errors.New("query failed"))

	// Post-claim failures are terminal: written to the record, not returned
	broadcastRepo.EXPECT().
		MarkFailed(ctx, broadcast.ID, mock.MatchedBy(func(msg string) bool {
			return assert.Contains(t, msg, "recipient resolution failed")
		})).
		Return(nil)

	err := svc.DispatchBroadcast(ctx, &service.BroadcastCreatedEvent{BroadcastID: broadcast.ID.String()})

	require.NoError(t, err)
}

func TestDispatchService_DispatchBroadcast_TransportFailure(t *testing.T) {
	svc, broadcastRepo, userRepo, deviceRepo, pushSvc := createTestDispatchService(t, 500)

	ctx := context.Background()
	broadcast := unprocessedBroadcast(entity.SelectorAllUsers)
	user := &entity.User{ID: uuid.New(), IsActive: true}
	device := &entity.UserDevice{ID: uuid.New(), UserID: user.ID, FCMToken: "token-1"}

	broadcastRepo.EXPECT().FindBroadcastByID(ctx, broadcast.ID).Return(broadcast, nil)
	broadcastRepo.EXPECT().ClaimForDelivery(ctx, broadcast.ID).Return(nil)
	userRepo.EXPECT().
		FindBySelector(ctx, entity.SelectorAllUsers, mock.Anything).
		Return([]*entity.User{user}, nil)
	deviceRepo.EXPECT().
		FindActiveDevicesForUsers(ctx, []uuid.UUID{user.ID}).
		Return([]*entity.UserDevice{device}, nil)

	pushSvc.EXPECT().
		SendBatch(ctx, []string{"token-1"}, broadcast.Title, broadcast.Body, mock.Anything).
		Return(0, 0, nil, errors.New("firebase unavailable"))

	broadcastRepo.EXPECT().
		BatchCreateDeliveryLogs(ctx, mock.MatchedBy(func(logs []*entity.DeliveryLog) bool {
			return len(logs) == 1 && logs[0].Status == "failed"
		})).
		Return(nil)
	broadcastRepo.EXPECT().MarkFailed(ctx, broadcast.ID, "firebase unavailable").Return(nil)

	err := svc.DispatchBroadcast(ctx, &service.BroadcastCreatedEvent{BroadcastID: broadcast.ID.String()})

	require.NoError(t, err)
}

func TestDispatchService_DispatchBroadcast_InvalidTokensDeactivated(t *testing.T) {
	svc, broadcastRepo, userRepo, deviceRepo, pushSvc := createTestDispatchService(t, 500)

	ctx := context.Background()
	broadcast := unprocessedBroadcast(entity.SelectorAllUsers)
	user := &entity.User{ID: uuid.New(), IsActive: true}
	goodDevice := &entity.UserDevice{ID: uuid.New(), UserID: user.ID, FCMToken: "good-token"}
	badDevice := &entity.UserDevice{ID: uuid.New(), UserID: user.ID, FCMToken: "bad-token"}

	broadcastRepo.EXPECT().FindBroadcastByID(ctx, broadcast.ID).Return(broadcast, nil)
	broadcastRepo.EXPECT().ClaimForDelivery(ctx, broadcast.ID).Return(nil)
	userRepo.EXPECT().
		FindBySelector(ctx, entity.SelectorAllUsers, mock.Anything).
		Return([]*entity.User{user}, nil)
	deviceRepo.EXPECT().
		FindActiveDevicesForUsers(ctx, []uuid.UUID{user.ID}).
		Return([]*entity.UserDevice{goodDevice, badDevice}, nil)

	pushSvc.EXPECT().
		SendBatch(ctx, []string{"good-token", "bad-token"}, broadcast.Title, broadcast.Body, mock.Anything).
		Return(1, 1, []string{"bad-token"}, nil)

	broadcastRepo.EXPECT().
		BatchCreateDeliveryLogs(ctx, mock.MatchedBy(func(logs []*entity.DeliveryLog) bool {
			if len(logs) != 2 {
				return false
			}
			byDevice := map[uuid.UUID]string{}
			for _, l := range logs {
				byDevice[l.DeviceID] = l.Status
			}
			return byDevice[goodDevice.ID] == "sent" && byDevice[badDevice.ID] == "failed"
		})).
		Return(nil)
	deviceRepo.EXPECT().DeactivateDevice(ctx, badDevice.ID).Return(nil)
	broadcastRepo.EXPECT().MarkDelivered(ctx, broadcast.ID, 1, 1).Return(nil)

	err := svc.DispatchBroadcast(ctx, &service.BroadcastCreatedEvent{BroadcastID: broadcast.ID.String()})

	require.NoError(t, err)
}

func TestDispatchService_DispatchBookingChange_NoStatusChange(t *testing.T) {
	svc, _, _, _, _ := createTestDispatchService(t, 500)

	snapshot := service.BookingSnapshot{BookingStatus: "confirmed", PaymentStatus: "paid"}
	err := svc.DispatchBookingChange(context.Background(), &service.BookingUpdatedEvent{
		BookingID: uuid.New().String(),
		UserID:    uuid.New().String(),
		Before:    snapshot,
		After:     snapshot,
	})

	require.NoError(t, err)
}

func TestDispatchService_DispatchBookingChange_BookingStatusWins(t *testing.T) {
	svc, _, _, deviceRepo, pushSvc := createTestDispatchService(t, 500)

	ctx := context.Background()
	bookingID := uuid.New()
	userID := uuid.New()
	device := &entity.UserDevice{ID: uuid.New(), UserID: userID, FCMToken: "guest-token"}

	deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{device}, nil)

	// Both statuses changed in one update; only the booking-status message goes out
	pushSvc.EXPECT().
		SendBatch(ctx, []string{"guest-token"}, "Booking Confirmed", mock.Anything,
			map[string]string{
				"booking_id":     bookingID.String(),
				"type":           "booking_update",
				"booking_status": "confirmed",
				"payment_status": "paid",
			}).
		Return(1, 0, nil, nil)

	err := svc.DispatchBookingChange(ctx, &service.BookingUpdatedEvent{
		BookingID: bookingID.String(),
		UserID:    userID.String(),
		Before:    service.BookingSnapshot{BookingStatus: "pending", PaymentStatus: "pending"},
		After:     service.BookingSnapshot{BookingStatus: "confirmed", PaymentStatus: "paid"},
	})

	require.NoError(t, err)
}

func TestDispatchService_DispatchBookingChange_PaymentOnly(t *testing.T) {
	svc, _, _, deviceRepo, pushSvc := createTestDispatchService(t, 500)

	ctx := context.Background()
	userID := uuid.New()
	device := &entity.UserDevice{ID: uuid.New(), UserID: userID, FCMToken: "guest-token"}

	deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{device}, nil)

	pushSvc.EXPECT().
		SendBatch(ctx, []string{"guest-token"}, "Payment Failed", mock.Anything, mock.Anything).
		Return(1, 0, nil, nil)

	err := svc.DispatchBookingChange(ctx, &service.BookingUpdatedEvent{
		BookingID: uuid.New().String(),
		UserID:    userID.String(),
		Before:    service.BookingSnapshot{BookingStatus: "confirmed", PaymentStatus: "pending"},
		After:     service.BookingSnapshot{BookingStatus: "confirmed", PaymentStatus: "failed"},
	})

	require.NoError(t, err)
}

func TestDispatchService_DispatchBookingChange_UnknownStatusSkipped(t *testing.T) {
	svc, _, _, _, _ := createTestDispatchService(t, 500)

	// No message table entry for transitioning back to pending
	err := svc.DispatchBookingChange(context.Background(), &service.BookingUpdatedEvent{
		BookingID: uuid.New().String(),
		UserID:    uuid.New().String(),
		Before:    service.BookingSnapshot{BookingStatus: "confirmed", PaymentStatus: "paid"},
		After:     service.BookingSnapshot{BookingStatus: "pending", PaymentStatus: "paid"},
	})

	require.NoError(t, err)
}

func TestDispatchService_DispatchBookingChange_TransportErrorDropped(t *testing.T) {
	svc, _, _, deviceRepo, pushSvc := createTestDispatchService(t, 500)

	ctx := context.Background()
	userID := uuid.New()
	device := &entity.UserDevice{ID: uuid.New(), UserID: userID, FCMToken: "guest-token"}

	deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{device}, nil)
	pushSvc.EXPECT().
		SendBatch(ctx, []string{"guest-token"}, "Booking Cancelled", mock.Anything, mock.Anything).
		Return(0, 0, nil, errors.New("firebase unavailable"))

	// Fire and forget: the transport error is logged, never propagated
	err := svc.DispatchBookingChange(ctx, &service.BookingUpdatedEvent{
		BookingID: uuid.New().String(),
		UserID:    userID.String(),
		Before:    service.BookingSnapshot{BookingStatus: "confirmed", PaymentStatus: "paid"},
		After:     service.BookingSnapshot{BookingStatus: "cancelled", PaymentStatus: "paid"},
	})

	require.NoError(t, err)
}

func TestDispatchService_DispatchListingChange_ApprovalUnchanged(t *testing.T) {
	svc, _, _, _, _ := createTestDispatchService(t, 500)

	err := svc.DispatchListingChange(context.Background(), &service.ListingUpdatedEvent{
		ListingID:      uuid.New().String(),
		OwnerID:        uuid.New().String(),
		ListingName:    "Willow Farm",
		ApprovedBefore: true,
		ApprovedAfter:  true,
	})

	require.NoError(t, err)
}

func TestDispatchService_DispatchListingChange_Approved(t *testing.T) {
	svc, _, _, deviceRepo, pushSvc := createTestDispatchService(t, 500)

	ctx := context.Background()
	listingID := uuid.New()
	ownerID := uuid.New()
	device := &entity.UserDevice{ID: uuid.New(), UserID: ownerID, FCMToken: "owner-token"}

	deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, ownerID).
		Return([]*entity.UserDevice{device}, nil)

	pushSvc.EXPECT().
		SendBatch(ctx, []string{"owner-token"}, "Listing Approved",
			mock.MatchedBy(func(body string) bool {
				return assert.Contains(t, body, "Willow Farm")
			}),
			map[string]string{
				"listing_id": listingID.String(),
				"type":       "listing_update",
				"approved":   "true",
			}).
		Return(1, 0, nil, nil)

	err := svc.DispatchListingChange(ctx, &service.ListingUpdatedEvent{
		ListingID:      listingID.String(),
		OwnerID:        ownerID.String(),
		ListingName:    "Willow Farm",
		ApprovedBefore: false,
		ApprovedAfter:  true,
	})

	require.NoError(t, err)
}

func TestDispatchService_DispatchListingChange_Revoked(t *testing.T) {
	svc, _, _, deviceRepo, pushSvc := createTestDispatchService(t, 500)

	ctx := context.Background()
	ownerID := uuid.New()
	device := &entity.UserDevice{ID: uuid.New(), UserID: ownerID, FCMToken: "owner-token"}

	deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, ownerID).
		Return([]*entity.UserDevice{device}, nil)
	pushSvc.EXPECT().
		SendBatch(ctx, []string{"owner-token"}, "Listing Status Updated", mock.Anything, mock.Anything).
		Return(1, 0, nil, nil)

	err := svc.DispatchListingChange(ctx, &service.ListingUpdatedEvent{
		ListingID:      uuid.New().String(),
		OwnerID:        ownerID.String(),
		ListingName:    "Willow Farm",
		ApprovedBefore: true,
		ApprovedAfter:  false,
	})

	require.NoError(t, err)
}

func TestDispatchService_DispatchListingChange_OwnerWithoutDevices(t *testing.T) {
	svc, _, _, deviceRepo, _ := createTestDispatchService(t, 500)

	ctx := context.Background()
	ownerID := uuid.New()

	deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, ownerID).
		Return([]*entity.UserDevice{}, nil)

	err := svc.DispatchListingChange(ctx, &service.ListingUpdatedEvent{
		ListingID:      uuid.New().String(),
		OwnerID:        ownerID.String(),
		ListingName:    "Willow Farm",
		ApprovedBefore: false,
		ApprovedAfter:  true,
	})

	require.NoError(t, err)
}

func TestDispatchService_NilPushTransport(t *testing.T) {
	broadcastRepo := mockRepo.NewMockBroadcastRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := NewDispatchService(&config.Config{}, broadcastRepo, userRepo, deviceRepo, nil, logger)

	ctx := context.Background()

	// No expectations are registered on any mock: the dispatcher must bail out
	// before the claim and before any lookup, leaving the event redeliverable.
	err := svc.DispatchBroadcast(ctx, &service.BroadcastCreatedEvent{BroadcastID: uuid.New().String()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "push transport is not configured")

	err = svc.DispatchListingChange(ctx, &service.ListingUpdatedEvent{
		ListingID:      uuid.New().String(),
		OwnerID:        uuid.New().String(),
		ListingName:    "Willow Farm",
		ApprovedBefore: false,
		ApprovedAfter:  true,
	})
	require.Error(t, err)

	err = svc.DispatchBookingChange(ctx, &service.BookingUpdatedEvent{
		BookingID: uuid.New().String(),
		UserID:    uuid.New().String(),
		Before:    service.BookingSnapshot{BookingStatus: "pending", PaymentStatus: "pending"},
		After:     service.BookingSnapshot{BookingStatus: "confirmed", PaymentStatus: "pending"},
	})
	require.Error(t, err)
}
