package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "farmstay/internal/domain/errors"
	mockSvc "farmstay/internal/mocks/service"
	"farmstay/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (usecase.NotificationUsecase, *mockSvc.MockPushService) {
	pushSvc := mockSvc.NewMockPushService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewNotificationService(pushSvc, logger), pushSvc
}

func adminCaller() usecase.Caller {
	return usecase.Caller{UserID: uuid.New(), Roles: []string{"admin"}, Authenticated: true}
}

func validManualInput() usecase.ManualSendInput {
	return usecase.ManualSendInput{
		Title:  "Maintenance Notice",
		Body:   "The app will be down tonight",
		Tokens: []string{"token-1", "token-2"},
	}
}

func TestNotificationService_SendManual_Success(t *testing.T) {
	svc, pushSvc := createTestNotificationService(t)

	ctx := context.Background()
	input := validManualInput()

	pushSvc.EXPECT().
		SendBatch(ctx, input.Tokens, input.Title, input.Body, input.Data).
		Return(2, 0, nil, nil)

	result, err := svc.SendManual(ctx, adminCaller(), input)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.SentCount)
	assert.Equal(t, 0, result.FailedCount)
}

func TestNotificationService_SendManual_PartialFailure(t *testing.T) {
	svc, pushSvc := createTestNotificationService(t)

	ctx := context.Background()
	input := validManualInput()

	pushSvc.EXPECT().
		SendBatch(ctx, input.Tokens, input.Title, input.Body, input.Data).
		Return(1, 1, []string{"token-2"}, nil)

	result, err := svc.SendManual(ctx, adminCaller(), input)

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, 1, result.SentCount)
	assert.Equal(t, 1, result.FailedCount)
}

func TestNotificationService_SendManual_Unauthenticated(t *testing.T) {
	svc, _ := createTestNotificationService(t)

	_, err := svc.SendManual(context.Background(), usecase.Caller{}, validManualInput())

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestNotificationService_SendManual_NonAdmin(t *testing.T) {
	svc, _ := createTestNotificationService(t)

	caller := usecase.Caller{UserID: uuid.New(), Roles: []string{"owner"}, Authenticated: true}

	// Authorization is checked before validation: even a valid payload from a
	// non-admin gets the permission error, not a validation error
	_, err := svc.SendManual(context.Background(), caller, validManualInput())

	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestNotificationService_SendManual_NonAdminWithBadPayload(t *testing.T) {
	svc, _ := createTestNotificationService(t)

	caller := usecase.Caller{UserID: uuid.New(), Roles: []string{"user"}, Authenticated: true}

	_, err := svc.SendManual(context.Background(), caller, usecase.ManualSendInput{})

	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestNotificationService_SendManual_MissingFields(t *testing.T) {
	svc, _ := createTestNotificationService(t)

	input := validManualInput()
	input.Body = ""

	_, err := svc.SendManual(context.Background(), adminCaller(), input)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestNotificationService_SendManual_NoTokens(t *testing.T) {
	svc, _ := createTestNotificationService(t)

	input := validManualInput()
	input.Tokens = nil

	_, err := svc.SendManual(context.Background(), adminCaller(), input)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestNotificationService_SendManual_TooManyTokens(t *testing.T) {
	svc, _ := createTestNotificationService(t)

	input := validManualInput()
	input.Tokens = make([]string, maxManualTokens+1)
	for i := range input.Tokens {
		input.Tokens[i] = "t"
	}

	_, err := svc.SendManual(context.Background(), adminCaller(), input)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestNotificationService_SendManual_TransportUnavailable(t *testing.T) {
	svc, pushSvc := createTestNotificationService(t)

	ctx := context.Background()
	input := validManualInput()

	pushSvc.EXPECT().
		SendBatch(ctx, input.Tokens, input.Title, input.Body, input.Data).
		Return(0, 0, nil, errors.New("firebase unavailable"))

	result, err := svc.SendManual(ctx, adminCaller(), input)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrPushUnavailable)
}
