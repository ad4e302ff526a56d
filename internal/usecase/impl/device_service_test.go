package impl

import (
	"context"
	"testing"

	"farmstay/internal/domain/entity"
	domainerrors "farmstay/internal/domain/errors"
	"farmstay/internal/domain/repository"
	mockRepo "farmstay/internal/mocks/repository"
	"farmstay/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDeviceService(t *testing.T) (usecase.DeviceUsecase, *mockRepo.MockDeviceRepository) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	return NewDeviceService(deviceRepo), deviceRepo
}

func TestDeviceService_RegisterDevice_Success(t *testing.T) {
	svc, deviceRepo := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	deviceRepo.EXPECT().UpsertDevice(ctx, mock.Anything).Return(nil)

	device, err := svc.RegisterDevice(ctx, userID, "fcm-token-abc", "android")

	require.NoError(t, err)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, "fcm-token-abc", device.FCMToken)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_MissingToken(t *testing.T) {
	svc, _ := createTestDeviceService(t)

	_, err := svc.RegisterDevice(context.Background(), uuid.New(), "", "ios")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestDeviceService_RegisterDevice_UnknownPlatform(t *testing.T) {
	svc, _ := createTestDeviceService(t)

	_, err := svc.RegisterDevice(context.Background(), uuid.New(), "fcm-token", "blackberry")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestDeviceService_RemoveDevice_Success(t *testing.T) {
	svc, deviceRepo := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	id := uuid.New()
	deviceRepo.EXPECT().
		FindDeviceByID(ctx, id).
		Return(&entity.UserDevice{ID: id, UserID: userID, FCMToken: "fcm-token"}, nil)
	deviceRepo.EXPECT().DeleteDevice(ctx, id).Return(nil)

	require.NoError(t, svc.RemoveDevice(ctx, userID, id))
}

func TestDeviceService_RemoveDevice_OtherUsersDevice(t *testing.T) {
	svc, deviceRepo := createTestDeviceService(t)

	ctx := context.Background()
	owner := uuid.New()
	caller := uuid.New()
	id := uuid.New()

	// Ownership is checked before deletion: DeleteDevice is never expected, so
	// the mock would fail the test if the service reached it.
	deviceRepo.EXPECT().
		FindDeviceByID(ctx, id).
		Return(&entity.UserDevice{ID: id, UserID: owner, FCMToken: "fcm-token"}, nil)

	err := svc.RemoveDevice(ctx, caller, id)

	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
}

func TestDeviceService_RemoveDevice_NotFound(t *testing.T) {
	svc, deviceRepo := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	id := uuid.New()
	deviceRepo.EXPECT().FindDeviceByID(ctx, id).Return(nil, repository.ErrDeviceNotFound)

	err := svc.RemoveDevice(ctx, userID, id)

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestDeviceService_RemoveDevice_RepoError(t *testing.T) {
	svc, deviceRepo := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	id := uuid.New()
	deviceRepo.EXPECT().
		FindDeviceByID(ctx, id).
		Return(&entity.UserDevice{ID: id, UserID: userID, FCMToken: "fcm-token"}, nil)
	deviceRepo.EXPECT().DeleteDevice(ctx, id).Return(errors.New("db down"))

	err := svc.RemoveDevice(ctx, userID, id)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete device")
}
