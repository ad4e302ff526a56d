package postgres

import (
	"context"
	"testing"

	"farmstay/internal/domain/entity"
	"farmstay/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDevice(userID uuid.UUID, token, platform string) *entity.UserDevice {
	return &entity.UserDevice{
		ID:       uuid.New(),
		UserID:   userID,
		FCMToken: token,
		Platform: platform,
		IsActive: true,
	}
}

func TestDeviceRepository_UpsertReplacesToken(t *testing.T) {
	repo := NewDeviceRepository(setupTestDB(t))
	ctx := context.Background()
	userID := uuid.New()

	first := newTestDevice(userID, "token-old", "android")
	require.NoError(t, repo.UpsertDevice(ctx, first))

	// Same user/platform pair replaces the token instead of duplicating the row
	second := newTestDevice(userID, "token-new", "android")
	require.NoError(t, repo.UpsertDevice(ctx, second))

	devices, err := repo.FindActiveDevicesByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, "token-new", devices[0].FCMToken)
}

func TestDeviceRepository_UpsertReactivates(t *testing.T) {
	repo := NewDeviceRepository(setupTestDB(t))
	ctx := context.Background()
	userID := uuid.New()

	device := newTestDevice(userID, "token-a", "ios")
	require.NoError(t, repo.UpsertDevice(ctx, device))
	require.NoError(t, repo.DeactivateDevice(ctx, device.ID))

	// Re-registering the same platform brings the device back
	require.NoError(t, repo.UpsertDevice(ctx, newTestDevice(userID, "token-b", "ios")))

	devices, err := repo.FindActiveDevicesByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, "token-b", devices[0].FCMToken)
}

func TestDeviceRepository_FindActiveDevicesForUsers(t *testing.T) {
	repo := NewDeviceRepository(setupTestDB(t))
	ctx := context.Background()

	userA := uuid.New()
	userB := uuid.New()
	userC := uuid.New()

	require.NoError(t, repo.UpsertDevice(ctx, newTestDevice(userA, "token-a", "android")))
	require.NoError(t, repo.UpsertDevice(ctx, newTestDevice(userB, "token-b", "ios")))

	inactive := newTestDevice(userC, "token-c", "android")
	require.NoError(t, repo.UpsertDevice(ctx, inactive))
	require.NoError(t, repo.DeactivateDevice(ctx, inactive.ID))

	devices, err := repo.FindActiveDevicesForUsers(ctx, []uuid.UUID{userA, userB, userC})
	require.NoError(t, err)
	require.Len(t, devices, 2)

	tokens := []string{devices[0].FCMToken, devices[1].FCMToken}
	assert.ElementsMatch(t, []string{"token-a", "token-b"}, tokens)

	// Empty user set short-circuits without touching the database
	none, err := repo.FindActiveDevicesForUsers(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDeviceRepository_FindDeviceByID(t *testing.T) {
	repo := NewDeviceRepository(setupTestDB(t))
	ctx := context.Background()
	userID := uuid.New()

	device := newTestDevice(userID, "token-find", "ios")
	require.NoError(t, repo.UpsertDevice(ctx, device))

	found, err := repo.FindDeviceByID(ctx, device.ID)
	require.NoError(t, err)
	assert.Equal(t, userID, found.UserID)
	assert.Equal(t, "token-find", found.FCMToken)

	_, err = repo.FindDeviceByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)
}

func TestDeviceRepository_DeactivateMissing(t *testing.T) {
	repo := NewDeviceRepository(setupTestDB(t))

	err := repo.DeactivateDevice(context.Background(), uuid.New())

	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)
}

func TestDeviceRepository_DeleteDevice(t *testing.T) {
	repo := NewDeviceRepository(setupTestDB(t))
	ctx := context.Background()
	userID := uuid.New()

	device := newTestDevice(userID, "token-x", "android")
	require.NoError(t, repo.UpsertDevice(ctx, device))
	require.NoError(t, repo.DeleteDevice(ctx, device.ID))

	devices, err := repo.FindActiveDevicesByUser(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, devices)

	assert.ErrorIs(t, repo.DeleteDevice(ctx, device.ID), repository.ErrDeviceNotFound)
}
