package postgres

import (
	"context"
	"testing"
	"time"

	"farmstay/internal/domain/entity"
	"farmstay/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBroadcast() *entity.Broadcast {
	return &entity.Broadcast{
		ID:        uuid.New(),
		Selector:  entity.SelectorAllUsers,
		Title:     "Maintenance window",
		Body:      "The marketplace will be briefly unavailable tonight.",
		CreatedBy: uuid.New(),
	}
}

func TestBroadcastRepository_CreateAndFind(t *testing.T) {
	repo := NewBroadcastRepository(setupTestDB(t))
	ctx := context.Background()

	broadcast := newTestBroadcast()
	require.NoError(t, repo.CreateBroadcast(ctx, broadcast))

	found, err := repo.FindBroadcastByID(ctx, broadcast.ID)
	require.NoError(t, err)
	assert.Equal(t, broadcast.Title, found.Title)
	assert.Equal(t, entity.SelectorAllUsers, found.Selector)
	assert.Nil(t, found.NotificationSent)
	assert.Nil(t, found.ProcessedAt)
	assert.False(t, found.Processed())
}

func TestBroadcastRepository_FindMissing(t *testing.T) {
	repo := NewBroadcastRepository(setupTestDB(t))

	_, err := repo.FindBroadcastByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, repository.ErrBroadcastNotFound)
}

func TestBroadcastRepository_ClaimForDelivery(t *testing.T) {
	repo := NewBroadcastRepository(setupTestDB(t))
	ctx := context.Background()

	broadcast := newTestBroadcast()
	require.NoError(t, repo.CreateBroadcast(ctx, broadcast))

	// First claim wins
	require.NoError(t, repo.ClaimForDelivery(ctx, broadcast.ID))

	// Second claim of the same broadcast loses
	err := repo.ClaimForDelivery(ctx, broadcast.ID)
	assert.ErrorIs(t, err, repository.ErrBroadcastAlreadyProcessed)

	found, err := repo.FindBroadcastByID(ctx, broadcast.ID)
	require.NoError(t, err)
	assert.True(t, found.Processed())
}

func TestBroadcastRepository_ClaimMissing(t *testing.T) {
	repo := NewBroadcastRepository(setupTestDB(t))

	err := repo.ClaimForDelivery(context.Background(), uuid.New())

	assert.ErrorIs(t, err, repository.ErrBroadcastNotFound)
}

func TestBroadcastRepository_MarkDelivered(t *testing.T) {
	repo := NewBroadcastRepository(setupTestDB(t))
	ctx := context.Background()

	broadcast := newTestBroadcast()
	require.NoError(t, repo.CreateBroadcast(ctx, broadcast))
	require.NoError(t, repo.ClaimForDelivery(ctx, broadcast.ID))

	require.NoError(t, repo.MarkDelivered(ctx, broadcast.ID, 7, 2))

	found, err := repo.FindBroadcastByID(ctx, broadcast.ID)
	require.NoError(t, err)
	require.NotNil(t, found.NotificationSent)
	assert.True(t, *found.NotificationSent)
	assert.NotNil(t, found.SentAt)
	assert.Equal(t, 7, found.SuccessCount)
	assert.Equal(t, 2, found.FailureCount)
	assert.Empty(t, found.NotificationError)
}

func TestBroadcastRepository_MarkFailed(t *testing.T) {
	repo := NewBroadcastRepository(setupTestDB(t))
	ctx := context.Background()

	broadcast := newTestBroadcast()
	require.NoError(t, repo.CreateBroadcast(ctx, broadcast))
	require.NoError(t, repo.ClaimForDelivery(ctx, broadcast.ID))

	require.NoError(t, repo.MarkFailed(ctx, broadcast.ID, "firebase unavailable"))

	found, err := repo.FindBroadcastByID(ctx, broadcast.ID)
	require.NoError(t, err)
	require.NotNil(t, found.NotificationSent)
	assert.False(t, *found.NotificationSent)
	assert.Equal(t, "firebase unavailable", found.NotificationError)
}

func TestBroadcastRepository_ListNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBroadcastRepository(db)
	ctx := context.Background()

	older := newTestBroadcast()
	older.Title = "older"
	require.NoError(t, repo.CreateBroadcast(ctx, older))

	newer := newTestBroadcast()
	newer.Title = "newer"
	require.NoError(t, repo.CreateBroadcast(ctx, newer))

	// Separate the creation timestamps explicitly; sqlite timestamps within a
	// single test run can collide
	require.NoError(t, db.Table("broadcasts").Where("id = ?", older.ID).
		Update("created_at", time.Now().Add(-time.Hour)).Error)

	broadcasts, err := repo.ListBroadcasts(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, broadcasts, 2)
	assert.Equal(t, "newer", broadcasts[0].Title)
	assert.Equal(t, "older", broadcasts[1].Title)

	// Pagination
	page, err := repo.ListBroadcasts(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "older", page[0].Title)
}

func TestBroadcastRepository_BatchCreateDeliveryLogs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBroadcastRepository(db)
	ctx := context.Background()

	broadcast := newTestBroadcast()
	require.NoError(t, repo.CreateBroadcast(ctx, broadcast))

	logs := []*entity.DeliveryLog{
		{BroadcastID: broadcast.ID, UserID: uuid.New(), DeviceID: uuid.New(), Status: "sent"},
		{BroadcastID: broadcast.ID, UserID: uuid.New(), DeviceID: uuid.New(), Status: "failed", ErrorMessage: "invalid token"},
	}
	require.NoError(t, repo.BatchCreateDeliveryLogs(ctx, logs))

	for _, log := range logs {
		assert.NotEqual(t, uuid.Nil, log.ID)
	}

	var count int64
	require.NoError(t, db.Table("delivery_logs").Where("broadcast_id = ?", broadcast.ID).Count(&count).Error)
	assert.Equal(t, int64(2), count)

	// Empty batch is a no-op
	require.NoError(t, repo.BatchCreateDeliveryLogs(ctx, nil))
}
