// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"farmstay/internal/domain/entity"
	domainerrors "farmstay/internal/domain/errors"
	"farmstay/internal/domain/repository"
	"farmstay/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// broadcastRepository implements the repository.BroadcastRepository interface.
type broadcastRepository struct {
	db *gorm.DB
}

// NewBroadcastRepository is the constructor for broadcastRepository.
func NewBroadcastRepository(db *gorm.DB) repository.BroadcastRepository {
	return &broadcastRepository{
		db: db,
	}
}

// CreateBroadcast persists a new admin-authored broadcast.
func (repo *broadcastRepository) CreateBroadcast(ctx context.Context, broadcast *entity.Broadcast) error {
	broadcastM := fromBroadcastDomain(broadcast)

	if err := repo.db.WithContext(ctx).Create(broadcastM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrRecordCreationFailed.WithDetails("missing required broadcast information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create broadcast")
	}

	broadcast.ID = broadcastM.ID
	broadcast.CreatedAt = broadcastM.CreatedAt
	broadcast.UpdatedAt = broadcastM.UpdatedAt

	return nil
}

// FindBroadcastByID retrieves a broadcast by its unique ID.
func (repo *broadcastRepository) FindBroadcastByID(ctx context.Context, id uuid.UUID) (*entity.Broadcast, error) {
	var broadcastM model.BroadcastModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&broadcastM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBroadcastNotFound
		}

		return nil, errors.Wrap(err, "failed to find broadcast by ID")
	}

	return toBroadcastDomain(&broadcastM), nil
}

// ListBroadcasts retrieves broadcasts ordered by creation time, newest first.
func (repo *broadcastRepository) ListBroadcasts(ctx context.Context, limit, offset int) ([]*entity.Broadcast, error) {
	var broadcastModels []*model.BroadcastModel

	query := repo.db.WithContext(ctx).Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&broadcastModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list broadcasts")
	}

	broadcasts := make([]*entity.Broadcast, 0, len(broadcastModels))
	for _, broadcastM := range broadcastModels {
		broadcasts = append(broadcasts, toBroadcastDomain(broadcastM))
	}

	return broadcasts, nil
}

// ClaimForDelivery atomically stamps the processed marker on an unclaimed
// broadcast. The conditional update is the idempotence gate: when two
// deliveries of the same event race, exactly one update matches a row.
func (repo *broadcastRepository) ClaimForDelivery(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BroadcastModel{}).
		Where("id = ? AND processed_at IS NULL", id).
		Update("processed_at", time.Now().UTC())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to claim broadcast for delivery")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.BroadcastModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check broadcast existence")
		}
		if count == 0 {
			return repository.ErrBroadcastNotFound
		}

		return repository.ErrBroadcastAlreadyProcessed
	}

	return nil
}

// MarkDelivered records a completed send attempt with aggregate counts.
func (repo *broadcastRepository) MarkDelivered(ctx context.Context, id uuid.UUID, successCount, failureCount int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BroadcastModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"notification_sent": true,
			"sent_at":           time.Now().UTC(),
			"success_count":     successCount,
			"failure_count":     failureCount,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark broadcast delivered")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBroadcastNotFound
	}

	return nil
}

// MarkFailed records a transport- or resolution-level failure.
func (repo *broadcastRepository) MarkFailed(ctx context.Context, id uuid.UUID, errorMessage string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BroadcastModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"notification_sent":  false,
			"sent_at":            time.Now().UTC(),
			"notification_error": errorMessage,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark broadcast failed")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBroadcastNotFound
	}

	return nil
}

// BatchCreateDeliveryLogs persists per-device delivery outcomes in a batch.
func (repo *broadcastRepository) BatchCreateDeliveryLogs(ctx context.Context, logs []*entity.DeliveryLog) error {
	if len(logs) == 0 {
		return nil
	}

	logModels := make([]*model.DeliveryLogModel, 0, len(logs))
	for _, log := range logs {
		logModels = append(logModels, fromDeliveryLogDomain(log))
	}

	// CreateInBatches keeps statement size bounded on large fan-outs
	if err := repo.db.WithContext(ctx).CreateInBatches(logModels, 100).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to batch create delivery logs")
	}

	for i, logM := range logModels {
		logs[i].ID = logM.ID
	}

	return nil
}

// --- Mapper Functions ---

// toBroadcastDomain converts a GORM BroadcastModel to a domain Broadcast entity.
func toBroadcastDomain(data *model.BroadcastModel) *entity.Broadcast {
	if data == nil {
		return nil
	}

	return &entity.Broadcast{
		ID:                data.ID,
		Selector:          entity.RecipientSelector(data.Selector),
		RecipientID:       data.RecipientID,
		Title:             data.Title,
		Body:              data.Body,
		CreatedBy:         data.CreatedBy,
		NotificationSent:  data.NotificationSent,
		SentAt:            data.SentAt,
		SuccessCount:      data.SuccessCount,
		FailureCount:      data.FailureCount,
		NotificationError: data.NotificationError,
		ProcessedAt:       data.ProcessedAt,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// fromBroadcastDomain converts a domain Broadcast entity to a GORM BroadcastModel.
func fromBroadcastDomain(broadcast *entity.Broadcast) *model.BroadcastModel {
	if broadcast == nil {
		return nil
	}

	id := broadcast.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &model.BroadcastModel{
		ID:                id,
		Selector:          string(broadcast.Selector),
		RecipientID:       broadcast.RecipientID,
		Title:             broadcast.Title,
		Body:              broadcast.Body,
		CreatedBy:         broadcast.CreatedBy,
		NotificationSent:  broadcast.NotificationSent,
		SentAt:            broadcast.SentAt,
		SuccessCount:      broadcast.SuccessCount,
		FailureCount:      broadcast.FailureCount,
		NotificationError: broadcast.NotificationError,
		ProcessedAt:       broadcast.ProcessedAt,
	}
}

// fromDeliveryLogDomain converts a domain DeliveryLog entity to a GORM DeliveryLogModel.
func fromDeliveryLogDomain(log *entity.DeliveryLog) *model.DeliveryLogModel {
	if log == nil {
		return nil
	}

	id := log.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	sentAt := log.SentAt
	if sentAt.IsZero() {
		sentAt = time.Now().UTC()
	}

	return &model.DeliveryLogModel{
		ID:           id,
		BroadcastID:  log.BroadcastID,
		UserID:       log.UserID,
		DeviceID:     log.DeviceID,
		Status:       log.Status,
		ErrorMessage: log.ErrorMessage,
		SentAt:       sentAt,
	}
}
