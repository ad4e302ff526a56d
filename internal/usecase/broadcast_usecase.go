package usecase

import (
	"context"

	"farmstay/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateBroadcastInput carries the admin-authored fields of a new broadcast.
type CreateBroadcastInput struct {
	Selector    entity.RecipientSelector `json:"selector"`
	RecipientID *uuid.UUID               `json:"recipient_id,omitempty"`
	Title       string                   `json:"title"`
	Body        string                   `json:"body"`
}

// BroadcastUsecase defines the admin-facing broadcast operations.
type BroadcastUsecase interface {
	// CreateBroadcast persists a broadcast and publishes its creation event for
	// async dispatch. Publish failure is logged, never surfaced: the primary
	// write must not be blocked by the notification side effect.
	CreateBroadcast(ctx context.Context, createdBy uuid.UUID, input CreateBroadcastInput) (*entity.Broadcast, error)

	// ListBroadcasts returns the communication history, newest first.
	ListBroadcasts(ctx context.Context, limit, offset int) ([]*entity.Broadcast, error)
}
