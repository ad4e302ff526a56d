// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"farmstay/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for broadcast persistence.
var (
	// ErrBroadcastNotFound is returned when a broadcast is not found.
	ErrBroadcastNotFound = errors.New("broadcast not found")
	// ErrBroadcastAlreadyProcessed is returned when a dispatcher tries to claim a
	// broadcast that has already been claimed for delivery.
	ErrBroadcastAlreadyProcessed = errors.New("broadcast already processed")
)

// BroadcastRepository defines the interface for broadcast-related database operations.
type BroadcastRepository interface {
	// CreateBroadcast persists a new admin-authored broadcast.
	CreateBroadcast(ctx context.Context, broadcast *entity.Broadcast) error

	// FindBroadcastByID retrieves a broadcast by its unique ID.
	FindBroadcastByID(ctx context.Context, id uuid.UUID) (*entity.Broadcast, error)

	// ListBroadcasts retrieves broadcasts ordered by creation time, newest first.
	ListBroadcasts(ctx context.Context, limit, offset int) ([]*entity.Broadcast, error)

	// ClaimForDelivery atomically stamps the processed marker on an unclaimed
	// broadcast. Returns ErrBroadcastAlreadyProcessed if another delivery of the
	// same event won the claim, so each triggering event produces at most one send.
	ClaimForDelivery(ctx context.Context, id uuid.UUID) error

	// MarkDelivered records a completed send attempt: notification_sent=true,
	// sent_at, and the aggregate success/failure counts.
	MarkDelivered(ctx context.Context, id uuid.UUID, successCount, failureCount int) error

	// MarkFailed records a transport- or resolution-level failure:
	// notification_sent=false and the error message.
	MarkFailed(ctx context.Context, id uuid.UUID, errorMessage string) error

	// BatchCreateDeliveryLogs persists per-device delivery outcomes in a batch.
	BatchCreateDeliveryLogs(ctx context.Context, logs []*entity.DeliveryLog) error
}
