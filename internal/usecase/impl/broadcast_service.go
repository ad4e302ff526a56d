package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"farmstay/internal/domain/entity"
	domainerrors "farmstay/internal/domain/errors"
	"farmstay/internal/domain/repository"
	"farmstay/internal/domain/service"
	"farmstay/internal/usecase"

	"github.com/google/uuid"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type broadcastService struct {
	broadcastRepo repository.BroadcastRepository
	publisher     service.EventPublisher
	logger        *slog.Logger
}

// NewBroadcastService creates a new broadcast service instance.
func NewBroadcastService(
	broadcastRepo repository.BroadcastRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.BroadcastUsecase {
	return &broadcastService{
		broadcastRepo: broadcastRepo,
		publisher:     publisher,
		logger:        logger,
	}
}

// CreateBroadcast persists a broadcast and publishes its creation event. The
// record is the source of truth; the event only carries the ID and the
// dispatcher re-reads the rest.
func (s *broadcastService) CreateBroadcast(ctx context.Context, createdBy uuid.UUID, input usecase.CreateBroadcastInput) (*entity.Broadcast, error) {
	if !input.Selector.IsValid() {
		return nil, domainerrors.ErrInvalidArgument.WithDetails(fmt.Sprintf("unknown recipient selector %q", input.Selector))
	}
	if input.Selector == entity.SelectorSpecificUser && input.RecipientID == nil {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("recipient_id is required for the specific_user selector")
	}
	if input.Title == "" || input.Body == "" {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("title and body are required")
	}

	broadcast := &entity.Broadcast{
		ID:          uuid.New(),
		Selector:    input.Selector,
		RecipientID: input.RecipientID,
		Title:       input.Title,
		Body:        input.Body,
		CreatedBy:   createdBy,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.broadcastRepo.CreateBroadcast(ctx, broadcast); err != nil {
		return nil, fmt.Errorf("failed to create broadcast: %w", err)
	}

	// The primary write has committed; a publish failure must not undo it.
	// The broadcast stays unprocessed and can be re-published by an operator.
	event := &service.ChangeEvent{
		Type:      service.EventBroadcastCreated,
		Broadcast: &service.BroadcastCreatedEvent{BroadcastID: broadcast.ID.String()},
	}
	if err := s.publisher.PublishChangeEvent(ctx, event); err != nil {
		s.logger.Error("failed to publish broadcast created event",
			slog.String("broadcast_id", broadcast.ID.String()),
			slog.Any("error", err))
	}

	return broadcast, nil
}

// ListBroadcasts returns the communication history, newest first.
func (s *broadcastService) ListBroadcasts(ctx context.Context, limit, offset int) ([]*entity.Broadcast, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}

	broadcasts, err := s.broadcastRepo.ListBroadcasts(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list broadcasts: %w", err)
	}

	return broadcasts, nil
}
