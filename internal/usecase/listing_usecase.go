package usecase

import (
	"context"

	"farmstay/internal/domain/entity"

	"github.com/google/uuid"
)

// ListingUsecase defines the admin-facing listing operations.
type ListingUsecase interface {
	// SetListingApproval flips the approval flag and publishes the before/after
	// change event for async dispatch. Publish failure is logged, never surfaced.
	SetListingApproval(ctx context.Context, id uuid.UUID, approved bool) (*entity.Listing, error)
}
