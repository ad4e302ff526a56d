// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"farmstay/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrListingNotFound is returned when a listing is not found.
var ErrListingNotFound = errors.New("listing not found")

// ListingRepository defines the interface for listing-related database operations.
type ListingRepository interface {
	// FindListingByID retrieves a listing by its unique ID.
	FindListingByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error)

	// CreateListing persists a new listing.
	CreateListing(ctx context.Context, listing *entity.Listing) error

	// SetApproval sets the approval flag of a listing.
	SetApproval(ctx context.Context, id uuid.UUID, approved bool) error

	// CountPendingApproval counts listings awaiting admin approval.
	CountPendingApproval(ctx context.Context) (int64, error)
}
