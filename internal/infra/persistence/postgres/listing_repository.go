// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"farmstay/internal/domain/entity"
	domainerrors "farmstay/internal/domain/errors"
	"farmstay/internal/domain/repository"
	"farmstay/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// listingRepository implements the repository.ListingRepository interface.
type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(db *gorm.DB) repository.ListingRepository {
	return &listingRepository{
		db: db,
	}
}

// FindListingByID retrieves a listing by its unique ID.
func (repo *listingRepository) FindListingByID(ctx context.Context, id uuid.UUID) (*entity.Listing, error) {
	var listingM model.ListingModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&listingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing by ID")
	}

	return toListingDomain(&listingM), nil
}

// CreateListing persists a new listing.
func (repo *listingRepository) CreateListing(ctx context.Context, listing *entity.Listing) error {
	listingM := fromListingDomain(listing)

	if err := repo.db.WithContext(ctx).Create(listingM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrRecordCreationFailed.WithDetails("missing required listing information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create listing")
	}

	listing.ID = listingM.ID
	listing.CreatedAt = listingM.CreatedAt
	listing.UpdatedAt = listingM.UpdatedAt

	return nil
}

// SetApproval sets the approval flag of a listing.
func (repo *listingRepository) SetApproval(ctx context.Context, id uuid.UUID, approved bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("id = ?", id).
		Update("approved", approved)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set listing approval")
	}

	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// CountPendingApproval counts listings awaiting admin approval.
func (repo *listingRepository) CountPendingApproval(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Where("approved = ?", false).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count pending listings")
	}

	return count, nil
}

// --- Mapper Functions ---

// toListingDomain converts a GORM ListingModel to a domain Listing entity.
func toListingDomain(data *model.ListingModel) *entity.Listing {
	if data == nil {
		return nil
	}

	return &entity.Listing{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Name:      data.Name,
		Location:  data.Location,
		Approved:  data.Approved,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromListingDomain converts a domain Listing entity to a GORM ListingModel.
func fromListingDomain(listing *entity.Listing) *model.ListingModel {
	if listing == nil {
		return nil
	}

	id := listing.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &model.ListingModel{
		ID:       id,
		OwnerID:  listing.OwnerID,
		Name:     listing.Name,
		Location: listing.Location,
		Approved: listing.Approved,
	}
}
