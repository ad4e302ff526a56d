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

// bookingRepository implements the repository.BookingRepository interface.
type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository is the constructor for bookingRepository.
func NewBookingRepository(db *gorm.DB) repository.BookingRepository {
	return &bookingRepository{
		db: db,
	}
}

// FindBookingByID retrieves a booking by its unique ID.
func (repo *bookingRepository) FindBookingByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	var bookingM model.BookingModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&bookingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to find booking by ID")
	}

	return toBookingDomain(&bookingM), nil
}

// CreateBooking persists a new booking.
func (repo *bookingRepository) CreateBooking(ctx context.Context, booking *entity.Booking) error {
	bookingM := fromBookingDomain(booking)

	if err := repo.db.WithContext(ctx).Create(bookingM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrRecordCreationFailed.WithDetails("missing required booking information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create booking")
	}

	booking.ID = bookingM.ID
	booking.CreatedAt = bookingM.CreatedAt
	booking.UpdatedAt = bookingM.UpdatedAt

	return nil
}

// UpdateStatuses sets the booking and payment status of a booking.
func (repo *bookingRepository) UpdateStatuses(ctx context.Context, id uuid.UUID, bookingStatus entity.BookingStatus, paymentStatus entity.PaymentStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BookingModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"booking_status": string(bookingStatus),
			"payment_status": string(paymentStatus),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update booking statuses")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBookingNotFound
	}

	return nil
}

// CountByBookingStatus counts bookings in the given lifecycle state.
func (repo *bookingRepository) CountByBookingStatus(ctx context.Context, status entity.BookingStatus) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.BookingModel{}).
		Where("booking_status = ?", string(status)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count bookings by status")
	}

	return count, nil
}

// --- Mapper Functions ---

// toBookingDomain converts a GORM BookingModel to a domain Booking entity.
func toBookingDomain(data *model.BookingModel) *entity.Booking {
	if data == nil {
		return nil
	}

	return &entity.Booking{
		ID:            data.ID,
		UserID:        data.UserID,
		ListingID:     data.ListingID,
		BookingStatus: entity.BookingStatus(data.BookingStatus),
		PaymentStatus: entity.PaymentStatus(data.PaymentStatus),
		CheckIn:       data.CheckIn,
		CheckOut:      data.CheckOut,
		GuestCount:    data.GuestCount,
		TotalAmount:   data.TotalAmount,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromBookingDomain converts a domain Booking entity to a GORM BookingModel.
func fromBookingDomain(booking *entity.Booking) *model.BookingModel {
	if booking == nil {
		return nil
	}

	id := booking.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &model.BookingModel{
		ID:            id,
		UserID:        booking.UserID,
		ListingID:     booking.ListingID,
		BookingStatus: string(booking.BookingStatus),
		PaymentStatus: string(booking.PaymentStatus),
		CheckIn:       booking.CheckIn,
		CheckOut:      booking.CheckOut,
		GuestCount:    booking.GuestCount,
		TotalAmount:   booking.TotalAmount,
	}
}
