package usecase

import (
	"context"

	"farmstay/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceUsecase defines device-token registration operations for mobile clients.
type DeviceUsecase interface {
	// RegisterDevice stores or refreshes a user's push token.
	RegisterDevice(ctx context.Context, userID uuid.UUID, fcmToken, platform string) (*entity.UserDevice, error)

	// RemoveDevice deletes a registered device. The device must belong to
	// userID; removing another account's device is a permission error.
	RemoveDevice(ctx context.Context, userID, id uuid.UUID) error
}
