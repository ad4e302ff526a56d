package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"farmstay/internal/domain/entity"
	domainerrors "farmstay/internal/domain/errors"
	"farmstay/internal/domain/repository"
	"farmstay/internal/usecase"

	"github.com/google/uuid"
)

var validPlatforms = map[string]struct{}{
	"ios":     {},
	"android": {},
}

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device service instance.
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
	}
}

// RegisterDevice stores or refreshes a user's push token. One active token is
// kept per user/platform pair; registering again replaces the previous one.
func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, fcmToken, platform string) (*entity.UserDevice, error) {
	if fcmToken == "" {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("fcm_token is required")
	}
	if _, ok := validPlatforms[platform]; !ok {
		return nil, domainerrors.ErrInvalidArgument.WithDetails(fmt.Sprintf("unknown platform %q", platform))
	}

	device := &entity.UserDevice{
		ID:        uuid.New(),
		UserID:    userID,
		FCMToken:  fcmToken,
		Platform:  platform,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.deviceRepo.UpsertDevice(ctx, device); err != nil {
		return nil, fmt.Errorf("failed to upsert device: %w", err)
	}

	return device, nil
}

// RemoveDevice deletes a registered device after checking it belongs to the
// calling user, so one account cannot silence another account's pushes.
func (s *deviceService) RemoveDevice(ctx context.Context, userID, id uuid.UUID) error {
	device, err := s.deviceRepo.FindDeviceByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrNotFound.WithDetails("device not found")
		}

		return fmt.Errorf("failed to find device: %w", err)
	}

	if device.UserID != userID {
		return domainerrors.ErrPermissionDenied.WithDetails("device belongs to another user")
	}

	if err := s.deviceRepo.DeleteDevice(ctx, id); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrNotFound.WithDetails("device not found")
		}

		return fmt.Errorf("failed to delete device: %w", err)
	}

	return nil
}
