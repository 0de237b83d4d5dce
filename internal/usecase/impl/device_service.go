package impl

import (
	"context"
	"errors"
	"fmt"

	"beacon/internal/domain/constants"
	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	"beacon/internal/usecase"

	"github.com/google/uuid"
)

var (
	// ErrDeviceNotFound is returned when a device is not found
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDeviceUnauthorized is returned when a user tries to access a device they don't own
	ErrDeviceUnauthorized = errors.New("unauthorized to access this device")
	// ErrInvalidPlatform is returned when the platform is not ios or android
	ErrInvalidPlatform = errors.New("platform must be ios or android")
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	txManager  repository.TransactionManager
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository, txManager repository.TransactionManager) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
		txManager:  txManager,
	}
}

// RegisterDevice registers a device token. The repository deactivates any
// previously active token of the same (user, platform) pair, so registering
// is idempotent token replacement.
func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.UserDevice, error) {
	if deviceInfo.Platform != constants.PlatformIOS && deviceInfo.Platform != constants.PlatformAndroid {
		return nil, ErrInvalidPlatform
	}

	device := &entity.UserDevice{
		UserID:   userID,
		Token:    deviceInfo.Token,
		Platform: deviceInfo.Platform,
		IsActive: true,
	}

	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		return nil, fmt.Errorf("failed to create device: %w", err)
	}

	return device, nil
}

// GetUserDevices retrieves all active devices for a user
func (s *deviceService) GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find active devices by user: %w", err)
	}

	return devices, nil
}

// DeactivateDevice deactivates a device (soft delete). The ownership check
// and the write run in one transaction so the device cannot change hands
// between them.
func (s *deviceService) DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	return s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		deviceRepo := factory.NewDeviceRepository()

		device, err := deviceRepo.FindDeviceByID(ctx, deviceID)
		if err != nil {
			if errors.Is(err, repository.ErrDeviceNotFound) {
				return ErrDeviceNotFound
			}

			return fmt.Errorf("failed to find device by ID: %w", err)
		}

		if device.UserID != userID {
			return ErrDeviceUnauthorized
		}

		if err := deviceRepo.DeactivateDevice(ctx, deviceID); err != nil {
			return fmt.Errorf("failed to deactivate device: %w", err)
		}

		return nil
	})
}
