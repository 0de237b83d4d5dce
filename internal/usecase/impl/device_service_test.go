package impl

import (
	"context"
	"testing"

	"beacon/internal/domain/constants"
	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	mockRepo "beacon/internal/mocks/repository"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewDeviceRepository().Return(deviceRepo).Maybe()

	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()

	service := NewDeviceService(deviceRepo, txManager)

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	userID := uuid.New()
	fx.deviceRepo.EXPECT().
		CreateDevice(mock.Anything, mock.MatchedBy(func(device *entity.UserDevice) bool {
			return device.UserID == userID &&
				device.Token == "fcm-token" &&
				device.Platform == constants.PlatformIOS &&
				device.IsActive
		})).
		Return(nil)

	device, err := fx.service.RegisterDevice(context.Background(), userID, &usecase.DeviceInfo{
		Token:    "fcm-token",
		Platform: constants.PlatformIOS,
	})
	require.NoError(t, err)
	assert.Equal(t, userID, device.UserID)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_InvalidPlatform(t *testing.T) {
	fx := createTestDeviceService(t)

	device, err := fx.service.RegisterDevice(context.Background(), uuid.New(), &usecase.DeviceInfo{
		Token:    "fcm-token",
		Platform: "windows",
	})
	assert.ErrorIs(t, err, ErrInvalidPlatform)
	assert.Nil(t, device)
}

func TestDeviceService_RegisterDevice_RepositoryError(t *testing.T) {
	fx := createTestDeviceService(t)

	fx.deviceRepo.EXPECT().
		CreateDevice(mock.Anything, mock.Anything).
		Return(errors.New("connection reset"))

	device, err := fx.service.RegisterDevice(context.Background(), uuid.New(), &usecase.DeviceInfo{
		Token:    "fcm-token",
		Platform: constants.PlatformAndroid,
	})
	require.Error(t, err)
	assert.Nil(t, device)
}

func TestDeviceService_GetUserDevices(t *testing.T) {
	fx := createTestDeviceService(t)

	userID := uuid.New()
	devices := []*entity.UserDevice{
		testDevice(userID, "token-a"),
		testDevice(userID, "token-b"),
	}
	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(mock.Anything, userID).
		Return(devices, nil)

	got, err := fx.service.GetUserDevices(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	userID := uuid.New()
	device := testDevice(userID, "token-a")

	fx.deviceRepo.EXPECT().
		FindDeviceByID(mock.Anything, device.ID).
		Return(device, nil)
	fx.deviceRepo.EXPECT().
		DeactivateDevice(mock.Anything, device.ID).
		Return(nil)

	err := fx.service.DeactivateDevice(context.Background(), userID, device.ID)
	require.NoError(t, err)
}

func TestDeviceService_DeactivateDevice_NotFound(t *testing.T) {
	fx := createTestDeviceService(t)

	deviceID := uuid.New()
	fx.deviceRepo.EXPECT().
		FindDeviceByID(mock.Anything, deviceID).
		Return(nil, repository.ErrDeviceNotFound)

	err := fx.service.DeactivateDevice(context.Background(), uuid.New(), deviceID)
	assert.ErrorIs(t, err, ErrDeviceNotFound)
}

func TestDeviceService_DeactivateDevice_WrongOwner(t *testing.T) {
	fx := createTestDeviceService(t)

	device := testDevice(uuid.New(), "token-a")
	fx.deviceRepo.EXPECT().
		FindDeviceByID(mock.Anything, device.ID).
		Return(device, nil)

	err := fx.service.DeactivateDevice(context.Background(), uuid.New(), device.ID)
	assert.ErrorIs(t, err, ErrDeviceUnauthorized)
}
