package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/service"
	"beacon/internal/infra/metrics"
	mockRepo "beacon/internal/mocks/repository"
	mockSvc "beacon/internal/mocks/service"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// dispatcherFixtures holds all test dependencies for dispatcher tests.
type dispatcherFixtures struct {
	dispatcher usecase.Dispatcher
	provider   *mockSvc.MockPushProvider
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDispatcher(t *testing.T, batchSize int) dispatcherFixtures {
	provider := mockSvc.NewMockPushProvider(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	m := metrics.NewMetricsWith(prometheus.NewRegistry(), "test")
	dispatcher := NewDispatcher(provider, deviceRepo, m, slog.Default(), batchSize, time.Second)

	return dispatcherFixtures{
		dispatcher: dispatcher,
		provider:   provider,
		deviceRepo: deviceRepo,
	}
}

func testDevice(userID uuid.UUID, token string) *entity.UserDevice {
	return &entity.UserDevice{
		ID:       uuid.New(),
		UserID:   userID,
		Token:    token,
		Platform: "ios",
		IsActive: true,
	}
}

func TestDispatcher_SendToMany_PartialSuccess(t *testing.T) {
	fx := createTestDispatcher(t, 500)

	ctx := context.Background()
	userA := uuid.New()
	userB := uuid.New()
	userC := uuid.New()

	devices := []*entity.UserDevice{
		testDevice(userA, "token-a"),
		testDevice(userB, "token-b"),
		testDevice(userC, "token-c"),
	}
	payload := &service.PushPayload{Title: "title", Body: "body"}

	fx.provider.EXPECT().
		SendBatch(mock.Anything, []string{"token-a", "token-b", "token-c"}, payload).
		Return([]service.RecipientResult{
			{Token: "token-a", OK: false, Kind: service.ErrorKindInvalidToken},
			{Token: "token-b", OK: true},
			{Token: "token-c", OK: false, Kind: service.ErrorKindTransient},
		}, nil)

	fx.deviceRepo.EXPECT().
		TouchLastUsed(mock.Anything, "token-b").
		Return(nil)

	fx.deviceRepo.EXPECT().
		DeactivateByToken(mock.Anything, "token-a").
		Return(nil)

	result, err := fx.dispatcher.SendToMany(ctx, devices, payload)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 2, result.Failed)
	assert.Equal(t, []uuid.UUID{userB}, result.SucceededUserIDs)
	assert.Equal(t, []string{"token-a"}, result.InvalidTokens)
}

func TestDispatcher_SendToMany_ChunksToBatchLimit(t *testing.T) {
	fx := createTestDispatcher(t, 2)

	ctx := context.Background()
	devices := []*entity.UserDevice{
		testDevice(uuid.New(), "token-1"),
		testDevice(uuid.New(), "token-2"),
		testDevice(uuid.New(), "token-3"),
	}
	payload := &service.PushPayload{Title: "title", Body: "body"}

	fx.provider.EXPECT().
		SendBatch(mock.Anything, []string{"token-1", "token-2"}, payload).
		Return([]service.RecipientResult{
			{Token: "token-1", OK: true},
			{Token: "token-2", OK: true},
		}, nil)

	fx.provider.EXPECT().
		SendBatch(mock.Anything, []string{"token-3"}, payload).
		Return([]service.RecipientResult{
			{Token: "token-3", OK: true},
		}, nil)

	fx.deviceRepo.EXPECT().
		TouchLastUsed(mock.Anything, mock.AnythingOfType("string")).
		Return(nil).
		Times(3)

	result, err := fx.dispatcher.SendToMany(ctx, devices, payload)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Sent)
	assert.Equal(t, 0, result.Failed)
	assert.Len(t, result.SucceededUserIDs, 3)
	assert.Empty(t, result.InvalidTokens)
}

func TestDispatcher_SendToMany_RejectedChunkDoesNotAbortRest(t *testing.T) {
	fx := createTestDispatcher(t, 2)

	ctx := context.Background()
	userOK := uuid.New()
	devices := []*entity.UserDevice{
		testDevice(uuid.New(), "token-1"),
		testDevice(uuid.New(), "token-2"),
		testDevice(userOK, "token-3"),
	}
	payload := &service.PushPayload{Title: "title", Body: "body"}

	fx.provider.EXPECT().
		SendBatch(mock.Anything, []string{"token-1", "token-2"}, payload).
		Return(nil, errors.New("provider unavailable"))

	fx.provider.EXPECT().
		SendBatch(mock.Anything, []string{"token-3"}, payload).
		Return([]service.RecipientResult{
			{Token: "token-3", OK: true},
		}, nil)

	fx.deviceRepo.EXPECT().
		TouchLastUsed(mock.Anything, "token-3").
		Return(nil)

	result, err := fx.dispatcher.SendToMany(ctx, devices, payload)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 2, result.Failed)
	assert.Equal(t, []uuid.UUID{userOK}, result.SucceededUserIDs)
}

func TestDispatcher_SendToMany_DuplicateUserDeduplicated(t *testing.T) {
	fx := createTestDispatcher(t, 500)

	ctx := context.Background()
	userID := uuid.New()
	devices := []*entity.UserDevice{
		testDevice(userID, "token-phone"),
		testDevice(userID, "token-tablet"),
	}
	payload := &service.PushPayload{Title: "title", Body: "body"}

	fx.provider.EXPECT().
		SendBatch(mock.Anything, []string{"token-phone", "token-tablet"}, payload).
		Return([]service.RecipientResult{
			{Token: "token-phone", OK: true},
			{Token: "token-tablet", OK: true},
		}, nil)

	fx.deviceRepo.EXPECT().
		TouchLastUsed(mock.Anything, mock.AnythingOfType("string")).
		Return(nil).
		Times(2)

	result, err := fx.dispatcher.SendToMany(ctx, devices, payload)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Sent)
	assert.Equal(t, []uuid.UUID{userID}, result.SucceededUserIDs)
}

func TestDispatcher_SendToMany_EmptyDevices(t *testing.T) {
	fx := createTestDispatcher(t, 500)

	result, err := fx.dispatcher.SendToMany(context.Background(), nil, &service.PushPayload{})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Sent)
	assert.Equal(t, 0, result.Failed)
	assert.Empty(t, result.SucceededUserIDs)
}

func TestDispatcher_SendToOne_Success(t *testing.T) {
	fx := createTestDispatcher(t, 500)

	device := testDevice(uuid.New(), "token-a")
	payload := &service.PushPayload{Title: "title", Body: "body"}

	fx.provider.EXPECT().
		SendOne(mock.Anything, "token-a", payload).
		Return(true, service.ErrorKindNone, nil)

	fx.deviceRepo.EXPECT().
		TouchLastUsed(mock.Anything, "token-a").
		Return(nil)

	ok, err := fx.dispatcher.SendToOne(context.Background(), device, payload)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDispatcher_SendToOne_InvalidTokenDeactivates(t *testing.T) {
	fx := createTestDispatcher(t, 500)

	device := testDevice(uuid.New(), "token-dead")
	payload := &service.PushPayload{Title: "title", Body: "body"}

	fx.provider.EXPECT().
		SendOne(mock.Anything, "token-dead", payload).
		Return(false, service.ErrorKindInvalidToken, errors.New("unregistered"))

	fx.deviceRepo.EXPECT().
		DeactivateByToken(mock.Anything, "token-dead").
		Return(nil)

	ok, err := fx.dispatcher.SendToOne(context.Background(), device, payload)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDispatcher_SendToOne_TransientFailureReturnsError(t *testing.T) {
	fx := createTestDispatcher(t, 500)

	device := testDevice(uuid.New(), "token-a")
	payload := &service.PushPayload{Title: "title", Body: "body"}

	fx.provider.EXPECT().
		SendOne(mock.Anything, "token-a", payload).
		Return(false, service.ErrorKindTransient, errors.New("timeout"))

	ok, err := fx.dispatcher.SendToOne(context.Background(), device, payload)
	require.Error(t, err)
	assert.False(t, ok)
}
