package impl

import (
	"context"
	"testing"

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

type alertServiceFixtures struct {
	service   usecase.AlertUsecase
	alertRepo *mockRepo.MockAlertRepository
}

func createTestAlertService(t *testing.T) alertServiceFixtures {
	alertRepo := mockRepo.NewMockAlertRepository(t)
	service := NewAlertService(alertRepo)

	return alertServiceFixtures{
		service:   service,
		alertRepo: alertRepo,
	}
}

func TestAlertService_ListAlerts(t *testing.T) {
	fx := createTestAlertService(t)

	userID := uuid.New()
	alerts := []*entity.Alert{
		pendingAlert(userID, uuid.New(), entity.SubjectCampaign, entity.AlertKindDeadlineD1),
	}
	fx.alertRepo.EXPECT().
		FindVisibleByUser(mock.Anything, userID, 20, 40).
		Return(alerts, nil)

	got, err := fx.service.ListAlerts(context.Background(), userID, 20, 40)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestAlertService_ListAlerts_DefaultsPagination(t *testing.T) {
	fx := createTestAlertService(t)

	userID := uuid.New()
	fx.alertRepo.EXPECT().
		FindVisibleByUser(mock.Anything, userID, defaultAlertPageSize, 0).
		Return(nil, nil)

	got, err := fx.service.ListAlerts(context.Background(), userID, 0, -5)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAlertService_MarkAlertRead(t *testing.T) {
	fx := createTestAlertService(t)

	userID := uuid.New()
	alertID := uuid.New()
	fx.alertRepo.EXPECT().
		MarkRead(mock.Anything, userID, alertID).
		Return(nil)

	err := fx.service.MarkAlertRead(context.Background(), userID, alertID)
	require.NoError(t, err)
}

func TestAlertService_MarkAlertRead_NotFound(t *testing.T) {
	fx := createTestAlertService(t)

	userID := uuid.New()
	alertID := uuid.New()
	fx.alertRepo.EXPECT().
		MarkRead(mock.Anything, userID, alertID).
		Return(repository.ErrAlertNotFound)

	err := fx.service.MarkAlertRead(context.Background(), userID, alertID)
	assert.ErrorIs(t, err, ErrAlertNotFound)
}

func TestAlertService_HideAlert(t *testing.T) {
	fx := createTestAlertService(t)

	userID := uuid.New()
	alertID := uuid.New()
	fx.alertRepo.EXPECT().
		Hide(mock.Anything, userID, alertID).
		Return(nil)

	err := fx.service.HideAlert(context.Background(), userID, alertID)
	require.NoError(t, err)
}

func TestAlertService_HideAlert_NotFound(t *testing.T) {
	fx := createTestAlertService(t)

	userID := uuid.New()
	alertID := uuid.New()
	fx.alertRepo.EXPECT().
		Hide(mock.Anything, userID, alertID).
		Return(repository.ErrAlertNotFound)

	err := fx.service.HideAlert(context.Background(), userID, alertID)
	assert.ErrorIs(t, err, ErrAlertNotFound)
}

func TestAlertService_ClearAlerts(t *testing.T) {
	fx := createTestAlertService(t)

	userID := uuid.New()
	fx.alertRepo.EXPECT().
		DeleteByUser(mock.Anything, userID).
		Return(nil)

	err := fx.service.ClearAlerts(context.Background(), userID)
	require.NoError(t, err)
}

func TestAlertService_ClearAlerts_RepositoryError(t *testing.T) {
	fx := createTestAlertService(t)

	userID := uuid.New()
	fx.alertRepo.EXPECT().
		DeleteByUser(mock.Anything, userID).
		Return(errors.New("connection reset"))

	err := fx.service.ClearAlerts(context.Background(), userID)
	require.Error(t, err)
}
