package impl

import (
	"context"
	"log/slog"
	"testing"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/service"
	mockRepo "beacon/internal/mocks/repository"
	mockUsecase "beacon/internal/mocks/usecase"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type senderFixtures struct {
	sender       usecase.AlertSender
	campaignRepo *mockRepo.MockCampaignRepository
	keywordRepo  *mockRepo.MockKeywordRepository
	deviceRepo   *mockRepo.MockDeviceRepository
	dispatcher   *mockUsecase.MockDispatcher
}

func createTestSender(t *testing.T) senderFixtures {
	campaignRepo := mockRepo.NewMockCampaignRepository(t)
	keywordRepo := mockRepo.NewMockKeywordRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	dispatcher := mockUsecase.NewMockDispatcher(t)
	sender := NewAlertSender(campaignRepo, keywordRepo, deviceRepo, dispatcher, slog.Default())

	return senderFixtures{
		sender:       sender,
		campaignRepo: campaignRepo,
		keywordRepo:  keywordRepo,
		deviceRepo:   deviceRepo,
		dispatcher:   dispatcher,
	}
}

func pendingAlert(userID, subjectID uuid.UUID, subjectType entity.SubjectType, kind entity.AlertKind) *entity.Alert {
	return &entity.Alert{
		ID:          uuid.New(),
		UserID:      userID,
		SubjectType: subjectType,
		SubjectID:   subjectID,
		AlertDay:    testDay(),
		Kind:        kind,
		IsVisible:   true,
	}
}

func TestAlertSender_Send_CampaignGroup(t *testing.T) {
	fx := createTestSender(t)

	campaignID := uuid.New()
	userA := uuid.New()
	userB := uuid.New()
	alertA := pendingAlert(userA, campaignID, entity.SubjectCampaign, entity.AlertKindDeadlineD1)
	alertB := pendingAlert(userB, campaignID, entity.SubjectCampaign, entity.AlertKindDeadlineD1)
	group := &usecase.PendingGroup{
		Type:   entity.SubjectCampaign,
		ID:     campaignID,
		Alerts: []*entity.Alert{alertA, alertB},
	}

	fx.campaignRepo.EXPECT().
		FindCampaignByID(mock.Anything, campaignID).
		Return(&entity.CampaignDigest{
			ID:          campaignID,
			Title:       "Summer campaign",
			ApplyEndsOn: testDay().AddDate(0, 0, 1),
		}, nil)

	devices := []*entity.UserDevice{
		testDevice(userA, "token-a"),
		testDevice(userB, "token-b"),
	}
	fx.deviceRepo.EXPECT().
		FindActiveDevicesForUsers(mock.Anything, []uuid.UUID{userA, userB}).
		Return(devices, nil)

	fx.dispatcher.EXPECT().
		SendToMany(mock.Anything, devices, mock.MatchedBy(func(payload *service.PushPayload) bool {
			return payload.Title == "Deadline approaching" &&
				payload.Body == `"Summer campaign" closes tomorrow` &&
				payload.Data["kind"] == string(entity.AlertKindDeadlineD1) &&
				payload.Priority == "high"
		})).
		Return(&usecase.DispatchResult{
			Sent:             1,
			Failed:           1,
			SucceededUserIDs: []uuid.UUID{userA},
		}, nil)

	outcome, err := fx.sender.Send(context.Background(), group, testDay())
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Result.Sent)
	require.Len(t, outcome.SentAlerts, 1)
	assert.Equal(t, alertA.ID, outcome.SentAlerts[0].ID)
}

func TestAlertSender_Send_KeywordGroup(t *testing.T) {
	fx := createTestSender(t)

	keywordID := uuid.New()
	userID := uuid.New()
	alert := pendingAlert(userID, keywordID, entity.SubjectKeyword, entity.AlertKindKeywordMatch)
	group := &usecase.PendingGroup{
		Type:   entity.SubjectKeyword,
		ID:     keywordID,
		Alerts: []*entity.Alert{alert},
	}

	fx.keywordRepo.EXPECT().
		FindKeywordByID(mock.Anything, keywordID).
		Return(&entity.Keyword{ID: keywordID, Text: "internship", IsActive: true}, nil)
	fx.keywordRepo.EXPECT().
		CountNewMatchesSince(mock.Anything, "internship", testDay().AddDate(0, 0, -1)).
		Return(12, nil)

	devices := []*entity.UserDevice{testDevice(userID, "token-a")}
	fx.deviceRepo.EXPECT().
		FindActiveDevicesForUsers(mock.Anything, []uuid.UUID{userID}).
		Return(devices, nil)

	fx.dispatcher.EXPECT().
		SendToMany(mock.Anything, devices, mock.MatchedBy(func(payload *service.PushPayload) bool {
			return payload.Title == "New campaigns for your keyword" &&
				payload.Body == `+10 new campaigns match "internship"`
		})).
		Return(&usecase.DispatchResult{
			Sent:             1,
			SucceededUserIDs: []uuid.UUID{userID},
		}, nil)

	outcome, err := fx.sender.Send(context.Background(), group, testDay())
	require.NoError(t, err)
	require.Len(t, outcome.SentAlerts, 1)
	assert.Equal(t, alert.ID, outcome.SentAlerts[0].ID)
}

func TestAlertSender_Send_NoActiveDevices(t *testing.T) {
	fx := createTestSender(t)

	campaignID := uuid.New()
	userID := uuid.New()
	group := &usecase.PendingGroup{
		Type:   entity.SubjectCampaign,
		ID:     campaignID,
		Alerts: []*entity.Alert{pendingAlert(userID, campaignID, entity.SubjectCampaign, entity.AlertKindDeadlineD3)},
	}

	fx.campaignRepo.EXPECT().
		FindCampaignByID(mock.Anything, campaignID).
		Return(&entity.CampaignDigest{
			ID:          campaignID,
			Title:       "Summer campaign",
			ApplyEndsOn: testDay().AddDate(0, 0, 3),
		}, nil)
	fx.deviceRepo.EXPECT().
		FindActiveDevicesForUsers(mock.Anything, []uuid.UUID{userID}).
		Return([]*entity.UserDevice{}, nil)

	outcome, err := fx.sender.Send(context.Background(), group, testDay())
	require.NoError(t, err)
	assert.Empty(t, outcome.SentAlerts)
	assert.Equal(t, 0, outcome.Result.Sent)
}

func TestAlertSender_Send_EmptyGroup(t *testing.T) {
	fx := createTestSender(t)

	outcome, err := fx.sender.Send(context.Background(), &usecase.PendingGroup{
		Type: entity.SubjectCampaign,
		ID:   uuid.New(),
	}, testDay())
	require.NoError(t, err)
	assert.Empty(t, outcome.SentAlerts)
}

func TestAlertSender_Send_SubjectLookupError(t *testing.T) {
	fx := createTestSender(t)

	campaignID := uuid.New()
	group := &usecase.PendingGroup{
		Type:   entity.SubjectCampaign,
		ID:     campaignID,
		Alerts: []*entity.Alert{pendingAlert(uuid.New(), campaignID, entity.SubjectCampaign, entity.AlertKindDeadlineD1)},
	}

	fx.campaignRepo.EXPECT().
		FindCampaignByID(mock.Anything, campaignID).
		Return(nil, errors.New("connection reset"))

	outcome, err := fx.sender.Send(context.Background(), group, testDay())
	require.Error(t, err)
	assert.Nil(t, outcome)
}

func TestAlertSender_Send_MultipleAlertsPerUser(t *testing.T) {
	fx := createTestSender(t)

	campaignID := uuid.New()
	userID := uuid.New()
	alertOne := pendingAlert(userID, campaignID, entity.SubjectCampaign, entity.AlertKindDeadlineD1)
	alertTwo := pendingAlert(userID, campaignID, entity.SubjectCampaign, entity.AlertKindDeadlineD1)
	group := &usecase.PendingGroup{
		Type:   entity.SubjectCampaign,
		ID:     campaignID,
		Alerts: []*entity.Alert{alertOne, alertTwo},
	}

	fx.campaignRepo.EXPECT().
		FindCampaignByID(mock.Anything, campaignID).
		Return(&entity.CampaignDigest{
			ID:          campaignID,
			Title:       "Summer campaign",
			ApplyEndsOn: testDay(),
		}, nil)

	devices := []*entity.UserDevice{testDevice(userID, "token-a")}
	fx.deviceRepo.EXPECT().
		FindActiveDevicesForUsers(mock.Anything, []uuid.UUID{userID}).
		Return(devices, nil)

	fx.dispatcher.EXPECT().
		SendToMany(mock.Anything, devices, mock.MatchedBy(func(payload *service.PushPayload) bool {
			return payload.Body == `"Summer campaign" closes today`
		})).
		Return(&usecase.DispatchResult{
			Sent:             1,
			SucceededUserIDs: []uuid.UUID{userID},
		}, nil)

	outcome, err := fx.sender.Send(context.Background(), group, testDay())
	require.NoError(t, err)
	assert.Len(t, outcome.SentAlerts, 2)
}
