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
	mockUsecase "beacon/internal/mocks/usecase"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orchestratorFixtures struct {
	orchestrator usecase.AlertOrchestrator
	campaignRepo *mockRepo.MockCampaignRepository
	keywordRepo  *mockRepo.MockKeywordRepository
	alertRepo    *mockRepo.MockAlertRepository
	generator    *mockUsecase.MockAlertGenerator
	sender       *mockUsecase.MockAlertSender
	publisher    *mockSvc.MockEventPublisher
}

func createTestOrchestrator(t *testing.T) orchestratorFixtures {
	campaignRepo := mockRepo.NewMockCampaignRepository(t)
	keywordRepo := mockRepo.NewMockKeywordRepository(t)
	alertRepo := mockRepo.NewMockAlertRepository(t)
	generator := mockUsecase.NewMockAlertGenerator(t)
	sender := mockUsecase.NewMockAlertSender(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	m := metrics.NewMetricsWith(prometheus.NewRegistry(), "test")

	orchestrator := NewAlertOrchestrator(
		campaignRepo, keywordRepo, alertRepo,
		generator, sender, publisher,
		m, slog.Default(), 2, 3,
	)

	return orchestratorFixtures{
		orchestrator: orchestrator,
		campaignRepo: campaignRepo,
		keywordRepo:  keywordRepo,
		alertRepo:    alertRepo,
		generator:    generator,
		sender:       sender,
		publisher:    publisher,
	}
}

func TestAlertOrchestrator_RunGeneration(t *testing.T) {
	fx := createTestOrchestrator(t)

	day := testDay()
	campaignID := uuid.New()
	keywordID := uuid.New()
	bookmarker := uuid.New()
	subscriber := uuid.New()

	fx.campaignRepo.EXPECT().
		FindCampaignsEndingWithin(mock.Anything, day, day.AddDate(0, 0, 3)).
		Return([]*entity.CampaignDigest{
			{
				ID:            campaignID,
				Title:         "Summer campaign",
				ApplyEndsOn:   day.AddDate(0, 0, 1),
				BookmarkerIDs: []uuid.UUID{bookmarker},
			},
			{
				// No bookmarkers, never becomes a group.
				ID:          uuid.New(),
				Title:       "Ignored campaign",
				ApplyEndsOn: day.AddDate(0, 0, 2),
			},
		}, nil)
	fx.keywordRepo.EXPECT().
		FindActiveKeywords(mock.Anything).
		Return([]*entity.Keyword{
			{ID: keywordID, Text: "internship", IsActive: true, SubscriberIDs: []uuid.UUID{subscriber}},
		}, nil)

	campaignAlert := pendingAlert(bookmarker, campaignID, entity.SubjectCampaign, entity.AlertKindDeadlineD1)
	keywordAlert := pendingAlert(subscriber, keywordID, entity.SubjectKeyword, entity.AlertKindKeywordMatch)

	fx.generator.EXPECT().
		Generate(mock.Anything, mock.MatchedBy(func(group *usecase.SubjectGroup) bool {
			return group.Type == entity.SubjectCampaign && group.ID == campaignID && group.DaysLeft == 1
		}), day).
		Return(&usecase.GenerationOutcome{Alerts: []*entity.Alert{campaignAlert}, Created: 1}, nil)
	fx.generator.EXPECT().
		Generate(mock.Anything, mock.MatchedBy(func(group *usecase.SubjectGroup) bool {
			return group.Type == entity.SubjectKeyword && group.ID == keywordID
		}), day).
		Return(&usecase.GenerationOutcome{Alerts: []*entity.Alert{keywordAlert}, Created: 1, Skipped: 2}, nil)

	fx.alertRepo.EXPECT().
		BulkInsert(mock.Anything, mock.MatchedBy(func(alerts []*entity.Alert) bool {
			return len(alerts) == 2
		})).
		Return(nil)

	fx.publisher.EXPECT().
		PublishCycleEvent(mock.Anything, mock.MatchedBy(func(event *service.CycleEvent) bool {
			return event.Phase == service.CyclePhaseGeneration && event.AlertCount == 2
		})).
		Return(nil)

	summary, err := fx.orchestrator.RunGeneration(context.Background(), day)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Groups)
	assert.Equal(t, 2, summary.Created)
	assert.Equal(t, 2, summary.Skipped)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, usecase.PhaseIdle, fx.orchestrator.GenerationPhase())
}

func TestAlertOrchestrator_RunGeneration_GroupFailureIsolated(t *testing.T) {
	fx := createTestOrchestrator(t)

	day := testDay()
	goodID := uuid.New()
	badID := uuid.New()
	userID := uuid.New()

	fx.campaignRepo.EXPECT().
		FindCampaignsEndingWithin(mock.Anything, day, day.AddDate(0, 0, 3)).
		Return([]*entity.CampaignDigest{
			{ID: goodID, Title: "Good", ApplyEndsOn: day, BookmarkerIDs: []uuid.UUID{userID}},
			{ID: badID, Title: "Bad", ApplyEndsOn: day, BookmarkerIDs: []uuid.UUID{userID}},
		}, nil)
	fx.keywordRepo.EXPECT().
		FindActiveKeywords(mock.Anything).
		Return(nil, nil)

	goodAlert := pendingAlert(userID, goodID, entity.SubjectCampaign, entity.AlertKindDeadlineD1)

	fx.generator.EXPECT().
		Generate(mock.Anything, mock.MatchedBy(func(group *usecase.SubjectGroup) bool {
			return group.ID == goodID
		}), day).
		Return(&usecase.GenerationOutcome{Alerts: []*entity.Alert{goodAlert}, Created: 1}, nil)
	fx.generator.EXPECT().
		Generate(mock.Anything, mock.MatchedBy(func(group *usecase.SubjectGroup) bool {
			return group.ID == badID
		}), day).
		Return(nil, errors.New("connection reset"))

	fx.alertRepo.EXPECT().
		BulkInsert(mock.Anything, mock.MatchedBy(func(alerts []*entity.Alert) bool {
			return len(alerts) == 1 && alerts[0].SubjectID == goodID
		})).
		Return(nil)

	fx.publisher.EXPECT().
		PublishCycleEvent(mock.Anything, mock.Anything).
		Return(nil)

	summary, err := fx.orchestrator.RunGeneration(context.Background(), day)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Groups)
	assert.Equal(t, 1, summary.Created)
	assert.Equal(t, 1, summary.Failed)
}

func TestAlertOrchestrator_RunGeneration_EmptyDay(t *testing.T) {
	fx := createTestOrchestrator(t)

	day := testDay()
	fx.campaignRepo.EXPECT().
		FindCampaignsEndingWithin(mock.Anything, day, day.AddDate(0, 0, 3)).
		Return(nil, nil)
	fx.keywordRepo.EXPECT().
		FindActiveKeywords(mock.Anything).
		Return(nil, nil)
	fx.alertRepo.EXPECT().
		BulkInsert(mock.Anything, mock.MatchedBy(func(alerts []*entity.Alert) bool {
			return len(alerts) == 0
		})).
		Return(nil)
	fx.publisher.EXPECT().
		PublishCycleEvent(mock.Anything, mock.Anything).
		Return(nil)

	summary, err := fx.orchestrator.RunGeneration(context.Background(), day)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Groups)
	assert.Equal(t, 0, summary.Created)
}

func TestAlertOrchestrator_RunDispatch(t *testing.T) {
	fx := createTestOrchestrator(t)

	day := testDay()
	campaignID := uuid.New()
	keywordID := uuid.New()
	alertA := pendingAlert(uuid.New(), campaignID, entity.SubjectCampaign, entity.AlertKindDeadlineD1)
	alertB := pendingAlert(uuid.New(), campaignID, entity.SubjectCampaign, entity.AlertKindDeadlineD1)
	alertC := pendingAlert(uuid.New(), keywordID, entity.SubjectKeyword, entity.AlertKindKeywordMatch)

	fx.alertRepo.EXPECT().
		FindUnsentForDay(mock.Anything, day).
		Return([]*entity.Alert{alertA, alertB, alertC}, nil)

	fx.sender.EXPECT().
		Send(mock.Anything, mock.MatchedBy(func(group *usecase.PendingGroup) bool {
			return group.ID == campaignID && len(group.Alerts) == 2
		}), day).
		Return(&usecase.SendOutcome{
			SentAlerts: []*entity.Alert{alertA, alertB},
			Result:     usecase.DispatchResult{Sent: 2},
		}, nil)
	fx.sender.EXPECT().
		Send(mock.Anything, mock.MatchedBy(func(group *usecase.PendingGroup) bool {
			return group.ID == keywordID && len(group.Alerts) == 1
		}), day).
		Return(&usecase.SendOutcome{
			SentAlerts: []*entity.Alert{alertC},
			Result:     usecase.DispatchResult{Sent: 1},
		}, nil)

	fx.alertRepo.EXPECT().
		BulkMarkSent(mock.Anything, mock.MatchedBy(func(ids []uuid.UUID) bool {
			return len(ids) == 3
		}), mock.AnythingOfType("time.Time")).
		Return(nil)

	fx.publisher.EXPECT().
		PublishCycleEvent(mock.Anything, mock.MatchedBy(func(event *service.CycleEvent) bool {
			return event.Phase == service.CyclePhaseDispatch && event.AlertCount == 3
		})).
		Return(nil)

	summary, err := fx.orchestrator.RunDispatch(context.Background(), day)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Groups)
	assert.Equal(t, 3, summary.Sent)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, usecase.PhaseIdle, fx.orchestrator.DispatchPhase())
}

func TestAlertOrchestrator_RunDispatch_GroupFailureIsolated(t *testing.T) {
	fx := createTestOrchestrator(t)

	day := testDay()
	goodID := uuid.New()
	badID := uuid.New()
	goodAlert := pendingAlert(uuid.New(), goodID, entity.SubjectCampaign, entity.AlertKindDeadlineD1)
	badAlert := pendingAlert(uuid.New(), badID, entity.SubjectKeyword, entity.AlertKindKeywordMatch)

	fx.alertRepo.EXPECT().
		FindUnsentForDay(mock.Anything, day).
		Return([]*entity.Alert{goodAlert, badAlert}, nil)

	fx.sender.EXPECT().
		Send(mock.Anything, mock.MatchedBy(func(group *usecase.PendingGroup) bool {
			return group.ID == goodID
		}), day).
		Return(&usecase.SendOutcome{
			SentAlerts: []*entity.Alert{goodAlert},
			Result:     usecase.DispatchResult{Sent: 1},
		}, nil)
	fx.sender.EXPECT().
		Send(mock.Anything, mock.MatchedBy(func(group *usecase.PendingGroup) bool {
			return group.ID == badID
		}), day).
		Return(nil, errors.New("provider unavailable"))

	fx.alertRepo.EXPECT().
		BulkMarkSent(mock.Anything, []uuid.UUID{goodAlert.ID}, mock.AnythingOfType("time.Time")).
		Return(nil)

	fx.publisher.EXPECT().
		PublishCycleEvent(mock.Anything, mock.Anything).
		Return(nil)

	summary, err := fx.orchestrator.RunDispatch(context.Background(), day)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Sent)
	assert.Equal(t, 1, summary.Failed)
}

func TestAlertOrchestrator_RejectsConcurrentRuns(t *testing.T) {
	fx := createTestOrchestrator(t)

	day := testDay()
	started := make(chan struct{})
	release := make(chan struct{})

	fx.campaignRepo.EXPECT().
		FindCampaignsEndingWithin(mock.Anything, day, day.AddDate(0, 0, 3)).
		RunAndReturn(func(context.Context, time.Time, time.Time) ([]*entity.CampaignDigest, error) {
			close(started)
			<-release

			return nil, nil
		})
	fx.keywordRepo.EXPECT().
		FindActiveKeywords(mock.Anything).
		Return(nil, nil)
	fx.alertRepo.EXPECT().
		BulkInsert(mock.Anything, mock.Anything).
		Return(nil)
	fx.publisher.EXPECT().
		PublishCycleEvent(mock.Anything, mock.Anything).
		Return(nil)

	done := make(chan error, 1)
	go func() {
		_, err := fx.orchestrator.RunGeneration(context.Background(), day)
		done <- err
	}()

	<-started

	_, err := fx.orchestrator.RunDispatch(context.Background(), day)
	assert.ErrorIs(t, err, ErrCycleRunning)

	close(release)
	require.NoError(t, <-done)
}

func TestAlertOrchestrator_RunDispatch_NothingPending(t *testing.T) {
	fx := createTestOrchestrator(t)

	day := testDay()
	fx.alertRepo.EXPECT().
		FindUnsentForDay(mock.Anything, day).
		Return(nil, nil)
	fx.alertRepo.EXPECT().
		BulkMarkSent(mock.Anything, mock.MatchedBy(func(ids []uuid.UUID) bool {
			return len(ids) == 0
		}), mock.AnythingOfType("time.Time")).
		Return(nil)
	fx.publisher.EXPECT().
		PublishCycleEvent(mock.Anything, mock.Anything).
		Return(nil)

	summary, err := fx.orchestrator.RunDispatch(context.Background(), day)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Groups)
	assert.Equal(t, 0, summary.Sent)
}
