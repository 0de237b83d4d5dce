package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"beacon/internal/domain/entity"
	"beacon/internal/infra/metrics"
	mockRepo "beacon/internal/mocks/repository"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type generatorFixtures struct {
	generator   usecase.AlertGenerator
	alertRepo   *mockRepo.MockAlertRepository
	keywordRepo *mockRepo.MockKeywordRepository
}

func createTestGenerator(t *testing.T) generatorFixtures {
	alertRepo := mockRepo.NewMockAlertRepository(t)
	keywordRepo := mockRepo.NewMockKeywordRepository(t)
	m := metrics.NewMetricsWith(prometheus.NewRegistry(), "test")
	generator := NewAlertGenerator(alertRepo, keywordRepo, m, slog.Default(), 3, 1)

	return generatorFixtures{
		generator:   generator,
		alertRepo:   alertRepo,
		keywordRepo: keywordRepo,
	}
}

func testDay() time.Time {
	return time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
}

func TestAlertGenerator_Generate_CampaignWithinWindow(t *testing.T) {
	fx := createTestGenerator(t)

	campaignID := uuid.New()
	userA := uuid.New()
	userB := uuid.New()
	group := &usecase.SubjectGroup{
		Type:             entity.SubjectCampaign,
		ID:               campaignID,
		Title:            "Summer campaign",
		DaysLeft:         1,
		CandidateUserIDs: []uuid.UUID{userA, userB},
	}

	fx.alertRepo.EXPECT().
		ExistsForDay(mock.Anything, userA, entity.SubjectCampaign, campaignID, testDay()).
		Return(false, nil)
	fx.alertRepo.EXPECT().
		ExistsForDay(mock.Anything, userB, entity.SubjectCampaign, campaignID, testDay()).
		Return(false, nil)

	outcome, err := fx.generator.Generate(context.Background(), group, testDay())
	require.NoError(t, err)
	assert.Equal(t, 2, outcome.Created)
	assert.Equal(t, 0, outcome.Skipped)
	require.Len(t, outcome.Alerts, 2)
	assert.Equal(t, entity.AlertKindDeadlineD1, outcome.Alerts[0].Kind)
	assert.Equal(t, userA, outcome.Alerts[0].UserID)
	assert.True(t, outcome.Alerts[0].IsVisible)
}

func TestAlertGenerator_Generate_CampaignOutsideWindow(t *testing.T) {
	fx := createTestGenerator(t)

	tests := []struct {
		name     string
		daysLeft int
	}{
		{name: "already closed", daysLeft: -1},
		{name: "beyond window", daysLeft: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group := &usecase.SubjectGroup{
				Type:             entity.SubjectCampaign,
				ID:               uuid.New(),
				DaysLeft:         tt.daysLeft,
				CandidateUserIDs: []uuid.UUID{uuid.New()},
			}

			outcome, err := fx.generator.Generate(context.Background(), group, testDay())
			require.NoError(t, err)
			assert.Equal(t, 0, outcome.Created)
			assert.Empty(t, outcome.Alerts)
		})
	}
}

func TestAlertGenerator_Generate_SkipsExistingAlerts(t *testing.T) {
	fx := createTestGenerator(t)

	campaignID := uuid.New()
	userA := uuid.New()
	userB := uuid.New()
	group := &usecase.SubjectGroup{
		Type:             entity.SubjectCampaign,
		ID:               campaignID,
		DaysLeft:         3,
		CandidateUserIDs: []uuid.UUID{userA, userB},
	}

	fx.alertRepo.EXPECT().
		ExistsForDay(mock.Anything, userA, entity.SubjectCampaign, campaignID, testDay()).
		Return(true, nil)
	fx.alertRepo.EXPECT().
		ExistsForDay(mock.Anything, userB, entity.SubjectCampaign, campaignID, testDay()).
		Return(false, nil)

	outcome, err := fx.generator.Generate(context.Background(), group, testDay())
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Created)
	assert.Equal(t, 1, outcome.Skipped)
	require.Len(t, outcome.Alerts, 1)
	assert.Equal(t, userB, outcome.Alerts[0].UserID)
	assert.Equal(t, entity.AlertKindDeadlineD3, outcome.Alerts[0].Kind)
}

func TestAlertGenerator_Generate_KeywordAboveThreshold(t *testing.T) {
	fx := createTestGenerator(t)

	keywordID := uuid.New()
	userID := uuid.New()
	since := testDay().AddDate(0, 0, -1)
	group := &usecase.SubjectGroup{
		Type:             entity.SubjectKeyword,
		ID:               keywordID,
		Title:            "internship",
		Since:            since,
		CandidateUserIDs: []uuid.UUID{userID},
	}

	fx.keywordRepo.EXPECT().
		CountNewMatchesSince(mock.Anything, "internship", since).
		Return(5, nil)
	fx.alertRepo.EXPECT().
		ExistsForDay(mock.Anything, userID, entity.SubjectKeyword, keywordID, testDay()).
		Return(false, nil)

	outcome, err := fx.generator.Generate(context.Background(), group, testDay())
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Created)
	require.Len(t, outcome.Alerts, 1)
	assert.Equal(t, entity.AlertKindKeywordMatch, outcome.Alerts[0].Kind)
}

func TestAlertGenerator_Generate_KeywordBelowThreshold(t *testing.T) {
	fx := createTestGenerator(t)

	group := &usecase.SubjectGroup{
		Type:             entity.SubjectKeyword,
		ID:               uuid.New(),
		Title:            "internship",
		Since:            testDay().AddDate(0, 0, -1),
		CandidateUserIDs: []uuid.UUID{uuid.New()},
	}

	fx.keywordRepo.EXPECT().
		CountNewMatchesSince(mock.Anything, "internship", group.Since).
		Return(0, nil)

	outcome, err := fx.generator.Generate(context.Background(), group, testDay())
	require.NoError(t, err)
	assert.Equal(t, 0, outcome.Created)
	assert.Empty(t, outcome.Alerts)
}

func TestAlertGenerator_Generate_UnknownSubjectType(t *testing.T) {
	fx := createTestGenerator(t)

	group := &usecase.SubjectGroup{
		Type:             entity.SubjectType("banner"),
		ID:               uuid.New(),
		CandidateUserIDs: []uuid.UUID{uuid.New()},
	}

	outcome, err := fx.generator.Generate(context.Background(), group, testDay())
	require.NoError(t, err)
	assert.Equal(t, 0, outcome.Created)
	assert.Empty(t, outcome.Alerts)
}

func TestAlertGenerator_Generate_DedupCheckError(t *testing.T) {
	fx := createTestGenerator(t)

	campaignID := uuid.New()
	userID := uuid.New()
	group := &usecase.SubjectGroup{
		Type:             entity.SubjectCampaign,
		ID:               campaignID,
		DaysLeft:         0,
		CandidateUserIDs: []uuid.UUID{userID},
	}

	fx.alertRepo.EXPECT().
		ExistsForDay(mock.Anything, userID, entity.SubjectCampaign, campaignID, testDay()).
		Return(false, errors.New("connection reset"))

	outcome, err := fx.generator.Generate(context.Background(), group, testDay())
	require.Error(t, err)
	assert.Nil(t, outcome)
}
