package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	"beacon/internal/infra/metrics"
	"beacon/internal/usecase"
)

type alertGenerator struct {
	alertRepo      repository.AlertRepository
	keywordRepo    repository.KeywordRepository
	metrics        *metrics.Metrics
	logger         *slog.Logger
	deadlineWindow int
	matchThreshold int
}

// NewAlertGenerator creates a new alert generator instance
func NewAlertGenerator(
	alertRepo repository.AlertRepository,
	keywordRepo repository.KeywordRepository,
	m *metrics.Metrics,
	logger *slog.Logger,
	deadlineWindowDays int,
	keywordMatchThreshold int,
) usecase.AlertGenerator {
	return &alertGenerator{
		alertRepo:      alertRepo,
		keywordRepo:    keywordRepo,
		metrics:        m,
		logger:         logger,
		deadlineWindow: deadlineWindowDays,
		matchThreshold: keywordMatchThreshold,
	}
}

// Generate qualifies one subject group and produces an alert per candidate
// user without an existing alert for (subject, day). A group that does not
// qualify yields an empty outcome.
func (g *alertGenerator) Generate(ctx context.Context, group *usecase.SubjectGroup, day time.Time) (*usecase.GenerationOutcome, error) {
	outcome := &usecase.GenerationOutcome{}

	kind, qualified, err := g.qualify(ctx, group)
	if err != nil {
		return nil, fmt.Errorf("failed to qualify group %s/%s: %w", group.Type, group.ID, err)
	}
	if !qualified {
		return outcome, nil
	}

	for _, userID := range group.CandidateUserIDs {
		exists, err := g.alertRepo.ExistsForDay(ctx, userID, group.Type, group.ID, day)
		if err != nil {
			return nil, fmt.Errorf("failed to check alert existence for user %s: %w", userID, err)
		}
		if exists {
			outcome.Skipped++
			g.metrics.AlertsSkipped.Inc()

			continue
		}

		outcome.Alerts = append(outcome.Alerts, &entity.Alert{
			UserID:      userID,
			SubjectType: group.Type,
			SubjectID:   group.ID,
			AlertDay:    day,
			Kind:        kind,
			IsVisible:   true,
		})
		outcome.Created++
		g.metrics.AlertsGenerated.Inc()
	}

	return outcome, nil
}

// qualify decides whether the group gets alerts today and which kind.
func (g *alertGenerator) qualify(ctx context.Context, group *usecase.SubjectGroup) (entity.AlertKind, bool, error) {
	switch group.Type {
	case entity.SubjectCampaign:
		// Closed campaigns and campaigns outside the window produce nothing.
		if group.DaysLeft < 0 || group.DaysLeft > g.deadlineWindow {
			return "", false, nil
		}

		return entity.DeadlineKindFor(group.DaysLeft), true, nil

	case entity.SubjectKeyword:
		count, err := g.keywordRepo.CountNewMatchesSince(ctx, group.Title, group.Since)
		if err != nil {
			return "", false, err
		}
		if count < g.matchThreshold {
			return "", false, nil
		}

		return entity.AlertKindKeywordMatch, true, nil

	default:
		g.logger.Warn("unknown subject type in group", slog.String("type", string(group.Type)))

		return "", false, nil
	}
}
