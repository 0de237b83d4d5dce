package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"
	"beacon/internal/usecase"

	"github.com/google/uuid"
)

type alertSender struct {
	campaignRepo repository.CampaignRepository
	keywordRepo  repository.KeywordRepository
	deviceRepo   repository.DeviceRepository
	dispatcher   usecase.Dispatcher
	logger       *slog.Logger
}

// NewAlertSender creates a new alert sender instance
func NewAlertSender(
	campaignRepo repository.CampaignRepository,
	keywordRepo repository.KeywordRepository,
	deviceRepo repository.DeviceRepository,
	dispatcher usecase.Dispatcher,
	logger *slog.Logger,
) usecase.AlertSender {
	return &alertSender{
		campaignRepo: campaignRepo,
		keywordRepo:  keywordRepo,
		deviceRepo:   deviceRepo,
		dispatcher:   dispatcher,
		logger:       logger,
	}
}

// Send builds one payload for the group and fans it out to every active
// device of the group's users. Alerts whose user received the push on at
// least one device come back as SentAlerts.
func (s *alertSender) Send(ctx context.Context, group *usecase.PendingGroup, day time.Time) (*usecase.SendOutcome, error) {
	outcome := &usecase.SendOutcome{}
	if len(group.Alerts) == 0 {
		return outcome, nil
	}

	payload, err := s.buildPayload(ctx, group, day)
	if err != nil {
		return nil, err
	}

	userIDs := make([]uuid.UUID, 0, len(group.Alerts))
	alertsByUser := make(map[uuid.UUID][]*entity.Alert, len(group.Alerts))
	for _, alert := range group.Alerts {
		if _, seen := alertsByUser[alert.UserID]; !seen {
			userIDs = append(userIDs, alert.UserID)
		}
		alertsByUser[alert.UserID] = append(alertsByUser[alert.UserID], alert)
	}

	devices, err := s.deviceRepo.FindActiveDevicesForUsers(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load devices for group %s/%s: %w", group.Type, group.ID, err)
	}
	if len(devices) == 0 {
		s.logger.Debug("no active devices for pending group",
			slog.String("subject_type", string(group.Type)),
			slog.String("subject_id", group.ID.String()),
			slog.Int("alerts", len(group.Alerts)),
		)

		return outcome, nil
	}

	result, err := s.dispatcher.SendToMany(ctx, devices, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to dispatch group %s/%s: %w", group.Type, group.ID, err)
	}
	outcome.Result = *result

	// An alert counts as sent when its user received the push anywhere.
	for _, userID := range result.SucceededUserIDs {
		outcome.SentAlerts = append(outcome.SentAlerts, alertsByUser[userID]...)
	}

	return outcome, nil
}

// buildPayload resolves the subject's current attributes and renders the
// group's notification copy.
func (s *alertSender) buildPayload(ctx context.Context, group *usecase.PendingGroup, day time.Time) (*service.PushPayload, error) {
	switch group.Type {
	case entity.SubjectCampaign:
		campaign, err := s.campaignRepo.FindCampaignByID(ctx, group.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve campaign %s: %w", group.ID, err)
		}

		daysLeft := daysBetween(day, campaign.ApplyEndsOn)

		return &service.PushPayload{
			Title: "Deadline approaching",
			Body:  deadlineBody(campaign.Title, daysLeft),
			Data: map[string]string{
				"subject_type": string(entity.SubjectCampaign),
				"subject_id":   group.ID.String(),
				"kind":         string(entity.DeadlineKindFor(daysLeft)),
			},
			Priority: "high",
		}, nil

	case entity.SubjectKeyword:
		keyword, err := s.keywordRepo.FindKeywordByID(ctx, group.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve keyword %s: %w", group.ID, err)
		}

		count, err := s.keywordRepo.CountNewMatchesSince(ctx, keyword.Text, day.AddDate(0, 0, -1))
		if err != nil {
			return nil, fmt.Errorf("failed to count matches for keyword %s: %w", group.ID, err)
		}

		return &service.PushPayload{
			Title: "New campaigns for your keyword",
			Body:  fmt.Sprintf("%s new campaigns match %q", entity.FormatMatchCount(count), keyword.Text),
			Data: map[string]string{
				"subject_type": string(entity.SubjectKeyword),
				"subject_id":   group.ID.String(),
				"kind":         string(entity.AlertKindKeywordMatch),
			},
		}, nil

	default:
		return nil, fmt.Errorf("unknown subject type: %s", group.Type)
	}
}

func deadlineBody(title string, daysLeft int) string {
	switch {
	case daysLeft <= 0:
		return fmt.Sprintf("%q closes today", title)
	case daysLeft == 1:
		return fmt.Sprintf("%q closes tomorrow", title)
	default:
		return fmt.Sprintf("%q closes in %d days", title, daysLeft)
	}
}

// daysBetween counts whole days from one date to another, ignoring the
// time-of-day of either.
func daysBetween(from, to time.Time) int {
	fromDate := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDate := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)

	return int(toDate.Sub(fromDate).Hours() / 24)
}
