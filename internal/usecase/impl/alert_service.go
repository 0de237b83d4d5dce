package impl

import (
	"context"
	"errors"
	"fmt"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	"beacon/internal/usecase"

	"github.com/google/uuid"
)

// ErrAlertNotFound is returned when an alert is missing or owned by another user
var ErrAlertNotFound = errors.New("alert not found")

const defaultAlertPageSize = 50

type alertService struct {
	alertRepo repository.AlertRepository
}

// NewAlertService creates a new alert inbox service instance
func NewAlertService(alertRepo repository.AlertRepository) usecase.AlertUsecase {
	return &alertService{
		alertRepo: alertRepo,
	}
}

// ListAlerts retrieves a user's visible alerts with pagination, newest first
func (s *alertService) ListAlerts(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Alert, error) {
	if limit <= 0 {
		limit = defaultAlertPageSize
	}
	if offset < 0 {
		offset = 0
	}

	alerts, err := s.alertRepo.FindVisibleByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}

	return alerts, nil
}

// MarkAlertRead flags one of the user's alerts as read
func (s *alertService) MarkAlertRead(ctx context.Context, userID, alertID uuid.UUID) error {
	if err := s.alertRepo.MarkRead(ctx, userID, alertID); err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return ErrAlertNotFound
		}

		return fmt.Errorf("failed to mark alert read: %w", err)
	}

	return nil
}

// HideAlert removes an alert from the user's inbox (soft delete)
func (s *alertService) HideAlert(ctx context.Context, userID, alertID uuid.UUID) error {
	if err := s.alertRepo.Hide(ctx, userID, alertID); err != nil {
		if errors.Is(err, repository.ErrAlertNotFound) {
			return ErrAlertNotFound
		}

		return fmt.Errorf("failed to hide alert: %w", err)
	}

	return nil
}

// ClearAlerts hard-deletes every alert of the user
func (s *alertService) ClearAlerts(ctx context.Context, userID uuid.UUID) error {
	if err := s.alertRepo.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear alerts: %w", err)
	}

	return nil
}
