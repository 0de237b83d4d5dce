package usecase

import (
	"context"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// AlertUsecase defines the interface for the user-facing alert inbox
type AlertUsecase interface {
	// ListAlerts retrieves a user's visible alerts with pagination, newest first
	ListAlerts(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Alert, error)

	// MarkAlertRead flags one of the user's alerts as read
	MarkAlertRead(ctx context.Context, userID, alertID uuid.UUID) error

	// HideAlert removes an alert from the user's inbox (soft delete)
	HideAlert(ctx context.Context, userID, alertID uuid.UUID) error

	// ClearAlerts hard-deletes every alert of the user
	ClearAlerts(ctx context.Context, userID uuid.UUID) error
}
