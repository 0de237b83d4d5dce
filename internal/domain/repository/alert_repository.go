// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for alert persistence.
var (
	// ErrAlertNotFound is returned when an alert is not found.
	ErrAlertNotFound = errors.New("alert not found")
	// ErrDuplicateAlert is returned when an alert for the same
	// (user, subject, day) already exists.
	ErrDuplicateAlert = errors.New("alert already exists for this day")
)

// AlertRepository defines the interface for alert-related database operations.
type AlertRepository interface {
	// ExistsForDay reports whether an alert already exists for the given
	// (user, subject, day) tuple. Used as the generation dedupe check.
	ExistsForDay(ctx context.Context, userID uuid.UUID, subjectType entity.SubjectType, subjectID uuid.UUID, day time.Time) (bool, error)

	// BulkInsert persists a batch of freshly generated alerts in one statement.
	BulkInsert(ctx context.Context, alerts []*entity.Alert) error

	// FindUnsentForDay retrieves all alerts with sent=false for the given day.
	FindUnsentForDay(ctx context.Context, day time.Time) ([]*entity.Alert, error)

	// BulkMarkSent flips sent=true and stamps sent_at for the given alerts.
	BulkMarkSent(ctx context.Context, ids []uuid.UUID, sentAt time.Time) error

	// FindVisibleByUser retrieves a user's visible alerts, newest first.
	FindVisibleByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Alert, error)

	// MarkRead flags one of the user's alerts as read.
	MarkRead(ctx context.Context, userID, alertID uuid.UUID) error

	// Hide soft-deletes one of the user's alerts (visible=false).
	Hide(ctx context.Context, userID, alertID uuid.UUID) error

	// DeleteByUser hard-deletes every alert of a user (bulk user-data purge).
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
