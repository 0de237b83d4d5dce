// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	"beacon/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// alertRepository implements the repository.AlertRepository interface.
type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(db *gorm.DB) repository.AlertRepository {
	return &alertRepository{
		db: db,
	}
}

// ExistsForDay reports whether an alert already exists for the given
// (user, subject, day) tuple.
func (repo *alertRepository) ExistsForDay(ctx context.Context, userID uuid.UUID, subjectType entity.SubjectType, subjectID uuid.UUID, day time.Time) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.AlertModel{}).
		Where("user_id = ? AND subject_type = ? AND subject_id = ? AND alert_day = ?",
			userID, string(subjectType), subjectID, dateOnly(day)).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check alert existence")
	}

	return count > 0, nil
}

// BulkInsert persists a batch of freshly generated alerts in one statement.
// Rows colliding with the (user, subject, day) unique index are skipped, so
// a re-run of the same day never fails the whole batch.
func (repo *alertRepository) BulkInsert(ctx context.Context, alerts []*entity.Alert) error {
	if len(alerts) == 0 {
		return nil
	}

	alertModels := make([]*model.AlertModel, 0, len(alerts))
	for _, alert := range alerts {
		alertModels = append(alertModels, fromAlertDomain(alert))
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&alertModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to bulk insert alerts")
	}

	// Propagate generated values back onto the entities
	for i, alertM := range alertModels {
		alerts[i].ID = alertM.ID
		alerts[i].CreatedAt = alertM.CreatedAt
		alerts[i].UpdatedAt = alertM.UpdatedAt
	}

	return nil
}

// FindUnsentForDay retrieves all alerts with sent=false for the given day.
func (repo *alertRepository) FindUnsentForDay(ctx context.Context, day time.Time) ([]*entity.Alert, error) {
	var alertModels []*model.AlertModel

	if err := repo.db.WithContext(ctx).
		Where("alert_day = ? AND is_sent = ?", dateOnly(day), false).
		Order("created_at ASC").
		Find(&alertModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find unsent alerts for day")
	}

	alerts := make([]*entity.Alert, 0, len(alertModels))
	for _, alertM := range alertModels {
		alerts = append(alerts, toAlertDomain(alertM))
	}

	return alerts, nil
}

// BulkMarkSent flips sent=true and stamps sent_at for the given alerts.
func (repo *alertRepository) BulkMarkSent(ctx context.Context, ids []uuid.UUID, sentAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.AlertModel{}).
		Where("id IN ?", ids).
		Updates(map[string]any{
			"is_sent": true,
			"sent_at": sentAt,
		}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to bulk mark alerts sent")
	}

	return nil
}

// FindVisibleByUser retrieves a user's visible alerts, newest first.
func (repo *alertRepository) FindVisibleByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Alert, error) {
	var alertModels []*model.AlertModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_visible = ?", userID, true).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&alertModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find visible alerts by user")
	}

	alerts := make([]*entity.Alert, 0, len(alertModels))
	for _, alertM := range alertModels {
		alerts = append(alerts, toAlertDomain(alertM))
	}

	return alerts, nil
}

// MarkRead flags one of the user's alerts as read.
func (repo *alertRepository) MarkRead(ctx context.Context, userID, alertID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AlertModel{}).
		Where("id = ? AND user_id = ?", alertID, userID).
		Update("is_read", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark alert read")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAlertNotFound
	}

	return nil
}

// Hide soft-deletes one of the user's alerts.
func (repo *alertRepository) Hide(ctx context.Context, userID, alertID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AlertModel{}).
		Where("id = ? AND user_id = ?", alertID, userID).
		Update("is_visible", false)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to hide alert")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAlertNotFound
	}

	return nil
}

// DeleteByUser hard-deletes every alert of a user.
func (repo *alertRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.AlertModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete alerts by user")
	}

	return nil
}

// dateOnly truncates a timestamp to its date for comparisons against
// date-typed columns.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// --- Mapper Functions ---

// toAlertDomain converts a GORM AlertModel to a domain Alert entity.
func toAlertDomain(data *model.AlertModel) *entity.Alert {
	if data == nil {
		return nil
	}

	return &entity.Alert{
		ID:          data.ID,
		UserID:      data.UserID,
		SubjectType: entity.SubjectType(data.SubjectType),
		SubjectID:   data.SubjectID,
		AlertDay:    data.AlertDay,
		Kind:        entity.AlertKind(data.Kind),
		IsSent:      data.IsSent,
		SentAt:      data.SentAt,
		IsRead:      data.IsRead,
		IsVisible:   data.IsVisible,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromAlertDomain converts a domain Alert entity to a GORM AlertModel.
func fromAlertDomain(data *entity.Alert) *model.AlertModel {
	if data == nil {
		return nil
	}

	return &model.AlertModel{
		ID:          data.ID,
		UserID:      data.UserID,
		SubjectType: string(data.SubjectType),
		SubjectID:   data.SubjectID,
		AlertDay:    dateOnly(data.AlertDay),
		Kind:        string(data.Kind),
		IsSent:      data.IsSent,
		SentAt:      data.SentAt,
		IsRead:      data.IsRead,
		IsVisible:   data.IsVisible,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
