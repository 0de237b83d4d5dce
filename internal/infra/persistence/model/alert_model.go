package model

import (
	"time"

	"github.com/google/uuid"
)

// AlertModel is the GORM-specific struct for the 'alerts' table.
// It represents one pending or sent notification for a user.
// The composite unique index enforces at most one alert per
// (user, subject, alert day) tuple.
type AlertModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:uq_alerts_user_subject_day"`
	SubjectType string     `gorm:"type:varchar(50);not null;uniqueIndex:uq_alerts_user_subject_day"`
	SubjectID   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_alerts_user_subject_day"`
	AlertDay    time.Time  `gorm:"type:date;not null;index;uniqueIndex:uq_alerts_user_subject_day"`
	Kind        string     `gorm:"type:varchar(50);not null"`
	IsSent      bool       `gorm:"not null;default:false;index"`
	SentAt      *time.Time `gorm:"type:timestamptz"`
	IsRead      bool       `gorm:"not null;default:false"`
	IsVisible   bool       `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AlertModel) TableName() string {
	return "alerts"
}
