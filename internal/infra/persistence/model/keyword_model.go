package model

import (
	"time"

	"github.com/google/uuid"
)

// KeywordModel is the GORM-specific struct for the 'keywords' table.
// It represents a saved search term users subscribe to.
type KeywordModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Text      string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	IsActive  bool      `gorm:"not null;default:true;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (KeywordModel) TableName() string {
	return "keywords"
}

// KeywordSubscriptionModel is the GORM-specific struct for the 'keyword_subscriptions' table.
// It links a user to a keyword they want new-match alerts for.
type KeywordSubscriptionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	KeywordID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_subscriptions_keyword_user"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_subscriptions_keyword_user"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (KeywordSubscriptionModel) TableName() string {
	return "keyword_subscriptions"
}
