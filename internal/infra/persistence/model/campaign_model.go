package model

import (
	"time"

	"github.com/google/uuid"
)

// CampaignModel is the GORM-specific struct for the 'campaigns' table.
// Only the columns the alert pipeline reads are mapped here.
type CampaignModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title       string    `gorm:"type:text;not null"`
	ApplyEndsOn time.Time `gorm:"type:date;not null;index"`
	PublishedAt time.Time `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CampaignModel) TableName() string {
	return "campaigns"
}

// CampaignBookmarkModel is the GORM-specific struct for the 'campaign_bookmarks' table.
// It links a user to a campaign they want deadline alerts for.
type CampaignBookmarkModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CampaignID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_bookmarks_campaign_user"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_bookmarks_campaign_user"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (CampaignBookmarkModel) TableName() string {
	return "campaign_bookmarks"
}
