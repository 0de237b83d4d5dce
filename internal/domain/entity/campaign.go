// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CampaignDigest is the slice of a campaign the alert pipeline needs: its
// closing date and the users who bookmarked it.
type CampaignDigest struct {
	ID            uuid.UUID   `json:"id"`             // The Global Unique Identifier (GUID) for the campaign.
	Title         string      `json:"title"`          // The campaign title used in notification copy.
	ApplyEndsOn   time.Time   `json:"apply_ends_on"`  // The date the campaign stops accepting applications.
	BookmarkerIDs []uuid.UUID `json:"bookmarker_ids"` // Users who bookmarked this campaign.
}

// Keyword represents a saved search term users subscribe to for new-campaign alerts.
type Keyword struct {
	ID            uuid.UUID   `json:"id"`             // The Global Unique Identifier (GUID) for the keyword.
	Text          string      `json:"text"`           // The search term matched against new campaigns.
	IsActive      bool        `json:"is_active"`      // Inactive keywords are skipped by the pipeline.
	SubscriberIDs []uuid.UUID `json:"subscriber_ids"` // Users subscribed to this keyword.
}
