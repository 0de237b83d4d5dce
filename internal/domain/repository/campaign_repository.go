// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCampaignNotFound is returned when a campaign is not found.
var ErrCampaignNotFound = errors.New("campaign not found")

// CampaignRepository exposes the campaign/bookmark side of the alert pipeline.
type CampaignRepository interface {
	// FindCampaignsEndingWithin retrieves campaigns whose closing date falls
	// in [from, until], each with the IDs of the users who bookmarked it.
	// Campaigns nobody bookmarked are omitted.
	FindCampaignsEndingWithin(ctx context.Context, from, until time.Time) ([]*entity.CampaignDigest, error)

	// FindCampaignByID retrieves a single campaign digest.
	FindCampaignByID(ctx context.Context, id uuid.UUID) (*entity.CampaignDigest, error)
}
