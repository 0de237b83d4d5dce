// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	"beacon/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// campaignRepository implements the repository.CampaignRepository interface.
type campaignRepository struct {
	db *gorm.DB
}

// NewCampaignRepository is the constructor for campaignRepository.
func NewCampaignRepository(db *gorm.DB) repository.CampaignRepository {
	return &campaignRepository{
		db: db,
	}
}

// FindCampaignsEndingWithin retrieves campaigns closing in [from, until],
// each with the IDs of the users who bookmarked it. Campaigns without
// bookmarks are omitted.
func (repo *campaignRepository) FindCampaignsEndingWithin(ctx context.Context, from, until time.Time) ([]*entity.CampaignDigest, error) {
	var campaignModels []*model.CampaignModel

	if err := repo.db.WithContext(ctx).
		Where("apply_ends_on BETWEEN ? AND ?", dateOnly(from), dateOnly(until)).
		Order("apply_ends_on ASC").
		Find(&campaignModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find campaigns ending within range")
	}

	if len(campaignModels) == 0 {
		return []*entity.CampaignDigest{}, nil
	}

	campaignIDs := make([]uuid.UUID, 0, len(campaignModels))
	for _, campaignM := range campaignModels {
		campaignIDs = append(campaignIDs, campaignM.ID)
	}

	var bookmarks []*model.CampaignBookmarkModel
	if err := repo.db.WithContext(ctx).
		Where("campaign_id IN ?", campaignIDs).
		Find(&bookmarks).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find campaign bookmarks")
	}

	bookmarkersByCampaign := make(map[uuid.UUID][]uuid.UUID, len(campaignModels))
	for _, bookmark := range bookmarks {
		bookmarkersByCampaign[bookmark.CampaignID] = append(bookmarkersByCampaign[bookmark.CampaignID], bookmark.UserID)
	}

	digests := make([]*entity.CampaignDigest, 0, len(campaignModels))
	for _, campaignM := range campaignModels {
		bookmarkerIDs, ok := bookmarkersByCampaign[campaignM.ID]
		if !ok {
			continue
		}
		digests = append(digests, toCampaignDomain(campaignM, bookmarkerIDs))
	}

	return digests, nil
}

// FindCampaignByID retrieves a single campaign digest with its bookmarkers.
func (repo *campaignRepository) FindCampaignByID(ctx context.Context, id uuid.UUID) (*entity.CampaignDigest, error) {
	var campaignM model.CampaignModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&campaignM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCampaignNotFound
		}

		return nil, errors.Wrap(err, "failed to find campaign by ID")
	}

	var bookmarks []*model.CampaignBookmarkModel
	if err := repo.db.WithContext(ctx).
		Where("campaign_id = ?", id).
		Find(&bookmarks).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find campaign bookmarks")
	}

	bookmarkerIDs := make([]uuid.UUID, 0, len(bookmarks))
	for _, bookmark := range bookmarks {
		bookmarkerIDs = append(bookmarkerIDs, bookmark.UserID)
	}

	return toCampaignDomain(&campaignM, bookmarkerIDs), nil
}

// --- Mapper Functions ---

// toCampaignDomain converts a GORM CampaignModel to a domain CampaignDigest entity.
func toCampaignDomain(data *model.CampaignModel, bookmarkerIDs []uuid.UUID) *entity.CampaignDigest {
	if data == nil {
		return nil
	}

	return &entity.CampaignDigest{
		ID:            data.ID,
		Title:         data.Title,
		ApplyEndsOn:   data.ApplyEndsOn,
		BookmarkerIDs: bookmarkerIDs,
	}
}
