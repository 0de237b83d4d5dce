// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"
	"time"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	"beacon/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// keywordRepository implements the repository.KeywordRepository interface.
type keywordRepository struct {
	db *gorm.DB
}

// NewKeywordRepository is the constructor for keywordRepository.
func NewKeywordRepository(db *gorm.DB) repository.KeywordRepository {
	return &keywordRepository{
		db: db,
	}
}

// FindActiveKeywords retrieves all active keywords with their subscribers.
func (repo *keywordRepository) FindActiveKeywords(ctx context.Context) ([]*entity.Keyword, error) {
	var keywordModels []*model.KeywordModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("text ASC").
		Find(&keywordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active keywords")
	}

	if len(keywordModels) == 0 {
		return []*entity.Keyword{}, nil
	}

	keywordIDs := make([]uuid.UUID, 0, len(keywordModels))
	for _, keywordM := range keywordModels {
		keywordIDs = append(keywordIDs, keywordM.ID)
	}

	var subscriptions []*model.KeywordSubscriptionModel
	if err := repo.db.WithContext(ctx).
		Where("keyword_id IN ?", keywordIDs).
		Find(&subscriptions).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find keyword subscriptions")
	}

	subscribersByKeyword := make(map[uuid.UUID][]uuid.UUID, len(keywordModels))
	for _, subscription := range subscriptions {
		subscribersByKeyword[subscription.KeywordID] = append(subscribersByKeyword[subscription.KeywordID], subscription.UserID)
	}

	keywords := make([]*entity.Keyword, 0, len(keywordModels))
	for _, keywordM := range keywordModels {
		keywords = append(keywords, toKeywordDomain(keywordM, subscribersByKeyword[keywordM.ID]))
	}

	return keywords, nil
}

// FindKeywordByID retrieves a single keyword with its subscribers.
func (repo *keywordRepository) FindKeywordByID(ctx context.Context, id uuid.UUID) (*entity.Keyword, error) {
	var keywordM model.KeywordModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&keywordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrKeywordNotFound
		}

		return nil, errors.Wrap(err, "failed to find keyword by ID")
	}

	var subscriptions []*model.KeywordSubscriptionModel
	if err := repo.db.WithContext(ctx).
		Where("keyword_id = ?", id).
		Find(&subscriptions).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find keyword subscriptions")
	}

	subscriberIDs := make([]uuid.UUID, 0, len(subscriptions))
	for _, subscription := range subscriptions {
		subscriberIDs = append(subscriberIDs, subscription.UserID)
	}

	return toKeywordDomain(&keywordM, subscriberIDs), nil
}

// CountNewMatchesSince counts campaigns published since the given date whose
// title matches the keyword text.
func (repo *keywordRepository) CountNewMatchesSince(ctx context.Context, text string, since time.Time) (int, error) {
	var count int64

	pattern := "%" + escapeLike(text) + "%"
	if err := repo.db.WithContext(ctx).
		Model(&model.CampaignModel{}).
		Where("published_at >= ? AND title ILIKE ?", since, pattern).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count new keyword matches")
	}

	return int(count), nil
}

// escapeLike escapes LIKE wildcards so keyword text is matched literally.
func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

	return replacer.Replace(s)
}

// --- Mapper Functions ---

// toKeywordDomain converts a GORM KeywordModel to a domain Keyword entity.
func toKeywordDomain(data *model.KeywordModel, subscriberIDs []uuid.UUID) *entity.Keyword {
	if data == nil {
		return nil
	}

	return &entity.Keyword{
		ID:            data.ID,
		Text:          data.Text,
		IsActive:      data.IsActive,
		SubscriberIDs: subscriberIDs,
	}
}
