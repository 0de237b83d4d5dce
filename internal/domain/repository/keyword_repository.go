// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrKeywordNotFound is returned when a keyword is not found.
var ErrKeywordNotFound = errors.New("keyword not found")

// KeywordRepository exposes the keyword side of the alert pipeline.
type KeywordRepository interface {
	// FindActiveKeywords retrieves all active keywords with their subscribers.
	FindActiveKeywords(ctx context.Context) ([]*entity.Keyword, error)

	// FindKeywordByID retrieves a single keyword with its subscribers.
	FindKeywordByID(ctx context.Context, id uuid.UUID) (*entity.Keyword, error)

	// CountNewMatchesSince counts campaigns published since the given date
	// whose title matches the keyword text.
	CountNewMatchesSince(ctx context.Context, text string, since time.Time) (int, error)
}
