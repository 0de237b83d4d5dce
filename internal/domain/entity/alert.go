// Package entity contains the core business objects of the project.
package entity

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// SubjectType identifies what an alert is about.
type SubjectType string

const (
	// SubjectCampaign marks alerts tied to a bookmarked campaign deadline.
	SubjectCampaign SubjectType = "campaign"
	// SubjectKeyword marks alerts tied to new campaigns matching a saved keyword.
	SubjectKeyword SubjectType = "keyword"
)

// AlertKind is the stage of an alert. Each kind carries its own rendering
// rule for notification copy, so message templating never dispatches on
// free-form strings.
type AlertKind string

const (
	// AlertKindDeadlineD1 fires when a bookmarked campaign closes within one day.
	AlertKindDeadlineD1 AlertKind = "deadline_d1"
	// AlertKindDeadlineD3 fires when a bookmarked campaign closes within three days.
	AlertKindDeadlineD3 AlertKind = "deadline_d3"
	// AlertKindDeadlineD7 fires when a bookmarked campaign closes within a week.
	AlertKindDeadlineD7 AlertKind = "deadline_d7"
	// AlertKindKeywordMatch fires when new campaigns match a saved keyword.
	AlertKindKeywordMatch AlertKind = "keyword_match"
)

// DeadlineKindFor maps days remaining until a campaign closes to a deadline stage.
func DeadlineKindFor(daysLeft int) AlertKind {
	switch {
	case daysLeft <= 1:
		return AlertKindDeadlineD1
	case daysLeft <= 3:
		return AlertKindDeadlineD3
	default:
		return AlertKindDeadlineD7
	}
}

// Alert represents one pending or sent notification for a (user, subject) pair.
// At most one alert exists per (user, subject, alert day).
type Alert struct {
	ID          uuid.UUID   `json:"id"`           // The Global Unique Identifier (GUID) for the alert.
	UserID      uuid.UUID   `json:"user_id"`      // The ID of the user this alert targets.
	SubjectType SubjectType `json:"subject_type"` // Whether the subject is a campaign or a keyword.
	SubjectID   uuid.UUID   `json:"subject_id"`   // The ID of the campaign or keyword.
	AlertDay    time.Time   `json:"alert_day"`    // The processing date this alert belongs to (date precision).
	Kind        AlertKind   `json:"kind"`         // The stage of the alert (deadline proximity or keyword match).
	IsSent      bool        `json:"is_sent"`      // Set after the push provider accepted the notification.
	SentAt      *time.Time  `json:"sent_at"`      // Timestamp of the successful send, nil while pending.
	IsRead      bool        `json:"is_read"`      // Set when the user opens the alert.
	IsVisible   bool        `json:"is_visible"`   // Cleared when the user deletes the alert (soft delete).
	CreatedAt   time.Time   `json:"created_at"`   // Timestamp of when this record was created.
	UpdatedAt   time.Time   `json:"updated_at"`   // Timestamp of the last modification.
}

// FormatMatchCount renders a new-match count for notification copy. Counts
// below ten render exactly; larger counts collapse to the largest power-of-ten
// bucket ("+10", "+100") so the copy never exposes precise internal totals.
func FormatMatchCount(count int) string {
	if count < 10 {
		return strconv.Itoa(count)
	}

	bucket := 10
	for bucket*10 <= count {
		bucket *= 10
	}

	return "+" + strconv.Itoa(bucket)
}
