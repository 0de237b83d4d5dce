package usecase

import (
	"context"
	"time"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
)

// SubjectGroup is one unit of fan-out work: a single campaign or keyword
// together with the users who care about it.
type SubjectGroup struct {
	Type  entity.SubjectType
	ID    uuid.UUID
	Title string

	// DaysLeft is the whole days until the campaign closes. Only meaningful
	// for campaign groups.
	DaysLeft int

	// Since is the start of the new-match window. Only meaningful for
	// keyword groups.
	Since time.Time

	// CandidateUserIDs are the bookmarkers or subscribers of the subject.
	CandidateUserIDs []uuid.UUID
}

// GenerationOutcome reports what one generation task produced.
type GenerationOutcome struct {
	// Alerts are the fresh records to persist, one per non-duplicate user.
	Alerts []*entity.Alert
	// Created counts users who got a new alert.
	Created int
	// Skipped counts users whose alert already existed for the day.
	Skipped int
	// Failed is true when the group's qualification or dedupe checks
	// errored and the group produced nothing.
	Failed bool
}

// PendingGroup is one subject's unsent alerts for a day, regrouped for the
// dispatch phase.
type PendingGroup struct {
	Type entity.SubjectType
	ID   uuid.UUID

	// Alerts are the unsent records targeting this subject.
	Alerts []*entity.Alert
}

// SendOutcome reports what one dispatch task delivered.
type SendOutcome struct {
	// SentAlerts are the alerts whose user received the push on at least
	// one device; they get marked sent after the phase joins.
	SentAlerts []*entity.Alert
	// Result carries the provider-level counters for the group.
	Result DispatchResult
	// Failed is true when the group could not be dispatched at all.
	Failed bool
}

// AlertGenerator turns one subject group into alert records, deduplicating
// against alerts already stored for the processing day.
type AlertGenerator interface {
	// Generate qualifies the group and creates one alert per candidate
	// user who does not already have one for (subject, day). A group that
	// does not qualify returns an empty outcome with no error.
	Generate(ctx context.Context, group *SubjectGroup, day time.Time) (*GenerationOutcome, error)
}

// AlertSender pushes one pending group's alerts to its users' devices.
type AlertSender interface {
	// Send builds the group's notification payload, fans it out to every
	// active device of the group's users, and reports which alerts reached
	// at least one device.
	Send(ctx context.Context, group *PendingGroup, day time.Time) (*SendOutcome, error)
}
