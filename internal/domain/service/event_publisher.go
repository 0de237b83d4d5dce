package service

import (
	"context"
)

// Cycle phases carried by CycleEvent.
const (
	CyclePhaseGeneration = "generation"
	CyclePhaseDispatch   = "dispatch"
)

// CycleEvent announces that an alert cycle phase finished for a day. The
// worker consumes generation events to trigger the dispatch phase without
// waiting for the next scheduled run.
type CycleEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	Phase      string `json:"phase"`
	AlertDay   string `json:"alert_day"` // YYYY-MM-DD
	AlertCount int    `json:"alert_count"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCycleEvent publishes a cycle event for async processing
	PublishCycleEvent(ctx context.Context, event *CycleEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
