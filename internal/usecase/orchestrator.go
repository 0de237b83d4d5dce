package usecase

import (
	"context"
	"time"
)

// Phase is the orchestrator's externally visible state.
type Phase string

const (
	// PhaseIdle means no cycle is running.
	PhaseIdle Phase = "idle"
	// PhaseLoading means subjects and candidates are being read.
	PhaseLoading Phase = "loading"
	// PhaseGrouping means loaded subjects are being partitioned into groups.
	PhaseGrouping Phase = "grouping"
	// PhaseGenerating means generation tasks are running on the pool.
	PhaseGenerating Phase = "generating"
	// PhaseSending means dispatch tasks are running on the pool.
	PhaseSending Phase = "sending"
	// PhasePersisting means joined results are being written back.
	PhasePersisting Phase = "persisting"
)

// CycleSummary aggregates what one cycle run did.
type CycleSummary struct {
	Day      time.Time `json:"day"`
	Groups   int       `json:"groups"`
	Created  int       `json:"created"`
	Skipped  int       `json:"skipped"`
	Sent     int       `json:"sent"`
	Failed   int       `json:"failed"`
	Duration string    `json:"duration"`
}

// AlertOrchestrator drives the two daily phases of the alert pipeline.
// RunGeneration and RunDispatch serialize against each other; a second run
// request while a cycle is active returns an error instead of overlapping.
type AlertOrchestrator interface {
	// RunGeneration loads subjects, fans generation tasks across the
	// worker pool, and persists the produced alerts in one batch.
	RunGeneration(ctx context.Context, day time.Time) (*CycleSummary, error)

	// RunDispatch loads the day's unsent alerts, fans dispatch tasks
	// across the worker pool, and marks delivered alerts sent in one batch.
	RunDispatch(ctx context.Context, day time.Time) (*CycleSummary, error)

	// GenerationPhase reports the current phase of the generation cycle.
	GenerationPhase() Phase

	// DispatchPhase reports the current phase of the dispatch cycle.
	DispatchPhase() Phase
}
