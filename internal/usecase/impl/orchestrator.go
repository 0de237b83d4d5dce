package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"
	"beacon/internal/infra/metrics"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrCycleRunning is returned when a cycle run is requested while another
// one is still active.
var ErrCycleRunning = errors.New("alert cycle already running")

type alertOrchestrator struct {
	campaignRepo repository.CampaignRepository
	keywordRepo  repository.KeywordRepository
	alertRepo    repository.AlertRepository
	generator    usecase.AlertGenerator
	sender       usecase.AlertSender
	publisher    service.EventPublisher
	metrics      *metrics.Metrics
	logger       *slog.Logger

	workers        int
	deadlineWindow int

	// runMu serializes whole cycle runs; phase mutexes guard the
	// externally visible state.
	runMu         sync.Mutex
	phaseMu       sync.RWMutex
	genPhase      usecase.Phase
	dispatchPhase usecase.Phase
}

// NewAlertOrchestrator creates a new orchestrator driving both daily phases
func NewAlertOrchestrator(
	campaignRepo repository.CampaignRepository,
	keywordRepo repository.KeywordRepository,
	alertRepo repository.AlertRepository,
	generator usecase.AlertGenerator,
	sender usecase.AlertSender,
	publisher service.EventPublisher,
	m *metrics.Metrics,
	logger *slog.Logger,
	workers int,
	deadlineWindowDays int,
) usecase.AlertOrchestrator {
	if workers <= 0 {
		workers = 1
	}

	return &alertOrchestrator{
		campaignRepo:   campaignRepo,
		keywordRepo:    keywordRepo,
		alertRepo:      alertRepo,
		generator:      generator,
		sender:         sender,
		publisher:      publisher,
		metrics:        m,
		logger:         logger,
		workers:        workers,
		deadlineWindow: deadlineWindowDays,
		genPhase:       usecase.PhaseIdle,
		dispatchPhase:  usecase.PhaseIdle,
	}
}

// RunGeneration loads the day's subjects, fans generation tasks across the
// worker pool, and persists every produced alert in one batch.
func (o *alertOrchestrator) RunGeneration(ctx context.Context, day time.Time) (*usecase.CycleSummary, error) {
	if !o.runMu.TryLock() {
		return nil, ErrCycleRunning
	}
	defer o.runMu.Unlock()

	startTime := time.Now()
	defer func() {
		o.setGenPhase(usecase.PhaseIdle)
		o.metrics.PhaseDuration.WithLabelValues(service.CyclePhaseGeneration).Observe(time.Since(startTime).Seconds())
	}()

	o.setGenPhase(usecase.PhaseLoading)
	groups, err := o.loadGroups(ctx, day)
	if err != nil {
		return nil, err
	}

	o.setGenPhase(usecase.PhaseGenerating)
	outcomes := make([]*usecase.GenerationOutcome, len(groups))
	o.runPool(ctx, len(groups), func(ctx context.Context, idx int) {
		outcomes[idx] = o.generateOne(ctx, groups[idx], day)
	})

	if ctx.Err() != nil {
		return nil, errors.Wrap(ctx.Err(), "generation canceled")
	}

	// Join the pool results and persist everything in one statement.
	o.setGenPhase(usecase.PhasePersisting)
	summary := &usecase.CycleSummary{Day: day, Groups: len(groups)}
	var alerts []*entity.Alert
	for _, outcome := range outcomes {
		if outcome == nil || outcome.Failed {
			summary.Failed++

			continue
		}
		alerts = append(alerts, outcome.Alerts...)
		summary.Created += outcome.Created
		summary.Skipped += outcome.Skipped
	}

	if err := o.alertRepo.BulkInsert(ctx, alerts); err != nil {
		return nil, fmt.Errorf("failed to persist generated alerts: %w", err)
	}

	summary.Duration = time.Since(startTime).String()

	o.publish(ctx, service.CyclePhaseGeneration, day, summary.Created)

	o.logger.Info("generation cycle finished",
		slog.String("day", day.Format(time.DateOnly)),
		slog.Int("groups", summary.Groups),
		slog.Int("created", summary.Created),
		slog.Int("skipped", summary.Skipped),
		slog.Int("failed_groups", summary.Failed),
		slog.String("duration", summary.Duration),
	)

	return summary, nil
}

// RunDispatch loads the day's unsent alerts, fans dispatch tasks across the
// worker pool, and marks every delivered alert sent in one batch.
func (o *alertOrchestrator) RunDispatch(ctx context.Context, day time.Time) (*usecase.CycleSummary, error) {
	if !o.runMu.TryLock() {
		return nil, ErrCycleRunning
	}
	defer o.runMu.Unlock()

	startTime := time.Now()
	defer func() {
		o.setDispatchPhase(usecase.PhaseIdle)
		o.metrics.PhaseDuration.WithLabelValues(service.CyclePhaseDispatch).Observe(time.Since(startTime).Seconds())
	}()

	o.setDispatchPhase(usecase.PhaseLoading)
	pending, err := o.alertRepo.FindUnsentForDay(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("failed to load unsent alerts: %w", err)
	}

	o.setDispatchPhase(usecase.PhaseGrouping)
	groups := groupPending(pending)

	o.setDispatchPhase(usecase.PhaseSending)
	outcomes := make([]*usecase.SendOutcome, len(groups))
	o.runPool(ctx, len(groups), func(ctx context.Context, idx int) {
		outcomes[idx] = o.sendOne(ctx, groups[idx], day)
	})

	if ctx.Err() != nil {
		return nil, errors.Wrap(ctx.Err(), "dispatch canceled")
	}

	// Join the pool results and flip everything delivered in one statement.
	o.setDispatchPhase(usecase.PhasePersisting)
	summary := &usecase.CycleSummary{Day: day, Groups: len(groups)}
	var sentIDs []uuid.UUID
	for _, outcome := range outcomes {
		if outcome == nil || outcome.Failed {
			summary.Failed++

			continue
		}
		for _, alert := range outcome.SentAlerts {
			sentIDs = append(sentIDs, alert.ID)
		}
		summary.Sent += len(outcome.SentAlerts)
	}

	if err := o.alertRepo.BulkMarkSent(ctx, sentIDs, time.Now()); err != nil {
		return nil, fmt.Errorf("failed to mark alerts sent: %w", err)
	}

	summary.Duration = time.Since(startTime).String()

	o.publish(ctx, service.CyclePhaseDispatch, day, summary.Sent)

	o.logger.Info("dispatch cycle finished",
		slog.String("day", day.Format(time.DateOnly)),
		slog.Int("groups", summary.Groups),
		slog.Int("sent", summary.Sent),
		slog.Int("failed_groups", summary.Failed),
		slog.String("duration", summary.Duration),
	)

	return summary, nil
}

// GenerationPhase reports the current phase of the generation cycle.
func (o *alertOrchestrator) GenerationPhase() usecase.Phase {
	o.phaseMu.RLock()
	defer o.phaseMu.RUnlock()

	return o.genPhase
}

// DispatchPhase reports the current phase of the dispatch cycle.
func (o *alertOrchestrator) DispatchPhase() usecase.Phase {
	o.phaseMu.RLock()
	defer o.phaseMu.RUnlock()

	return o.dispatchPhase
}

// loadGroups reads the day's subjects and partitions them into fan-out units.
func (o *alertOrchestrator) loadGroups(ctx context.Context, day time.Time) ([]*usecase.SubjectGroup, error) {
	until := day.AddDate(0, 0, o.deadlineWindow)
	campaigns, err := o.campaignRepo.FindCampaignsEndingWithin(ctx, day, until)
	if err != nil {
		return nil, fmt.Errorf("failed to load closing campaigns: %w", err)
	}

	keywords, err := o.keywordRepo.FindActiveKeywords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load active keywords: %w", err)
	}

	o.setGenPhase(usecase.PhaseGrouping)

	groups := make([]*usecase.SubjectGroup, 0, len(campaigns)+len(keywords))
	for _, campaign := range campaigns {
		if len(campaign.BookmarkerIDs) == 0 {
			continue
		}
		groups = append(groups, &usecase.SubjectGroup{
			Type:             entity.SubjectCampaign,
			ID:               campaign.ID,
			Title:            campaign.Title,
			DaysLeft:         daysBetween(day, campaign.ApplyEndsOn),
			CandidateUserIDs: campaign.BookmarkerIDs,
		})
	}
	for _, keyword := range keywords {
		if len(keyword.SubscriberIDs) == 0 {
			continue
		}
		groups = append(groups, &usecase.SubjectGroup{
			Type:             entity.SubjectKeyword,
			ID:               keyword.ID,
			Title:            keyword.Text,
			Since:            day.AddDate(0, 0, -1),
			CandidateUserIDs: keyword.SubscriberIDs,
		})
	}

	return groups, nil
}

// generateOne runs one generation task. A panic or error inside the task is
// contained to this group; the rest of the cycle proceeds.
func (o *alertOrchestrator) generateOne(ctx context.Context, group *usecase.SubjectGroup, day time.Time) (outcome *usecase.GenerationOutcome) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.Error("generation task panicked",
				slog.String("subject_type", string(group.Type)),
				slog.String("subject_id", group.ID.String()),
				slog.Any("panic", r),
			)
			o.metrics.GroupsFailed.WithLabelValues(service.CyclePhaseGeneration).Inc()
			outcome = &usecase.GenerationOutcome{Failed: true}
		}
	}()

	result, err := o.generator.Generate(ctx, group, day)
	if err != nil {
		o.logger.Warn("generation task failed",
			slog.String("subject_type", string(group.Type)),
			slog.String("subject_id", group.ID.String()),
			slog.Any("error", err),
		)
		o.metrics.GroupsFailed.WithLabelValues(service.CyclePhaseGeneration).Inc()

		return &usecase.GenerationOutcome{Failed: true}
	}

	return result
}

// sendOne runs one dispatch task with the same isolation as generateOne.
func (o *alertOrchestrator) sendOne(ctx context.Context, group *usecase.PendingGroup, day time.Time) (outcome *usecase.SendOutcome) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.Error("dispatch task panicked",
				slog.String("subject_type", string(group.Type)),
				slog.String("subject_id", group.ID.String()),
				slog.Any("panic", r),
			)
			o.metrics.GroupsFailed.WithLabelValues(service.CyclePhaseDispatch).Inc()
			outcome = &usecase.SendOutcome{Failed: true}
		}
	}()

	result, err := o.sender.Send(ctx, group, day)
	if err != nil {
		o.logger.Warn("dispatch task failed",
			slog.String("subject_type", string(group.Type)),
			slog.String("subject_id", group.ID.String()),
			slog.Any("error", err),
		)
		o.metrics.GroupsFailed.WithLabelValues(service.CyclePhaseDispatch).Inc()

		return &usecase.SendOutcome{Failed: true}
	}

	return result
}

// runPool fans taskCount tasks across the worker pool and blocks until every
// task finished or the context died.
func (o *alertOrchestrator) runPool(ctx context.Context, taskCount int, task func(ctx context.Context, idx int)) {
	if taskCount == 0 {
		return
	}

	workerCount := o.workers
	if taskCount < workerCount {
		workerCount = taskCount
	}

	jobCh := make(chan int, taskCount)
	var workerGroup sync.WaitGroup

	for i := 0; i < workerCount; i++ {
		workerGroup.Add(1)
		go func() {
			defer workerGroup.Done()
			for idx := range jobCh {
				if ctx.Err() != nil {
					return
				}

				task(ctx, idx)
			}
		}()
	}

	for i := 0; i < taskCount; i++ {
		jobCh <- i
	}
	close(jobCh)

	workerGroup.Wait()
}

// publish is best effort; a dropped event never fails the cycle.
func (o *alertOrchestrator) publish(ctx context.Context, phase string, day time.Time, count int) {
	event := &service.CycleEvent{
		Phase:      phase,
		AlertDay:   day.Format(time.DateOnly),
		AlertCount: count,
	}
	if err := o.publisher.PublishCycleEvent(ctx, event); err != nil {
		o.logger.Warn("failed to publish cycle event",
			slog.String("phase", phase),
			slog.Any("error", err),
		)
	}
}

func (o *alertOrchestrator) setGenPhase(phase usecase.Phase) {
	o.phaseMu.Lock()
	o.genPhase = phase
	o.phaseMu.Unlock()
}

func (o *alertOrchestrator) setDispatchPhase(phase usecase.Phase) {
	o.phaseMu.Lock()
	o.dispatchPhase = phase
	o.phaseMu.Unlock()
}

// groupPending partitions unsent alerts by subject so each group is one
// dispatch task with one rendered payload.
func groupPending(alerts []*entity.Alert) []*usecase.PendingGroup {
	index := make(map[string]*usecase.PendingGroup)
	var groups []*usecase.PendingGroup

	for _, alert := range alerts {
		key := string(alert.SubjectType) + "/" + alert.SubjectID.String()
		group, ok := index[key]
		if !ok {
			group = &usecase.PendingGroup{
				Type: alert.SubjectType,
				ID:   alert.SubjectID,
			}
			index[key] = group
			groups = append(groups, group)
		}
		group.Alerts = append(group.Alerts, alert)
	}

	return groups
}
