// Package scheduler fires the daily alert cycle phases at configured local times.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"beacon/config"
	"beacon/internal/delivery"
	deliverycontext "beacon/internal/delivery/context"
	"beacon/internal/domain/repository"
	"beacon/internal/usecase"
	"beacon/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const clockLayout = "15:04"

type scheduler struct {
	cfg          *config.Config
	logger       *slog.Logger
	orchestrator usecase.AlertOrchestrator
	deviceRepo   repository.DeviceRepository
	location     *time.Location

	stop   context.CancelFunc
	doneCh chan struct{}
}

// Params holds dependencies for the scheduler
type Params struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	Orchestrator usecase.AlertOrchestrator
	DeviceRepo   repository.DeviceRepository
}

// New creates the daily cycle scheduler
func New(params Params) (delivery.Delivery, error) {
	cfg := params.Cfg.Scheduler
	if cfg == nil {
		cfg = &config.SchedulerConfig{}
	}

	location := time.Local
	if cfg.Timezone != "" {
		loc, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid scheduler timezone %q", cfg.Timezone)
		}
		location = loc
	}

	if cfg.Enabled {
		if _, err := time.Parse(clockLayout, cfg.GenerationAt); err != nil {
			return nil, errors.Wrapf(err, "invalid generation time %q", cfg.GenerationAt)
		}
		if _, err := time.Parse(clockLayout, cfg.DispatchAt); err != nil {
			return nil, errors.Wrapf(err, "invalid dispatch time %q", cfg.DispatchAt)
		}
	}

	s := &scheduler{
		cfg:          params.Cfg,
		logger:       params.Logger,
		orchestrator: params.Orchestrator,
		deviceRepo:   params.DeviceRepo,
		location:     location,
		doneCh:       make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.shutdown,
	})

	return s, nil
}

// Serve runs the trigger loop until the scheduler is stopped
func (s *scheduler) Serve(ctx context.Context) error {
	if s.cfg.Scheduler == nil || !s.cfg.Scheduler.Enabled {
		s.logger.Info("Scheduler disabled, daily cycles must be triggered externally")
		close(s.doneCh)

		return nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.stop = cancel
	defer close(s.doneCh)

	s.logger.Info("Starting cycle scheduler",
		slog.String("generation_at", s.cfg.Scheduler.GenerationAt),
		slog.String("dispatch_at", s.cfg.Scheduler.DispatchAt),
		slog.String("timezone", s.location.String()),
	)

	generationTimer := time.NewTimer(s.untilNext(s.cfg.Scheduler.GenerationAt))
	defer generationTimer.Stop()
	dispatchTimer := time.NewTimer(s.untilNext(s.cfg.Scheduler.DispatchAt))
	defer dispatchTimer.Stop()

	for {
		select {
		case <-runCtx.Done():
			return nil

		case <-generationTimer.C:
			s.runGeneration(runCtx)
			generationTimer.Reset(s.untilNext(s.cfg.Scheduler.GenerationAt))

		case <-dispatchTimer.C:
			s.runDispatch(runCtx)
			dispatchTimer.Reset(s.untilNext(s.cfg.Scheduler.DispatchAt))
		}
	}
}

func (s *scheduler) shutdown(ctx context.Context) error {
	if s.stop != nil {
		s.stop()
	}

	select {
	case <-s.doneCh:
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}

	return nil
}

// untilNext returns the duration until the next occurrence of the given
// local wall clock time.
func (s *scheduler) untilNext(at string) time.Duration {
	clock, _ := time.Parse(clockLayout, at)

	now := time.Now().In(s.location)
	next := time.Date(now.Year(), now.Month(), now.Day(), clock.Hour(), clock.Minute(), 0, 0, s.location)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}

	return next.Sub(now)
}

func (s *scheduler) runGeneration(ctx context.Context) {
	runCtx, logger := s.scopedLogger(ctx)
	day := s.today()

	summary, err := s.orchestrator.RunGeneration(runCtx, day)
	if err != nil {
		if errors.Is(err, impl.ErrCycleRunning) {
			logger.Warn("Skipping scheduled generation, another cycle is running")

			return
		}
		logger.Error("Scheduled generation failed", slog.Any("error", err))

		return
	}

	logger.Info("Scheduled generation completed",
		slog.String("day", day.Format(time.DateOnly)),
		slog.Int("created", summary.Created),
		slog.Int("skipped", summary.Skipped),
		slog.Int("failed_groups", summary.Failed),
	)
}

func (s *scheduler) runDispatch(ctx context.Context) {
	runCtx, logger := s.scopedLogger(ctx)
	day := s.today()

	summary, err := s.orchestrator.RunDispatch(runCtx, day)
	if err != nil {
		if errors.Is(err, impl.ErrCycleRunning) {
			logger.Warn("Skipping scheduled dispatch, another cycle is running")

			return
		}
		logger.Error("Scheduled dispatch failed", slog.Any("error", err))

		return
	}

	logger.Info("Scheduled dispatch completed",
		slog.String("day", day.Format(time.DateOnly)),
		slog.Int("sent", summary.Sent),
		slog.Int("failed_groups", summary.Failed),
	)

	s.purgeStaleDevices(runCtx, logger)
}

// purgeStaleDevices drops deactivated tokens past the retention window. It
// piggybacks on the dispatch trigger so it runs once a day after deliveries.
func (s *scheduler) purgeStaleDevices(ctx context.Context, logger *slog.Logger) {
	retentionDays := 0
	if s.cfg.Alert != nil {
		retentionDays = s.cfg.Alert.TokenRetentionDays
	}
	if retentionDays <= 0 {
		return
	}

	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	purged, err := s.deviceRepo.PurgeInactive(ctx, cutoff)
	if err != nil {
		logger.Warn("Failed to purge stale devices", slog.Any("error", err))

		return
	}

	if purged > 0 {
		logger.Info("Purged stale devices",
			slog.Int64("purged", purged),
			slog.String("cutoff", cutoff.Format(time.DateOnly)),
		)
	}
}

// scopedLogger stamps a fresh request id on the run so its log lines and
// published events correlate.
func (s *scheduler) scopedLogger(ctx context.Context) (context.Context, *slog.Logger) {
	requestID := uuid.New().String()
	logger := s.logger.With(slog.String("request_id", requestID))

	runCtx := deliverycontext.WithRequestID(ctx, requestID)
	runCtx = deliverycontext.WithLogger(runCtx, logger)

	return runCtx, logger
}

func (s *scheduler) today() time.Time {
	now := time.Now().In(s.location)

	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
