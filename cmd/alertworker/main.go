package main

import (
	"context"
	"log/slog"
	"os"

	"beacon/config"
	"beacon/internal/delivery"
	"beacon/internal/delivery/scheduler"
	"beacon/internal/delivery/worker"
	"beacon/internal/delivery/worker/handler"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"
	logs "beacon/internal/infra/log"
	"beacon/internal/infra/metrics"
	"beacon/internal/infra/notification"
	"beacon/internal/infra/persistence/postgres"
	"beacon/internal/infra/pubsub"
	"beacon/internal/usecase"
	"beacon/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		metrics.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewCampaignRepository,
			postgres.NewKeywordRepository,
			postgres.NewAlertRepository,
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPushProvider,
			pubsub.NewEventPublisher,
		),
	)
}

// newPushProvider creates the FCM provider with dependency injection
func newPushProvider(ctx context.Context, cfg *config.Config) (service.PushProvider, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		return nil, errors.New("firebase credentials are required for push dispatch")
	}

	return notification.NewFCMProvider(ctx, cfg.Firebase.CredentialsPath)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newDispatcher,
			newAlertGenerator,
			impl.NewAlertSender,
			newAlertOrchestrator,
		),
	)
}

// newDispatcher creates the dispatcher with batch settings from config
func newDispatcher(
	provider service.PushProvider,
	deviceRepo repository.DeviceRepository,
	m *metrics.Metrics,
	logger *slog.Logger,
	cfg *config.Config,
) usecase.Dispatcher {
	return impl.NewDispatcher(provider, deviceRepo, m, logger, cfg.Alert.BatchSize, cfg.Alert.SendTimeout)
}

// newAlertGenerator creates the generator with qualification settings from config
func newAlertGenerator(
	alertRepo repository.AlertRepository,
	keywordRepo repository.KeywordRepository,
	m *metrics.Metrics,
	logger *slog.Logger,
	cfg *config.Config,
) usecase.AlertGenerator {
	return impl.NewAlertGenerator(alertRepo, keywordRepo, m, logger,
		cfg.Alert.DeadlineWindowDays, cfg.Alert.KeywordMatchThreshold)
}

// newAlertOrchestrator creates the orchestrator with pool settings from config
func newAlertOrchestrator(
	campaignRepo repository.CampaignRepository,
	keywordRepo repository.KeywordRepository,
	alertRepo repository.AlertRepository,
	generator usecase.AlertGenerator,
	sender usecase.AlertSender,
	publisher service.EventPublisher,
	m *metrics.Metrics,
	logger *slog.Logger,
	cfg *config.Config,
) usecase.AlertOrchestrator {
	return impl.NewAlertOrchestrator(campaignRepo, keywordRepo, alertRepo, generator, sender,
		publisher, m, logger, cfg.Alert.Workers, cfg.Alert.DeadlineWindowDays)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCycleHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.New,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
