package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"
	"beacon/internal/infra/metrics"
	"beacon/internal/usecase"

	"github.com/google/uuid"
)

type dispatcher struct {
	provider    service.PushProvider
	deviceRepo  repository.DeviceRepository
	metrics     *metrics.Metrics
	logger      *slog.Logger
	batchSize   int
	sendTimeout time.Duration
}

// NewDispatcher creates a new push dispatcher instance
func NewDispatcher(
	provider service.PushProvider,
	deviceRepo repository.DeviceRepository,
	m *metrics.Metrics,
	logger *slog.Logger,
	batchSize int,
	sendTimeout time.Duration,
) usecase.Dispatcher {
	if batchSize <= 0 || batchSize > service.MaxBatchTokens {
		batchSize = service.MaxBatchTokens
	}

	return &dispatcher{
		provider:    provider,
		deviceRepo:  deviceRepo,
		metrics:     m,
		logger:      logger,
		batchSize:   batchSize,
		sendTimeout: sendTimeout,
	}
}

// SendToOne delivers the payload to a single device. An invalid token is
// deactivated and reported as a plain failure, not an error.
func (d *dispatcher) SendToOne(ctx context.Context, device *entity.UserDevice, payload *service.PushPayload) (bool, error) {
	sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	defer cancel()

	ok, kind, err := d.provider.SendOne(sendCtx, device.Token, payload)
	if ok {
		d.metrics.PushSent.Inc()
		d.touch(ctx, device.Token)

		return true, nil
	}

	d.metrics.PushFailed.Inc()

	if kind == service.ErrorKindInvalidToken {
		d.deactivate(ctx, device.Token)

		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("failed to send to device %s: %w", device.ID, err)
	}

	return false, nil
}

// SendToMany delivers the payload to every given device, chunked to the
// provider's batch ceiling. A failed chunk counts its devices as failed and
// the remaining chunks still go out.
func (d *dispatcher) SendToMany(ctx context.Context, devices []*entity.UserDevice, payload *service.PushPayload) (*usecase.DispatchResult, error) {
	result := &usecase.DispatchResult{}
	if len(devices) == 0 {
		return result, nil
	}

	tokens := make([]string, 0, len(devices))
	deviceByToken := make(map[string]*entity.UserDevice, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.Token)
		deviceByToken[device.Token] = device
	}

	succeededUsers := make(map[uuid.UUID]struct{})

	for start := 0; start < len(tokens); start += d.batchSize {
		end := start + d.batchSize
		if end > len(tokens) {
			end = len(tokens)
		}
		chunk := tokens[start:end]

		verdicts, err := d.sendChunk(ctx, chunk, payload)
		if err != nil {
			// The whole chunk was rejected; later chunks still go out.
			d.logger.Warn("push chunk rejected",
				slog.Int("chunk_size", len(chunk)),
				slog.Any("error", err),
			)
			result.Failed += len(chunk)
			d.metrics.PushFailed.Add(float64(len(chunk)))

			continue
		}

		for _, verdict := range verdicts {
			device := deviceByToken[verdict.Token]

			if verdict.OK {
				result.Sent++
				d.metrics.PushSent.Inc()
				succeededUsers[device.UserID] = struct{}{}
				d.touch(ctx, verdict.Token)

				continue
			}

			result.Failed++
			d.metrics.PushFailed.Inc()

			if verdict.Kind == service.ErrorKindInvalidToken {
				result.InvalidTokens = append(result.InvalidTokens, verdict.Token)
				d.deactivate(ctx, verdict.Token)
			}
		}
	}

	result.SucceededUserIDs = make([]uuid.UUID, 0, len(succeededUsers))
	for userID := range succeededUsers {
		result.SucceededUserIDs = append(result.SucceededUserIDs, userID)
	}

	return result, nil
}

func (d *dispatcher) sendChunk(ctx context.Context, tokens []string, payload *service.PushPayload) ([]service.RecipientResult, error) {
	sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	defer cancel()

	return d.provider.SendBatch(sendCtx, tokens, payload)
}

// touch is best effort; a failed stamp never fails the dispatch.
func (d *dispatcher) touch(ctx context.Context, token string) {
	if err := d.deviceRepo.TouchLastUsed(ctx, token); err != nil {
		d.logger.Warn("failed to touch device last_used_at", slog.Any("error", err))
	}
}

// deactivate is best effort; a failed cleanup never fails the dispatch.
func (d *dispatcher) deactivate(ctx context.Context, token string) {
	d.metrics.InvalidTokens.Inc()
	if err := d.deviceRepo.DeactivateByToken(ctx, token); err != nil {
		d.logger.Warn("failed to deactivate invalid device token", slog.Any("error", err))
	}
}
