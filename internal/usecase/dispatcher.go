package usecase

import (
	"context"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/service"

	"github.com/google/uuid"
)

// DispatchResult aggregates the outcome of delivering one payload to a set
// of devices.
type DispatchResult struct {
	// Sent is the number of devices the provider accepted.
	Sent int
	// Failed is the number of devices the provider rejected.
	Failed int
	// SucceededUserIDs holds each user who received the payload on at
	// least one device, deduplicated.
	SucceededUserIDs []uuid.UUID
	// InvalidTokens holds tokens the provider marked dead; they are
	// deactivated before the result is returned.
	InvalidTokens []string
}

// Dispatcher delivers one payload to device sets, chunking to the provider's
// batch ceiling and reconciling dead tokens with the device store.
type Dispatcher interface {
	// SendToOne delivers the payload to a single device. An invalid token
	// is deactivated and reported as ok=false with a nil error.
	SendToOne(ctx context.Context, device *entity.UserDevice, payload *service.PushPayload) (bool, error)

	// SendToMany delivers the payload to every given device. Partial
	// provider failures do not abort the call; the result reflects the
	// per-device verdicts of every chunk that went out.
	SendToMany(ctx context.Context, devices []*entity.UserDevice, payload *service.PushPayload) (*DispatchResult, error)
}
