// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"beacon/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to create a device that already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository is the durable token store for push destinations. Reads
// are safe for concurrent use; TouchLastUsed and DeactivateByToken are
// per-token writes requiring no cross-caller coordination.
type DeviceRepository interface {
	// CreateDevice persists a new device for a user. Any previously active
	// device of the same (user, platform) pair is deactivated in the same
	// call, so at most one active destination exists per pair.
	CreateDevice(ctx context.Context, device *entity.UserDevice) error

	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)

	// FindActiveDevicesByUser retrieves all active devices for a specific user.
	FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// FindActiveDevicesForUsers retrieves all active devices for the given
	// users. No ordering guarantee; an empty input yields an empty result
	// without error.
	FindActiveDevicesForUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.UserDevice, error)

	// TouchLastUsed stamps last_used_at for the device holding the token.
	// Best effort; callers log failures instead of propagating them.
	TouchLastUsed(ctx context.Context, token string) error

	// DeactivateByToken marks the device holding the token inactive so
	// future lookups exclude it. Idempotent; unknown tokens are a no-op.
	DeactivateByToken(ctx context.Context, token string) error

	// DeactivateDevice marks a device inactive by its ID.
	DeactivateDevice(ctx context.Context, id uuid.UUID) error

	// PurgeInactive hard-deletes inactive devices not used since the given
	// time and returns how many rows were removed.
	PurgeInactive(ctx context.Context, unusedSince time.Time) (int64, error)
}
