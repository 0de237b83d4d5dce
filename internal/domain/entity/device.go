// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserDevice represents one push-capable destination (device) of a user.
type UserDevice struct {
	ID         uuid.UUID  `json:"id"`           // The Global Unique Identifier (GUID) for the device.
	UserID     uuid.UUID  `json:"user_id"`      // The ID of the user who owns this device.
	Token      string     `json:"token"`        // Firebase Cloud Messaging token for push notifications.
	Platform   string     `json:"platform"`     // Device platform (ios, android).
	IsActive   bool       `json:"is_active"`    // Indicates if this device is targeted by dispatch.
	LastUsedAt *time.Time `json:"last_used_at"` // Timestamp of the last successful send, nil if never used.
	CreatedAt  time.Time  `json:"created_at"`   // Timestamp of when this device was registered.
	UpdatedAt  time.Time  `json:"updated_at"`   // Timestamp of the last modification.
}
