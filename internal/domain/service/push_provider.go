package service

import (
	"context"
)

// MaxBatchTokens is the provider's per-call recipient ceiling. FCM rejects
// multicast requests carrying more tokens than this.
const MaxBatchTokens = 500

// ErrorKind classifies a per-recipient provider failure.
type ErrorKind string

const (
	// ErrorKindNone means the recipient was accepted.
	ErrorKindNone ErrorKind = "none"
	// ErrorKindInvalidToken means the token is malformed or unregistered and
	// will never succeed again; the destination should be deactivated.
	ErrorKindInvalidToken ErrorKind = "invalid_token"
	// ErrorKindTransient covers every other provider failure; the recipient
	// stays eligible for a later cycle.
	ErrorKindTransient ErrorKind = "transient"
)

// PushPayload is one logical notification delivered to a set of destinations.
type PushPayload struct {
	Title    string            `json:"title"`
	Body     string            `json:"body"`
	Data     map[string]string `json:"data,omitempty"`
	Priority string            `json:"priority,omitempty"`
}

// RecipientResult is the provider's verdict for one token of a batch call.
type RecipientResult struct {
	Token string
	OK    bool
	Kind  ErrorKind
}

// PushProvider wraps the external push service.
type PushProvider interface {
	// SendOne delivers the payload to a single token. The ErrorKind
	// classifies the failure when ok is false.
	SendOne(ctx context.Context, token string, payload *PushPayload) (ok bool, kind ErrorKind, err error)

	// SendBatch delivers the payload to up to MaxBatchTokens tokens in one
	// provider call and reports a per-recipient verdict. A non-nil error
	// means the whole call was rejected and no verdicts exist.
	SendBatch(ctx context.Context, tokens []string, payload *PushPayload) ([]RecipientResult, error)
}
