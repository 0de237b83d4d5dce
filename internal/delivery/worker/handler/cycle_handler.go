package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"beacon/config"
	deliverycontext "beacon/internal/delivery/context"
	"beacon/internal/domain/constants"
	"beacon/internal/domain/service"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// CycleHandler handles Pub/Sub push messages carrying cycle events. A
// generation event triggers the dispatch phase for the same day, so pushes
// leave as soon as the alerts exist instead of waiting for the next
// scheduled run.
type CycleHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	orchestrator   usecase.AlertOrchestrator
}

// CycleHandlerParams holds dependencies for the CycleHandler
type CycleHandlerParams struct {
	fx.In

	Config       *config.Config
	Logger       *slog.Logger
	Orchestrator usecase.AlertOrchestrator
}

// NewCycleHandler creates a new Pub/Sub push handler
func NewCycleHandler(params CycleHandlerParams) *CycleHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &CycleHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		orchestrator:   params.Orchestrator,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *CycleHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse cycle event
	var event service.CycleEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse cycle event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)

	// Create request-scoped logger with request_id
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	// Update context with request_id and logger
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing cycle event",
		slog.String("phase", event.Phase),
		slog.String("alert_day", event.AlertDay),
		slog.Int("alert_count", event.AlertCount),
	)

	if err := h.processCycleEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process cycle event",
			slog.String("phase", event.Phase),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *CycleHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.CycleEvent) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if event.RequestID != "" {
		return event.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// processCycleEvent routes a cycle event to the matching pipeline action
func (h *CycleHandler) processCycleEvent(ctx context.Context, event *service.CycleEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	day, err := time.Parse(time.DateOnly, event.AlertDay)
	if err != nil {
		return errors.Wrapf(err, "invalid alert day %q", event.AlertDay)
	}

	switch event.Phase {
	case service.CyclePhaseGeneration:
		if event.AlertCount == 0 {
			logger.Info("[Worker] Generation produced no alerts, skipping dispatch",
				slog.String("alert_day", event.AlertDay),
			)

			return nil
		}

		summary, err := h.orchestrator.RunDispatch(ctx, day)
		if err != nil {
			// Covers ErrCycleRunning too: a concurrent cycle holds the
			// lock, so let Pub/Sub redeliver later.
			return newRetryableError(err)
		}

		logger.Info("[Worker] Dispatch phase completed",
			slog.String("alert_day", event.AlertDay),
			slog.Int("sent", summary.Sent),
			slog.Int("failed_groups", summary.Failed),
		)

		return nil

	case service.CyclePhaseDispatch:
		// Terminal event of the daily cycle, nothing left to run.
		logger.Info("[Worker] Dispatch cycle acknowledged",
			slog.String("alert_day", event.AlertDay),
			slog.Int("alert_count", event.AlertCount),
		)

		return nil

	default:
		return errors.Errorf("unknown cycle phase: %s", event.Phase)
	}
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	// Get the Authorization header
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	// Extract Bearer token
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Construct the expected audience (the push endpoint URL)
	// The audience should be the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	// Validate the token using Google's ID token validator
	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// Verify the token is from Google Pub/Sub
	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	// Verify email is verified (if email claim exists)
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
