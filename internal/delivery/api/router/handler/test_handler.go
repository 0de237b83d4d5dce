package handler

import (
	"net/http"
	"time"

	"beacon/internal/delivery/api/middleware"
	"beacon/internal/delivery/api/response"
	"beacon/internal/usecase"
	"beacon/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// TestHandlerParams holds dependencies for TestHandler, injected by Fx.
type TestHandlerParams struct {
	fx.In

	Orchestrator usecase.AlertOrchestrator
}

// TestHandler handles test endpoints for middleware validation and manual
// cycle triggers. Only registered when testRoutes.enabled is set.
type TestHandler struct {
	orchestrator usecase.AlertOrchestrator
}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler(params TestHandlerParams) *TestHandler {
	return &TestHandler{orchestrator: params.Orchestrator}
}

// TestAuthMiddleware tests the authentication middleware
// This endpoint requires a valid JWT token in the Authorization header
func (h *TestHandler) TestAuthMiddleware(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Authentication middleware test successful",
		"userID":  userID,
		"status":  "authenticated",
	})
}

// TestPublicEndpoint tests a public endpoint (no authentication required)
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Public endpoint test successful",
		"status":  "public",
	})
}

// TriggerGeneration runs the generation phase for the given day (default today)
func (h *TestHandler) TriggerGeneration(c echo.Context) error {
	day, err := parseDay(c.QueryParam("day"))
	if err != nil {
		return response.BadRequest(c, "INVALID_DAY", "Day must be formatted as YYYY-MM-DD")
	}

	summary, err := h.orchestrator.RunGeneration(c.Request().Context(), day)
	if err != nil {
		if errors.Is(err, impl.ErrCycleRunning) {
			return response.Conflict(c, "CYCLE_RUNNING", "Another cycle run is still active")
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}

// TriggerDispatch runs the dispatch phase for the given day (default today)
func (h *TestHandler) TriggerDispatch(c echo.Context) error {
	day, err := parseDay(c.QueryParam("day"))
	if err != nil {
		return response.BadRequest(c, "INVALID_DAY", "Day must be formatted as YYYY-MM-DD")
	}

	summary, err := h.orchestrator.RunDispatch(c.Request().Context(), day)
	if err != nil {
		if errors.Is(err, impl.ErrCycleRunning) {
			return response.Conflict(c, "CYCLE_RUNNING", "Another cycle run is still active")
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}

// CyclePhases reports the current phase of both cycles
func (h *TestHandler) CyclePhases(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"generation": string(h.orchestrator.GenerationPhase()),
		"dispatch":   string(h.orchestrator.DispatchPhase()),
	})
}

func parseDay(raw string) (time.Time, error) {
	if raw == "" {
		now := time.Now().UTC()

		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}

	return time.Parse(time.DateOnly, raw)
}
