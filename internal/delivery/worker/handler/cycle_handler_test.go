package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"beacon/internal/domain/service"
	mockUsecase "beacon/internal/mocks/usecase"
	"beacon/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCycleHandler(t *testing.T) (*CycleHandler, *mockUsecase.MockAlertOrchestrator) {
	orchestrator := mockUsecase.NewMockAlertOrchestrator(t)
	h := &CycleHandler{
		verifyPushAuth: false,
		logger:         slog.Default(),
		orchestrator:   orchestrator,
	}

	return h, orchestrator
}

func pushRequest(t *testing.T, event *service.CycleEvent) (*http.Request, *httptest.ResponseRecorder) {
	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "msg-1"
	msg.Subscription = "projects/test/subscriptions/alert-cycle-sub"

	body, err := json.Marshal(&msg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req, httptest.NewRecorder()
}

func TestCycleHandler_GenerationEventTriggersDispatch(t *testing.T) {
	h, orchestrator := createTestCycleHandler(t)

	orchestrator.EXPECT().
		RunDispatch(mock.Anything, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)).
		Return(&usecase.CycleSummary{Sent: 7}, nil)

	req, rec := pushRequest(t, &service.CycleEvent{
		Phase:      service.CyclePhaseGeneration,
		AlertDay:   "2025-06-15",
		AlertCount: 7,
	})
	err := h.HandlePush(echo.New().NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCycleHandler_GenerationEventWithoutAlertsSkipsDispatch(t *testing.T) {
	h, _ := createTestCycleHandler(t)

	req, rec := pushRequest(t, &service.CycleEvent{
		Phase:      service.CyclePhaseGeneration,
		AlertDay:   "2025-06-15",
		AlertCount: 0,
	})
	err := h.HandlePush(echo.New().NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCycleHandler_DispatchFailureRequestsRetry(t *testing.T) {
	h, orchestrator := createTestCycleHandler(t)

	orchestrator.EXPECT().
		RunDispatch(mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	req, rec := pushRequest(t, &service.CycleEvent{
		Phase:      service.CyclePhaseGeneration,
		AlertDay:   "2025-06-15",
		AlertCount: 3,
	})
	err := h.HandlePush(echo.New().NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCycleHandler_DispatchEventAcknowledged(t *testing.T) {
	h, _ := createTestCycleHandler(t)

	req, rec := pushRequest(t, &service.CycleEvent{
		Phase:      service.CyclePhaseDispatch,
		AlertDay:   "2025-06-15",
		AlertCount: 7,
	})
	err := h.HandlePush(echo.New().NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCycleHandler_UnknownPhaseIsNotRetried(t *testing.T) {
	h, _ := createTestCycleHandler(t)

	req, rec := pushRequest(t, &service.CycleEvent{
		Phase:    "rebalance",
		AlertDay: "2025-06-15",
	})
	err := h.HandlePush(echo.New().NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCycleHandler_InvalidAlertDayIsNotRetried(t *testing.T) {
	h, _ := createTestCycleHandler(t)

	req, rec := pushRequest(t, &service.CycleEvent{
		Phase:      service.CyclePhaseGeneration,
		AlertDay:   "15-06-2025",
		AlertCount: 1,
	})
	err := h.HandlePush(echo.New().NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCycleHandler_MalformedDataReturnsBadRequest(t *testing.T) {
	h, _ := createTestCycleHandler(t)

	body, err := json.Marshal(map[string]any{
		"message":      map[string]any{"data": "not-base64!!", "messageId": "msg-1"},
		"subscription": "projects/test/subscriptions/alert-cycle-sub",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err = h.HandlePush(echo.New().NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
