package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foodorder/config"
	deliverycontext "foodorder/internal/delivery/context"
	"foodorder/internal/domain/service"
	usecasemocks "foodorder/internal/mocks/usecase"
	"foodorder/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.OrderEvent {
	return &service.OrderEvent{
		EventID:      uuid.NewString(),
		Type:         service.OrderEventCreated,
		OrderID:      uuid.NewString(),
		CustomerID:   uuid.NewString(),
		RestaurantID: uuid.NewString(),
		Status:       "created",
		TotalAmount:  25,
	}
}

func pushBody(t *testing.T, event *service.OrderEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = event.EventID
	msg.Message.Attributes = attributes

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *usecasemocks.MockNotifierUsecase) {
	t.Helper()

	notifierUC := usecasemocks.NewMockNotifierUsecase(t)
	h := NewPushHandler(PushHandlerParams{Config: cfg, Logger: testLogger(), NotifierUC: notifierUC})

	return h, notifierUC
}

func push(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	t.Run("processes event with request id from attributes", func(t *testing.T) {
		h, notifierUC := newTestPushHandler(t, &config.Config{})
		event := testEvent()
		notifierUC.EXPECT().ProcessOrderEvent(mock.Anything, mock.MatchedBy(func(e *service.OrderEvent) bool {
			return e.EventID == event.EventID && e.CustomerID == event.CustomerID
		})).Run(func(ctx context.Context, _ *service.OrderEvent) {
			assert.Equal(t, "req-1", deliverycontext.GetRequestIDFromContext(ctx))
		}).Return(&usecase.NotificationResult{Devices: 1, Sent: 1}, nil).Once()

		rec := push(h, pushBody(t, event, map[string]string{"request_id": "req-1"}))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("retryable failure asks for redelivery", func(t *testing.T) {
		h, notifierUC := newTestPushHandler(t, &config.Config{})
		notifierUC.EXPECT().ProcessOrderEvent(mock.Anything, mock.Anything).
			Return(nil, usecase.NewRetryableError(errors.New("db down"))).Once()

		rec := push(h, pushBody(t, testEvent(), nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("permanent failure is acknowledged", func(t *testing.T) {
		h, notifierUC := newTestPushHandler(t, &config.Config{})
		notifierUC.EXPECT().ProcessOrderEvent(mock.Anything, mock.Anything).
			Return(nil, errors.New("unsupported order event type")).Once()

		rec := push(h, pushBody(t, testEvent(), nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("undecodable data", func(t *testing.T) {
		h, _ := newTestPushHandler(t, &config.Config{})

		rec := push(h, `{"message":{"data":"%%%"}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("non json event", func(t *testing.T) {
		h, _ := newTestPushHandler(t, &config.Config{})
		data := base64.StdEncoding.EncodeToString([]byte("not json"))

		rec := push(h, `{"message":{"data":"`+data+`"}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("google provider outside develop verifies token", func(t *testing.T) {
		cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "google"}}
		cfg.Env.Env = "production"
		h, _ := newTestPushHandler(t, cfg)
		require.True(t, h.verifyPushAuth)
		h.verify = func(*http.Request) error { return errors.New("missing authorization header") }

		rec := push(h, pushBody(t, testEvent(), nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("google provider in develop skips verification", func(t *testing.T) {
		cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "google"}}
		cfg.Env.Env = "develop"
		h, _ := newTestPushHandler(t, cfg)

		assert.False(t, h.verifyPushAuth)
	})
}

func TestVerifyPubSubToken_RejectsMalformedHeaders(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "missing"},
		{name: "not bearer", header: "Basic abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/push", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			assert.Error(t, verifyPubSubToken(req))
		})
	}
}

func TestDeliveryHandler_HandleDelivery(t *testing.T) {
	body, err := json.Marshal(testEvent())
	require.NoError(t, err)

	tests := []struct {
		name   string
		body   []byte
		setup  func(m *usecasemocks.MockNotifierUsecase)
		expect Disposition
	}{
		{
			name: "processed",
			body: body,
			setup: func(m *usecasemocks.MockNotifierUsecase) {
				m.EXPECT().ProcessOrderEvent(mock.Anything, mock.Anything).Return(&usecase.NotificationResult{}, nil).Once()
			},
			expect: DispositionAck,
		},
		{
			name: "retryable",
			body: body,
			setup: func(m *usecasemocks.MockNotifierUsecase) {
				m.EXPECT().ProcessOrderEvent(mock.Anything, mock.Anything).
					Return(nil, usecase.NewRetryableError(errors.New("db down"))).Once()
			},
			expect: DispositionRequeue,
		},
		{
			name: "permanent",
			body: body,
			setup: func(m *usecasemocks.MockNotifierUsecase) {
				m.EXPECT().ProcessOrderEvent(mock.Anything, mock.Anything).Return(nil, errors.New("invalid customer id")).Once()
			},
			expect: DispositionReject,
		},
		{
			name:   "malformed body",
			body:   []byte("{"),
			setup:  func(*usecasemocks.MockNotifierUsecase) {},
			expect: DispositionReject,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifierUC := usecasemocks.NewMockNotifierUsecase(t)
			tt.setup(notifierUC)
			h := NewDeliveryHandler(DeliveryHandlerParams{Logger: testLogger(), NotifierUC: notifierUC})

			got := h.HandleDelivery(context.Background(), &amqp.Delivery{Body: tt.body})

			assert.Equal(t, tt.expect, got)
		})
	}
}

func TestResolveRequestID(t *testing.T) {
	event := testEvent()

	assert.Equal(t, "header", resolveRequestID(context.Background(), event, "", "header"))

	event.RequestID = "from-event"
	assert.Equal(t, "from-event", resolveRequestID(context.Background(), event, ""))

	event.RequestID = ""
	ctx := deliverycontext.WithRequestID(context.Background(), "from-ctx")
	assert.Equal(t, "from-ctx", resolveRequestID(ctx, event))

	_, err := uuid.Parse(resolveRequestID(context.Background(), event))
	assert.NoError(t, err)
}
