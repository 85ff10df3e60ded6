package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"foodorder/config"
	"foodorder/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.OrderEvent {
	return &service.OrderEvent{
		RequestID:    "req-123",
		EventID:      "evt-1",
		Type:         service.OrderEventCreated,
		OrderID:      "order-1",
		CustomerID:   "customer-1",
		RestaurantID: "restaurant-1",
		Status:       "created",
		TotalAmount:  42.5,
		OccurredAt:   time.Now().UTC(),
	}
}

func TestNewEventPublisher_NoopWhenUnconfigured(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	publisher, err := NewEventPublisher(PublisherParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: testLogger(),
	})
	require.NoError(t, err)

	_, isNoop := publisher.(*noopPublisher)
	assert.True(t, isNoop)
	assert.NoError(t, publisher.PublishOrderEvent(context.Background(), testEvent()))
	assert.NoError(t, publisher.Close())
}

func TestNewEventPublisher_ConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
	}{
		{"local without endpoint", &config.Config{PubSub: &config.PubSubConfig{Provider: "local"}}},
		{"google without project", &config.Config{PubSub: &config.PubSubConfig{Provider: "google", TopicID: "t"}}},
		{"google without topic", &config.Config{PubSub: &config.PubSubConfig{Provider: "google", ProjectID: "p"}}},
		{"rabbitmq without url", &config.Config{PubSub: &config.PubSubConfig{Provider: "rabbitmq"}}},
		{"unknown provider", &config.Config{PubSub: &config.PubSubConfig{Provider: "kafka"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: tt.cfg,
				Logger: testLogger(),
			})
			assert.Error(t, err)
			assert.Nil(t, publisher)
		})
	}
}

func TestLocalHTTPPublisher_PublishOrderEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	event := testEvent()
	publisher := NewLocalHTTPPublisher(server.URL, testLogger())

	require.NoError(t, publisher.PublishOrderEvent(context.Background(), event))

	assert.Equal(t, "req-123", requestID)
	assert.Equal(t, event.EventID, received.Message.MessageID)
	assert.Equal(t, service.OrderEventCreated, received.Message.Attributes["event_type"])
	assert.Equal(t, "order-1", received.Message.Attributes["order_id"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.OrderEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, event.OrderID, decoded.OrderID)
	assert.Equal(t, event.TotalAmount, decoded.TotalAmount)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())

	err := publisher.PublishOrderEvent(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
