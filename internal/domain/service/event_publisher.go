package service

import (
	"context"
	"time"
)

// Order event types, also used as routing keys.
const (
	OrderEventCreated       = "order.created"
	OrderEventStatusChanged = "order.status_changed"
)

// OrderEvent is emitted after an order is committed or its status changes
type OrderEvent struct {
	RequestID      string    `json:"request_id,omitempty"` // For distributed tracing
	EventID        string    `json:"event_id"`
	Type           string    `json:"type"`
	OrderID        string    `json:"order_id"`
	CustomerID     string    `json:"customer_id"`
	RestaurantID   string    `json:"restaurant_id"`
	RestaurantName string    `json:"restaurant_name"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	TotalAmount    float64   `json:"total_amount"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// Attributes returns the message attributes used for filtering and tracing.
func (e *OrderEvent) Attributes() map[string]string {
	attributes := map[string]string{
		"event_id":      e.EventID,
		"event_type":    e.Type,
		"order_id":      e.OrderID,
		"restaurant_id": e.RestaurantID,
	}
	if e.RequestID != "" {
		attributes["request_id"] = e.RequestID
	}

	return attributes
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
