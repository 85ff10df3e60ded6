package handler

import (
	"context"
	"encoding/json"
	"log/slog"

	"foodorder/internal/domain/service"
	"foodorder/internal/usecase"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

// Disposition is how a consumed delivery is settled with the broker
type Disposition int

const (
	// DispositionAck acknowledges the delivery
	DispositionAck Disposition = iota
	// DispositionRequeue nacks the delivery back onto the queue
	DispositionRequeue
	// DispositionReject nacks the delivery without requeueing it
	DispositionReject
)

func (d Disposition) String() string {
	switch d {
	case DispositionAck:
		return "ack"
	case DispositionRequeue:
		return "requeue"
	case DispositionReject:
		return "reject"
	default:
		return "unknown"
	}
}

// DeliveryHandlerParams holds dependencies for the DeliveryHandler
type DeliveryHandlerParams struct {
	fx.In

	Logger     *slog.Logger
	NotifierUC usecase.NotifierUsecase
}

// DeliveryHandler turns AMQP deliveries into notifier calls
type DeliveryHandler struct {
	logger     *slog.Logger
	notifierUC usecase.NotifierUsecase
}

// NewDeliveryHandler creates a new AMQP delivery handler
func NewDeliveryHandler(params DeliveryHandlerParams) *DeliveryHandler {
	return &DeliveryHandler{
		logger:     params.Logger,
		notifierUC: params.NotifierUC,
	}
}

// HandleDelivery processes one delivery and reports how it should be settled
func (h *DeliveryHandler) HandleDelivery(ctx context.Context, d *amqp.Delivery) Disposition {
	var event service.OrderEvent
	if err := json.Unmarshal(d.Body, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse order event",
			slog.String("message_id", d.MessageId),
			slog.String("routing_key", d.RoutingKey),
			slog.Any("error", err),
		)

		return DispositionReject
	}

	headerRequestID, _ := d.Headers["request_id"].(string)
	if err := processEvent(ctx, h.logger, h.notifierUC, &event, headerRequestID, d.CorrelationId); err != nil {
		if usecase.IsRetryableError(err) {
			return DispositionRequeue
		}

		return DispositionReject
	}

	return DispositionAck
}
