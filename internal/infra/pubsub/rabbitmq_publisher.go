package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"foodorder/internal/domain/service"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

const rabbitMQPublishTimeout = 10 * time.Second

// rabbitMQPublisher implements EventPublisher on a RabbitMQ topic exchange,
// routing each event by its type
type rabbitMQPublisher struct {
	conn   *RabbitMQConnection
	logger *slog.Logger
}

// NewRabbitMQPublisher creates a publisher on an established connection
func NewRabbitMQPublisher(conn *RabbitMQConnection, logger *slog.Logger) service.EventPublisher {
	return &rabbitMQPublisher{
		conn:   conn,
		logger: logger,
	}
}

// PublishOrderEvent publishes a persistent JSON message with the event type as routing key
func (p *rabbitMQPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	headers := amqp.Table{}
	for key, value := range event.Attributes() {
		headers[key] = value
	}

	publishing := amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		MessageId:     event.EventID,
		CorrelationId: event.RequestID,
		Timestamp:     event.OccurredAt,
		Type:          event.Type,
		Headers:       headers,
		Body:          body,
	}

	ctx, cancel := context.WithTimeout(ctx, rabbitMQPublishTimeout)
	defer cancel()

	if err := p.conn.Channel().PublishWithContext(
		ctx,
		p.conn.Exchange(), // exchange
		event.Type,        // routing key
		false,             // mandatory
		false,             // immediate
		publishing,
	); err != nil {
		return errors.Wrapf(err, "failed to publish %s to exchange %s", event.Type, p.conn.Exchange())
	}

	p.logger.Info("[RabbitMQ] Event published",
		slog.String("exchange", p.conn.Exchange()),
		slog.String("routing_key", event.Type),
		slog.String("event_id", event.EventID),
		slog.Int("message_size", len(body)),
	)

	return nil
}

// Close closes the underlying connection
func (p *rabbitMQPublisher) Close() error {
	return p.conn.Close()
}
