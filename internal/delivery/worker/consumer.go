package worker

import (
	"context"
	"log/slog"
	"sync"

	"foodorder/config"
	"foodorder/internal/delivery"
	"foodorder/internal/delivery/worker/handler"
	"foodorder/internal/domain/constants"
	"foodorder/internal/infra/pubsub"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

const consumerTag = "foodorder-notifier"

// acknowledger settles a delivery with the broker; amqp.Delivery satisfies it
type acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

type amqpConsumer struct {
	cfg      *config.Config
	logger   *slog.Logger
	handler  *handler.DeliveryHandler
	conn     *pubsub.RabbitMQConnection
	stopOnce sync.Once
	stopped  chan struct{}
}

// ConsumerParams holds dependencies for the AMQP consumer
type ConsumerParams struct {
	fx.In

	Lc      fx.Lifecycle
	Cfg     *config.Config
	Logger  *slog.Logger
	Handler *handler.DeliveryHandler
}

// NewConsumer creates the AMQP order event consumer.
// It only connects when the rabbitmq provider is configured; otherwise Serve returns at once.
func NewConsumer(params ConsumerParams) (delivery.Delivery, error) {
	c := &amqpConsumer{
		cfg:     params.Cfg,
		logger:  params.Logger,
		handler: params.Handler,
		stopped: make(chan struct{}),
	}

	if !c.enabled() {
		return c, nil
	}

	conn, err := pubsub.DialRabbitMQ(params.Cfg.RabbitMQ, params.Logger)
	if err != nil {
		return nil, err
	}
	c.conn = conn

	params.Lc.Append(fx.Hook{
		OnStop: c.stop,
	})

	return c, nil
}

func (c *amqpConsumer) enabled() bool {
	return c.cfg.PubSub != nil && c.cfg.PubSub.Provider == constants.PubSubProviderRabbitMQ
}

// Serve consumes order events until the consumer is stopped
func (c *amqpConsumer) Serve(ctx context.Context) error {
	if c.conn == nil {
		c.logger.Info("AMQP consumer disabled, pubsub provider is not rabbitmq")

		return nil
	}

	channel := c.conn.Channel()
	if err := channel.Qos(c.conn.Prefetch(), 0, false); err != nil {
		return errors.Wrap(err, "failed to set consumer prefetch")
	}

	deliveries, err := channel.Consume(
		c.conn.Queue(), // queue
		consumerTag,    // consumer
		false,          // auto-ack
		false,          // exclusive
		false,          // no-local
		false,          // no-wait
		nil,            // args
	)
	if err != nil {
		return errors.Wrapf(err, "failed to consume queue %s", c.conn.Queue())
	}

	c.logger.Info("Starting AMQP consumer",
		slog.String("queue", c.conn.Queue()),
		slog.Int("prefetch", c.conn.Prefetch()),
	)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-c.stopped:
			return nil
		case d, ok := <-deliveries:
			if !ok {
				select {
				case <-c.stopped:
					return nil
				default:
					return errors.New("amqp delivery channel closed")
				}
			}

			c.settle(&d, c.handler.HandleDelivery(ctx, &d))
		}
	}
}

func (c *amqpConsumer) settle(d *amqp.Delivery, disposition handler.Disposition) {
	if err := settle(d, disposition); err != nil {
		c.logger.Error("Failed to settle delivery",
			slog.String("message_id", d.MessageId),
			slog.String("disposition", disposition.String()),
			slog.Any("error", err),
		)
	}
}

func settle(ack acknowledger, disposition handler.Disposition) error {
	switch disposition {
	case handler.DispositionAck:
		return errors.WithStack(ack.Ack(false))
	case handler.DispositionRequeue:
		return errors.WithStack(ack.Nack(false, true))
	default:
		return errors.WithStack(ack.Nack(false, false))
	}
}

func (c *amqpConsumer) stop(ctx context.Context) error {
	c.logger.Info("Shutting down AMQP consumer")

	c.stopOnce.Do(func() { close(c.stopped) })
	if err := c.conn.Channel().Cancel(consumerTag, false); err != nil {
		c.logger.Warn("Failed to cancel consumer", slog.Any("error", err))
	}

	return c.conn.Close()
}
