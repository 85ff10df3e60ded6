package pubsub

import (
	"log/slog"
	"time"

	"foodorder/config"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	rabbitMQExchangeKind = "topic"
	// Binds every order.* event type to the notification queue
	orderEventsBindingKey = "order.#"
	rabbitMQDialAttempts  = 5
)

// RabbitMQConnection owns one AMQP connection and channel with the order topology declared
type RabbitMQConnection struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	cfg     *config.RabbitMQConfig
}

// DialRabbitMQ connects to the broker, retrying with a linear backoff, and declares the topology
func DialRabbitMQ(cfg *config.RabbitMQConfig, logger *slog.Logger) (*RabbitMQConnection, error) {
	if cfg == nil || cfg.URL == "" {
		return nil, errors.New("rabbitmq url is required for rabbitmq provider")
	}

	var lastErr error
	for attempt := 1; attempt <= rabbitMQDialAttempts; attempt++ {
		conn, err := dialOnce(cfg)
		if err == nil {
			return conn, nil
		}
		lastErr = err

		if attempt < rabbitMQDialAttempts {
			wait := time.Duration(attempt) * 2 * time.Second
			logger.Warn("RabbitMQ connection failed, retrying",
				slog.Int("attempt", attempt),
				slog.Duration("wait", wait),
				slog.Any("error", err),
			)
			time.Sleep(wait)
		}
	}

	return nil, errors.Wrapf(lastErr, "failed to connect to RabbitMQ after %d attempts", rabbitMQDialAttempts)
}

func dialOnce(cfg *config.RabbitMQConfig) (*RabbitMQConnection, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()

		return nil, errors.WithStack(err)
	}

	c := &RabbitMQConnection{conn: conn, channel: channel, cfg: cfg}
	if err := c.declareTopology(); err != nil {
		c.Close()

		return nil, err
	}

	return c, nil
}

func (c *RabbitMQConnection) declareTopology() error {
	err := c.channel.ExchangeDeclare(
		c.cfg.Exchange,       // name
		rabbitMQExchangeKind, // type
		true,                 // durable
		false,                // auto-deleted
		false,                // internal
		false,                // no-wait
		nil,                  // arguments
	)
	if err != nil {
		return errors.Wrapf(err, "failed to declare exchange %s", c.cfg.Exchange)
	}

	_, err = c.channel.QueueDeclare(
		c.cfg.Queue, // name
		true,        // durable
		false,       // delete when unused
		false,       // exclusive
		false,       // no-wait
		nil,         // arguments
	)
	if err != nil {
		return errors.Wrapf(err, "failed to declare queue %s", c.cfg.Queue)
	}

	if err := c.channel.QueueBind(c.cfg.Queue, orderEventsBindingKey, c.cfg.Exchange, false, nil); err != nil {
		return errors.Wrapf(err, "failed to bind queue %s", c.cfg.Queue)
	}

	return nil
}

// Channel returns the AMQP channel
func (c *RabbitMQConnection) Channel() *amqp.Channel {
	return c.channel
}

// Exchange returns the topic exchange order events are published to
func (c *RabbitMQConnection) Exchange() string {
	return c.cfg.Exchange
}

// Queue returns the queue the notifier consumes from
func (c *RabbitMQConnection) Queue() string {
	return c.cfg.Queue
}

// Prefetch returns the consumer QoS prefetch count
func (c *RabbitMQConnection) Prefetch() int {
	return c.cfg.Prefetch
}

// Close closes the channel and then the connection
func (c *RabbitMQConnection) Close() error {
	if c.channel != nil {
		_ = c.channel.Close()
	}
	if c.conn != nil && !c.conn.IsClosed() {
		return errors.WithStack(c.conn.Close())
	}

	return nil
}
