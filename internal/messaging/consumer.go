package messaging

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/pegasus/internal/logging"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Handler processes one message body. Returning false requeues the message.
type Handler func(ctx context.Context, body []byte) bool

type Consumer struct {
	conn   *amqp.Connection
	ch     *amqp.Channel
	logger logging.Logger
}

func NewConsumer(amqpURL string, logger logging.Logger) (*Consumer, error) {
	cleanURL, err := SanitizeURL(amqpURL)
	if err != nil {
		return nil, err
	}

	conn, err := dial(cleanURL)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	return &Consumer{conn: conn, ch: ch, logger: logger.With("module", "consumer")}, nil
}

// ConsumeWithBindings declares exchange and a durable queue, binds one
// routing key per handler and dispatches deliveries until ctx ends or the
// channel closes.
func (c *Consumer) ConsumeWithBindings(ctx context.Context, exchange, queueName string, bindings map[string]Handler) error {
	if len(bindings) == 0 {
		return errors.New("no bindings provided")
	}

	if err := c.ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		return err
	}

	q, err := c.ch.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		return err
	}

	handlers := make(map[string]Handler, len(bindings))
	for routingKey, handler := range bindings {
		if handler == nil {
			continue
		}
		handlers[routingKey] = handler
		if err := c.ch.QueueBind(q.Name, routingKey, exchange, false, nil); err != nil {
			return err
		}
	}

	msgs, err := c.ch.Consume(q.Name, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	go dispatch(ctx, msgs, handlers, c.logger)
	return nil
}

func dispatch(ctx context.Context, msgs <-chan amqp.Delivery, handlers map[string]Handler, logger logging.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-msgs:
			if !ok {
				return
			}
			handler, found := handlers[d.RoutingKey]
			if !found {
				logger.Warn(ctx, "no handler for routing key, dropping", "routing_key", d.RoutingKey)
				_ = d.Ack(false)
				continue
			}
			if handler(ctx, d.Body) {
				_ = d.Ack(false)
			} else {
				logger.Warn(ctx, "handler failed, requeueing", "routing_key", d.RoutingKey)
				_ = d.Nack(false, true)
			}
		}
	}
}

func (c *Consumer) Close() {
	if c.ch != nil {
		c.ch.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
}
