package messaging

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/dmitrijs2005/pegasus/internal/logging"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher sends a JSON-encoded body to exchange under routingKey.
type Publisher interface {
	Publish(ctx context.Context, exchange, routingKey string, body any) error
	Close()
}

// EventProducer is a Publisher backed by one AMQP connection and channel.
// Exchanges are declared as durable topic exchanges on first use.
type EventProducer struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  logging.Logger

	mu       sync.Mutex
	declared map[string]struct{}
}

var dial = amqp.Dial

func NewEventProducer(amqpURL string, logger logging.Logger) (*EventProducer, error) {
	cleanURL, err := SanitizeURL(amqpURL)
	if err != nil {
		return nil, err
	}

	conn, err := dial(cleanURL)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	return &EventProducer{
		conn:     conn,
		channel:  channel,
		logger:   logger.With("module", "event_producer"),
		declared: make(map[string]struct{}),
	}, nil
}

func (p *EventProducer) declare(exchange string) error {
	if _, ok := p.declared[exchange]; ok {
		return nil
	}
	if err := p.channel.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		return err
	}
	p.declared[exchange] = struct{}{}
	return nil
}

func (p *EventProducer) Publish(ctx context.Context, exchange, routingKey string, body any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.declare(exchange); err != nil {
		return err
	}

	err = p.channel.PublishWithContext(ctx, exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         jsonBody,
	})
	if err != nil {
		return err
	}

	p.logger.Debug(ctx, "published message", "exchange", exchange, "routing_key", routingKey)
	return nil
}

func (p *EventProducer) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}

// LogPublisher is the fallback used when no broker is configured. It only
// records what would have been published.
type LogPublisher struct {
	logger logging.Logger
}

func NewLogPublisher(logger logging.Logger) *LogPublisher {
	return &LogPublisher{logger: logger.With("module", "log_publisher")}
}

func (p *LogPublisher) Publish(ctx context.Context, exchange, routingKey string, body any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return err
	}
	p.logger.Info(ctx, "broker disabled, event not sent", "exchange", exchange, "routing_key", routingKey, "body", string(jsonBody))
	return nil
}

func (p *LogPublisher) Close() {}
