package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/pegasus/internal/logging"
)

// LoopbackPublisher delivers messages straight to in-process handlers keyed
// by routing key. It stands in for the broker in single-process setups.
// Messages without a handler go to fallback.
type LoopbackPublisher struct {
	handlers map[string]Handler
	fallback Publisher
	logger   logging.Logger
}

func NewLoopbackPublisher(handlers map[string]Handler, fallback Publisher, logger logging.Logger) *LoopbackPublisher {
	return &LoopbackPublisher{handlers: handlers, fallback: fallback, logger: logger.With("module", "loopback_publisher")}
}

// Publish runs the handler synchronously. A handler reporting failure turns
// into an error so the caller can retry the same way it would after a
// broker failure.
func (p *LoopbackPublisher) Publish(ctx context.Context, exchange, routingKey string, body any) error {
	handler, ok := p.handlers[routingKey]
	if !ok {
		return p.fallback.Publish(ctx, exchange, routingKey, body)
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return err
	}
	p.logger.Debug(ctx, "delivering in process", "exchange", exchange, "routing_key", routingKey)

	if !handler(ctx, jsonBody) {
		return fmt.Errorf("handler for %q rejected message", routingKey)
	}
	return nil
}

func (p *LoopbackPublisher) Close() {
	p.fallback.Close()
}
