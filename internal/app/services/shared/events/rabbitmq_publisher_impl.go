package events

import (
	"caremarket-service/internal/app/contracts"
	"caremarket-service/internal/pkg/constvars"
	"caremarket-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher sends domain events to a durable topic exchange. A single
// channel is shared; amqp channels are not safe for concurrent publish.
type Publisher struct {
	ch       *amqp.Channel
	exchange string
	log      *zap.Logger
	mu       sync.Mutex
}

func NewRabbitMQPublisher(conn *amqp.Connection, exchange string, logger *zap.Logger) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &Publisher{ch: ch, exchange: exchange, log: logger}, nil
}

var _ contracts.EventPublisher = (*Publisher)(nil)

func (p *Publisher) PublishJSON(ctx context.Context, routingKey string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		p.log.Error("Publisher.PublishJSON failed",
			zap.String(constvars.LoggingRoutingKey, routingKey),
			zap.String(constvars.LoggingErrorTypeKey, constvars.ErrorTypePublishEvent),
			zap.Error(err),
		)
		return exceptions.ErrPublishEvent(err)
	}
	return nil
}

func (p *Publisher) Close() error {
	if p.ch == nil {
		return nil
	}
	return p.ch.Close()
}
