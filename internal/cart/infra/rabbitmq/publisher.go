package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const ItemAddedType = "cart.item_added"

type Config struct {
	URL      string
	Exchange string
	Queue    string
}

// channel is the subset of *amqp.Channel the publisher needs.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Publisher sends cart events to RabbitMQ as JSON messages.
type Publisher struct {
	ch       channel
	exchange string
	key      string
	closers  []func() error
}

// Dial connects to the broker, declares a durable queue and returns a
// publisher routing to it.
func Dial(cfg Config) (*Publisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.Queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare queue %q: %w", cfg.Queue, err)
	}

	if cfg.Exchange != "" {
		if err := ch.QueueBind(q.Name, q.Name, cfg.Exchange, false, nil); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return nil, fmt.Errorf("bind queue %q to %q: %w", q.Name, cfg.Exchange, err)
		}
	}

	p := newPublisher(ch, cfg.Exchange, q.Name)
	p.closers = []func() error{ch.Close, conn.Close}
	return p, nil
}

func newPublisher(ch channel, exchange, key string) *Publisher {
	return &Publisher{ch: ch, exchange: exchange, key: key}
}

func (p *Publisher) PublishItemAdded(ctx context.Context, ev domain.ItemAdded) error {
	msg, err := itemAddedMessage(ev)
	if err != nil {
		return err
	}
	if err := p.ch.PublishWithContext(ctx, p.exchange, p.key, false, false, msg); err != nil {
		return fmt.Errorf("publish %s: %w", ItemAddedType, err)
	}
	return nil
}

func (p *Publisher) Close() error {
	var first error
	for _, c := range p.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func itemAddedMessage(ev domain.ItemAdded) (amqp.Publishing, error) {
	body, err := json.Marshal(ev)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("marshal %s: %w", ItemAddedType, err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Type:         ItemAddedType,
		MessageId:    uuid.NewString(),
		Timestamp:    ev.OccurredAt,
		Body:         body,
	}, nil
}
