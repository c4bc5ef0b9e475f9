package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	exchange, key string
	msg           amqp.Publishing
}

type fakeChannel struct {
	sent []published
	err  error
}

func (f *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func TestPublishItemAdded(t *testing.T) {
	ch := &fakeChannel{}
	p := newPublisher(ch, "shop", "cart-events")

	at := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	ev := domain.ItemAdded{ProductID: 3, Quantity: 2, TotalItems: 4, TotalPrice: 30960, OccurredAt: at}

	require.NoError(t, p.PublishItemAdded(context.Background(), ev))
	require.Len(t, ch.sent, 1)

	got := ch.sent[0]
	assert.Equal(t, "shop", got.exchange)
	assert.Equal(t, "cart-events", got.key)
	assert.Equal(t, "application/json", got.msg.ContentType)
	assert.Equal(t, ItemAddedType, got.msg.Type)
	assert.Equal(t, amqp.Persistent, got.msg.DeliveryMode)
	assert.Equal(t, at, got.msg.Timestamp)
	assert.NotEmpty(t, got.msg.MessageId)

	var decoded domain.ItemAdded
	require.NoError(t, json.Unmarshal(got.msg.Body, &decoded))
	assert.Equal(t, ev.ProductID, decoded.ProductID)
	assert.Equal(t, ev.TotalPrice, decoded.TotalPrice)
}

func TestPublishItemAdded_ChannelError(t *testing.T) {
	boom := errors.New("channel closed")
	p := newPublisher(&fakeChannel{err: boom}, "", "cart-events")

	err := p.PublishItemAdded(context.Background(), domain.ItemAdded{ProductID: 1})

	assert.ErrorIs(t, err, boom)
}

func TestClose_ReportsFirstError(t *testing.T) {
	first := errors.New("first")
	var calls int
	p := &Publisher{closers: []func() error{
		func() error { calls++; return first },
		func() error { calls++; return errors.New("second") },
	}}

	assert.Equal(t, first, p.Close())
	assert.Equal(t, 2, calls)
}
