package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackoff(t *testing.T) {
	assert.Equal(t, 2*time.Second, Backoff(2*time.Second, 0))
	assert.Equal(t, 4*time.Second, Backoff(2*time.Second, 1))
	assert.Equal(t, 8*time.Second, Backoff(2*time.Second, 2))
	assert.Equal(t, time.Second, Backoff(0, 0))
}

func TestRetryCountOf(t *testing.T) {
	assert.Equal(t, 0, retryCountOf(nil))
	assert.Equal(t, 0, retryCountOf(amqp.Table{"other": "x"}))
	assert.Equal(t, 2, retryCountOf(amqp.Table{headerRetryCount: int32(2)}))
}

func TestDeadLetterQueue(t *testing.T) {
	assert.Equal(t, "order-status-dlq", DeadLetterQueue(QueueOrderStatus))
}

type recordingAcknowledger struct {
	acks     int
	nacks    int
	requeued bool
}

func (a *recordingAcknowledger) Ack(tag uint64, multiple bool) error {
	a.acks++
	return nil
}

func (a *recordingAcknowledger) Nack(tag uint64, multiple, requeue bool) error {
	a.nacks++
	a.requeued = requeue
	return nil
}

func (a *recordingAcknowledger) Reject(tag uint64, requeue bool) error {
	return a.Nack(tag, false, requeue)
}

type publishedMessage struct {
	queue string
	msg   amqp.Publishing
}

type recordingPublisher struct {
	err  error
	sent []publishedMessage
}

func (p *recordingPublisher) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, publishedMessage{queue: key, msg: msg})
	return nil
}

func TestHandleMessage(t *testing.T) {
	failing := func(context.Context, []byte) error { return errors.New("handler failed") }

	newBroker := func(pub *recordingPublisher) *RabbitMQBroker {
		return &RabbitMQBroker{publisher: pub, maxRetries: 2, retryDelay: time.Millisecond}
	}

	delivery := func(ack *recordingAcknowledger, headers amqp.Table) amqp.Delivery {
		return amqp.Delivery{
			Acknowledger: ack,
			DeliveryTag:  1,
			ContentType:  "application/json",
			Headers:      headers,
			Body:         []byte(`{"order_id":"x"}`),
		}
	}

	t.Run("handled message is acked", func(t *testing.T) {
		pub := &recordingPublisher{}
		ack := &recordingAcknowledger{}

		newBroker(pub).handleMessage(context.Background(), delivery(ack, nil),
			func(context.Context, []byte) error { return nil }, QueueOrderStatus)

		assert.Equal(t, 1, ack.acks)
		assert.Zero(t, ack.nacks)
		assert.Empty(t, pub.sent)
	})

	t.Run("failure is republished with a bumped retry count then acked", func(t *testing.T) {
		pub := &recordingPublisher{}
		ack := &recordingAcknowledger{}

		newBroker(pub).handleMessage(context.Background(), delivery(ack, amqp.Table{headerRetryCount: int32(1)}), failing, QueueOrderStatus)

		require.Len(t, pub.sent, 1)
		assert.Equal(t, QueueOrderStatus, pub.sent[0].queue)
		assert.Equal(t, int32(2), pub.sent[0].msg.Headers[headerRetryCount])
		assert.Equal(t, 1, ack.acks)
		assert.Zero(t, ack.nacks)
	})

	t.Run("exhausted retries go to the dead letter queue", func(t *testing.T) {
		pub := &recordingPublisher{}
		ack := &recordingAcknowledger{}

		newBroker(pub).handleMessage(context.Background(), delivery(ack, amqp.Table{headerRetryCount: int32(2)}), failing, QueueOrderStatus)

		require.Len(t, pub.sent, 1)
		assert.Equal(t, DeadLetterQueue(QueueOrderStatus), pub.sent[0].queue)
		assert.Equal(t, QueueOrderStatus, pub.sent[0].msg.Headers["x-original-queue"])
		assert.Equal(t, "handler failed", pub.sent[0].msg.Headers["x-error"])
		assert.Equal(t, 1, ack.acks)
	})

	t.Run("shutdown during backoff requeues instead of acking", func(t *testing.T) {
		pub := &recordingPublisher{}
		ack := &recordingAcknowledger{}
		broker := &RabbitMQBroker{publisher: pub, maxRetries: 2, retryDelay: time.Hour}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		broker.handleMessage(ctx, delivery(ack, nil), failing, QueueOrderStatus)

		assert.Zero(t, ack.acks)
		assert.Equal(t, 1, ack.nacks)
		assert.True(t, ack.requeued)
		assert.Empty(t, pub.sent)
	})

	t.Run("failed republish requeues instead of acking", func(t *testing.T) {
		pub := &recordingPublisher{err: errors.New("channel closed")}
		ack := &recordingAcknowledger{}

		newBroker(pub).handleMessage(context.Background(), delivery(ack, nil), failing, QueueOrderStatus)

		assert.Zero(t, ack.acks)
		assert.Equal(t, 1, ack.nacks)
		assert.True(t, ack.requeued)
	})

	t.Run("failed dead letter publish requeues instead of acking", func(t *testing.T) {
		pub := &recordingPublisher{err: errors.New("channel closed")}
		ack := &recordingAcknowledger{}

		newBroker(pub).handleMessage(context.Background(), delivery(ack, amqp.Table{headerRetryCount: int32(2)}), failing, QueueOrderStatus)

		assert.Zero(t, ack.acks)
		assert.Equal(t, 1, ack.nacks)
		assert.True(t, ack.requeued)
	})
}
