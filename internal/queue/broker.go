package queue

import (
	"context"
)

type Broker interface {
	Publish(ctx context.Context, queueName string, message []byte) error
	Subscribe(ctx context.Context, queueName string, handler MessageHandler) error
	Close() error
}

type MessageHandler func(ctx context.Context, message []byte) error

const (
	QueueOrderStatus       = "order-status"
	QueueReservationStatus = "reservation-status"
	QueueMenuImport        = "menu-import"

	dlqSuffix = "-dlq"
)

var Queues = []string{
	QueueOrderStatus,
	QueueReservationStatus,
	QueueMenuImport,
}

func DeadLetterQueue(queueName string) string {
	return queueName + dlqSuffix
}
