package mocks

import (
	"context"

	"github.com/DarshanRT1/Hotel-Booking/internal/domain"
	"github.com/DarshanRT1/Hotel-Booking/internal/queue"
	"github.com/stretchr/testify/mock"
)

type Broker struct {
	mock.Mock
}

func NewBroker(t testingT) *Broker {
	m := &Broker{}
	register(&m.Mock, t)
	return m
}

func (m *Broker) Publish(ctx context.Context, queueName string, message []byte) error {
	return m.Called(ctx, queueName, message).Error(0)
}

func (m *Broker) Subscribe(ctx context.Context, queueName string, handler queue.MessageHandler) error {
	return m.Called(ctx, queueName, handler).Error(0)
}

func (m *Broker) Close() error {
	return m.Called().Error(0)
}

type MenuSheetParser struct {
	mock.Mock
}

func NewMenuSheetParser(t testingT) *MenuSheetParser {
	m := &MenuSheetParser{}
	register(&m.Mock, t)
	return m
}

func (m *MenuSheetParser) ParseMenuItems(ctx context.Context, spreadsheetID string) ([]*domain.MenuItem, int, error) {
	args := m.Called(ctx, spreadsheetID)
	items, _ := args.Get(0).([]*domain.MenuItem)
	return items, args.Int(1), args.Error(2)
}

var _ queue.Broker = (*Broker)(nil)
