package service

import (
	"context"
	"testing"
	"time"

	"github.com/DarshanRT1/Hotel-Booking/internal/domain"
	"github.com/DarshanRT1/Hotel-Booking/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func TestStatusAuditService_ProcessStatusEvent(t *testing.T) {
	ctx := context.Background()
	audits := mocks.NewStatusAuditRepository(t)
	svc := NewStatusAuditService(audits, zap.NewNop().Sugar())

	event := domain.StatusChangedEvent{
		EventType:  domain.EventOrderStatusChanged,
		EntityType: domain.EntityOrder,
		EntityID:   primitive.NewObjectID().Hex(),
		OldStatus:  "new",
		NewStatus:  "preparing",
		Timestamp:  time.Now(),
	}

	audits.On("Create", ctx, mock.MatchedBy(func(a *domain.StatusAudit) bool {
		return a.EntityID == event.EntityID && a.OldStatus == "new" && a.NewStatus == "preparing" && a.EntityType == domain.EntityOrder
	})).Return(nil).Once()

	require.NoError(t, svc.ProcessStatusEvent(ctx, event))

	err := svc.ProcessStatusEvent(ctx, domain.StatusChangedEvent{EntityType: domain.EntityOrder})
	assert.True(t, domain.IsValidationError(err))
}

func TestStatusAuditService_HistoryLimits(t *testing.T) {
	ctx := context.Background()
	audits := mocks.NewStatusAuditRepository(t)
	svc := NewStatusAuditService(audits, zap.NewNop().Sugar())
	id := primitive.NewObjectID()

	audits.On("GetByEntity", ctx, domain.EntityReservation, id.Hex(), DefaultHistoryLimit).Return([]domain.StatusAudit{}, nil).Once()
	audits.On("GetByEntity", ctx, domain.EntityReservation, id.Hex(), MaxHistoryLimit).Return([]domain.StatusAudit{}, nil).Once()
	audits.On("GetByEntity", ctx, domain.EntityReservation, id.Hex(), 5).Return([]domain.StatusAudit{{NewStatus: "confirmed"}}, nil).Once()

	_, err := svc.History(ctx, domain.EntityReservation, id, 0)
	require.NoError(t, err)
	_, err = svc.History(ctx, domain.EntityReservation, id, 10_000)
	require.NoError(t, err)
	history, err := svc.History(ctx, domain.EntityReservation, id, 5)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}
