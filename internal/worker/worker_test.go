package worker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DarshanRT1/Hotel-Booking/internal/domain"
	"github.com/DarshanRT1/Hotel-Booking/internal/mocks"
	"github.com/DarshanRT1/Hotel-Booking/internal/queue"
	"github.com/DarshanRT1/Hotel-Booking/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func TestStatusEventWorker_SubscribesToBothQueues(t *testing.T) {
	broker := mocks.NewBroker(t)
	audits := mocks.NewStatusAuditRepository(t)
	logger := zap.NewNop().Sugar()
	w := NewStatusEventWorker(service.NewStatusAuditService(audits, logger), broker, logger)
	defer w.Stop()

	broker.On("Subscribe", mock.Anything, queue.QueueOrderStatus, mock.Anything).Return(nil).Once()
	broker.On("Subscribe", mock.Anything, queue.QueueReservationStatus, mock.Anything).Return(nil).Once()

	require.NoError(t, w.Start())
}

func TestStatusEventWorker_SubscribeFailure(t *testing.T) {
	broker := mocks.NewBroker(t)
	logger := zap.NewNop().Sugar()
	w := NewStatusEventWorker(service.NewStatusAuditService(mocks.NewStatusAuditRepository(t), logger), broker, logger)
	defer w.Stop()

	broker.On("Subscribe", mock.Anything, queue.QueueOrderStatus, mock.Anything).Return(errors.New("channel closed")).Once()

	assert.Error(t, w.Start())
}

func TestStatusEventWorker_HandleMessage(t *testing.T) {
	ctx := context.Background()
	audits := mocks.NewStatusAuditRepository(t)
	logger := zap.NewNop().Sugar()
	w := NewStatusEventWorker(service.NewStatusAuditService(audits, logger), mocks.NewBroker(t), logger)
	defer w.Stop()

	entityID := primitive.NewObjectID().Hex()
	body, err := json.Marshal(domain.StatusChangedEvent{
		EventType:  domain.EventReservationStatusChanged,
		EntityType: domain.EntityReservation,
		EntityID:   entityID,
		OldStatus:  "pending",
		NewStatus:  "confirmed",
	})
	require.NoError(t, err)

	audits.On("Create", ctx, mock.MatchedBy(func(a *domain.StatusAudit) bool {
		return a.EntityID == entityID && a.NewStatus == "confirmed" && !a.Timestamp.IsZero() &&
			time.Since(a.Timestamp) < time.Minute
	})).Return(nil).Once()

	require.NoError(t, w.handleMessage(ctx, body))
	assert.Error(t, w.handleMessage(ctx, []byte("{not json")))
}

func TestMenuImportWorker_HandleMessage(t *testing.T) {
	ctx := context.Background()
	tasks := mocks.NewImportTaskRepository(t)
	logger := zap.NewNop().Sugar()
	broker := mocks.NewBroker(t)
	importer := service.NewMenuImportService(tasks, nil, mocks.NewMenuSheetParser(t), broker, logger)
	w := NewMenuImportWorker(importer, broker, logger)
	defer w.Stop()

	taskID := primitive.NewObjectID()
	tasks.On("GetByID", ctx, taskID).Return(&domain.ImportTask{ID: taskID, Status: domain.ImportCompleted}, nil).Once()

	body, err := json.Marshal(domain.MenuImportMessage{TaskID: taskID.Hex(), SpreadsheetID: "sheet-1"})
	require.NoError(t, err)

	require.NoError(t, w.handleMessage(ctx, body))

	bad, err := json.Marshal(domain.MenuImportMessage{TaskID: "not-an-id"})
	require.NoError(t, err)
	assert.Error(t, w.handleMessage(ctx, bad))
}
