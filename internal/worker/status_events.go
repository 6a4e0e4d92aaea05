package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/DarshanRT1/Hotel-Booking/internal/domain"
	"github.com/DarshanRT1/Hotel-Booking/internal/queue"
	"github.com/DarshanRT1/Hotel-Booking/internal/service"
	"go.uber.org/zap"
)

// StatusEventWorker records order and reservation status changes in the
// audit log.
type StatusEventWorker struct {
	auditService *service.StatusAuditService
	broker       queue.Broker
	logger       *zap.SugaredLogger
	ctx          context.Context
	cancel       context.CancelFunc
}

func NewStatusEventWorker(
	auditService *service.StatusAuditService,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *StatusEventWorker {
	ctx, cancel := context.WithCancel(context.Background())

	return &StatusEventWorker{
		auditService: auditService,
		broker:       broker,
		logger:       logger,
		ctx:          ctx,
		cancel:       cancel,
	}
}

func (w *StatusEventWorker) Start() error {
	w.logger.Info("starting status event worker")

	for _, q := range []string{queue.QueueOrderStatus, queue.QueueReservationStatus} {
		if err := w.broker.Subscribe(w.ctx, q, w.handleMessage); err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", q, err)
		}
	}

	return nil
}

func (w *StatusEventWorker) Stop() {
	w.logger.Info("stopping status event worker")
	w.cancel()
}

func (w *StatusEventWorker) handleMessage(ctx context.Context, message []byte) error {
	var event domain.StatusChangedEvent
	if err := json.Unmarshal(message, &event); err != nil {
		w.logger.Errorw("failed to unmarshal event", "error", err)
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	w.logger.Infow("processing status event",
		"entity_type", event.EntityType,
		"entity_id", event.EntityID,
		"event_type", event.EventType,
	)

	if err := w.auditService.ProcessStatusEvent(ctx, event); err != nil {
		w.logger.Errorw("failed to process status event", "entity_id", event.EntityID, "error", err)
		return err
	}

	return nil
}
