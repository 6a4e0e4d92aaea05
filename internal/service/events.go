package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/DarshanRT1/Hotel-Booking/internal/domain"
	"github.com/DarshanRT1/Hotel-Booking/internal/queue"
	"go.uber.org/zap"
)

// statusPublisher emits status change events. Delivery is best effort: the
// status change itself is already stored when publish runs.
type statusPublisher struct {
	broker queue.Broker
	logger *zap.SugaredLogger
	now    func() time.Time
}

func (p *statusPublisher) publish(ctx context.Context, queueName string, event domain.StatusChangedEvent) {
	if p.broker == nil {
		return
	}

	event.Timestamp = p.now().UTC()

	body, err := json.Marshal(event)
	if err != nil {
		p.logger.Errorw("failed to marshal status event", "error", err, "entity_id", event.EntityID)
		return
	}

	if err := p.broker.Publish(ctx, queueName, body); err != nil {
		p.logger.Errorw("failed to publish status event",
			"error", err,
			"queue", queueName,
			"entity_type", event.EntityType,
			"entity_id", event.EntityID,
		)
	}
}
