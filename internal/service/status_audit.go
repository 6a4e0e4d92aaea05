package service

import (
	"context"
	"fmt"

	"github.com/DarshanRT1/Hotel-Booking/internal/domain"
	"github.com/DarshanRT1/Hotel-Booking/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 500
)

type StatusAuditService struct {
	auditRepo repo.StatusAuditRepository
	logger    *zap.SugaredLogger
}

func NewStatusAuditService(auditRepo repo.StatusAuditRepository, logger *zap.SugaredLogger) *StatusAuditService {
	return &StatusAuditService{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

func (s *StatusAuditService) ProcessStatusEvent(ctx context.Context, event domain.StatusChangedEvent) error {
	if event.EntityID == "" {
		return domain.NewValidationError("entityId", "entity id is required")
	}

	audit := &domain.StatusAudit{
		EntityType: event.EntityType,
		EntityID:   event.EntityID,
		EventType:  event.EventType,
		OldStatus:  event.OldStatus,
		NewStatus:  event.NewStatus,
		ActorID:    event.ActorID,
		Timestamp:  event.Timestamp,
	}

	if err := s.auditRepo.Create(ctx, audit); err != nil {
		return fmt.Errorf("failed to create status audit: %w", err)
	}

	s.logger.Infow("status change recorded",
		"entity_type", event.EntityType,
		"entity_id", event.EntityID,
		"old_status", event.OldStatus,
		"new_status", event.NewStatus,
	)

	return nil
}

// History returns the recorded status changes of an entity, newest first.
func (s *StatusAuditService) History(ctx context.Context, entityType domain.EntityType, id primitive.ObjectID, limit int) ([]domain.StatusAudit, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	return s.auditRepo.GetByEntity(ctx, entityType, id.Hex(), limit)
}
