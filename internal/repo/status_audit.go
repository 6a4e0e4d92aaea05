package repo

import (
	"context"

	"github.com/DarshanRT1/Hotel-Booking/internal/domain"
)

type StatusAuditRepository interface {
	Create(ctx context.Context, audit *domain.StatusAudit) error
	GetByEntity(ctx context.Context, entityType domain.EntityType, entityID string, limit int) ([]domain.StatusAudit, error)
}
