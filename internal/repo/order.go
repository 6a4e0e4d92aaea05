package repo

import (
	"context"

	"github.com/DarshanRT1/Hotel-Booking/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderFilter selects orders; zero fields match everything.
type OrderFilter struct {
	UserID       *primitive.ObjectID
	ContactEmail string
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Order, error)
	Find(ctx context.Context, filter OrderFilter) ([]domain.Order, error)
	// UpdateStatus sets the status when the current one is in from (any when from is empty).
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.OrderStatus, from []domain.OrderStatus) (*domain.Order, error)
}
