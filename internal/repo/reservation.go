package repo

import (
	"context"

	"github.com/DarshanRT1/Hotel-Booking/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReservationFilter struct {
	UserID       *primitive.ObjectID
	ContactEmail string
}

type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Reservation, error)
	Find(ctx context.Context, filter ReservationFilter) ([]domain.Reservation, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.ReservationStatus, from []domain.ReservationStatus) (*domain.Reservation, error)
}
