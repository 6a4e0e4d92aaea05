package repo

import (
	"context"

	"github.com/DarshanRT1/Hotel-Booking/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Account, error)
}
