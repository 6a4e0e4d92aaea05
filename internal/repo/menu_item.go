package repo

import (
	"context"

	"github.com/DarshanRT1/Hotel-Booking/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MenuItemRepository interface {
	Create(ctx context.Context, item *domain.MenuItem) error
	CreateMany(ctx context.Context, items []*domain.MenuItem) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.MenuItem, error)
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.MenuItem, error)
	Find(ctx context.Context, category *domain.Category) ([]domain.MenuItem, error)
	Update(ctx context.Context, id primitive.ObjectID, update domain.MenuItemUpdate) (*domain.MenuItem, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteAll(ctx context.Context) (int64, error)
	DeleteByImportTask(ctx context.Context, taskID primitive.ObjectID) (int64, error)
}
