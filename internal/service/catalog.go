package service

import (
	"context"
	"fmt"

	"github.com/DarshanRT1/Hotel-Booking/internal/cache"
	"github.com/DarshanRT1/Hotel-Booking/internal/domain"
	"github.com/DarshanRT1/Hotel-Booking/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type CatalogService struct {
	menuRepo repo.MenuItemRepository
	cache    cache.MenuCache
	logger   *zap.SugaredLogger
}

// NewCatalogService builds the catalog service. menuCache may be nil, in
// which case every listing goes to the store.
func NewCatalogService(
	menuRepo repo.MenuItemRepository,
	menuCache cache.MenuCache,
	logger *zap.SugaredLogger,
) *CatalogService {
	return &CatalogService{
		menuRepo: menuRepo,
		cache:    menuCache,
		logger:   logger,
	}
}

func (s *CatalogService) ListAll(ctx context.Context) ([]domain.MenuItem, error) {
	return s.list(ctx, nil)
}

// ListByCategory does not validate category: an unknown one yields an empty list.
func (s *CatalogService) ListByCategory(ctx context.Context, category string) ([]domain.MenuItem, error) {
	c := domain.Category(category)
	return s.list(ctx, &c)
}

func (s *CatalogService) list(ctx context.Context, category *domain.Category) ([]domain.MenuItem, error) {
	cacheable := s.cache != nil && (category == nil || category.Valid())

	if cacheable {
		items, hit, err := s.cache.GetItems(ctx, category)
		if err != nil {
			s.logger.Warnw("menu cache read failed", "error", err)
		} else if hit {
			return items, nil
		}
	}

	items, err := s.menuRepo.Find(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}

	if cacheable {
		if err := s.cache.SetItems(ctx, category, items); err != nil {
			s.logger.Warnw("menu cache write failed", "error", err)
		}
	}

	return items, nil
}

func (s *CatalogService) GetOne(ctx context.Context, id primitive.ObjectID) (*domain.MenuItem, error) {
	return s.menuRepo.GetByID(ctx, id)
}

func (s *CatalogService) Create(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}

	if err := s.menuRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.logger.Infow("menu item created", "item_id", item.ID.Hex(), "category", item.Category)

	return item, nil
}

func (s *CatalogService) Update(ctx context.Context, id primitive.ObjectID, update domain.MenuItemUpdate) (*domain.MenuItem, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	if update.Empty() {
		return s.menuRepo.GetByID(ctx, id)
	}

	item, err := s.menuRepo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)

	return item, nil
}

func (s *CatalogService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.menuRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)
	s.logger.Infow("menu item deleted", "item_id", id.Hex())

	return nil
}

// Seed wipes the catalog and inserts the sample menu. It is destructive and
// callers must gate it behind operator intent.
func (s *CatalogService) Seed(ctx context.Context) (int, error) {
	removed, err := s.menuRepo.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}

	items := SampleMenu()
	if err := s.menuRepo.CreateMany(ctx, items); err != nil {
		return 0, err
	}

	s.invalidate(ctx)
	s.logger.Warnw("menu catalog reseeded", "removed", removed, "inserted", len(items))

	return len(items), nil
}

// Import validates items one by one, stores the valid ones and reports how
// many were rejected.
func (s *CatalogService) Import(ctx context.Context, taskID primitive.ObjectID, items []*domain.MenuItem) (imported, rejected int, err error) {
	valid := make([]*domain.MenuItem, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			s.logger.Debugw("import row rejected", "name", item.Name, "error", err)
			rejected++
			continue
		}
		item.ImportTaskID = &taskID
		valid = append(valid, item)
	}

	if len(valid) == 0 {
		return 0, rejected, nil
	}

	if err := s.menuRepo.CreateMany(ctx, valid); err != nil {
		return 0, rejected, err
	}

	s.invalidate(ctx)

	return len(valid), rejected, nil
}

// DiscardImport removes whatever an earlier attempt of the import task
// wrote, so the task can be rerun from scratch.
func (s *CatalogService) DiscardImport(ctx context.Context, taskID primitive.ObjectID) (int64, error) {
	removed, err := s.menuRepo.DeleteByImportTask(ctx, taskID)
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		s.invalidate(ctx)
	}
	return removed, nil
}

func (s *CatalogService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warnw("menu cache invalidation failed", "error", err)
	}
}
