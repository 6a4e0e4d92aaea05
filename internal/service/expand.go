package service

import (
	"context"
	"fmt"

	"github.com/DarshanRT1/Hotel-Booking/internal/domain"
	"github.com/DarshanRT1/Hotel-Booking/internal/repo"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// expander resolves the menu item and owner references held by orders and
// reservations. Dangling references are left unresolved.
type expander struct {
	menuRepo    repo.MenuItemRepository
	accountRepo repo.AccountRepository
}

func (e *expander) menuItems(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]domain.MenuItem, error) {
	ids = lo.Uniq(ids)
	if len(ids) == 0 {
		return map[primitive.ObjectID]domain.MenuItem{}, nil
	}

	items, err := e.menuRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve menu items: %w", err)
	}

	return lo.KeyBy(items, func(item domain.MenuItem) primitive.ObjectID {
		return item.ID
	}), nil
}

func (e *expander) owners(ctx context.Context, refs []*primitive.ObjectID) (map[primitive.ObjectID]domain.Account, error) {
	ids := lo.Uniq(lo.FilterMap(refs, func(ref *primitive.ObjectID, _ int) (primitive.ObjectID, bool) {
		if ref == nil {
			return primitive.NilObjectID, false
		}
		return *ref, true
	}))
	if len(ids) == 0 {
		return map[primitive.ObjectID]domain.Account{}, nil
	}

	accounts, err := e.accountRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve owners: %w", err)
	}

	return lo.KeyBy(accounts, func(a domain.Account) primitive.ObjectID {
		return a.ID
	}), nil
}

func (e *expander) orderItems(ctx context.Context, orders []domain.Order) error {
	ids := lo.FlatMap(orders, func(o domain.Order, _ int) []primitive.ObjectID {
		return lo.Map(o.Items, func(item domain.OrderItem, _ int) primitive.ObjectID {
			return item.ItemID
		})
	})

	byID, err := e.menuItems(ctx, ids)
	if err != nil {
		return err
	}

	for i := range orders {
		for j := range orders[i].Items {
			if item, ok := byID[orders[i].Items[j].ItemID]; ok {
				orders[i].Items[j].Item = item.Summary()
			}
		}
	}

	return nil
}

func (e *expander) orderOwners(ctx context.Context, orders []domain.Order) error {
	byID, err := e.owners(ctx, lo.Map(orders, func(o domain.Order, _ int) *primitive.ObjectID {
		return o.UserID
	}))
	if err != nil {
		return err
	}

	for i := range orders {
		if orders[i].UserID == nil {
			continue
		}
		if account, ok := byID[*orders[i].UserID]; ok {
			orders[i].User = account.Summary()
		}
	}

	return nil
}

func (e *expander) reservationOwners(ctx context.Context, reservations []domain.Reservation) error {
	byID, err := e.owners(ctx, lo.Map(reservations, func(r domain.Reservation, _ int) *primitive.ObjectID {
		return r.UserID
	}))
	if err != nil {
		return err
	}

	for i := range reservations {
		if reservations[i].UserID == nil {
			continue
		}
		if account, ok := byID[*reservations[i].UserID]; ok {
			reservations[i].User = account.Summary()
		}
	}

	return nil
}
