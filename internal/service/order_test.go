package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/DarshanRT1/Hotel-Booking/internal/domain"
	"github.com/DarshanRT1/Hotel-Booking/internal/mocks"
	"github.com/DarshanRT1/Hotel-Booking/internal/queue"
	"github.com/DarshanRT1/Hotel-Booking/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type orderFixture struct {
	orders   *mocks.OrderRepository
	menu     *mocks.MenuItemRepository
	accounts *mocks.AccountRepository
	broker   *mocks.Broker
	svc      *OrderService
}

func newOrderFixture(t *testing.T, config OrderConfig) *orderFixture {
	f := &orderFixture{
		orders:   mocks.NewOrderRepository(t),
		menu:     mocks.NewMenuItemRepository(t),
		accounts: mocks.NewAccountRepository(t),
		broker:   mocks.NewBroker(t),
	}
	f.svc = NewOrderService(f.orders, f.menu, f.accounts, f.broker, zap.NewNop().Sugar(), config)
	return f
}

func TestOrderService_Create(t *testing.T) {
	ctx := context.Background()
	itemID := primitive.NewObjectID()
	ownerID := primitive.NewObjectID()

	t.Run("owned order starts as new", func(t *testing.T) {
		f := newOrderFixture(t, OrderConfig{})
		f.orders.On("Create", ctx, mock.AnythingOfType("*domain.Order")).Return(nil).Once()

		order, err := f.svc.Create(ctx, CreateOrderInput{
			UserID:      ownerID.Hex(),
			Items:       []OrderItemInput{{ItemID: itemID.Hex(), Quantity: 2}},
			TotalAmount: 7,
			CustomerInfo: domain.OrderContact{
				Name:  "Asha",
				Email: " asha@example.com ",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, domain.OrderNew, order.Status)
		require.NotNil(t, order.UserID)
		assert.Equal(t, ownerID, *order.UserID)
		assert.Equal(t, "asha@example.com", order.CustomerInfo.Email)
		assert.Equal(t, itemID, order.Items[0].ItemID)
	})

	t.Run("malformed owner makes the order anonymous", func(t *testing.T) {
		f := newOrderFixture(t, OrderConfig{})
		f.orders.On("Create", ctx, mock.AnythingOfType("*domain.Order")).Return(nil).Once()

		order, err := f.svc.Create(ctx, CreateOrderInput{UserID: "guest"})
		require.NoError(t, err)
		assert.Nil(t, order.UserID)
		assert.Empty(t, order.Items)
	})

	t.Run("malformed item id", func(t *testing.T) {
		f := newOrderFixture(t, OrderConfig{})

		_, err := f.svc.Create(ctx, CreateOrderInput{Items: []OrderItemInput{{ItemID: "nope", Quantity: 1}}})
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "items[0].itemId", ve.Field)
	})

	t.Run("zero quantity", func(t *testing.T) {
		f := newOrderFixture(t, OrderConfig{})

		_, err := f.svc.Create(ctx, CreateOrderInput{Items: []OrderItemInput{{ItemID: itemID.Hex(), Quantity: 0}}})
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "items[0].quantity", ve.Field)
	})

	t.Run("negative total", func(t *testing.T) {
		f := newOrderFixture(t, OrderConfig{})

		_, err := f.svc.Create(ctx, CreateOrderInput{TotalAmount: -0.5})
		assert.True(t, domain.IsValidationError(err))
	})
}

func TestOrderService_CreateVerifiesTotal(t *testing.T) {
	ctx := context.Background()
	samosa := domain.MenuItem{ID: primitive.NewObjectID(), Name: "Samosa", Price: 1.5}
	chai := domain.MenuItem{ID: primitive.NewObjectID(), Name: "Masala Chai", Price: 1.25}
	catalog := []domain.MenuItem{samosa, chai}
	items := []OrderItemInput{
		{ItemID: samosa.ID.Hex(), Quantity: 3},
		{ItemID: chai.ID.Hex(), Quantity: 2},
	}

	tests := []struct {
		name    string
		total   float64
		wantErr bool
	}{
		{name: "exact", total: 7.0},
		{name: "within tolerance", total: 7.005},
		{name: "mismatch", total: 6.0, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newOrderFixture(t, OrderConfig{VerifyTotal: true})
			f.menu.On("GetByIDs", ctx, mock.Anything).Return(catalog, nil).Once()
			if !tc.wantErr {
				f.orders.On("Create", ctx, mock.Anything).Return(nil).Once()
			}

			_, err := f.svc.Create(ctx, CreateOrderInput{Items: items, TotalAmount: tc.total})
			if tc.wantErr {
				var ve *domain.ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, "totalAmount", ve.Field)
				return
			}
			assert.NoError(t, err)
		})
	}

	t.Run("unknown menu item", func(t *testing.T) {
		f := newOrderFixture(t, OrderConfig{VerifyTotal: true})
		f.menu.On("GetByIDs", ctx, mock.Anything).Return([]domain.MenuItem{samosa}, nil).Once()

		_, err := f.svc.Create(ctx, CreateOrderInput{Items: items, TotalAmount: 7})
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "items[1].itemId", ve.Field)
	})
}

func TestOrderService_ListAllExpandsReferences(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t, OrderConfig{})

	item := domain.MenuItem{ID: primitive.NewObjectID(), Name: "Kulfi", Price: 2.75}
	owner := domain.Account{ID: primitive.NewObjectID(), Name: "Ravi", Email: "ravi@example.com", PasswordHash: "secret"}
	dangling := primitive.NewObjectID()

	f.orders.On("Find", ctx, repo.OrderFilter{}).Return([]domain.Order{
		{ID: primitive.NewObjectID(), UserID: &owner.ID, Items: []domain.OrderItem{{ItemID: item.ID, Quantity: 1}}},
		{ID: primitive.NewObjectID(), Items: []domain.OrderItem{{ItemID: dangling, Quantity: 2}, {ItemID: item.ID, Quantity: 1}}},
	}, nil).Once()
	f.menu.On("GetByIDs", ctx, mock.MatchedBy(func(ids []primitive.ObjectID) bool {
		return len(ids) == 2
	})).Return([]domain.MenuItem{item}, nil).Once()
	f.accounts.On("GetByIDs", ctx, []primitive.ObjectID{owner.ID}).Return([]domain.Account{owner}, nil).Once()

	orders, err := f.svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	require.NotNil(t, orders[0].Items[0].Item)
	assert.Equal(t, "Kulfi", orders[0].Items[0].Item.Name)
	require.NotNil(t, orders[0].User)
	assert.Equal(t, "ravi@example.com", orders[0].User.Email)

	assert.Nil(t, orders[1].User)
	assert.Nil(t, orders[1].Items[0].Item, "dangling reference stays unresolved")
	assert.NotNil(t, orders[1].Items[1].Item)
}

func TestOrderService_ListByContactEmail(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t, OrderConfig{})

	f.orders.On("Find", ctx, repo.OrderFilter{ContactEmail: "guest@example.com"}).Return([]domain.Order{}, nil).Once()

	orders, err := f.svc.ListByContactEmail(ctx, " guest@example.com ")
	require.NoError(t, err)
	assert.Empty(t, orders)

	orders, err = f.svc.ListByContactEmail(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	id := primitive.NewObjectID()

	t.Run("permissive publishes event", func(t *testing.T) {
		f := newOrderFixture(t, OrderConfig{Transitions: domain.Permissive})
		f.orders.On("GetByID", ctx, id).Return(&domain.Order{ID: id, Status: domain.OrderCompleted}, nil).Once()
		f.orders.On("UpdateStatus", ctx, id, domain.OrderNew, []domain.OrderStatus(nil)).
			Return(&domain.Order{ID: id, Status: domain.OrderNew}, nil).Once()
		f.broker.On("Publish", ctx, queue.QueueOrderStatus, mock.MatchedBy(func(body []byte) bool {
			var event domain.StatusChangedEvent
			if err := json.Unmarshal(body, &event); err != nil {
				return false
			}
			return event.EntityID == id.Hex() &&
				event.OldStatus == "completed" &&
				event.NewStatus == "new" &&
				event.ActorID == "staff-1" &&
				!event.Timestamp.IsZero()
		})).Return(nil).Once()

		order, err := f.svc.UpdateStatus(ctx, id, "new", "staff-1")
		require.NoError(t, err)
		assert.Equal(t, domain.OrderNew, order.Status)
	})

	t.Run("same status emits nothing", func(t *testing.T) {
		f := newOrderFixture(t, OrderConfig{})
		f.orders.On("GetByID", ctx, id).Return(&domain.Order{ID: id, Status: domain.OrderPreparing}, nil).Once()
		f.orders.On("UpdateStatus", ctx, id, domain.OrderPreparing, []domain.OrderStatus(nil)).
			Return(&domain.Order{ID: id, Status: domain.OrderPreparing}, nil).Once()

		_, err := f.svc.UpdateStatus(ctx, id, "preparing", "")
		require.NoError(t, err)
	})

	t.Run("publish failure does not fail the update", func(t *testing.T) {
		f := newOrderFixture(t, OrderConfig{})
		f.orders.On("GetByID", ctx, id).Return(&domain.Order{ID: id, Status: domain.OrderNew}, nil).Once()
		f.orders.On("UpdateStatus", ctx, id, domain.OrderPreparing, []domain.OrderStatus(nil)).
			Return(&domain.Order{ID: id, Status: domain.OrderPreparing}, nil).Once()
		f.broker.On("Publish", ctx, queue.QueueOrderStatus, mock.Anything).Return(errors.New("channel closed")).Once()

		order, err := f.svc.UpdateStatus(ctx, id, "preparing", "")
		require.NoError(t, err)
		assert.Equal(t, domain.OrderPreparing, order.Status)
	})

	t.Run("unknown status", func(t *testing.T) {
		f := newOrderFixture(t, OrderConfig{})

		_, err := f.svc.UpdateStatus(ctx, id, "shipped", "")
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("unknown order", func(t *testing.T) {
		f := newOrderFixture(t, OrderConfig{})
		f.orders.On("GetByID", ctx, id).Return(nil, domain.ErrNotFound).Once()

		_, err := f.svc.UpdateStatus(ctx, id, "completed", "")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("strict rejects skipping a step", func(t *testing.T) {
		f := newOrderFixture(t, OrderConfig{Transitions: domain.Strict})
		f.orders.On("GetByID", ctx, id).Return(&domain.Order{ID: id, Status: domain.OrderNew}, nil).Once()

		_, err := f.svc.UpdateStatus(ctx, id, "completed", "")
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("strict guarded update lost a race", func(t *testing.T) {
		f := newOrderFixture(t, OrderConfig{Transitions: domain.Strict})
		f.orders.On("GetByID", ctx, id).Return(&domain.Order{ID: id, Status: domain.OrderNew}, nil).Once()
		f.orders.On("UpdateStatus", ctx, id, domain.OrderPreparing, mock.Anything).Return(nil, domain.ErrNotFound).Once()

		_, err := f.svc.UpdateStatus(ctx, id, "preparing", "")
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})
}

func TestOrderService_NilBrokerSkipsEvents(t *testing.T) {
	ctx := context.Background()
	id := primitive.NewObjectID()
	orders := mocks.NewOrderRepository(t)
	svc := NewOrderService(orders, mocks.NewMenuItemRepository(t), mocks.NewAccountRepository(t), nil, zap.NewNop().Sugar(), OrderConfig{})

	orders.On("GetByID", ctx, id).Return(&domain.Order{ID: id, Status: domain.OrderNew}, nil).Once()
	orders.On("UpdateStatus", ctx, id, domain.OrderCompleted, []domain.OrderStatus(nil)).
		Return(&domain.Order{ID: id, Status: domain.OrderCompleted}, nil).Once()

	_, err := svc.UpdateStatus(ctx, id, "completed", "")
	require.NoError(t, err)
}
