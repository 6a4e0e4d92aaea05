package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/DarshanRT1/Hotel-Booking/internal/domain"
	"github.com/DarshanRT1/Hotel-Booking/internal/queue"
	"github.com/DarshanRT1/Hotel-Booking/internal/repo"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const DefaultTotalTolerance = 0.01

type OrderConfig struct {
	Transitions domain.TransitionPolicy
	// VerifyTotal recomputes the total from catalog prices on create and
	// rejects orders that differ by more than TotalTolerance.
	VerifyTotal    bool
	TotalTolerance float64
}

type OrderService struct {
	orderRepo repo.OrderRepository
	expand    *expander
	events    *statusPublisher
	logger    *zap.SugaredLogger
	config    OrderConfig
}

// NewOrderService builds the order service. broker may be nil, which turns
// status events off.
func NewOrderService(
	orderRepo repo.OrderRepository,
	menuRepo repo.MenuItemRepository,
	accountRepo repo.AccountRepository,
	broker queue.Broker,
	logger *zap.SugaredLogger,
	config OrderConfig,
) *OrderService {
	if config.TotalTolerance <= 0 {
		config.TotalTolerance = DefaultTotalTolerance
	}

	return &OrderService{
		orderRepo: orderRepo,
		expand:    &expander{menuRepo: menuRepo, accountRepo: accountRepo},
		events:    &statusPublisher{broker: broker, logger: logger, now: time.Now},
		logger:    logger,
		config:    config,
	}
}

type OrderItemInput struct {
	ItemID   string
	Quantity int
}

type CreateOrderInput struct {
	UserID       string
	Items        []OrderItemInput
	TotalAmount  float64
	CustomerInfo domain.OrderContact
}

func (s *OrderService) Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error) {
	order := &domain.Order{
		UserID:       domain.ParseOwnerRef(in.UserID),
		Items:        make([]domain.OrderItem, 0, len(in.Items)),
		TotalAmount:  in.TotalAmount,
		Status:       domain.OrderNew,
		CustomerInfo: in.CustomerInfo,
	}
	order.CustomerInfo.Email = strings.TrimSpace(order.CustomerInfo.Email)

	for i, item := range in.Items {
		id, err := primitive.ObjectIDFromHex(item.ItemID)
		if err != nil {
			return nil, domain.NewValidationError(fmt.Sprintf("items[%d].itemId", i), "invalid menu item id")
		}
		order.Items = append(order.Items, domain.OrderItem{ItemID: id, Quantity: item.Quantity})
	}

	if err := order.Validate(); err != nil {
		return nil, err
	}

	if s.config.VerifyTotal {
		if err := s.verifyTotal(ctx, order); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Infow("order placed",
		"order_id", order.ID.Hex(),
		"items", len(order.Items),
		"total_amount", order.TotalAmount,
		"anonymous", order.UserID == nil,
	)

	return order, nil
}

func (s *OrderService) verifyTotal(ctx context.Context, order *domain.Order) error {
	ids := make([]primitive.ObjectID, 0, len(order.Items))
	for _, item := range order.Items {
		ids = append(ids, item.ItemID)
	}

	byID, err := s.expand.menuItems(ctx, ids)
	if err != nil {
		return err
	}

	expected := decimal.Zero
	for i, item := range order.Items {
		menuItem, ok := byID[item.ItemID]
		if !ok {
			return domain.NewValidationError(fmt.Sprintf("items[%d].itemId", i), "unknown menu item")
		}
		line := decimal.NewFromFloat(menuItem.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		expected = expected.Add(line)
	}

	diff := expected.Sub(decimal.NewFromFloat(order.TotalAmount)).Abs()
	if diff.GreaterThan(decimal.NewFromFloat(s.config.TotalTolerance)) {
		return domain.NewValidationError("totalAmount",
			fmt.Sprintf("total amount does not match menu prices, expected %s", expected.StringFixed(2)))
	}

	return nil
}

// ListAll returns every order with items and owners expanded.
func (s *OrderService) ListAll(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.find(ctx, repo.OrderFilter{})
	if err != nil {
		return nil, err
	}

	if err := s.expand.orderOwners(ctx, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (s *OrderService) ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Order, error) {
	return s.find(ctx, repo.OrderFilter{UserID: &ownerID})
}

// ListByContactEmail matches the contact email exactly after trimming.
func (s *OrderService) ListByContactEmail(ctx context.Context, email string) ([]domain.Order, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return []domain.Order{}, nil
	}
	return s.find(ctx, repo.OrderFilter{ContactEmail: email})
}

func (s *OrderService) find(ctx context.Context, filter repo.OrderFilter) ([]domain.Order, error) {
	orders, err := s.orderRepo.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	if err := s.expand.orderItems(ctx, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (s *OrderService) GetOne(ctx context.Context, id primitive.ObjectID) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	orders := []domain.Order{*order}
	if err := s.expand.orderItems(ctx, orders); err != nil {
		return nil, err
	}

	return &orders[0], nil
}

// UpdateStatus moves an order to status. actorID is recorded on the emitted
// event and may be empty.
func (s *OrderService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status, actorID string) (*domain.Order, error) {
	target := domain.OrderStatus(status)
	if !target.Valid() {
		return nil, domain.NewValidationError("status", fmt.Sprintf("unknown order status %q", status))
	}

	current, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	policy := s.config.Transitions
	if !policy.AllowOrder(current.Status, target) {
		return nil, fmt.Errorf("order %s: %s -> %s: %w", id.Hex(), current.Status, target, domain.ErrInvalidTransition)
	}

	updated, err := s.orderRepo.UpdateStatus(ctx, id, target, policy.OrderSources(target))
	if err != nil {
		// The guarded update lost a race against another status change.
		if errors.Is(err, domain.ErrNotFound) && policy == domain.Strict {
			return nil, fmt.Errorf("order %s: %w", id.Hex(), domain.ErrInvalidTransition)
		}
		return nil, err
	}

	if current.Status != updated.Status {
		s.events.publish(ctx, queue.QueueOrderStatus, domain.StatusChangedEvent{
			EventType:  domain.EventOrderStatusChanged,
			EntityType: domain.EntityOrder,
			EntityID:   id.Hex(),
			OldStatus:  string(current.Status),
			NewStatus:  string(updated.Status),
			ActorID:    actorID,
		})
	}

	s.logger.Infow("order status updated",
		"order_id", id.Hex(),
		"old_status", current.Status,
		"new_status", updated.Status,
	)

	return updated, nil
}
