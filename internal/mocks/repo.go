package mocks

import (
	"context"

	"github.com/DarshanRT1/Hotel-Booking/internal/domain"
	"github.com/DarshanRT1/Hotel-Booking/internal/repo"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MenuItemRepository struct {
	mock.Mock
}

func NewMenuItemRepository(t testingT) *MenuItemRepository {
	m := &MenuItemRepository{}
	register(&m.Mock, t)
	return m
}

func (m *MenuItemRepository) Create(ctx context.Context, item *domain.MenuItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MenuItemRepository) CreateMany(ctx context.Context, items []*domain.MenuItem) error {
	return m.Called(ctx, items).Error(0)
}

func (m *MenuItemRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.MenuItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*domain.MenuItem)
	return item, args.Error(1)
}

func (m *MenuItemRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.MenuItem, error) {
	args := m.Called(ctx, ids)
	items, _ := args.Get(0).([]domain.MenuItem)
	return items, args.Error(1)
}

func (m *MenuItemRepository) Find(ctx context.Context, category *domain.Category) ([]domain.MenuItem, error) {
	args := m.Called(ctx, category)
	items, _ := args.Get(0).([]domain.MenuItem)
	return items, args.Error(1)
}

func (m *MenuItemRepository) Update(ctx context.Context, id primitive.ObjectID, update domain.MenuItemUpdate) (*domain.MenuItem, error) {
	args := m.Called(ctx, id, update)
	item, _ := args.Get(0).(*domain.MenuItem)
	return item, args.Error(1)
}

func (m *MenuItemRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MenuItemRepository) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MenuItemRepository) DeleteByImportTask(ctx context.Context, taskID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, taskID)
	return args.Get(0).(int64), args.Error(1)
}

type AccountRepository struct {
	mock.Mock
}

func NewAccountRepository(t testingT) *AccountRepository {
	m := &AccountRepository{}
	register(&m.Mock, t)
	return m
}

func (m *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *AccountRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Account, error) {
	args := m.Called(ctx, id)
	account, _ := args.Get(0).(*domain.Account)
	return account, args.Error(1)
}

func (m *AccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	args := m.Called(ctx, email)
	account, _ := args.Get(0).(*domain.Account)
	return account, args.Error(1)
}

func (m *AccountRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Account, error) {
	args := m.Called(ctx, ids)
	accounts, _ := args.Get(0).([]domain.Account)
	return accounts, args.Error(1)
}

type OrderRepository struct {
	mock.Mock
}

func NewOrderRepository(t testingT) *OrderRepository {
	m := &OrderRepository{}
	register(&m.Mock, t)
	return m
}

func (m *OrderRepository) Create(ctx context.Context, order *domain.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *OrderRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Order, error) {
	args := m.Called(ctx, id)
	order, _ := args.Get(0).(*domain.Order)
	return order, args.Error(1)
}

func (m *OrderRepository) Find(ctx context.Context, filter repo.OrderFilter) ([]domain.Order, error) {
	args := m.Called(ctx, filter)
	orders, _ := args.Get(0).([]domain.Order)
	return orders, args.Error(1)
}

func (m *OrderRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.OrderStatus, from []domain.OrderStatus) (*domain.Order, error) {
	args := m.Called(ctx, id, status, from)
	order, _ := args.Get(0).(*domain.Order)
	return order, args.Error(1)
}

type ReservationRepository struct {
	mock.Mock
}

func NewReservationRepository(t testingT) *ReservationRepository {
	m := &ReservationRepository{}
	register(&m.Mock, t)
	return m
}

func (m *ReservationRepository) Create(ctx context.Context, reservation *domain.Reservation) error {
	return m.Called(ctx, reservation).Error(0)
}

func (m *ReservationRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	reservation, _ := args.Get(0).(*domain.Reservation)
	return reservation, args.Error(1)
}

func (m *ReservationRepository) Find(ctx context.Context, filter repo.ReservationFilter) ([]domain.Reservation, error) {
	args := m.Called(ctx, filter)
	reservations, _ := args.Get(0).([]domain.Reservation)
	return reservations, args.Error(1)
}

func (m *ReservationRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.ReservationStatus, from []domain.ReservationStatus) (*domain.Reservation, error) {
	args := m.Called(ctx, id, status, from)
	reservation, _ := args.Get(0).(*domain.Reservation)
	return reservation, args.Error(1)
}

type StatusAuditRepository struct {
	mock.Mock
}

func NewStatusAuditRepository(t testingT) *StatusAuditRepository {
	m := &StatusAuditRepository{}
	register(&m.Mock, t)
	return m
}

func (m *StatusAuditRepository) Create(ctx context.Context, audit *domain.StatusAudit) error {
	return m.Called(ctx, audit).Error(0)
}

func (m *StatusAuditRepository) GetByEntity(ctx context.Context, entityType domain.EntityType, entityID string, limit int) ([]domain.StatusAudit, error) {
	args := m.Called(ctx, entityType, entityID, limit)
	audits, _ := args.Get(0).([]domain.StatusAudit)
	return audits, args.Error(1)
}

type ImportTaskRepository struct {
	mock.Mock
}

func NewImportTaskRepository(t testingT) *ImportTaskRepository {
	m := &ImportTaskRepository{}
	register(&m.Mock, t)
	return m
}

func (m *ImportTaskRepository) Create(ctx context.Context, task *domain.ImportTask) error {
	return m.Called(ctx, task).Error(0)
}

func (m *ImportTaskRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ImportTask, error) {
	args := m.Called(ctx, id)
	task, _ := args.Get(0).(*domain.ImportTask)
	return task, args.Error(1)
}

func (m *ImportTaskRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.ImportTaskStatus, errorMsg string) error {
	return m.Called(ctx, id, status, errorMsg).Error(0)
}

func (m *ImportTaskRepository) Complete(ctx context.Context, id primitive.ObjectID, imported, skipped int) error {
	return m.Called(ctx, id, imported, skipped).Error(0)
}

func (m *ImportTaskRepository) IncrementRetryCount(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

var (
	_ repo.MenuItemRepository    = (*MenuItemRepository)(nil)
	_ repo.AccountRepository     = (*AccountRepository)(nil)
	_ repo.OrderRepository       = (*OrderRepository)(nil)
	_ repo.ReservationRepository = (*ReservationRepository)(nil)
	_ repo.StatusAuditRepository = (*StatusAuditRepository)(nil)
	_ repo.ImportTaskRepository  = (*ImportTaskRepository)(nil)
)
