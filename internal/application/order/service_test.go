package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/apperr"
	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/burger"
	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/composition"
	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/customer"
	domain "github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/order"
	"github.com/svyrydov-ihor/burger-joint-web-app/pkg/logger"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, o *domain.Order, lines []composition.Line) (*domain.Order, error) {
	args := m.Called(ctx, o, lines)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *domain.Order, lines []composition.Line) (*domain.Order, error) {
	args := m.Called(ctx, o, lines)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context, offset, limit int) ([]*domain.Order, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockBurgerRepository struct {
	mock.Mock
}

func (m *MockBurgerRepository) Create(ctx context.Context, b *burger.Burger, lines []composition.Line) (*burger.Burger, error) {
	args := m.Called(ctx, b, lines)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*burger.Burger), args.Error(1)
}

func (m *MockBurgerRepository) Update(ctx context.Context, b *burger.Burger, lines []composition.Line) (*burger.Burger, error) {
	args := m.Called(ctx, b, lines)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*burger.Burger), args.Error(1)
}

func (m *MockBurgerRepository) FindByID(ctx context.Context, id int64) (*burger.Burger, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*burger.Burger), args.Error(1)
}

func (m *MockBurgerRepository) FindAll(ctx context.Context, offset, limit int) ([]*burger.Burger, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*burger.Burger), args.Error(1)
}

func (m *MockBurgerRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockBurgerRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(ctx context.Context, c *customer.Customer) (*customer.Customer, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) (*customer.Customer, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id int64) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByPhone(ctx context.Context, phone string) (*customer.Customer, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context, offset, limit int) ([]*customer.Customer, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishOrderEvent(ctx context.Context, payload []byte) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func newTestService(orders *MockOrderRepository, burgers *MockBurgerRepository, customers *MockCustomerRepository, publisher Publisher) *Service {
	return NewService(orders, burgers, customers, publisher, logger.NewNop())
}

func TestService_Create_MergesDuplicateBurgerItems(t *testing.T) {
	orders := new(MockOrderRepository)
	burgers := new(MockBurgerRepository)
	customers := new(MockCustomerRepository)
	service := newTestService(orders, burgers, customers, nil)
	ctx := context.Background()

	customers.On("Exists", ctx, int64(1)).Return(true, nil)
	burgers.On("Exists", ctx, int64(3)).Return(true, nil)

	var captured []composition.Line
	orders.On("Create", ctx, mock.AnythingOfType("*order.Order"), mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).([]composition.Line)
		}).
		Return(&domain.Order{ID: 1, CustomerID: 1, Status: domain.StatusPending, CreatedAt: time.Now()}, nil)

	created, err := service.Create(ctx, CreateOrderCommand{
		CustomerID: 1,
		Items: []OrderItemRef{
			{BurgerID: 3, Quantity: 2},
			{BurgerID: 3, Quantity: 1},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, created.Status)
	require.Len(t, captured, 1)
	assert.Equal(t, composition.Line{ID: 3, Quantity: 3}, captured[0])
}

func TestService_Create_MissingCustomerWritesNothing(t *testing.T) {
	orders := new(MockOrderRepository)
	burgers := new(MockBurgerRepository)
	customers := new(MockCustomerRepository)
	service := newTestService(orders, burgers, customers, nil)
	ctx := context.Background()

	customers.On("Exists", ctx, int64(99)).Return(false, nil)

	created, err := service.Create(ctx, CreateOrderCommand{
		CustomerID: 99,
		Items:      []OrderItemRef{{BurgerID: 3, Quantity: 1}},
	})

	assert.Nil(t, created)
	var refErr *apperr.ReferenceNotFoundError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "customer", refErr.Kind)
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	burgers.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}

func TestService_Create_MissingBurgerWritesNothing(t *testing.T) {
	orders := new(MockOrderRepository)
	burgers := new(MockBurgerRepository)
	customers := new(MockCustomerRepository)
	service := newTestService(orders, burgers, customers, nil)
	ctx := context.Background()

	customers.On("Exists", ctx, int64(1)).Return(true, nil)
	burgers.On("Exists", ctx, int64(42)).Return(false, nil)

	created, err := service.Create(ctx, CreateOrderCommand{
		CustomerID: 1,
		Items:      []OrderItemRef{{BurgerID: 42, Quantity: 1}},
	})

	assert.Nil(t, created)
	var refErr *apperr.ReferenceNotFoundError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "burger", refErr.Kind)
	assert.Equal(t, int64(42), refErr.ID)
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Create_EmptyItemsRejected(t *testing.T) {
	orders := new(MockOrderRepository)
	burgers := new(MockBurgerRepository)
	customers := new(MockCustomerRepository)
	service := newTestService(orders, burgers, customers, nil)
	ctx := context.Background()

	customers.On("Exists", ctx, int64(1)).Return(true, nil)

	created, err := service.Create(ctx, CreateOrderCommand{CustomerID: 1})

	assert.Nil(t, created)
	assert.ErrorIs(t, err, apperr.ErrEmptyComposition)
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Create_PublishesEvent(t *testing.T) {
	orders := new(MockOrderRepository)
	burgers := new(MockBurgerRepository)
	customers := new(MockCustomerRepository)
	publisher := new(MockPublisher)
	service := newTestService(orders, burgers, customers, publisher)
	ctx := context.Background()

	customers.On("Exists", ctx, int64(1)).Return(true, nil)
	burgers.On("Exists", ctx, int64(3)).Return(true, nil)
	orders.On("Create", ctx, mock.Anything, mock.Anything).
		Return(&domain.Order{ID: 1, CustomerID: 1, Status: domain.StatusPending, CreatedAt: time.Now()}, nil)
	publisher.On("PublishOrderEvent", ctx, mock.MatchedBy(func(payload []byte) bool {
		return len(payload) > 0
	})).Return(nil)

	_, err := service.Create(ctx, CreateOrderCommand{
		CustomerID: 1,
		Items:      []OrderItemRef{{BurgerID: 3, Quantity: 1}},
	})

	require.NoError(t, err)
	publisher.AssertExpectations(t)
}

func TestService_Create_PublishFailureDoesNotFail(t *testing.T) {
	orders := new(MockOrderRepository)
	burgers := new(MockBurgerRepository)
	customers := new(MockCustomerRepository)
	publisher := new(MockPublisher)
	service := newTestService(orders, burgers, customers, publisher)
	ctx := context.Background()

	customers.On("Exists", ctx, int64(1)).Return(true, nil)
	burgers.On("Exists", ctx, int64(3)).Return(true, nil)
	orders.On("Create", ctx, mock.Anything, mock.Anything).
		Return(&domain.Order{ID: 1, CustomerID: 1, Status: domain.StatusPending, CreatedAt: time.Now()}, nil)
	publisher.On("PublishOrderEvent", ctx, mock.Anything).Return(errors.New("broker unreachable"))

	created, err := service.Create(ctx, CreateOrderCommand{
		CustomerID: 1,
		Items:      []OrderItemRef{{BurgerID: 3, Quantity: 1}},
	})

	assert.NoError(t, err)
	assert.NotNil(t, created)
}

func TestService_Update_InvalidStatus(t *testing.T) {
	orders := new(MockOrderRepository)
	burgers := new(MockBurgerRepository)
	customers := new(MockCustomerRepository)
	service := newTestService(orders, burgers, customers, nil)
	ctx := context.Background()

	orders.On("FindByID", ctx, int64(1)).
		Return(&domain.Order{ID: 1, CustomerID: 1, Status: domain.StatusPending}, nil)

	status := "burnt"
	updated, err := service.Update(ctx, 1, UpdateOrderCommand{Status: &status})

	assert.Nil(t, updated)
	assert.ErrorIs(t, err, apperr.ErrInvalidStatus)
	orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Update_StatusChange(t *testing.T) {
	orders := new(MockOrderRepository)
	burgers := new(MockBurgerRepository)
	customers := new(MockCustomerRepository)
	service := newTestService(orders, burgers, customers, nil)
	ctx := context.Background()

	existing := &domain.Order{ID: 1, CustomerID: 1, Status: domain.StatusPending}
	orders.On("FindByID", ctx, int64(1)).Return(existing, nil)
	orders.On("Update", ctx, mock.MatchedBy(func(o *domain.Order) bool {
		return o.Status == domain.StatusCompleted
	}), []composition.Line(nil)).
		Return(&domain.Order{ID: 1, CustomerID: 1, Status: domain.StatusCompleted}, nil)

	status := string(domain.StatusCompleted)
	updated, err := service.Update(ctx, 1, UpdateOrderCommand{Status: &status})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, updated.Status)
}

func TestService_Update_NotFound(t *testing.T) {
	orders := new(MockOrderRepository)
	burgers := new(MockBurgerRepository)
	customers := new(MockCustomerRepository)
	service := newTestService(orders, burgers, customers, nil)
	ctx := context.Background()

	orders.On("FindByID", ctx, int64(77)).Return(nil, nil)

	status := string(domain.StatusCancelled)
	updated, err := service.Update(ctx, 77, UpdateOrderCommand{Status: &status})

	assert.NoError(t, err)
	assert.Nil(t, updated)
}

func TestService_Delete_PublishesEvent(t *testing.T) {
	orders := new(MockOrderRepository)
	burgers := new(MockBurgerRepository)
	customers := new(MockCustomerRepository)
	publisher := new(MockPublisher)
	service := newTestService(orders, burgers, customers, publisher)
	ctx := context.Background()

	orders.On("Delete", ctx, int64(1)).Return(true, nil)
	publisher.On("PublishOrderEvent", ctx, mock.Anything).Return(nil)

	deleted, err := service.Delete(ctx, 1)

	require.NoError(t, err)
	assert.True(t, deleted)
	publisher.AssertExpectations(t)
}
