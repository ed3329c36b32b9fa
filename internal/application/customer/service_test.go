package customer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/apperr"
	domain "github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/customer"
	"github.com/svyrydov-ihor/burger-joint-web-app/pkg/logger"
)

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id int64) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context, offset, limit int) ([]*domain.Customer, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestService_Create_Success(t *testing.T) {
	repo := new(MockCustomerRepository)
	service := NewService(repo, logger.NewNop())
	ctx := context.Background()

	repo.On("FindByPhone", ctx, "+380501234567").Return(nil, nil)
	repo.On("Create", ctx, mock.AnythingOfType("*customer.Customer")).
		Return(&domain.Customer{ID: 1, Name: "Ihor", Phone: "+380501234567"}, nil)

	created, err := service.Create(ctx, CreateCustomerCommand{Name: "Ihor", Phone: "+380501234567"})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	repo.AssertExpectations(t)
}

func TestService_Create_DuplicatePhone(t *testing.T) {
	repo := new(MockCustomerRepository)
	service := NewService(repo, logger.NewNop())
	ctx := context.Background()

	repo.On("FindByPhone", ctx, "+380501234567").
		Return(&domain.Customer{ID: 7, Name: "Olena", Phone: "+380501234567"}, nil)

	created, err := service.Create(ctx, CreateCustomerCommand{Name: "Ihor", Phone: "+380501234567"})

	assert.Nil(t, created)
	assert.ErrorIs(t, err, apperr.ErrDuplicatePhone)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_MissingName(t *testing.T) {
	repo := new(MockCustomerRepository)
	service := NewService(repo, logger.NewNop())

	created, err := service.Create(context.Background(), CreateCustomerCommand{Name: "", Phone: "+380501234567"})

	assert.Nil(t, created)
	assert.ErrorIs(t, err, apperr.ErrMissingField)
	repo.AssertNotCalled(t, "FindByPhone", mock.Anything, mock.Anything)
}

func TestService_Update_PhoneTakenByAnother(t *testing.T) {
	repo := new(MockCustomerRepository)
	service := NewService(repo, logger.NewNop())
	ctx := context.Background()

	repo.On("FindByID", ctx, int64(1)).
		Return(&domain.Customer{ID: 1, Name: "Ihor", Phone: "+380501111111"}, nil)
	repo.On("FindByPhone", ctx, "+380502222222").
		Return(&domain.Customer{ID: 2, Name: "Olena", Phone: "+380502222222"}, nil)

	phone := "+380502222222"
	updated, err := service.Update(ctx, 1, UpdateCustomerCommand{Phone: &phone})

	assert.Nil(t, updated)
	assert.ErrorIs(t, err, apperr.ErrDuplicatePhone)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Update_OwnPhoneIsNotACollision(t *testing.T) {
	repo := new(MockCustomerRepository)
	service := NewService(repo, logger.NewNop())
	ctx := context.Background()

	existing := &domain.Customer{ID: 1, Name: "Ihor", Phone: "+380501111111"}
	repo.On("FindByID", ctx, int64(1)).Return(existing, nil)
	repo.On("Update", ctx, mock.AnythingOfType("*customer.Customer")).Return(existing, nil)

	name := "Ihor K."
	phone := "+380501111111"
	updated, err := service.Update(ctx, 1, UpdateCustomerCommand{Name: &name, Phone: &phone})

	assert.NoError(t, err)
	assert.NotNil(t, updated)
	repo.AssertNotCalled(t, "FindByPhone", mock.Anything, mock.Anything)
}

func TestService_Update_NotFound(t *testing.T) {
	repo := new(MockCustomerRepository)
	service := NewService(repo, logger.NewNop())
	ctx := context.Background()

	repo.On("FindByID", ctx, int64(99)).Return(nil, nil)

	name := "Ihor"
	updated, err := service.Update(ctx, 99, UpdateCustomerCommand{Name: &name})

	assert.NoError(t, err)
	assert.Nil(t, updated)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Delete_Absent(t *testing.T) {
	repo := new(MockCustomerRepository)
	service := NewService(repo, logger.NewNop())
	ctx := context.Background()

	repo.On("Delete", ctx, int64(5)).Return(false, nil)

	deleted, err := service.Delete(ctx, 5)

	assert.NoError(t, err)
	assert.False(t, deleted)
}

func TestService_Delete_RepoError(t *testing.T) {
	repo := new(MockCustomerRepository)
	service := NewService(repo, logger.NewNop())
	ctx := context.Background()

	repo.On("Delete", ctx, int64(5)).Return(false, errors.New("connection reset"))

	deleted, err := service.Delete(ctx, 5)

	assert.Error(t, err)
	assert.False(t, deleted)
}
