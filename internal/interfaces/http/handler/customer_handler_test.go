package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	app "github.com/svyrydov-ihor/burger-joint-web-app/internal/application/customer"
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

func setupCustomerRouter(repo *MockCustomerRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := app.NewService(repo, logger.NewNop())
	h := NewCustomerHandler(svc, logger.NewNop())

	r := gin.New()
	r.POST("/api/customers", h.CreateCustomer)
	r.GET("/api/customers/:id", h.GetCustomer)
	r.DELETE("/api/customers/:id", h.DeleteCustomer)
	return r
}

func TestCreateCustomer_DuplicatePhoneIsConflict(t *testing.T) {
	repo := new(MockCustomerRepository)
	repo.On("FindByPhone", mock.Anything, "+380501234567").
		Return(&domain.Customer{ID: 2, Name: "Olena", Phone: "+380501234567"}, nil)

	r := setupCustomerRouter(repo)
	w := httptest.NewRecorder()
	body := `{"name": "Ihor", "phone": "+380501234567"}`
	req := httptest.NewRequest(http.MethodPost, "/api/customers", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already in use")
}

func TestCreateCustomer_MissingFieldIsBadRequest(t *testing.T) {
	repo := new(MockCustomerRepository)

	r := setupCustomerRouter(repo)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/customers", strings.NewReader(`{"name": "Ihor"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCustomer_NotFound(t *testing.T) {
	repo := new(MockCustomerRepository)
	repo.On("FindByID", mock.Anything, int64(99)).Return(nil, nil)

	r := setupCustomerRouter(repo)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/customers/99", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetCustomer_NonNumericID(t *testing.T) {
	repo := new(MockCustomerRepository)

	r := setupCustomerRouter(repo)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/customers/abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestDeleteCustomer_NoContent(t *testing.T) {
	repo := new(MockCustomerRepository)
	repo.On("Delete", mock.Anything, int64(5)).Return(true, nil)

	r := setupCustomerRouter(repo)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/customers/5", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
