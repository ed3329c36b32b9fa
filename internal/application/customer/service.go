package customer

import (
	"context"
	"fmt"

	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/apperr"
	domain "github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/customer"
	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/repository"
	"github.com/svyrydov-ihor/burger-joint-web-app/pkg/logger"
)

type Service struct {
	customers repository.CustomerRepository
	log       logger.Logger
}

type CreateCustomerCommand struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

// UpdateCustomerCommand carries only the fields to change; nil means keep
// the current value.
type UpdateCustomerCommand struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

func NewService(customers repository.CustomerRepository, log logger.Logger) *Service {
	return &Service{customers: customers, log: log}
}

func (s *Service) Create(ctx context.Context, cmd CreateCustomerCommand) (*domain.Customer, error) {
	c, err := domain.New(cmd.Name, cmd.Phone)
	if err != nil {
		return nil, err
	}

	existing, err := s.customers.FindByPhone(ctx, c.Phone)
	if err != nil {
		return nil, fmt.Errorf("check phone: %w", err)
	}
	if existing != nil {
		return nil, apperr.ErrDuplicatePhone
	}

	created, err := s.customers.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}

	s.log.Info("customer created",
		logger.Int64("customer_id", created.ID),
		logger.String("name", created.Name))
	return created, nil
}

// Update applies the supplied fields to an existing customer. A missing
// customer yields (nil, nil); a phone change colliding with another
// customer fails with ErrDuplicatePhone. Re-submitting the customer's own
// phone is not a collision.
func (s *Service) Update(ctx context.Context, id int64, cmd UpdateCustomerCommand) (*domain.Customer, error) {
	existing, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load customer: %w", err)
	}
	if existing == nil {
		s.log.Warn("customer not found for update", logger.Int64("customer_id", id))
		return nil, nil
	}

	if cmd.Phone != nil && *cmd.Phone != existing.Phone {
		holder, err := s.customers.FindByPhone(ctx, *cmd.Phone)
		if err != nil {
			return nil, fmt.Errorf("check phone: %w", err)
		}
		if holder != nil && holder.ID != id {
			return nil, apperr.ErrDuplicatePhone
		}
		existing.Phone = *cmd.Phone
	}
	if cmd.Name != nil {
		existing.Name = *cmd.Name
	}

	updated, err := s.customers.Update(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}

	s.log.Info("customer updated", logger.Int64("customer_id", id))
	return updated, nil
}

func (s *Service) FindByID(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.customers.FindByID(ctx, id)
}

func (s *Service) FindAll(ctx context.Context, offset, limit int) ([]*domain.Customer, error) {
	return s.customers.FindAll(ctx, offset, limit)
}

// Delete removes the customer; the store cascades to their orders and order
// lines. Returns false without error when the id is absent.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.customers.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete customer: %w", err)
	}
	if deleted {
		s.log.Info("customer deleted", logger.Int64("customer_id", id))
	}
	return deleted, nil
}
