package repository

import (
	"context"

	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/customer"
)

// CustomerRepository persists customers. FindByID returns (nil, nil) when
// the id is absent; Delete reports false without error for the same case.
type CustomerRepository interface {
	Create(ctx context.Context, c *customer.Customer) (*customer.Customer, error)
	Update(ctx context.Context, c *customer.Customer) (*customer.Customer, error)
	FindByID(ctx context.Context, id int64) (*customer.Customer, error)
	FindByPhone(ctx context.Context, phone string) (*customer.Customer, error)
	FindAll(ctx context.Context, offset, limit int) ([]*customer.Customer, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Exists(ctx context.Context, id int64) (bool, error)
}
