package repository

import (
	"context"

	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/composition"
	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/order"
)

// OrderRepository persists order aggregates. Hydrated reads join the
// customer and the burger lines with their current unit prices. Update
// follows the same nil-keeps / non-nil-replaces rule as BurgerRepository.
// Delete cascades to the order's lines.
type OrderRepository interface {
	Create(ctx context.Context, o *order.Order, lines []composition.Line) (*order.Order, error)
	Update(ctx context.Context, o *order.Order, lines []composition.Line) (*order.Order, error)
	FindByID(ctx context.Context, id int64) (*order.Order, error)
	FindAll(ctx context.Context, offset, limit int) ([]*order.Order, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
