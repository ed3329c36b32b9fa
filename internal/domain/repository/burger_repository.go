package repository

import (
	"context"

	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/burger"
	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/composition"
)

// BurgerRepository persists burger aggregates. FindByID and FindAll hydrate
// the recipe lines (ingredient names included); Exists is the shallow
// variant. On Update a nil lines slice leaves the stored recipe untouched,
// a non-nil slice replaces it wholesale. Delete fails with
// ErrReferentialConflict while any order line still references the burger.
type BurgerRepository interface {
	Create(ctx context.Context, b *burger.Burger, lines []composition.Line) (*burger.Burger, error)
	Update(ctx context.Context, b *burger.Burger, lines []composition.Line) (*burger.Burger, error)
	FindByID(ctx context.Context, id int64) (*burger.Burger, error)
	FindAll(ctx context.Context, offset, limit int) ([]*burger.Burger, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Exists(ctx context.Context, id int64) (bool, error)
}
