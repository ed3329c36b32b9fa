package repository

import (
	"context"

	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/ingredient"
)

// IngredientRepository is read-only at the API boundary; ReplaceAll exists
// for the seed routine, which swaps the whole catalog in one transaction.
type IngredientRepository interface {
	FindByID(ctx context.Context, id int64) (*ingredient.Ingredient, error)
	FindAll(ctx context.Context, offset, limit int) ([]*ingredient.Ingredient, error)
	Exists(ctx context.Context, id int64) (bool, error)
	ReplaceAll(ctx context.Context, items []ingredient.Ingredient) error
}
