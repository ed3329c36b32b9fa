package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/ingredient"
)

type IngredientRepository struct {
	pool *pgxpool.Pool
}

func NewIngredientRepository(pool *pgxpool.Pool) *IngredientRepository {
	return &IngredientRepository{pool: pool}
}

func (r *IngredientRepository) FindByID(ctx context.Context, id int64) (*domain.Ingredient, error) {
	const query = `
		SELECT id, name, manufacturer
		FROM ingredients
		WHERE id = $1;
	`
	var ing domain.Ingredient
	err := r.pool.QueryRow(ctx, query, id).Scan(&ing.ID, &ing.Name, &ing.Manufacturer)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ing, nil
}

func (r *IngredientRepository) FindAll(ctx context.Context, offset, limit int) ([]*domain.Ingredient, error) {
	const query = `
		SELECT id, name, manufacturer
		FROM ingredients
		ORDER BY id
		OFFSET $1 LIMIT $2;
	`
	rows, err := r.pool.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ingredients := make([]*domain.Ingredient, 0)
	for rows.Next() {
		var ing domain.Ingredient
		if err := rows.Scan(&ing.ID, &ing.Name, &ing.Manufacturer); err != nil {
			return nil, err
		}
		ingredients = append(ingredients, &ing)
	}
	return ingredients, rows.Err()
}

func (r *IngredientRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM ingredients WHERE id = $1);`, id).Scan(&exists)
	return exists, err
}

// ReplaceAll swaps the entire catalog in one transaction: delete all rows,
// insert the given ones. Burger recipe lines referencing removed
// ingredients go with them (cascade).
func (r *IngredientRepository) ReplaceAll(ctx context.Context, items []domain.Ingredient) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM ingredients;`); err != nil {
		return fmt.Errorf("clear ingredients: %w", err)
	}

	const insert = `
		INSERT INTO ingredients (name, manufacturer)
		VALUES ($1, $2);
	`
	for _, item := range items {
		if _, err := tx.Exec(ctx, insert, item.Name, item.Manufacturer); err != nil {
			return fmt.Errorf("insert ingredient %q: %w", item.Name, err)
		}
	}

	return tx.Commit(ctx)
}
