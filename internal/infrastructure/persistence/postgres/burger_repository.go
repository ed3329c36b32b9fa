package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/apperr"
	domain "github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/burger"
	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/composition"
)

type BurgerRepository struct {
	pool *pgxpool.Pool
}

func NewBurgerRepository(pool *pgxpool.Pool) *BurgerRepository {
	return &BurgerRepository{pool: pool}
}

// Create inserts the burger row and its recipe lines in one transaction;
// any failure rolls the whole aggregate back.
func (r *BurgerRepository) Create(ctx context.Context, b *domain.Burger, lines []composition.Line) (*domain.Burger, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	const insert = `
		INSERT INTO burgers (name, description, price)
		VALUES ($1, NULLIF($2, ''), $3)
		RETURNING id;
	`
	if err := tx.QueryRow(ctx, insert, b.Name, b.Description, b.Price).Scan(&b.ID); err != nil {
		return nil, fmt.Errorf("insert burger: %w", err)
	}

	if err := insertRecipeLines(ctx, tx, b.ID, lines); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return r.FindByID(ctx, b.ID)
}

// Update rewrites the burger row and, when lines is non-nil, replaces the
// whole recipe (delete all, reinsert), all in one transaction.
func (r *BurgerRepository) Update(ctx context.Context, b *domain.Burger, lines []composition.Line) (*domain.Burger, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	const update = `
		UPDATE burgers
		SET name = $2, description = NULLIF($3, ''), price = $4
		WHERE id = $1;
	`
	tag, err := tx.Exec(ctx, update, b.ID, b.Name, b.Description, b.Price)
	if err != nil {
		return nil, fmt.Errorf("update burger: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, nil
	}

	if lines != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM burger_ingredient_items WHERE burger_id = $1;`, b.ID); err != nil {
			return nil, fmt.Errorf("clear recipe: %w", err)
		}
		if err := insertRecipeLines(ctx, tx, b.ID, lines); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return r.FindByID(ctx, b.ID)
}

// FindByID hydrates the aggregate: the root row plus recipe lines with
// ingredient names.
func (r *BurgerRepository) FindByID(ctx context.Context, id int64) (*domain.Burger, error) {
	const query = `
		SELECT id, name, COALESCE(description, ''), price
		FROM burgers
		WHERE id = $1;
	`
	var b domain.Burger
	err := r.pool.QueryRow(ctx, query, id).Scan(&b.ID, &b.Name, &b.Description, &b.Price)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if b.Ingredients, err = r.loadRecipe(ctx, id); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BurgerRepository) FindAll(ctx context.Context, offset, limit int) ([]*domain.Burger, error) {
	const query = `
		SELECT id, name, COALESCE(description, ''), price
		FROM burgers
		ORDER BY id
		OFFSET $1 LIMIT $2;
	`
	rows, err := r.pool.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	burgers := make([]*domain.Burger, 0)
	for rows.Next() {
		var b domain.Burger
		if err := rows.Scan(&b.ID, &b.Name, &b.Description, &b.Price); err != nil {
			return nil, err
		}
		burgers = append(burgers, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, b := range burgers {
		if b.Ingredients, err = r.loadRecipe(ctx, b.ID); err != nil {
			return nil, err
		}
	}
	return burgers, nil
}

// Delete is blocked by the RESTRICT constraint while any order line still
// references the burger; recipe lines cascade away with the row.
func (r *BurgerRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM burgers WHERE id = $1;`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, apperr.ErrReferentialConflict
		}
		return false, fmt.Errorf("delete burger %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *BurgerRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM burgers WHERE id = $1);`, id).Scan(&exists)
	return exists, err
}

func (r *BurgerRepository) loadRecipe(ctx context.Context, burgerID int64) ([]domain.IngredientLine, error) {
	const query = `
		SELECT bi.ingredient_id, i.name, bi.quantity
		FROM burger_ingredient_items bi
		JOIN ingredients i ON i.id = bi.ingredient_id
		WHERE bi.burger_id = $1
		ORDER BY bi.ingredient_id;
	`
	rows, err := r.pool.Query(ctx, query, burgerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]domain.IngredientLine, 0)
	for rows.Next() {
		var line domain.IngredientLine
		if err := rows.Scan(&line.IngredientID, &line.Name, &line.Quantity); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func insertRecipeLines(ctx context.Context, tx pgx.Tx, burgerID int64, lines []composition.Line) error {
	const insert = `
		INSERT INTO burger_ingredient_items (burger_id, ingredient_id, quantity)
		VALUES ($1, $2, $3);
	`
	for _, line := range lines {
		if _, err := tx.Exec(ctx, insert, burgerID, line.ID, line.Quantity); err != nil {
			if isForeignKeyViolation(err) {
				return &apperr.ReferenceNotFoundError{Kind: "ingredient", ID: line.ID}
			}
			return fmt.Errorf("insert recipe line: %w", err)
		}
	}
	return nil
}
