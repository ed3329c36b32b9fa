package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/apperr"
	domain "github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/customer"
)

type CustomerRepository struct {
	pool *pgxpool.Pool
}

func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	const query = `
		INSERT INTO customers (name, phone)
		VALUES ($1, $2)
		RETURNING id;
	`
	if err := r.pool.QueryRow(ctx, query, c.Name, c.Phone).Scan(&c.ID); err != nil {
		// The service checks first; the unique index catches the race.
		if isUniqueViolation(err) {
			return nil, apperr.ErrDuplicatePhone
		}
		return nil, err
	}
	return c, nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	const query = `
		UPDATE customers
		SET name = $2, phone = $3
		WHERE id = $1;
	`
	tag, err := r.pool.Exec(ctx, query, c.ID, c.Name, c.Phone)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.ErrDuplicatePhone
		}
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, nil
	}
	return c, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id int64) (*domain.Customer, error) {
	const query = `
		SELECT id, name, phone
		FROM customers
		WHERE id = $1;
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *CustomerRepository) FindByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	const query = `
		SELECT id, name, phone
		FROM customers
		WHERE phone = $1;
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, phone))
}

func (r *CustomerRepository) FindAll(ctx context.Context, offset, limit int) ([]*domain.Customer, error) {
	const query = `
		SELECT id, name, phone
		FROM customers
		ORDER BY id
		OFFSET $1 LIMIT $2;
	`
	rows, err := r.pool.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone); err != nil {
			return nil, err
		}
		customers = append(customers, &c)
	}
	return customers, rows.Err()
}

// Delete removes the customer; the schema cascades to their orders and the
// orders' lines.
func (r *CustomerRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE id = $1;`, id)
	if err != nil {
		return false, fmt.Errorf("delete customer %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *CustomerRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM customers WHERE id = $1);`, id).Scan(&exists)
	return exists, err
}

func (r *CustomerRepository) scanOne(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(&c.ID, &c.Name, &c.Phone)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
