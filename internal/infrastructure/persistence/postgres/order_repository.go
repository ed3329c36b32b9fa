package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/apperr"
	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/composition"
	"github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/customer"
	domain "github.com/svyrydov-ihor/burger-joint-web-app/internal/domain/order"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Create inserts the order row and its burger lines in one transaction.
// created_at comes from the database clock and is never written again.
func (r *OrderRepository) Create(ctx context.Context, o *domain.Order, lines []composition.Line) (*domain.Order, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	const insert = `
		INSERT INTO orders (customer_id, status)
		VALUES ($1, $2)
		RETURNING id, created_at;
	`
	if err := tx.QueryRow(ctx, insert, o.CustomerID, string(o.Status)).Scan(&o.ID, &o.CreatedAt); err != nil {
		if isForeignKeyViolation(err) {
			return nil, &apperr.ReferenceNotFoundError{Kind: "customer", ID: o.CustomerID}
		}
		return nil, fmt.Errorf("insert order: %w", err)
	}

	if err := insertOrderLines(ctx, tx, o.ID, lines); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return r.FindByID(ctx, o.ID)
}

// Update rewrites customer_id and status and, when lines is non-nil,
// replaces the order's lines wholesale, all in one transaction.
func (r *OrderRepository) Update(ctx context.Context, o *domain.Order, lines []composition.Line) (*domain.Order, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	const update = `
		UPDATE orders
		SET customer_id = $2, status = $3
		WHERE id = $1;
	`
	tag, err := tx.Exec(ctx, update, o.ID, o.CustomerID, string(o.Status))
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, &apperr.ReferenceNotFoundError{Kind: "customer", ID: o.CustomerID}
		}
		return nil, fmt.Errorf("update order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, nil
	}

	if lines != nil {
		if _, err := tx.Exec(ctx, `DELETE FROM order_burger_items WHERE order_id = $1;`, o.ID); err != nil {
			return nil, fmt.Errorf("clear order lines: %w", err)
		}
		if err := insertOrderLines(ctx, tx, o.ID, lines); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return r.FindByID(ctx, o.ID)
}

// FindByID hydrates the aggregate: the order row, its customer, and the
// burger lines with each burger's current unit price.
func (r *OrderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	const query = `
		SELECT o.id, o.customer_id, o.created_at, o.status, c.name, c.phone
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.id = $1;
	`
	o, err := scanOrder(r.pool.QueryRow(ctx, query, id))
	if err != nil || o == nil {
		return nil, err
	}

	if o.Burgers, err = r.loadLines(ctx, o.ID); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *OrderRepository) FindAll(ctx context.Context, offset, limit int) ([]*domain.Order, error) {
	const query = `
		SELECT o.id, o.customer_id, o.created_at, o.status, c.name, c.phone
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		ORDER BY o.id
		OFFSET $1 LIMIT $2;
	`
	rows, err := r.pool.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, o := range orders {
		if o.Burgers, err = r.loadLines(ctx, o.ID); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

// Delete removes the order; its lines cascade away with it.
func (r *OrderRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE id = $1;`, id)
	if err != nil {
		return false, fmt.Errorf("delete order %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *OrderRepository) loadLines(ctx context.Context, orderID int64) ([]domain.BurgerLine, error) {
	const query = `
		SELECT ob.burger_id, b.name, b.price, ob.quantity
		FROM order_burger_items ob
		JOIN burgers b ON b.id = ob.burger_id
		WHERE ob.order_id = $1
		ORDER BY ob.burger_id;
	`
	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]domain.BurgerLine, 0)
	for rows.Next() {
		var line domain.BurgerLine
		if err := rows.Scan(&line.BurgerID, &line.Name, &line.UnitPrice, &line.Quantity); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		o      domain.Order
		status string
		c      customer.Customer
	)
	err := row.Scan(&o.ID, &o.CustomerID, &o.CreatedAt, &status, &c.Name, &c.Phone)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	o.Status = domain.Status(status)
	c.ID = o.CustomerID
	o.Customer = &c
	return &o, nil
}

func insertOrderLines(ctx context.Context, tx pgx.Tx, orderID int64, lines []composition.Line) error {
	const insert = `
		INSERT INTO order_burger_items (order_id, burger_id, quantity)
		VALUES ($1, $2, $3);
	`
	for _, line := range lines {
		if _, err := tx.Exec(ctx, insert, orderID, line.ID, line.Quantity); err != nil {
			if isForeignKeyViolation(err) {
				return &apperr.ReferenceNotFoundError{Kind: "burger", ID: line.ID}
			}
			return fmt.Errorf("insert order line: %w", err)
		}
	}
	return nil
}
