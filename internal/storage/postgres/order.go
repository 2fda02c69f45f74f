package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xenking/pos-admin/internal/domain/order"
)

const (
	listOrdersSQL = `SELECT id, customer_id, customer_name, customer_phone, items, subtotal, discount_rate, total, status, created_at
		FROM orders ORDER BY created_at DESC, id DESC`

	getOrderSQL = `SELECT id, customer_id, customer_name, customer_phone, items, subtotal, discount_rate, total, status, created_at
		FROM orders WHERE id = $1`

	insertOrderSQL = `INSERT INTO orders (id, customer_id, customer_name, customer_phone, items, subtotal, discount_rate, total, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	updateOrderSQL = `UPDATE orders
		SET customer_id = $2, customer_name = $3, customer_phone = $4, items = $5,
		    subtotal = $6, discount_rate = $7, total = $8, status = $9
		WHERE id = $1`

	upsertOrderSQL = `INSERT INTO orders (id, customer_id, customer_name, customer_phone, items, subtotal, discount_rate, total, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE
		SET customer_id = EXCLUDED.customer_id, customer_name = EXCLUDED.customer_name,
		    customer_phone = EXCLUDED.customer_phone, items = EXCLUDED.items,
		    subtotal = EXCLUDED.subtotal, discount_rate = EXCLUDED.discount_rate,
		    total = EXCLUDED.total, status = EXCLUDED.status, created_at = EXCLUDED.created_at`

	deleteOrderSQL = `DELETE FROM orders WHERE id = $1`

	nextOrderIDSQL = `SELECT nextval('order_id_seq')`
)

var (
	_ order.Repository = (*OrderRepository)(nil)
	_ order.IDSource   = (*OrderRepository)(nil)
)

// OrderRepository implements order.Repository and order.IDSource backed by
// PostgreSQL. Line items are serialized to JSON for the JSONB column.
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository returns an OrderRepository that uses the given pool.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// List returns all orders, newest first.
func (r *OrderRepository) List(ctx context.Context) ([]order.Order, error) {
	rows, err := r.pool.Query(ctx, listOrdersSQL)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	return pgx.CollectRows(rows, scanOrder)
}

// Get returns a single order by its identifier.
func (r *OrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	rows, err := r.pool.Query(ctx, getOrderSQL, id)
	if err != nil {
		return nil, fmt.Errorf("getting order %q: %w", id, err)
	}

	o, err := pgx.CollectExactlyOneRow(rows, scanOrder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrNotFound
		}
		return nil, fmt.Errorf("getting order %q: %w", id, err)
	}
	return &o, nil
}

// Create persists a new order.
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	items, err := json.Marshal(o.Lines)
	if err != nil {
		return fmt.Errorf("marshaling order lines: %w", err)
	}

	_, err = r.pool.Exec(ctx, insertOrderSQL,
		o.ID, o.CustomerID, o.CustomerName, o.CustomerPhone, items,
		o.Subtotal, o.DiscountRate, o.Total, string(o.Status), o.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating order %q: %w", o.ID, err)
	}
	return nil
}

// Update replaces an existing order wholesale.
func (r *OrderRepository) Update(ctx context.Context, o *order.Order) error {
	items, err := json.Marshal(o.Lines)
	if err != nil {
		return fmt.Errorf("marshaling order lines: %w", err)
	}

	tag, err := r.pool.Exec(ctx, updateOrderSQL,
		o.ID, o.CustomerID, o.CustomerName, o.CustomerPhone, items,
		o.Subtotal, o.DiscountRate, o.Total, string(o.Status),
	)
	if err != nil {
		return fmt.Errorf("updating order %q: %w", o.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return order.ErrNotFound
	}
	return nil
}

// Upsert inserts or replaces an order, keeping its creation time. Used by
// seeding.
func (r *OrderRepository) Upsert(ctx context.Context, o *order.Order) error {
	items, err := json.Marshal(o.Lines)
	if err != nil {
		return fmt.Errorf("marshaling order lines: %w", err)
	}

	_, err = r.pool.Exec(ctx, upsertOrderSQL,
		o.ID, o.CustomerID, o.CustomerName, o.CustomerPhone, items,
		o.Subtotal, o.DiscountRate, o.Total, string(o.Status), o.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upserting order %q: %w", o.ID, err)
	}
	return nil
}

// Delete removes an order by id.
func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, deleteOrderSQL, id)
	if err != nil {
		return fmt.Errorf("deleting order %q: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return order.ErrNotFound
	}
	return nil
}

// Next issues the next ORDnnn identifier from the database sequence.
func (r *OrderRepository) Next(ctx context.Context) (string, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, nextOrderIDSQL).Scan(&n); err != nil {
		return "", fmt.Errorf("next order id: %w", err)
	}
	return fmt.Sprintf("ORD%03d", n), nil
}

func scanOrder(row pgx.CollectableRow) (order.Order, error) {
	var (
		o      order.Order
		items  []byte
		status string
	)
	err := row.Scan(
		&o.ID, &o.CustomerID, &o.CustomerName, &o.CustomerPhone, &items,
		&o.Subtotal, &o.DiscountRate, &o.Total, &status, &o.CreatedAt,
	)
	if err != nil {
		return o, err
	}

	if err := json.Unmarshal(items, &o.Lines); err != nil {
		return o, fmt.Errorf("unmarshaling order lines for %q: %w", o.ID, err)
	}

	o.Status, err = order.ParseStatus(status)
	return o, err
}
