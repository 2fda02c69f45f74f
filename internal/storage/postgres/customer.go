package postgres

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xenking/pos-admin/internal/domain/customer"
)

const (
	listCustomersSQL = `SELECT id, name, phone, email, address, total_orders, total_spent, join_date
		FROM customers ORDER BY name`

	getCustomerSQL = `SELECT id, name, phone, email, address, total_orders, total_spent, join_date
		FROM customers WHERE id = $1`

	insertCustomerSQL = `INSERT INTO customers (id, name, phone, email, address, total_orders, total_spent, join_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	updateCustomerSQL = `UPDATE customers
		SET name = $2, phone = $3, email = $4, address = $5, total_orders = $6, total_spent = $7, join_date = $8
		WHERE id = $1`

	upsertCustomerSQL = `INSERT INTO customers (id, name, phone, email, address, total_orders, total_spent, join_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, phone = EXCLUDED.phone, email = EXCLUDED.email,
		    address = EXCLUDED.address, total_orders = EXCLUDED.total_orders,
		    total_spent = EXCLUDED.total_spent, join_date = EXCLUDED.join_date`

	deleteCustomerSQL = `DELETE FROM customers WHERE id = $1`
)

var _ customer.Repository = (*CustomerRepository)(nil)

// CustomerRepository implements customer.Repository backed by PostgreSQL.
type CustomerRepository struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository returns a CustomerRepository that uses the given pool.
func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

// List returns all customers ordered by name.
func (r *CustomerRepository) List(ctx context.Context) ([]customer.Customer, error) {
	rows, err := r.pool.Query(ctx, listCustomersSQL)
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}
	return pgx.CollectRows(rows, scanCustomer)
}

// Get returns a single customer by its identifier.
func (r *CustomerRepository) Get(ctx context.Context, id string) (*customer.Customer, error) {
	rows, err := r.pool.Query(ctx, getCustomerSQL, id)
	if err != nil {
		return nil, fmt.Errorf("getting customer %q: %w", id, err)
	}

	c, err := pgx.CollectExactlyOneRow(rows, scanCustomer)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, customer.ErrNotFound
		}
		return nil, fmt.Errorf("getting customer %q: %w", id, err)
	}
	return &c, nil
}

// Create inserts a new customer, assigning an id when none is given.
func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}

	_, err := r.pool.Exec(ctx, insertCustomerSQL,
		c.ID, c.Name, c.Phone, c.Email, c.Address,
		c.TotalOrders, c.TotalSpent, c.JoinDate,
	)
	if err != nil {
		return fmt.Errorf("creating customer %q: %w", c.ID, err)
	}
	return nil
}

// Update replaces an existing customer.
func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx, updateCustomerSQL,
		c.ID, c.Name, c.Phone, c.Email, c.Address,
		c.TotalOrders, c.TotalSpent, c.JoinDate,
	)
	if err != nil {
		return fmt.Errorf("updating customer %q: %w", c.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return customer.ErrNotFound
	}
	return nil
}

// Upsert inserts or replaces a customer. Used by seeding.
func (r *CustomerRepository) Upsert(ctx context.Context, c *customer.Customer) error {
	_, err := r.pool.Exec(ctx, upsertCustomerSQL,
		c.ID, c.Name, c.Phone, c.Email, c.Address,
		c.TotalOrders, c.TotalSpent, c.JoinDate,
	)
	if err != nil {
		return fmt.Errorf("upserting customer %q: %w", c.ID, err)
	}
	return nil
}

// Delete removes a customer by id.
func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, deleteCustomerSQL, id)
	if err != nil {
		return fmt.Errorf("deleting customer %q: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return customer.ErrNotFound
	}
	return nil
}

func scanCustomer(row pgx.CollectableRow) (customer.Customer, error) {
	var c customer.Customer
	err := row.Scan(
		&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address,
		&c.TotalOrders, &c.TotalSpent, &c.JoinDate,
	)
	return c, err
}
