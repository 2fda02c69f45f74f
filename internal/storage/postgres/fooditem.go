package postgres

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xenking/pos-admin/internal/domain/catalog"
)

const (
	listFoodItemsSQL = `SELECT id, name, code, category, price, quantity, expiration_date, description
		FROM food_items ORDER BY name`

	getFoodItemSQL = `SELECT id, name, code, category, price, quantity, expiration_date, description
		FROM food_items WHERE id = $1`

	insertFoodItemSQL = `INSERT INTO food_items (id, name, code, category, price, quantity, expiration_date, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	updateFoodItemSQL = `UPDATE food_items
		SET name = $2, code = $3, category = $4, price = $5, quantity = $6, expiration_date = $7, description = $8
		WHERE id = $1`

	upsertFoodItemSQL = `INSERT INTO food_items (id, name, code, category, price, quantity, expiration_date, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, code = EXCLUDED.code, category = EXCLUDED.category,
		    price = EXCLUDED.price, quantity = EXCLUDED.quantity,
		    expiration_date = EXCLUDED.expiration_date, description = EXCLUDED.description`

	deleteFoodItemSQL = `DELETE FROM food_items WHERE id = $1`
)

var _ catalog.Repository = (*FoodItemRepository)(nil)

// FoodItemRepository implements catalog.Repository backed by PostgreSQL.
type FoodItemRepository struct {
	pool *pgxpool.Pool
}

// NewFoodItemRepository returns a FoodItemRepository that uses the given pool.
func NewFoodItemRepository(pool *pgxpool.Pool) *FoodItemRepository {
	return &FoodItemRepository{pool: pool}
}

// List returns all food items ordered by name.
func (r *FoodItemRepository) List(ctx context.Context) ([]catalog.FoodItem, error) {
	rows, err := r.pool.Query(ctx, listFoodItemsSQL)
	if err != nil {
		return nil, fmt.Errorf("listing food items: %w", err)
	}
	return pgx.CollectRows(rows, scanFoodItem)
}

// Get returns a single food item by its identifier.
func (r *FoodItemRepository) Get(ctx context.Context, id string) (*catalog.FoodItem, error) {
	rows, err := r.pool.Query(ctx, getFoodItemSQL, id)
	if err != nil {
		return nil, fmt.Errorf("getting food item %q: %w", id, err)
	}

	it, err := pgx.CollectExactlyOneRow(rows, scanFoodItem)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrNotFound
		}
		return nil, fmt.Errorf("getting food item %q: %w", id, err)
	}
	return &it, nil
}

// Create inserts a new food item, assigning an id when none is given.
func (r *FoodItemRepository) Create(ctx context.Context, item *catalog.FoodItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if item.ID == "" {
		item.ID = uuid.New().String()
	}

	_, err := r.pool.Exec(ctx, insertFoodItemSQL,
		item.ID, item.Name, item.Code, item.Category,
		item.Price, item.Quantity, item.ExpirationDate, item.Description,
	)
	if err != nil {
		return fmt.Errorf("creating food item %q: %w", item.ID, err)
	}
	return nil
}

// Update replaces an existing food item.
func (r *FoodItemRepository) Update(ctx context.Context, item *catalog.FoodItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx, updateFoodItemSQL,
		item.ID, item.Name, item.Code, item.Category,
		item.Price, item.Quantity, item.ExpirationDate, item.Description,
	)
	if err != nil {
		return fmt.Errorf("updating food item %q: %w", item.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

// Upsert inserts or replaces a food item. Used by seeding.
func (r *FoodItemRepository) Upsert(ctx context.Context, item *catalog.FoodItem) error {
	_, err := r.pool.Exec(ctx, upsertFoodItemSQL,
		item.ID, item.Name, item.Code, item.Category,
		item.Price, item.Quantity, item.ExpirationDate, item.Description,
	)
	if err != nil {
		return fmt.Errorf("upserting food item %q: %w", item.ID, err)
	}
	return nil
}

// Delete removes a food item by id.
func (r *FoodItemRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, deleteFoodItemSQL, id)
	if err != nil {
		return fmt.Errorf("deleting food item %q: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func scanFoodItem(row pgx.CollectableRow) (catalog.FoodItem, error) {
	var it catalog.FoodItem
	err := row.Scan(
		&it.ID, &it.Name, &it.Code, &it.Category,
		&it.Price, &it.Quantity, &it.ExpirationDate, &it.Description,
	)
	return it, err
}
