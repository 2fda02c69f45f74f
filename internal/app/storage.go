package app

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/xenking/pos-admin/internal/domain/catalog"
	"github.com/xenking/pos-admin/internal/domain/customer"
	"github.com/xenking/pos-admin/internal/domain/order"
	"github.com/xenking/pos-admin/internal/storage/memory"
	"github.com/xenking/pos-admin/internal/storage/postgres"
)

// Storage bundles the per-entity repositories of whichever backend the
// configuration selects.
type Storage struct {
	FoodItems catalog.Repository
	Customers customer.Repository
	Orders    order.Repository
	OrderIDs  order.IDSource

	close func()
}

// Close releases the backend's resources.
func (s *Storage) Close() {
	if s.close != nil {
		s.close()
	}
}

// OpenStorage creates the configured storage backend. The memory backend
// comes pre-seeded with the demo fixtures; the postgres backend connects
// and runs migrations.
func OpenStorage(ctx context.Context, cfg *Config) (*Storage, error) {
	switch cfg.Storage {
	case StorageMemory:
		store, err := memory.NewSeeded()
		if err != nil {
			return nil, errors.Wrap(err, "open memory storage")
		}
		orders := store.Orders()
		return &Storage{
			FoodItems: store.FoodItems(),
			Customers: store.Customers(),
			Orders:    orders,
			OrderIDs:  orders,
		}, nil

	case StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, errors.Wrap(err, "create db pool")
		}
		if err := postgres.RunMigrations(ctx, pool); err != nil {
			pool.Close()
			return nil, errors.Wrap(err, "run migrations")
		}
		orders := postgres.NewOrderRepository(pool)
		return &Storage{
			FoodItems: postgres.NewFoodItemRepository(pool),
			Customers: postgres.NewCustomerRepository(pool),
			Orders:    orders,
			OrderIDs:  orders,
			close:     pool.Close,
		}, nil

	default:
		return nil, errors.Errorf("unknown storage backend: %q", cfg.Storage)
	}
}
