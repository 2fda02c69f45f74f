// Command seed-db populates PostgreSQL with the embedded demo fixtures:
// menu catalog, customer directory and order history.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/go-faster/errors"

	"github.com/xenking/pos-admin/internal/storage/memory"
	"github.com/xenking/pos-admin/internal/storage/postgres"
)

func main() {
	var databaseURL string
	flag.StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env)")
	flag.Parse()

	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		slog.Error("database URL is required: set --database-url or DATABASE_URL")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, databaseURL); err != nil {
		slog.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("seed completed successfully")
}

func run(ctx context.Context, databaseURL string) error {
	// The embedded fixtures are already decoded by the memory store; reuse
	// it as the source of truth instead of parsing JSON twice.
	store, err := memory.NewSeeded()
	if err != nil {
		return errors.Wrap(err, "load fixtures")
	}

	slog.Info("connecting to database")

	pool, err := postgres.NewPool(ctx, databaseURL)
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}
	defer pool.Close()

	slog.Info("running migrations")

	if err := postgres.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	items, err := store.FoodItems().List(ctx)
	if err != nil {
		return errors.Wrap(err, "list food items")
	}
	itemRepo := postgres.NewFoodItemRepository(pool)
	slog.Info("upserting food items", slog.Int("count", len(items)))
	for i := range items {
		if err := itemRepo.Upsert(ctx, &items[i]); err != nil {
			return errors.Wrapf(err, "upsert food item %s", items[i].ID)
		}
		slog.Info("upserted food item", slog.String("id", items[i].ID), slog.String("name", items[i].Name))
	}

	customers, err := store.Customers().List(ctx)
	if err != nil {
		return errors.Wrap(err, "list customers")
	}
	customerRepo := postgres.NewCustomerRepository(pool)
	slog.Info("upserting customers", slog.Int("count", len(customers)))
	for i := range customers {
		if err := customerRepo.Upsert(ctx, &customers[i]); err != nil {
			return errors.Wrapf(err, "upsert customer %s", customers[i].ID)
		}
		slog.Info("upserted customer", slog.String("id", customers[i].ID), slog.String("name", customers[i].Name))
	}

	orders, err := store.Orders().List(ctx)
	if err != nil {
		return errors.Wrap(err, "list orders")
	}
	orderRepo := postgres.NewOrderRepository(pool)
	slog.Info("upserting orders", slog.Int("count", len(orders)))
	var maxSeq int64
	for i := range orders {
		if err := orderRepo.Upsert(ctx, &orders[i]); err != nil {
			return errors.Wrapf(err, "upsert order %s", orders[i].ID)
		}
		if n, err := strconv.ParseInt(strings.TrimPrefix(orders[i].ID, "ORD"), 10, 64); err == nil && n > maxSeq {
			maxSeq = n
		}
		slog.Info("upserted order", slog.String("id", orders[i].ID), slog.String("total", orders[i].Total.StringFixed(2)))
	}

	// Keep the id sequence ahead of the seeded ORDnnn ids.
	if maxSeq > 0 {
		if _, err := pool.Exec(ctx,
			`SELECT setval('order_id_seq', GREATEST($1::bigint, (SELECT last_value FROM order_id_seq)))`,
			maxSeq,
		); err != nil {
			return errors.Wrap(err, "prime order id sequence")
		}
	}

	return nil
}
