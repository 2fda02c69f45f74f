// Command receipt-bundle exports every receipt for one period into a single
// gzip-compressed bundle. Receipts are rendered concurrently; the formatter
// is pure, so the fan-out needs no coordination beyond the errgroup.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"github.com/go-faster/errors"
	"golang.org/x/sync/errgroup"

	"github.com/xenking/pos-admin/internal/app"
	"github.com/xenking/pos-admin/internal/domain/order"
	"github.com/xenking/pos-admin/internal/domain/report"
	"github.com/xenking/pos-admin/internal/export"
)

func main() {
	var (
		storageName string
		databaseURL string
		period      string
		outPath     string
		workers     int
	)

	flag.StringVar(&storageName, "storage", app.StorageMemory, "storage backend: memory or postgres")
	flag.StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env)")
	flag.StringVar(&period, "period", "", "period to export, YYYY-MM")
	flag.StringVar(&outPath, "out", "", "output path (default receipts-<period>.txt.gz)")
	flag.IntVar(&workers, "workers", runtime.NumCPU(), "concurrent receipt renderers")
	flag.Parse()

	if period == "" {
		slog.Error("period is required: set --period YYYY-MM")
		os.Exit(1)
	}
	if outPath == "" {
		outPath = fmt.Sprintf("receipts-%s.txt.gz", period)
	}
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg := &app.Config{Storage: storageName, DatabaseURL: databaseURL}
	if err := run(ctx, cfg, period, outPath, workers); err != nil {
		slog.Error("bundle export failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *app.Config, period, outPath string, workers int) error {
	storage, err := app.OpenStorage(ctx, cfg)
	if err != nil {
		return errors.Wrap(err, "open storage")
	}
	defer storage.Close()

	all, err := storage.Orders.List(ctx)
	if err != nil {
		return errors.Wrap(err, "list orders")
	}

	var selected []order.Order
	for _, o := range all {
		if o.Status != order.StatusCancelled && o.CreatedAt.Format("2006-01") == period {
			selected = append(selected, o)
		}
	}

	slog.Info("rendering receipts",
		slog.String("period", period),
		slog.Int("orders", len(selected)),
		slog.Int("workers", workers),
	)

	docs := make([]export.Document, len(selected))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range selected {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			doc, err := report.Generate(report.Request{
				Kind:  report.KindReceipt,
				Order: &selected[i],
			})
			if err != nil {
				return errors.Wrapf(err, "render receipt for %s", selected[i].ID)
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return errors.Wrapf(err, "create %s", outPath)
	}
	defer func() { _ = f.Close() }()

	bundle := export.NewBundleWriter(f)
	for _, doc := range docs {
		if err := bundle.Add(doc); err != nil {
			return errors.Wrap(err, "write bundle")
		}
	}
	if err := bundle.Close(); err != nil {
		return errors.Wrap(err, "close bundle")
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "close %s", outPath)
	}

	slog.Info("bundle written",
		slog.String("path", outPath),
		slog.Int("receipts", bundle.Len()),
	)
	return nil
}
