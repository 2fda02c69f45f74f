package report

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/xenking/pos-admin/internal/domain/order"
	"github.com/xenking/pos-admin/internal/export"
)

// Config sizes the ranked sections of the monthly report.
type Config struct {
	TopItems     int
	TopCustomers int
}

// Service ties the order repository, the aggregate producers, the formatter
// and the file-saving collaborator together. A save failure is wrapped and
// surfaced once; there is no automatic retry.
type Service struct {
	orders order.Repository
	saver  export.Saver
	cfg    Config
}

// NewService creates a report Service.
func NewService(orders order.Repository, saver export.Saver, cfg Config) *Service {
	if cfg.TopItems == 0 {
		cfg.TopItems = 5
	}
	if cfg.TopCustomers == 0 {
		cfg.TopCustomers = 4
	}
	return &Service{
		orders: orders,
		saver:  saver,
		cfg:    cfg,
	}
}

// Receipt generates and saves the receipt for one order.
func (s *Service) Receipt(ctx context.Context, orderID string) (export.Document, error) {
	o, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return export.Document{}, errors.Wrapf(err, "load order %q", orderID)
	}
	return s.emit(ctx, Request{Kind: KindReceipt, Order: o})
}

// Monthly generates and saves the monthly sales report for a YYYY-MM period.
func (s *Service) Monthly(ctx context.Context, period string) (export.Document, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return export.Document{}, errors.Wrap(err, "list orders")
	}
	data := BuildMonthly(orders, period, s.cfg.TopItems, s.cfg.TopCustomers)
	return s.emit(ctx, Request{Kind: KindMonthly, Period: period, Monthly: &data})
}

// Annual generates and saves the annual sales report for a YYYY year.
func (s *Service) Annual(ctx context.Context, year string) (export.Document, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return export.Document{}, errors.Wrap(err, "list orders")
	}
	data := BuildAnnual(orders, year)
	return s.emit(ctx, Request{Kind: KindAnnual, Period: year, Annual: &data})
}

// Export generates the document for any kind. The orderID argument is used
// only for receipts.
func (s *Service) Export(ctx context.Context, kind Kind, period, orderID string) (export.Document, error) {
	switch kind {
	case KindReceipt:
		return s.Receipt(ctx, orderID)
	case KindMonthly:
		return s.Monthly(ctx, period)
	case KindAnnual:
		return s.Annual(ctx, period)
	case KindCustomers, KindItems:
		return s.emit(ctx, Request{Kind: kind, Period: period})
	default:
		return export.Document{}, errors.Errorf("unsupported report kind: %q", kind)
	}
}

func (s *Service) emit(ctx context.Context, req Request) (export.Document, error) {
	doc, err := Generate(req)
	if err != nil {
		return export.Document{}, err
	}
	if err := s.saver.Save(ctx, doc); err != nil {
		return export.Document{}, errors.Wrap(err, "save report")
	}
	return doc, nil
}
