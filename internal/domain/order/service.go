package order

import (
	"context"
	"time"

	"github.com/go-faster/errors"
)

// Service encapsulates order creation and editing. Saves are all-or-nothing:
// validation runs before any id is issued or row written, and an edit
// replaces the stored pricing fields wholesale from the draft's lines.
type Service struct {
	orders Repository
	ids    IDSource
	now    func() time.Time
}

// NewService creates an order Service with the required dependencies.
func NewService(orders Repository, ids IDSource) *Service {
	return &Service{
		orders: orders,
		ids:    ids,
		now:    time.Now,
	}
}

// Create validates the draft, computes its totals, assigns the next order id
// and persists the new order.
func (s *Service) Create(ctx context.Context, d *Draft) (*Order, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	// The id is consumed before the insert; a failed save leaves a gap in
	// the ORDnnn sequence. Gaps are acceptable, reuse is not.
	id, err := s.ids.Next(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "next order id")
	}

	o := s.build(d)
	o.ID = id
	o.CreatedAt = s.now()

	if err := s.orders.Create(ctx, o); err != nil {
		return nil, errors.Wrapf(err, "create order %q", o.ID)
	}
	return o, nil
}

// Update validates the draft and replaces the stored order's customer,
// lines, status and pricing. Partial merges are not supported.
func (s *Service) Update(ctx context.Context, id string, d *Draft) (*Order, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.orders.Get(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "load order %q", id)
	}

	o := s.build(d)
	o.ID = existing.ID
	o.CreatedAt = existing.CreatedAt

	if err := s.orders.Update(ctx, o); err != nil {
		return nil, errors.Wrapf(err, "update order %q", id)
	}
	return o, nil
}

// Get returns a single order by id.
func (s *Service) Get(ctx context.Context, id string) (*Order, error) {
	return s.orders.Get(ctx, id)
}

// List returns all orders.
func (s *Service) List(ctx context.Context) ([]Order, error) {
	return s.orders.List(ctx)
}

// Delete removes an order by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.orders.Delete(ctx, id)
}

// build materializes an order from a validated draft. The total is rounded
// to 2 decimal places at this persistence edge only.
func (s *Service) build(d *Draft) *Order {
	t := d.Totals()

	status := d.Status
	if status == "" {
		status = StatusPending
	}

	return &Order{
		CustomerID:    d.CustomerID,
		CustomerName:  d.CustomerName,
		CustomerPhone: d.CustomerPhone,
		Lines:         d.Lines(),
		Subtotal:      t.Subtotal,
		DiscountRate:  t.DiscountRate,
		Total:         t.Total.Round(2),
		Status:        status,
	}
}
