package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/go-faster/errors"

	"github.com/xenking/pos-admin/internal/domain/order"
)

var (
	_ order.Repository = (*OrderRepository)(nil)
	_ order.IDSource   = (*OrderRepository)(nil)
)

// OrderRepository implements order.Repository and order.IDSource over the
// shared store. Orders are deep-copied in both directions so the
// copy-on-edit invariant holds even against careless callers.
type OrderRepository struct {
	s *Store
}

// List returns all orders, newest first.
func (r *OrderRepository) List(_ context.Context) ([]order.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	orders := make([]order.Order, 0, len(r.s.orders))
	for _, o := range r.s.orders {
		orders = append(orders, *o.Clone())
	}
	sort.Slice(orders, func(i, j int) bool {
		a, b := orders[i], orders[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})
	return orders, nil
}

// Get returns a deep copy of a single order by id.
func (r *OrderRepository) Get(_ context.Context, id string) (*order.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	o, ok := r.s.orders[id]
	if !ok {
		return nil, order.ErrNotFound
	}
	return o.Clone(), nil
}

// Create stores a new order.
func (r *OrderRepository) Create(_ context.Context, o *order.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.orders[o.ID]; ok {
		return errors.Errorf("order %q already exists", o.ID)
	}
	r.s.orders[o.ID] = *o.Clone()
	return nil
}

// Update replaces an existing order.
func (r *OrderRepository) Update(_ context.Context, o *order.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.orders[o.ID]; !ok {
		return order.ErrNotFound
	}
	r.s.orders[o.ID] = *o.Clone()
	return nil
}

// Delete removes an order by id.
func (r *OrderRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.orders[id]; !ok {
		return order.ErrNotFound
	}
	delete(r.s.orders, id)
	return nil
}

// Next issues the next ORDnnn identifier from the store's atomic counter.
func (r *OrderRepository) Next(_ context.Context) (string, error) {
	return fmt.Sprintf("ORD%03d", r.s.orderSeq.Add(1)), nil
}
