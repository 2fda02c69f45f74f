// Package memory implements the repository contracts over in-process maps.
// It backs the demo dataset and tests; values are copied on the way in and
// out, so callers can never mutate stored state through returned references.
package memory

import (
	"sync"
	"sync/atomic"

	"github.com/go-faster/errors"

	"github.com/xenking/pos-admin/internal/domain/catalog"
	"github.com/xenking/pos-admin/internal/domain/customer"
	"github.com/xenking/pos-admin/internal/domain/order"
)

// Store holds all in-memory state shared by the per-entity repositories.
type Store struct {
	mu        sync.RWMutex
	items     map[string]catalog.FoodItem
	customers map[string]customer.Customer
	orders    map[string]order.Order

	orderSeq atomic.Int64
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		items:     make(map[string]catalog.FoodItem),
		customers: make(map[string]customer.Customer),
		orders:    make(map[string]order.Order),
	}
}

// NewSeeded returns a Store populated with the embedded demo fixtures. The
// order id sequence is primed past the highest seeded order number.
func NewSeeded() (*Store, error) {
	s := New()
	if err := s.seed(); err != nil {
		return nil, errors.Wrap(err, "seed store")
	}
	return s, nil
}

// FoodItems returns the catalog repository view of the store.
func (s *Store) FoodItems() *FoodItemRepository {
	return &FoodItemRepository{s: s}
}

// Customers returns the customer repository view of the store.
func (s *Store) Customers() *CustomerRepository {
	return &CustomerRepository{s: s}
}

// Orders returns the order repository view of the store. It also serves as
// the order id source.
func (s *Store) Orders() *OrderRepository {
	return &OrderRepository{s: s}
}
