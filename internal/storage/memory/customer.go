package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/xenking/pos-admin/internal/domain/customer"
)

var _ customer.Repository = (*CustomerRepository)(nil)

// CustomerRepository implements customer.Repository over the shared store.
type CustomerRepository struct {
	s *Store
}

// List returns all customers sorted by name.
func (r *CustomerRepository) List(_ context.Context) ([]customer.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	customers := make([]customer.Customer, 0, len(r.s.customers))
	for _, c := range r.s.customers {
		customers = append(customers, c)
	}
	sort.Slice(customers, func(i, j int) bool { return customers[i].Name < customers[j].Name })
	return customers, nil
}

// Get returns a single customer by id.
func (r *CustomerRepository) Get(_ context.Context, id string) (*customer.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.customers[id]
	if !ok {
		return nil, customer.ErrNotFound
	}
	return &c, nil
}

// Create stores a new customer, assigning an id when none is given.
func (r *CustomerRepository) Create(_ context.Context, c *customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.customers[c.ID] = *c
	return nil
}

// Update replaces an existing customer.
func (r *CustomerRepository) Update(_ context.Context, c *customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.customers[c.ID]; !ok {
		return customer.ErrNotFound
	}
	r.s.customers[c.ID] = *c
	return nil
}

// Delete removes a customer by id.
func (r *CustomerRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.customers[id]; !ok {
		return customer.ErrNotFound
	}
	delete(r.s.customers, id)
	return nil
}
