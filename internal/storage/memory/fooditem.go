package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/xenking/pos-admin/internal/domain/catalog"
)

var _ catalog.Repository = (*FoodItemRepository)(nil)

// FoodItemRepository implements catalog.Repository over the shared store.
type FoodItemRepository struct {
	s *Store
}

// List returns all food items sorted by name.
func (r *FoodItemRepository) List(_ context.Context) ([]catalog.FoodItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	items := make([]catalog.FoodItem, 0, len(r.s.items))
	for _, it := range r.s.items {
		items = append(items, it)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

// Get returns a single food item by id.
func (r *FoodItemRepository) Get(_ context.Context, id string) (*catalog.FoodItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	it, ok := r.s.items[id]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	return &it, nil
}

// Create stores a new food item, assigning an id when none is given.
func (r *FoodItemRepository) Create(_ context.Context, item *catalog.FoodItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if item.ID == "" {
		item.ID = uuid.New().String()
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.items[item.ID] = *item
	return nil
}

// Update replaces an existing food item.
func (r *FoodItemRepository) Update(_ context.Context, item *catalog.FoodItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.items[item.ID]; !ok {
		return catalog.ErrNotFound
	}
	r.s.items[item.ID] = *item
	return nil
}

// Delete removes a food item by id.
func (r *FoodItemRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.items[id]; !ok {
		return catalog.ErrNotFound
	}
	delete(r.s.items, id)
	return nil
}
