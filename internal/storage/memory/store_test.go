package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/pos-admin/internal/domain/catalog"
	"github.com/xenking/pos-admin/internal/domain/customer"
	"github.com/xenking/pos-admin/internal/domain/order"
)

func TestNewSeeded(t *testing.T) {
	s, err := NewSeeded()
	require.NoError(t, err)
	ctx := context.Background()

	items, err := s.FoodItems().List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 10)

	customers, err := s.Customers().List(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 4)

	orders, err := s.Orders().List(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestNextOrderID_PrimedPastSeed(t *testing.T) {
	s, err := NewSeeded()
	require.NoError(t, err)

	// The fixtures end at ORD002.
	id, err := s.Orders().Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ORD003", id)

	id, err = s.Orders().Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ORD004", id)
}

func TestNextOrderID_EmptyStore(t *testing.T) {
	s := New()

	id, err := s.Orders().Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ORD001", id)
}

func TestOrderRepository_CopiesOut(t *testing.T) {
	s := New()
	ctx := context.Background()
	repo := s.Orders()

	o := &order.Order{
		ID:           "ORD001",
		CustomerName: "John Smith",
		Lines: []order.LineItem{
			{ItemID: "1", Name: "MOS Burger", UnitPrice: decimal.RequireFromString("8.50"), Quantity: 2},
		},
		Subtotal:  decimal.RequireFromString("17.00"),
		Total:     decimal.RequireFromString("17.00"),
		Status:    order.StatusPending,
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, o))

	got, err := repo.Get(ctx, "ORD001")
	require.NoError(t, err)
	got.Lines[0].Quantity = 99
	got.CustomerName = "changed"

	again, err := repo.Get(ctx, "ORD001")
	require.NoError(t, err)
	assert.Equal(t, 2, again.Lines[0].Quantity)
	assert.Equal(t, "John Smith", again.CustomerName)
}

func TestOrderRepository_ListNewestFirst(t *testing.T) {
	s := New()
	ctx := context.Background()
	repo := s.Orders()

	old := &order.Order{ID: "ORD001", Status: order.StatusCompleted, CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	recent := &order.Order{ID: "ORD002", Status: order.StatusCompleted, CreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, repo.Create(ctx, old))
	require.NoError(t, repo.Create(ctx, recent))

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "ORD002", orders[0].ID)
	assert.Equal(t, "ORD001", orders[1].ID)
}

func TestOrderRepository_NotFound(t *testing.T) {
	s := New()
	ctx := context.Background()
	repo := s.Orders()

	_, err := repo.Get(ctx, "ORD404")
	assert.ErrorIs(t, err, order.ErrNotFound)

	err = repo.Update(ctx, &order.Order{ID: "ORD404"})
	assert.ErrorIs(t, err, order.ErrNotFound)

	err = repo.Delete(ctx, "ORD404")
	assert.ErrorIs(t, err, order.ErrNotFound)
}

func TestOrderRepository_DuplicateCreate(t *testing.T) {
	s := New()
	ctx := context.Background()
	repo := s.Orders()

	o := &order.Order{ID: "ORD001", Status: order.StatusPending, CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, o))
	err := repo.Create(ctx, o)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestFoodItemRepository_CRUD(t *testing.T) {
	s := New()
	ctx := context.Background()
	repo := s.FoodItems()

	item := &catalog.FoodItem{
		Name:     "MOS Burger",
		Code:     "MB001",
		Category: "Burgers",
		Price:    decimal.RequireFromString("8.50"),
		Quantity: 25,
	}
	require.NoError(t, repo.Create(ctx, item))
	require.NotEmpty(t, item.ID, "create assigns an id")

	got, err := repo.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "MOS Burger", got.Name)

	got.Quantity = 3
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Quantity)

	require.NoError(t, repo.Delete(ctx, item.ID))
	_, err = repo.Get(ctx, item.ID)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestFoodItemRepository_RejectsInvalid(t *testing.T) {
	s := New()
	ctx := context.Background()
	repo := s.FoodItems()

	err := repo.Create(ctx, &catalog.FoodItem{Code: "MB001"})
	assert.ErrorIs(t, err, catalog.ErrNameRequired)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCustomerRepository_CRUD(t *testing.T) {
	s := New()
	ctx := context.Background()
	repo := s.Customers()

	c := &customer.Customer{
		Name:     "John Smith",
		Phone:    "+1234567890",
		Email:    "john@email.com",
		JoinDate: time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Create(ctx, c))
	require.NotEmpty(t, c.ID)

	got, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "John Smith", got.Name)

	got.Address = "123 Main St"
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "123 Main St", updated.Address)

	require.NoError(t, repo.Delete(ctx, c.ID))
	_, err = repo.Get(ctx, c.ID)
	assert.ErrorIs(t, err, customer.ErrNotFound)
}

func TestCustomerRepository_ListSortedByName(t *testing.T) {
	s := New()
	ctx := context.Background()
	repo := s.Customers()

	require.NoError(t, repo.Create(ctx, &customer.Customer{Name: "Sarah Johnson", Phone: "+1"}))
	require.NoError(t, repo.Create(ctx, &customer.Customer{Name: "Mike Davis", Phone: "+2"}))

	customers, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "Mike Davis", customers[0].Name)
	assert.Equal(t, "Sarah Johnson", customers[1].Name)
}
