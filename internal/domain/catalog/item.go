// Package catalog holds the food item entity and its repository contract.
package catalog

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound         = errors.New("food item not found")
	ErrNameRequired     = errors.New("food item name is required")
	ErrCodeRequired     = errors.New("food item code is required")
	ErrNegativePrice    = errors.New("food item price must not be negative")
	ErrNegativeQuantity = errors.New("food item quantity must not be negative")
)

// LowStockThreshold is the quantity at or below which an item counts as
// running low.
const LowStockThreshold = 5

// Categories lists the menu categories offered for new items.
var Categories = []string{"Burgers", "Sides", "Beverages", "Desserts"}

// StockStatus is the derived availability state of a food item.
type StockStatus string

const (
	StockOK      StockStatus = "in stock"
	StockLow     StockStatus = "low stock"
	StockExpired StockStatus = "expired"
)

// FoodItem is one entry in the menu catalog. Expiry is never stored as a
// flag; it is derived from ExpirationDate against a caller-supplied clock.
type FoodItem struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Code           string          `json:"code"`
	Category       string          `json:"category"`
	Price          decimal.Decimal `json:"price"`
	Quantity       int             `json:"quantity"`
	ExpirationDate *time.Time      `json:"expiration_date,omitempty"`
	Description    string          `json:"description,omitempty"`
}

// Expired reports whether the item's expiration date has passed at the
// given instant. Items without an expiration date never expire.
func (i *FoodItem) Expired(at time.Time) bool {
	return i.ExpirationDate != nil && i.ExpirationDate.Before(at)
}

// LowStock reports whether the quantity is at or below the threshold.
func (i *FoodItem) LowStock() bool {
	return i.Quantity <= LowStockThreshold
}

// Status derives the stock status at the given instant. Expiry takes
// precedence over stock level.
func (i *FoodItem) Status(at time.Time) StockStatus {
	switch {
	case i.Expired(at):
		return StockExpired
	case i.LowStock():
		return StockLow
	default:
		return StockOK
	}
}

// Validate checks the item's invariants before it is persisted.
func (i *FoodItem) Validate() error {
	switch {
	case i.Name == "":
		return ErrNameRequired
	case i.Code == "":
		return ErrCodeRequired
	case i.Price.IsNegative():
		return ErrNegativePrice
	case i.Quantity < 0:
		return ErrNegativeQuantity
	}
	return nil
}

// Repository is the persistence contract for the menu catalog.
type Repository interface {
	List(ctx context.Context) ([]FoodItem, error)
	Get(ctx context.Context, id string) (*FoodItem, error)
	Create(ctx context.Context, item *FoodItem) error
	Update(ctx context.Context, item *FoodItem) error
	Delete(ctx context.Context, id string) error
}
