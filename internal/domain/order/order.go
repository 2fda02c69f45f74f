package order

import (
	"context"
	"slices"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a requested order does not exist.
var ErrNotFound = errors.New("order not found")

// LineItem is one food item entry within an order. The item's name and unit
// price are snapshotted at selection time, so later catalog edits never
// change a saved order. The line subtotal is always derived, never stored.
type LineItem struct {
	ItemID    string          `json:"item_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// Complete reports whether the line has a selected food item.
func (l LineItem) Complete() bool {
	return l.ItemID != ""
}

// Subtotal returns UnitPrice * Quantity. A line without a selected item
// contributes zero.
func (l LineItem) Subtotal() decimal.Decimal {
	if !l.Complete() {
		return decimal.Zero
	}
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Order represents a saved customer order with pricing details. Subtotal,
// DiscountRate and Total are recomputed wholesale from Lines on every save.
type Order struct {
	ID            string
	CustomerID    string
	CustomerName  string
	CustomerPhone string
	Lines         []LineItem
	Subtotal      decimal.Decimal
	DiscountRate  decimal.Decimal
	Total         decimal.Decimal
	Status        Status
	CreatedAt     time.Time
}

// Clone returns a deep copy of the order, including its line items.
func (o *Order) Clone() *Order {
	c := *o
	c.Lines = slices.Clone(o.Lines)
	return &c
}

// Repository defines persistence operations for orders.
type Repository interface {
	List(ctx context.Context) ([]Order, error)
	Get(ctx context.Context, id string) (*Order, error)
	Create(ctx context.Context, o *Order) error
	Update(ctx context.Context, o *Order) error
	Delete(ctx context.Context, id string) error
}

// IDSource issues order identifiers. Implementations must be monotonic so
// ids never collide.
type IDSource interface {
	Next(ctx context.Context) (string, error)
}
