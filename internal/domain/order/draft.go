package order

import (
	"fmt"
	"slices"

	"github.com/go-faster/errors"

	"github.com/xenking/pos-admin/internal/domain/catalog"
)

// Sentinel errors for draft validation.
var (
	ErrCustomerNameRequired  = errors.New("customer name required")
	ErrCustomerPhoneRequired = errors.New("customer phone required")
	ErrNoLines               = errors.New("at least one line item required")
)

// IncompleteLineError indicates a line item with no selected food item.
type IncompleteLineError struct {
	Index int
}

func (e *IncompleteLineError) Error() string {
	return fmt.Sprintf("line %d has no selected item", e.Index)
}

// LineIndexError indicates a line index outside the draft's line list.
type LineIndexError struct {
	Index int
}

func (e *LineIndexError) Error() string {
	return fmt.Sprintf("line index %d out of range", e.Index)
}

// Draft is the in-progress edit state of an order. It owns its line items
// exclusively: a draft seeded from an existing order deep-copies them, so
// cancelling an edit never touches the saved order. Mutations recompute the
// affected line immediately via the derived LineItem.Subtotal.
type Draft struct {
	CustomerID    string
	CustomerName  string
	CustomerPhone string
	Status        Status

	lines []LineItem
}

// NewDraft returns an empty draft for a new order.
func NewDraft() *Draft {
	return &Draft{Status: StatusPending}
}

// DraftOf returns a draft seeded with a deep copy of an existing order.
func DraftOf(o *Order) *Draft {
	return &Draft{
		CustomerID:    o.CustomerID,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		Status:        o.Status,
		lines:         slices.Clone(o.Lines),
	}
}

// Lines returns a copy of the draft's line items in entry order.
func (d *Draft) Lines() []LineItem {
	return slices.Clone(d.lines)
}

// AddLine appends an empty line with quantity 1 and no selected item.
func (d *Draft) AddLine() {
	d.lines = append(d.lines, LineItem{Quantity: 1})
}

// RemoveLine drops the line at the given index; subsequent lines shift down.
func (d *Draft) RemoveLine(i int) error {
	if i < 0 || i >= len(d.lines) {
		return &LineIndexError{Index: i}
	}
	d.lines = slices.Delete(d.lines, i, i+1)
	return nil
}

// SetLineItem selects a food item for the line, snapshotting its identity,
// name and unit price.
func (d *Draft) SetLineItem(i int, item catalog.FoodItem) error {
	if i < 0 || i >= len(d.lines) {
		return &LineIndexError{Index: i}
	}
	d.lines[i].ItemID = item.ID
	d.lines[i].Name = item.Name
	d.lines[i].UnitPrice = item.Price
	return nil
}

// SetLineQuantity sets the line's quantity, clamped to a minimum of 1.
func (d *Draft) SetLineQuantity(i, qty int) error {
	if i < 0 || i >= len(d.lines) {
		return &LineIndexError{Index: i}
	}
	if qty < 1 {
		qty = 1
	}
	d.lines[i].Quantity = qty
	return nil
}

// Totals computes the draft's current pricing.
func (d *Draft) Totals() Totals {
	return ComputeTotals(d.lines)
}

// Validate checks the preconditions for saving: customer name and phone
// present, at least one line, and every line has a selected item.
func (d *Draft) Validate() error {
	if d.CustomerName == "" {
		return ErrCustomerNameRequired
	}
	if d.CustomerPhone == "" {
		return ErrCustomerPhoneRequired
	}
	if len(d.lines) == 0 {
		return ErrNoLines
	}
	for i, l := range d.lines {
		if !l.Complete() {
			return &IncompleteLineError{Index: i}
		}
	}
	return nil
}
