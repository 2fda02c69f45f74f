package order

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/pos-admin/internal/domain/catalog"
)

func testItem(id, name, price string) catalog.FoodItem {
	return catalog.FoodItem{
		ID:       id,
		Name:     name,
		Code:     "X" + id,
		Category: "test",
		Price:    decimal.RequireFromString(price),
		Quantity: 10,
	}
}

func TestDraft_LineEditing(t *testing.T) {
	dr := NewDraft()

	dr.AddLine()
	require.Len(t, dr.Lines(), 1)
	assert.Equal(t, 1, dr.Lines()[0].Quantity)
	assert.False(t, dr.Lines()[0].Complete())

	require.NoError(t, dr.SetLineItem(0, testItem("1", "MOS Burger", "8.50")))
	require.NoError(t, dr.SetLineQuantity(0, 2))

	lines := dr.Lines()
	assert.Equal(t, "MOS Burger", lines[0].Name)
	assert.True(t, d("17.00").Equal(lines[0].Subtotal()))

	dr.AddLine()
	require.NoError(t, dr.SetLineItem(1, testItem("4", "French Fries", "3.50")))
	require.NoError(t, dr.RemoveLine(0))

	lines = dr.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "French Fries", lines[0].Name)
}

func TestDraft_QuantityClampedToOne(t *testing.T) {
	dr := NewDraft()
	dr.AddLine()

	require.NoError(t, dr.SetLineQuantity(0, 0))
	assert.Equal(t, 1, dr.Lines()[0].Quantity)

	require.NoError(t, dr.SetLineQuantity(0, -3))
	assert.Equal(t, 1, dr.Lines()[0].Quantity)
}

func TestDraft_IndexOutOfRange(t *testing.T) {
	dr := NewDraft()
	dr.AddLine()

	var idxErr *LineIndexError
	require.ErrorAs(t, dr.RemoveLine(5), &idxErr)
	assert.Equal(t, 5, idxErr.Index)
	require.Error(t, dr.SetLineQuantity(-1, 2))
	require.Error(t, dr.SetLineItem(1, testItem("1", "Widget", "1")))
}

func TestDraftOf_CopyOnEdit(t *testing.T) {
	saved := &Order{
		ID:            "ORD001",
		CustomerName:  "John Smith",
		CustomerPhone: "+1234567890",
		Lines: []LineItem{
			line("1", "MOS Burger", "8.50", 2),
		},
		Subtotal:     d("17.00"),
		DiscountRate: d("0"),
		Total:        d("17.00"),
		Status:       StatusCompleted,
		CreatedAt:    time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC),
	}

	dr := DraftOf(saved)
	require.NoError(t, dr.SetLineQuantity(0, 9))
	dr.AddLine()
	dr.CustomerName = "Someone Else"

	// Cancelling the edit leaves the saved order untouched.
	assert.Equal(t, "John Smith", saved.CustomerName)
	require.Len(t, saved.Lines, 1)
	assert.Equal(t, 2, saved.Lines[0].Quantity)
}

func TestDraft_SnapshotsUnitPrice(t *testing.T) {
	item := testItem("1", "MOS Burger", "8.50")

	dr := NewDraft()
	dr.AddLine()
	require.NoError(t, dr.SetLineItem(0, item))

	// A later catalog price edit must not change the draft's line.
	item.Price = decimal.RequireFromString("99.99")

	assert.True(t, d("8.50").Equal(dr.Lines()[0].UnitPrice))
}

func TestDraft_Validate(t *testing.T) {
	dr := NewDraft()
	require.ErrorIs(t, dr.Validate(), ErrCustomerNameRequired)

	dr.CustomerName = "John Smith"
	require.ErrorIs(t, dr.Validate(), ErrCustomerPhoneRequired)

	dr.CustomerPhone = "+1234567890"
	require.ErrorIs(t, dr.Validate(), ErrNoLines)

	dr.AddLine()
	var incErr *IncompleteLineError
	require.ErrorAs(t, dr.Validate(), &incErr)
	assert.Equal(t, 0, incErr.Index)

	require.NoError(t, dr.SetLineItem(0, testItem("1", "MOS Burger", "8.50")))
	require.NoError(t, dr.Validate())
}
