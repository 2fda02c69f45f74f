package order

import "github.com/shopspring/decimal"

// Discount policy: a flat rate applied when the subtotal strictly exceeds
// the threshold. There is no per-item or per-customer rule.
var (
	discountThreshold = decimal.NewFromInt(50)
	discountRate      = decimal.RequireFromString("0.1")

	one = decimal.NewFromInt(1)
)

// Totals holds the computed pricing of a line item list.
type Totals struct {
	Subtotal     decimal.Decimal
	DiscountRate decimal.Decimal
	Total        decimal.Decimal
}

// ComputeTotals sums the line subtotals, applies the discount policy, and
// derives the final total. It is pure: calling it repeatedly on the same
// lines yields identical results. Rounding to 2 decimal places is left to
// the persistence and formatting edges so repeated recomputation never
// compounds rounding error.
func ComputeTotals(lines []LineItem) Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.Subtotal())
	}

	rate := decimal.Zero
	if subtotal.GreaterThan(discountThreshold) {
		rate = discountRate
	}

	return Totals{
		Subtotal:     subtotal,
		DiscountRate: rate,
		Total:        subtotal.Mul(one.Sub(rate)),
	}
}
