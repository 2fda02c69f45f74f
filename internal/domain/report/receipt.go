package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/xenking/pos-admin/internal/domain/order"
)

var hundred = decimal.NewFromInt(100)

// renderReceipt produces the per-order proof of purchase. Line items appear
// in entry order; the discount line is included only when a discount
// actually applied.
func renderReceipt(o *order.Order) string {
	var b strings.Builder

	b.WriteString("MOS Burger Receipt\n")
	b.WriteString("------------------\n")
	fmt.Fprintf(&b, "Order #: %s\n", o.ID)
	fmt.Fprintf(&b, "Date: %s\n", o.CreatedAt.Format("January 2, 2006"))
	fmt.Fprintf(&b, "Customer: %s\n", o.CustomerName)

	b.WriteString("\nItems:\n")
	for _, l := range o.Lines {
		fmt.Fprintf(&b, "%s x%d - %s\n", l.Name, l.Quantity, receiptUSD(l.Subtotal()))
	}

	fmt.Fprintf(&b, "\nSubtotal: %s\n", receiptUSD(o.Subtotal))
	if o.DiscountRate.IsPositive() {
		fmt.Fprintf(&b, "Discount (%s%%): -%s\n",
			o.DiscountRate.Mul(hundred).StringFixed(0),
			receiptUSD(o.Subtotal.Mul(o.DiscountRate)),
		)
	}
	fmt.Fprintf(&b, "Total: %s\n", receiptUSD(o.Total))

	return b.String()
}
