package report

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var enUS = message.NewPrinter(language.AmericanEnglish)

// reportUSD renders a currency amount for report summaries: dollar sign plus
// en-US grouping, e.g. $15,480.50. Distinct from receipt formatting, which
// never uses thousands separators. The integer and fraction parts are
// formatted separately from the exact decimal; the amount never passes
// through a float64.
func reportUSD(d decimal.Decimal) string {
	r := d.Round(2)
	sign := ""
	if r.IsNegative() {
		sign = "-"
		r = r.Neg()
	}
	whole := r.IntPart()
	frac := r.Sub(decimal.NewFromInt(whole)).StringFixed(2)
	return sign + "$" + enUS.Sprintf("%v", number.Decimal(whole)) + frac[1:]
}

// receiptUSD renders a currency amount for receipts: exactly two decimal
// places, no separators.
func receiptUSD(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
