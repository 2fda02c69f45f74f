package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ItemSales is one row in a top-selling-items ranking.
type ItemSales struct {
	Name     string
	Quantity int
	Revenue  decimal.Decimal
}

// CustomerSales is one row in a top-customers ranking.
type CustomerSales struct {
	Name   string
	Orders int
	Spent  decimal.Decimal
}

// MonthSales is one row in an annual monthly breakdown.
type MonthSales struct {
	Month  string
	Sales  decimal.Decimal
	Orders int
}

// MonthlySales is the aggregate dataset behind a monthly report. Rankings
// are expected pre-sorted; the formatter renders them as given.
type MonthlySales struct {
	TotalSales    decimal.Decimal
	TotalOrders   int
	AvgOrderValue decimal.Decimal
	TopItems      []ItemSales
	TopCustomers  []CustomerSales
}

// AnnualSales is the aggregate dataset behind an annual report.
type AnnualSales struct {
	TotalSales       decimal.Decimal
	TotalOrders      int
	MonthlyBreakdown []MonthSales
}

var twelve = decimal.NewFromInt(12)

func renderMonthly(d *MonthlySales, period string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Monthly Sales Report - %s\n", period)
	b.WriteString("=============================\n\n")

	b.WriteString("Summary\n")
	b.WriteString("-------\n")
	fmt.Fprintf(&b, "Total Sales: %s\n", reportUSD(d.TotalSales))
	fmt.Fprintf(&b, "Total Orders: %d\n", d.TotalOrders)
	fmt.Fprintf(&b, "Average Order Value: %s\n", reportUSD(d.AvgOrderValue))

	b.WriteString("\nTop Selling Items\n")
	b.WriteString("----------------\n")
	for i, item := range d.TopItems {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, item.Name)
		fmt.Fprintf(&b, "     Quantity: %d\n", item.Quantity)
		fmt.Fprintf(&b, "     Revenue: %s\n", reportUSD(item.Revenue))
	}

	b.WriteString("\nTop Customers\n")
	b.WriteString("------------\n")
	for i, c := range d.TopCustomers {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, c.Name)
		fmt.Fprintf(&b, "     Orders: %d\n", c.Orders)
		fmt.Fprintf(&b, "     Total Spent: %s\n", reportUSD(c.Spent))
	}

	return b.String()
}

func renderAnnual(d *AnnualSales, year string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Annual Sales Report - %s\n", year)
	b.WriteString("============================\n\n")

	b.WriteString("Summary\n")
	b.WriteString("-------\n")
	fmt.Fprintf(&b, "Annual Sales: %s\n", reportUSD(d.TotalSales))
	fmt.Fprintf(&b, "Total Orders: %d\n", d.TotalOrders)
	fmt.Fprintf(&b, "Monthly Average: %s\n", reportUSD(d.TotalSales.Div(twelve)))

	b.WriteString("\nMonthly Breakdown\n")
	b.WriteString("---------------\n")
	for i, m := range d.MonthlyBreakdown {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s\n", m.Month)
		fmt.Fprintf(&b, "  Sales: %s\n", reportUSD(m.Sales))
		fmt.Fprintf(&b, "  Orders: %d\n", m.Orders)
	}

	return b.String()
}
