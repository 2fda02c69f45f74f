package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/xenking/pos-admin/internal/domain/order"
)

// Sorting rankings is the producer's responsibility: the formatter renders
// datasets exactly as given.

// BuildMonthly aggregates orders for one period (YYYY-MM) into a monthly
// dataset. Cancelled orders are excluded. Rankings are sorted by revenue and
// spend descending (name ascending on ties) and truncated to the given
// sizes.
func BuildMonthly(orders []order.Order, period string, topItems, topCustomers int) MonthlySales {
	type itemAgg struct {
		qty     int
		revenue decimal.Decimal
	}
	type custAgg struct {
		orders int
		spent  decimal.Decimal
	}

	items := make(map[string]*itemAgg)
	customers := make(map[string]*custAgg)

	d := MonthlySales{
		TotalSales:    decimal.Zero,
		AvgOrderValue: decimal.Zero,
	}

	for _, o := range orders {
		if o.Status == order.StatusCancelled || o.CreatedAt.Format("2006-01") != period {
			continue
		}

		d.TotalOrders++
		d.TotalSales = d.TotalSales.Add(o.Total)

		for _, l := range o.Lines {
			agg, ok := items[l.Name]
			if !ok {
				agg = &itemAgg{revenue: decimal.Zero}
				items[l.Name] = agg
			}
			agg.qty += l.Quantity
			agg.revenue = agg.revenue.Add(l.Subtotal())
		}

		agg, ok := customers[o.CustomerName]
		if !ok {
			agg = &custAgg{spent: decimal.Zero}
			customers[o.CustomerName] = agg
		}
		agg.orders++
		agg.spent = agg.spent.Add(o.Total)
	}

	if d.TotalOrders > 0 {
		d.AvgOrderValue = d.TotalSales.Div(decimal.NewFromInt(int64(d.TotalOrders))).Round(2)
	}

	for name, agg := range items {
		d.TopItems = append(d.TopItems, ItemSales{
			Name:     name,
			Quantity: agg.qty,
			Revenue:  agg.revenue,
		})
	}
	sort.Slice(d.TopItems, func(i, j int) bool {
		a, b := d.TopItems[i], d.TopItems[j]
		if !a.Revenue.Equal(b.Revenue) {
			return a.Revenue.GreaterThan(b.Revenue)
		}
		return a.Name < b.Name
	})
	d.TopItems = truncate(d.TopItems, topItems)

	for name, agg := range customers {
		d.TopCustomers = append(d.TopCustomers, CustomerSales{
			Name:   name,
			Orders: agg.orders,
			Spent:  agg.spent,
		})
	}
	sort.Slice(d.TopCustomers, func(i, j int) bool {
		a, b := d.TopCustomers[i], d.TopCustomers[j]
		if !a.Spent.Equal(b.Spent) {
			return a.Spent.GreaterThan(b.Spent)
		}
		return a.Name < b.Name
	})
	d.TopCustomers = truncate(d.TopCustomers, topCustomers)

	return d
}

// BuildAnnual aggregates orders for one year (YYYY) into an annual dataset
// with a row for every month, including empty ones.
func BuildAnnual(orders []order.Order, year string) AnnualSales {
	d := AnnualSales{
		TotalSales:       decimal.Zero,
		MonthlyBreakdown: make([]MonthSales, 12),
	}
	for i := range d.MonthlyBreakdown {
		d.MonthlyBreakdown[i] = MonthSales{
			Month: time.Month(i + 1).String()[:3],
			Sales: decimal.Zero,
		}
	}

	for _, o := range orders {
		if o.Status == order.StatusCancelled || o.CreatedAt.Format("2006") != year {
			continue
		}

		d.TotalOrders++
		d.TotalSales = d.TotalSales.Add(o.Total)

		m := &d.MonthlyBreakdown[int(o.CreatedAt.Month())-1]
		m.Orders++
		m.Sales = m.Sales.Add(o.Total)
	}

	return d
}

func truncate[T any](s []T, n int) []T {
	if n > 0 && len(s) > n {
		return s[:n]
	}
	return s
}
