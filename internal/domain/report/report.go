// Package report renders deterministic plain-text receipts and sales
// reports and builds the aggregate datasets they consume. Rendering is pure;
// saving is delegated to the export collaborator.
package report

import (
	"fmt"

	"github.com/go-faster/errors"

	"github.com/xenking/pos-admin/internal/domain/order"
	"github.com/xenking/pos-admin/internal/export"
)

// Kind enumerates the document types the formatter can produce.
type Kind string

const (
	KindReceipt   Kind = "receipt"
	KindMonthly   Kind = "monthly"
	KindAnnual    Kind = "annual"
	KindCustomers Kind = "customers"
	KindItems     Kind = "items"
)

// ParseKind converts a string into a Kind, rejecting unknown values.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindReceipt, KindMonthly, KindAnnual, KindCustomers, KindItems:
		return Kind(s), nil
	default:
		return "", errors.Errorf("unsupported report kind: %q", s)
	}
}

// Request carries the input for one Generate call. Exactly the payload
// matching Kind must be set.
type Request struct {
	Kind    Kind
	Period  string
	Order   *order.Order
	Monthly *MonthlySales
	Annual  *AnnualSales
}

// Placeholder bodies for report kinds that are feature stubs. Kept verbatim
// rather than inventing analytics.
const (
	customersPlaceholder = "Customer Analytics Report\n" +
		"=======================\n\n" +
		"Detailed customer insights and behavior patterns will be available in future updates."
	itemsPlaceholder = "Item Analysis Report\n" +
		"===================\n\n" +
		"Detailed item performance and inventory analytics will be available in future updates."
)

// Generate renders the requested document. An unknown kind or a missing
// payload is a caller bug and fails loudly instead of producing empty
// output.
func Generate(req Request) (export.Document, error) {
	switch req.Kind {
	case KindReceipt:
		if req.Order == nil {
			return export.Document{}, errors.New("receipt requires an order")
		}
		return document(
			fmt.Sprintf("receipt-%s.txt", req.Order.ID),
			renderReceipt(req.Order),
		), nil

	case KindMonthly:
		if req.Monthly == nil {
			return export.Document{}, errors.New("monthly report requires a dataset")
		}
		return document(
			fmt.Sprintf("monthly-report-%s.txt", req.Period),
			renderMonthly(req.Monthly, req.Period),
		), nil

	case KindAnnual:
		if req.Annual == nil {
			return export.Document{}, errors.New("annual report requires a dataset")
		}
		return document(
			fmt.Sprintf("annual-report-%s.txt", req.Period),
			renderAnnual(req.Annual, req.Period),
		), nil

	case KindCustomers:
		return document(
			fmt.Sprintf("customer-report-%s.txt", req.Period),
			customersPlaceholder,
		), nil

	case KindItems:
		return document(
			fmt.Sprintf("item-analysis-%s.txt", req.Period),
			itemsPlaceholder,
		), nil

	default:
		return export.Document{}, errors.Errorf("unsupported report kind: %q", req.Kind)
	}
}

func document(filename, content string) export.Document {
	return export.Document{
		Filename:    filename,
		ContentType: export.TextPlain,
		Data:        []byte(content),
	}
}
