// Package customer holds the customer entity and its repository contract.
package customer

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound      = errors.New("customer not found")
	ErrNameRequired  = errors.New("customer name is required")
	ErrPhoneRequired = errors.New("customer phone is required")
)

// Customer is one entry in the customer book. TotalOrders and TotalSpent
// are running counters maintained by callers when orders complete; they are
// stored data, not derived on read.
type Customer struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Phone       string          `json:"phone"`
	Email       string          `json:"email,omitempty"`
	Address     string          `json:"address,omitempty"`
	TotalOrders int             `json:"total_orders"`
	TotalSpent  decimal.Decimal `json:"total_spent"`
	JoinDate    time.Time       `json:"join_date"`
}

// Validate checks the customer's invariants before it is persisted.
func (c *Customer) Validate() error {
	switch {
	case c.Name == "":
		return ErrNameRequired
	case c.Phone == "":
		return ErrPhoneRequired
	}
	return nil
}

// Repository is the persistence contract for the customer book.
type Repository interface {
	List(ctx context.Context) ([]Customer, error)
	Get(ctx context.Context, id string) (*Customer, error)
	Create(ctx context.Context, c *Customer) error
	Update(ctx context.Context, c *Customer) error
	Delete(ctx context.Context, id string) error
}
