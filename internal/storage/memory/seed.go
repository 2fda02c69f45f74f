package memory

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/pos-admin/db"
	"github.com/xenking/pos-admin/internal/domain/catalog"
	"github.com/xenking/pos-admin/internal/domain/customer"
	"github.com/xenking/pos-admin/internal/domain/order"
)

type foodItemSeed struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Code           string          `json:"code"`
	Category       string          `json:"category"`
	Price          decimal.Decimal `json:"price"`
	Quantity       int             `json:"quantity"`
	ExpirationDate string          `json:"expiration_date"`
	Description    string          `json:"description"`
}

type customerSeed struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Phone       string          `json:"phone"`
	Email       string          `json:"email"`
	Address     string          `json:"address"`
	TotalOrders int             `json:"total_orders"`
	TotalSpent  decimal.Decimal `json:"total_spent"`
	JoinDate    string          `json:"join_date"`
}

type orderSeed struct {
	ID            string           `json:"id"`
	CustomerID    string           `json:"customer_id"`
	CustomerName  string           `json:"customer_name"`
	CustomerPhone string           `json:"customer_phone"`
	Items         []order.LineItem `json:"items"`
	Subtotal      decimal.Decimal  `json:"subtotal"`
	DiscountRate  decimal.Decimal  `json:"discount_rate"`
	Total         decimal.Decimal  `json:"total"`
	Status        string           `json:"status"`
	CreatedAt     time.Time        `json:"created_at"`
}

func (s *Store) seed() error {
	var items []foodItemSeed
	if err := json.Unmarshal(db.SeedFoodItems, &items); err != nil {
		return errors.Wrap(err, "parse food items")
	}
	for _, it := range items {
		item := catalog.FoodItem{
			ID:          it.ID,
			Name:        it.Name,
			Code:        it.Code,
			Category:    it.Category,
			Price:       it.Price,
			Quantity:    it.Quantity,
			Description: it.Description,
		}
		if it.ExpirationDate != "" {
			d, err := time.Parse("2006-01-02", it.ExpirationDate)
			if err != nil {
				return errors.Wrapf(err, "parse expiration date for item %s", it.ID)
			}
			item.ExpirationDate = &d
		}
		s.items[item.ID] = item
	}

	var customers []customerSeed
	if err := json.Unmarshal(db.SeedCustomers, &customers); err != nil {
		return errors.Wrap(err, "parse customers")
	}
	for _, c := range customers {
		joined, err := time.Parse("2006-01-02", c.JoinDate)
		if err != nil {
			return errors.Wrapf(err, "parse join date for customer %s", c.ID)
		}
		s.customers[c.ID] = customer.Customer{
			ID:          c.ID,
			Name:        c.Name,
			Phone:       c.Phone,
			Email:       c.Email,
			Address:     c.Address,
			TotalOrders: c.TotalOrders,
			TotalSpent:  c.TotalSpent,
			JoinDate:    joined,
		}
	}

	var orders []orderSeed
	if err := json.Unmarshal(db.SeedOrders, &orders); err != nil {
		return errors.Wrap(err, "parse orders")
	}
	for _, o := range orders {
		status, err := order.ParseStatus(o.Status)
		if err != nil {
			return errors.Wrapf(err, "order %s", o.ID)
		}
		s.orders[o.ID] = order.Order{
			ID:            o.ID,
			CustomerID:    o.CustomerID,
			CustomerName:  o.CustomerName,
			CustomerPhone: o.CustomerPhone,
			Lines:         o.Items,
			Subtotal:      o.Subtotal,
			DiscountRate:  o.DiscountRate,
			Total:         o.Total,
			Status:        status,
			CreatedAt:     o.CreatedAt,
		}

		// Keep the id sequence ahead of the seeded ORDnnn ids.
		if n, err := strconv.ParseInt(strings.TrimPrefix(o.ID, "ORD"), 10, 64); err == nil {
			for {
				cur := s.orderSeq.Load()
				if n <= cur || s.orderSeq.CompareAndSwap(cur, n) {
					break
				}
			}
		}
	}

	return nil
}
