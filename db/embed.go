// Package db provides the embedded database schema and seed fixtures.
package db

import _ "embed"

// Schema contains the DDL statements for all application tables.
//
//go:embed migrations/001_schema.sql
var Schema string

// Seed fixtures: the demo catalog, customer directory and order history.
var (
	//go:embed seed/food_items.json
	SeedFoodItems []byte

	//go:embed seed/customers.json
	SeedCustomers []byte

	//go:embed seed/orders.json
	SeedOrders []byte
)
