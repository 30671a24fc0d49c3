// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog item belonging to exactly one category.
// Price and stock quantity are non-negative; both constraints are
// backed by CHECK constraints in the schema.
type Product struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	IsActive      bool            `json:"is_active"`
	CategoryID    uuid.UUID       `json:"category_id"`
	CreatedAt     time.Time       `json:"created_at"`

	// CategoryName is a virtual field populated by the store's join,
	// so listings never need a second round trip per product.
	CategoryName string `json:"category"`
}

// IsInStock reports whether the product has any units left.
func (p *Product) IsInStock() bool {
	return p.StockQuantity > 0
}
