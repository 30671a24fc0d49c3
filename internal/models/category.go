// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the persisted entities of the storefront:
// categories, products, blog posts, and the authorship identity.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products and, optionally, blog posts.
// Names are unique; uniqueness is enforced by the database at write time.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`

	// ProductCount is a virtual field populated by CategoryStore.List.
	// It counts active products only, mirroring the public listing.
	ProductCount int `json:"products_count"`
}
