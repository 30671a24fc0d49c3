// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handler groups for the storefront:
// Public serves the server-rendered pages, API serves the JSON surface.
// Both depend on narrow provider interfaces so tests can substitute a
// fake store.
package handlers

import (
	"github.com/google/uuid"

	"storefront/internal/models"
	"storefront/internal/store"
)

// CatalogProvider is the product query surface consumed by handlers.
// *store.ProductStore satisfies it.
type CatalogProvider interface {
	List(f store.ProductFilter, offset, limit int) ([]models.Product, int, error)
	FindByID(id uuid.UUID) (*models.Product, error)
	Recent(n int) ([]models.Product, error)
	Count() (int, error)
}

// CategoryProvider is the category query surface consumed by handlers.
// *store.CategoryStore satisfies it.
type CategoryProvider interface {
	List() ([]models.Category, error)
	Count() (int, error)
}

// ContentProvider is the blog query surface consumed by handlers.
// *store.PostStore satisfies it.
type ContentProvider interface {
	ListPublished(offset, limit int) ([]models.BlogPost, int, error)
	FindByID(id uuid.UUID) (*models.BlogPost, error)
	Recent(n int) ([]models.BlogPost, error)
	Count() (int, error)
}
