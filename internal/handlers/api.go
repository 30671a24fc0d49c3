// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"storefront/internal/models"
	"storefront/internal/store"
)

// API groups the JSON read endpoints. The field sets of its responses
// are a compatibility surface: clients depend on them exactly as is.
type API struct {
	products   CatalogProvider
	categories CategoryProvider
	posts      ContentProvider
}

// NewAPI creates a new API handler group.
func NewAPI(products CatalogProvider, categories CategoryProvider, posts ContentProvider) *API {
	return &API{products: products, categories: categories, posts: posts}
}

// productJSON is the wire form of a product.
type productJSON struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	Category      string    `json:"category"`
	StockQuantity int       `json:"stock_quantity"`
	IsActive      bool      `json:"is_active"`
	IsInStock     bool      `json:"is_in_stock"`
	CreatedAt     string    `json:"created_at"`
}

// categoryJSON is the wire form of a category.
type categoryJSON struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	ProductsCount int       `json:"products_count"`
	CreatedAt     string    `json:"created_at"`
}

func toProductJSON(p models.Product) productJSON {
	return productJSON{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price.InexactFloat64(),
		Category:      p.CategoryName,
		StockQuantity: p.StockQuantity,
		IsActive:      p.IsActive,
		IsInStock:     p.IsInStock(),
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
	}
}

// writeJSON serializes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode json response failed", "error", err)
	}
}

// Products returns all active products matching the optional category
// and search filters. The search term matches name or description,
// case-insensitively; malformed filter values are ignored.
func (a *API) Products(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := store.ProductFilter{ActiveOnly: true, Search: q.Get("search")}
	if id, err := uuid.Parse(q.Get("category")); err == nil {
		filter.CategoryID = &id
	}

	items, _, err := a.products.List(filter, 0, 0)
	if err != nil {
		slog.Error("list products failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to get products"})
		return
	}

	products := make([]productJSON, len(items))
	for i, p := range items {
		products[i] = toProductJSON(p)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"products": products,
		"count":    len(products),
	})
}

// Categories returns all categories with live product counts.
func (a *API) Categories(w http.ResponseWriter, r *http.Request) {
	items, err := a.categories.List()
	if err != nil {
		slog.Error("list categories failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to get categories"})
		return
	}

	categories := make([]categoryJSON, len(items))
	for i, c := range items {
		categories[i] = categoryJSON{
			ID:            c.ID,
			Name:          c.Name,
			Description:   c.Description,
			ProductsCount: c.ProductCount,
			CreatedAt:     c.CreatedAt.Format(time.RFC3339),
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"categories": categories,
		"count":      len(categories),
	})
}

// Test returns a static success envelope plus live record counts.
func (a *API) Test(w http.ResponseWriter, r *http.Request) {
	productCount, err := a.products.Count()
	if err != nil {
		slog.Error("count products failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to count records"})
		return
	}
	categoryCount, err := a.categories.Count()
	if err != nil {
		slog.Error("count categories failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to count records"})
		return
	}
	postCount, err := a.posts.Count()
	if err != nil {
		slog.Error("count posts failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to count records"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Storefront API is working!",
		"status":  "success",
		"data": map[string]int{
			"products_count":   productCount,
			"categories_count": categoryCount,
			"blog_posts_count": postCount,
		},
	})
}

// Health performs a trivial store read to verify database connectivity.
// Any failure is reported as 503 with the underlying error message.
func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	if _, err := a.products.Count(); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":   "unhealthy",
			"database": "disconnected",
			"error":    err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "healthy",
		"database": "connected",
		"message":  "All systems operational",
	})
}
