// mock_test.go provides in-memory fake stores implementing the provider
// interfaces, so handler tests run without PostgreSQL.
package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"storefront/internal/models"
	"storefront/internal/store"
)

// mockCatalog implements CatalogProvider over a fixed product slice,
// simulating the store's filter semantics.
type mockCatalog struct {
	products []models.Product
	err      error

	// Captured call arguments.
	lastFilter store.ProductFilter
	lastOffset int
	lastLimit  int
}

func (m *mockCatalog) List(f store.ProductFilter, offset, limit int) ([]models.Product, int, error) {
	m.lastFilter = f
	m.lastOffset = offset
	m.lastLimit = limit

	if m.err != nil {
		return nil, 0, m.err
	}

	var filtered []models.Product
	for _, p := range m.products {
		if f.ActiveOnly && !p.IsActive {
			continue
		}
		if f.CategoryID != nil && p.CategoryID != *f.CategoryID {
			continue
		}
		if f.Search != "" {
			needle := strings.ToLower(f.Search)
			if !strings.Contains(strings.ToLower(p.Name), needle) &&
				!strings.Contains(strings.ToLower(p.Description), needle) {
				continue
			}
		}
		filtered = append(filtered, p)
	}

	total := len(filtered)
	if limit > 0 {
		start := min(offset, total)
		end := min(offset+limit, total)
		filtered = filtered[start:end]
	}
	return filtered, total, nil
}

func (m *mockCatalog) FindByID(id uuid.UUID) (*models.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, p := range m.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, nil
}

func (m *mockCatalog) Recent(n int) ([]models.Product, error) {
	items, _, err := m.List(store.ProductFilter{ActiveOnly: true}, 0, n)
	return items, err
}

func (m *mockCatalog) Count() (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return len(m.products), nil
}

// mockCategories implements CategoryProvider.
type mockCategories struct {
	categories []models.Category
	err        error
}

func (m *mockCategories) List() ([]models.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.categories, nil
}

func (m *mockCategories) Count() (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return len(m.categories), nil
}

// mockPosts implements ContentProvider.
type mockPosts struct {
	posts []models.BlogPost
	err   error
}

func (m *mockPosts) ListPublished(offset, limit int) ([]models.BlogPost, int, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	var published []models.BlogPost
	for _, p := range m.posts {
		if p.IsPublished {
			published = append(published, p)
		}
	}
	total := len(published)
	if limit > 0 {
		start := min(offset, total)
		end := min(offset+limit, total)
		published = published[start:end]
	}
	return published, total, nil
}

func (m *mockPosts) FindByID(id uuid.UUID) (*models.BlogPost, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, p := range m.posts {
		if p.ID == id {
			post := p
			return &post, nil
		}
	}
	return nil, nil
}

func (m *mockPosts) Recent(n int) ([]models.BlogPost, error) {
	items, _, err := m.ListPublished(0, n)
	return items, err
}

func (m *mockPosts) Count() (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return len(m.posts), nil
}

// withChiURLParam injects a chi route parameter into the request context,
// so detail handlers can be exercised without mounting the full router.
func withChiURLParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
