package render

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"storefront/internal/models"
)

func TestNewParsesAllPublicTemplates(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for _, name := range []string{
		"home", "product_list", "product_detail",
		"category_list", "blog_list", "blog_detail",
	} {
		if _, ok := r.templates[name]; !ok {
			t.Errorf("template %q not parsed", name)
		}
	}
	if _, ok := r.templates["base"]; ok {
		t.Error("base layout should not be registered as a page")
	}
}

func TestPageRendersLayout(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := r.Page("home", &PageData{Title: "Home", Section: "home"})
	if err != nil {
		t.Fatalf("Page: %v", err)
	}

	html := string(out)
	if !strings.Contains(html, "<title>Home &middot; Storefront</title>") {
		t.Errorf("title missing from layout: %q", html)
	}
	if !strings.Contains(html, "No products yet.") {
		t.Error("empty product section should render its fallback")
	}
	if !strings.Contains(html, `href="/blog/"`) {
		t.Error("nav links missing from layout")
	}
}

func TestPageRendersProductData(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	p := models.Product{
		ID:        uuid.New(),
		Name:      "Smartphone",
		Price:     decimal.NewFromFloat(599.99),
		CreatedAt: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}
	out, err := r.Page("home", &PageData{
		Title:   "Home",
		Section: "home",
		Data:    map[string]any{"RecentProducts": []models.Product{p}},
	})
	if err != nil {
		t.Fatalf("Page: %v", err)
	}

	html := string(out)
	if !strings.Contains(html, "Smartphone") {
		t.Error("product name missing")
	}
	if !strings.Contains(html, "$599.99") {
		t.Errorf("price func output missing: %q", html)
	}
	if !strings.Contains(html, "/products/"+p.ID.String()+"/") {
		t.Error("product detail link missing")
	}
}

func TestPageUnknownTemplate(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := r.Page("nope", &PageData{}); err == nil {
		t.Error("expected error for unknown template")
	}
}

func TestActiveClass(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := r.Page("home", &PageData{Title: "Home", Section: "products"})
	if err != nil {
		t.Fatalf("Page: %v", err)
	}

	if !strings.Contains(string(out), `href="/products/" class="text-indigo-600 font-semibold"`) {
		t.Error("active nav section should carry the highlighted class")
	}
}
