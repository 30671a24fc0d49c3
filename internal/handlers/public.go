// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"storefront/internal/cache"
	"storefront/internal/markdown"
	"storefront/internal/pagination"
	"storefront/internal/render"
	"storefront/internal/store"
)

const (
	productPageSize = 12
	postPageSize    = 10

	homeProductCount  = 6
	homePostCount     = 3
	homeCategoryCount = 8
)

// Public groups handlers for the server-rendered storefront pages.
// Detail pages and the homepage are cached in Valkey; filtered list
// pages are always rendered fresh since their key space is unbounded.
type Public struct {
	renderer   *render.Renderer
	products   CatalogProvider
	categories CategoryProvider
	posts      ContentProvider
	pageCache  *cache.PageCache
}

// NewPublic creates a new Public handler group. pageCache may be nil,
// in which case every page is rendered fresh.
func NewPublic(renderer *render.Renderer, products CatalogProvider, categories CategoryProvider, posts ContentProvider, pageCache *cache.PageCache) *Public {
	return &Public{
		renderer:   renderer,
		products:   products,
		categories: categories,
		posts:      posts,
		pageCache:  pageCache,
	}
}

// serveCached writes a cached page if one exists for the key.
func (p *Public) serveCached(w http.ResponseWriter, r *http.Request, key string) bool {
	if p.pageCache == nil {
		return false
	}
	cached, ok := p.pageCache.Get(r.Context(), key)
	if !ok {
		return false
	}
	writeHTML(w, cached)
	return true
}

// renderPage renders a template and writes it out, caching the result
// under key when a cache is configured and key is non-empty.
func (p *Public) renderPage(w http.ResponseWriter, r *http.Request, key, name string, data *render.PageData) {
	rendered, err := p.renderer.Page(name, data)
	if err != nil {
		slog.Error("render page failed", "template", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if p.pageCache != nil && key != "" {
		p.pageCache.Set(r.Context(), key, rendered)
	}
	writeHTML(w, rendered)
}

func writeHTML(w http.ResponseWriter, b []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(b)
}

// Home renders the landing page: recent active products, recent
// published posts, and a handful of categories.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	if p.serveCached(w, r, cache.HomeKey()) {
		return
	}

	recentProducts, err := p.products.Recent(homeProductCount)
	if err != nil {
		slog.Error("recent products failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	recentPosts, err := p.posts.Recent(homePostCount)
	if err != nil {
		slog.Error("recent posts failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	categories, err := p.categories.List()
	if err != nil {
		slog.Error("list categories failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if len(categories) > homeCategoryCount {
		categories = categories[:homeCategoryCount]
	}

	p.renderPage(w, r, cache.HomeKey(), "home", &render.PageData{
		Title:   "Home",
		Section: "home",
		Data: map[string]any{
			"RecentProducts": recentProducts,
			"RecentPosts":    recentPosts,
			"Categories":     categories,
		},
	})
}

// ProductList renders the paginated, filterable product listing.
// Query parameters: category (id), search (free text), page (1-based).
// Malformed values are ignored rather than rejected.
func (p *Public) ProductList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := store.ProductFilter{ActiveOnly: true, Search: q.Get("search")}
	if id, err := uuid.Parse(q.Get("category")); err == nil {
		filter.CategoryID = &id
	}
	page := parsePage(q.Get("page"))

	items, total, err := p.products.List(filter, pagination.Offset(page, productPageSize), productPageSize)
	if err != nil {
		slog.Error("list products failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	pg := pagination.New(items, page, productPageSize, total)

	categories, err := p.categories.List()
	if err != nil {
		slog.Error("list categories failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.renderPage(w, r, "", "product_list", &render.PageData{
		Title:   "Products",
		Section: "products",
		Data: map[string]any{
			"Page":             pg,
			"Categories":       categories,
			"Search":           q.Get("search"),
			"SelectedCategory": q.Get("category"),
			"PrevURL":          listURL("/products/", q, pg.PrevNumber()),
			"NextURL":          listURL("/products/", q, pg.NextNumber()),
		},
	})
}

// ProductDetail renders a single product page. Unknown and unparseable
// ids both 404.
func (p *Public) ProductDetail(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if p.serveCached(w, r, cache.ProductKey(id)) {
		return
	}

	product, err := p.products.FindByID(id)
	if err != nil {
		slog.Error("find product failed", "error", err, "id", id)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if product == nil {
		http.NotFound(w, r)
		return
	}

	p.renderPage(w, r, cache.ProductKey(id), "product_detail", &render.PageData{
		Title:   product.Name,
		Section: "products",
		Data:    map[string]any{"Product": product},
	})
}

// CategoryList renders all categories with live product counts.
func (p *Public) CategoryList(w http.ResponseWriter, r *http.Request) {
	if p.serveCached(w, r, cache.CategoriesKey()) {
		return
	}

	categories, err := p.categories.List()
	if err != nil {
		slog.Error("list categories failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.renderPage(w, r, cache.CategoriesKey(), "category_list", &render.PageData{
		Title:   "Categories",
		Section: "categories",
		Data:    map[string]any{"Categories": categories},
	})
}

// BlogList renders the paginated published-post listing.
func (p *Public) BlogList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := parsePage(q.Get("page"))

	items, total, err := p.posts.ListPublished(pagination.Offset(page, postPageSize), postPageSize)
	if err != nil {
		slog.Error("list published posts failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	pg := pagination.New(items, page, postPageSize, total)

	p.renderPage(w, r, "", "blog_list", &render.PageData{
		Title:   "Blog",
		Section: "blog",
		Data: map[string]any{
			"Page":    pg,
			"PrevURL": listURL("/blog/", q, pg.PrevNumber()),
			"NextURL": listURL("/blog/", q, pg.NextNumber()),
		},
	})
}

// BlogDetail renders a single post with its Markdown body converted to
// HTML. Publish state is deliberately not checked here — detail pages
// mirror the unfiltered single-item lookup of the content store.
func (p *Public) BlogDetail(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if p.serveCached(w, r, cache.PostKey(id)) {
		return
	}

	post, err := p.posts.FindByID(id)
	if err != nil {
		slog.Error("find post failed", "error", err, "id", id)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if post == nil {
		http.NotFound(w, r)
		return
	}

	body, err := markdown.ToHTML(post.Body)
	if err != nil {
		slog.Error("render post body failed", "error", err, "id", id)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.renderPage(w, r, cache.PostKey(id), "blog_detail", &render.PageData{
		Title:   post.Title,
		Section: "blog",
		Data: map[string]any{
			"Post":     post,
			"BodyHTML": template.HTML(body),
		},
	})
}

// parsePage reads a 1-based page number, defaulting to 1 on anything
// malformed or out of range.
func parsePage(raw string) int {
	if n, err := strconv.Atoi(raw); err == nil && n >= 1 {
		return n
	}
	return 1
}

// listURL rebuilds a listing URL with the given page number while
// preserving the remaining query parameters.
func listURL(path string, q url.Values, page int) string {
	vals := url.Values{}
	for k, v := range q {
		if k != "page" {
			vals[k] = v
		}
	}
	if page > 1 {
		vals.Set("page", strconv.Itoa(page))
	}
	if len(vals) == 0 {
		return path
	}
	return path + "?" + vals.Encode()
}
