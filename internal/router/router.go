// Package router sets up all HTTP routes and middleware chains for the
// storefront. Route paths keep their trailing slashes — they are part of
// the public URL contract.
package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"storefront/internal/handlers"
	"storefront/internal/middleware"
	"storefront/web"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(public *handlers.Public, api *handlers.API) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Embedded static assets.
	staticFS, err := fs.Sub(web.StaticFS, "static")
	if err == nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	}

	// Server-rendered pages.
	r.Get("/", public.Home)
	r.Get("/products/", public.ProductList)
	r.Get("/products/{id}/", public.ProductDetail)
	r.Get("/categories/", public.CategoryList)
	r.Get("/blog/", public.BlogList)
	r.Get("/blog/{id}/", public.BlogDetail)

	// JSON API — read only.
	r.Route("/api", func(r chi.Router) {
		r.Get("/test/", api.Test)
		r.Get("/health/", api.Health)
		r.Get("/products/", api.Products)
		r.Get("/categories/", api.Categories)
	})

	return r
}
