// Package server wires the catalog, categories and cross-sell components
// into one HTTP handler.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/mytheresa/category-cross-sells/app/auth"
	"github.com/mytheresa/category-cross-sells/app/catalog"
	"github.com/mytheresa/category-cross-sells/app/categories"
	"github.com/mytheresa/category-cross-sells/app/crosssells"
	"github.com/mytheresa/category-cross-sells/app/productmeta"
	"github.com/mytheresa/category-cross-sells/app/screen"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ProductStore is the product storage the server needs.
type ProductStore interface {
	catalog.ProductProvider
	crosssells.CategoryLookup
}

// MetaStore is the metadata storage the server needs.
type MetaStore interface {
	productmeta.Store
	crosssells.ExplicitReader
	crosssells.CategoryMetaReader
	crosssells.CategoryMetaWriter
	catalog.CrossSellWriter
}

type Stores struct {
	Products   ProductStore
	Categories categories.CategoryProvider
	Meta       MetaStore
}

// New builds the service's HTTP handler. Admin routes require a bearer token
// signed with secret.
func New(stores Stores, secret string, log *slog.Logger) http.Handler {
	registry := productmeta.NewRegistry(stores.Meta, log)
	registry.AddFilter(crosssells.NewResolver(
		stores.Meta,
		stores.Products,
		stores.Meta,
		screen.Detector{},
		crosssells.WithLogger(log),
	))

	cat := catalog.NewCatalogHandler(stores.Products, catalog.WithCrossSells(registry, stores.Meta))
	categoryHandler := categories.NewCategoryHandler(stores.Categories,
		categories.WithSaveHook(crosssells.NewSaver(stores.Meta, log)),
		categories.WithFormFields(crosssells.NewEditor(stores.Meta, stores.Products, log)),
		categories.WithLogger(log),
	)

	admin := http.NewServeMux()
	productScreen := func(h http.HandlerFunc) http.Handler { return screen.Mark(screen.ProductEditor, h) }
	categoryScreen := func(h http.HandlerFunc) http.Handler { return screen.Mark(screen.CategoryEditor, h) }

	admin.HandleFunc("GET /admin/products/search", cat.HandleSearch)
	admin.Handle("GET /admin/products/{code}", productScreen(cat.HandleAdminGetProduct))
	admin.Handle("PUT /admin/products/{code}/cross-sells", productScreen(cat.HandleSetCrossSells))
	admin.Handle("GET /admin/categories/new", categoryScreen(categoryHandler.HandleAddForm))
	admin.Handle("GET /admin/categories/{id}/edit", categoryScreen(categoryHandler.HandleEditForm))
	admin.Handle("POST /admin/categories", categoryScreen(categoryHandler.HandleFormCreate))
	admin.Handle("POST /admin/categories/{id}", categoryScreen(categoryHandler.HandleFormUpdate))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /catalog", cat.HandleGet)
	mux.HandleFunc("GET /catalog/{code}", cat.HandleGetProduct)
	mux.HandleFunc("GET /catalog/{code}/cross-sells", cat.HandleGetCrossSells)
	mux.HandleFunc("GET /categories", categoryHandler.HandleGetAll)
	mux.HandleFunc("POST /categories", categoryHandler.HandleCreate)
	mux.HandleFunc("PUT /categories/{id}", categoryHandler.HandleUpdate)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.Handle("/admin/", auth.Middleware(secret, admin))

	return logRequests(log, mux)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(log *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.InfoContext(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start))
	})
}
