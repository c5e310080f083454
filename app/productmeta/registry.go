// Package productmeta reads product metadata through a chain of filters that
// may answer a read before storage is consulted.
package productmeta

import (
	"context"
	"log/slog"

	"github.com/mytheresa/category-cross-sells/models"
)

// Value is the result of a filtered read. A nil Value means no filter
// resolved the read and storage must be consulted; a non-nil Value is the
// complete answer, one entry per stored row.
type Value []models.IDList

// Query describes a single metadata read.
type Query struct {
	ProductID uint
	Key       string
	Single    bool
}

// Filter may replace the result of a metadata read. Implementations must
// return current unchanged when they have nothing to say.
type Filter interface {
	FilterProductMeta(ctx context.Context, current Value, q Query) Value
}

// FilterFunc adapts a function to Filter.
type FilterFunc func(ctx context.Context, current Value, q Query) Value

func (f FilterFunc) FilterProductMeta(ctx context.Context, current Value, q Query) Value {
	return f(ctx, current, q)
}

// Store is the unfiltered product metadata storage.
type Store interface {
	GetProductMeta(ctx context.Context, productID uint, key string) ([]models.IDList, error)
}

// Registry runs registered filters before falling back to the store.
// Filters are added at start-up; the registry is read-only while serving.
type Registry struct {
	store   Store
	filters []Filter
	log     *slog.Logger
}

func NewRegistry(store Store, log *slog.Logger) *Registry {
	if log == nil {
		log = slog.Default()
	}
	return &Registry{store: store, log: log}
}

// AddFilter appends f to the filter chain.
func (r *Registry) AddFilter(f Filter) {
	r.filters = append(r.filters, f)
}

// Get returns every value for the product and key.
func (r *Registry) Get(ctx context.Context, productID uint, key string) ([]models.IDList, error) {
	return r.get(ctx, Query{ProductID: productID, Key: key})
}

// GetSingle returns the first value for the product and key, or nil.
func (r *Registry) GetSingle(ctx context.Context, productID uint, key string) (models.IDList, error) {
	values, err := r.get(ctx, Query{ProductID: productID, Key: key, Single: true})
	if err != nil || len(values) == 0 {
		return nil, err
	}
	return values[0], nil
}

func (r *Registry) get(ctx context.Context, q Query) ([]models.IDList, error) {
	var current Value
	for _, f := range r.filters {
		current = f.FilterProductMeta(ctx, current, q)
	}
	if current != nil {
		r.log.DebugContext(ctx, "product meta short-circuited", "product_id", q.ProductID, "key", q.Key)
		return current, nil
	}
	return r.store.GetProductMeta(ctx, q.ProductID, q.Key)
}
