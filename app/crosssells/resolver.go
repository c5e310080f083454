// Package crosssells gives products without their own cross-sells a default
// list taken from the categories they belong to, and lets administrators
// edit those category defaults.
package crosssells

import (
	"context"
	"log/slog"
	"math/rand/v2"

	"github.com/mytheresa/category-cross-sells/app/productmeta"
	"github.com/mytheresa/category-cross-sells/models"
)

// ExplicitReader reads a product's own metadata without any filtering.
type ExplicitReader interface {
	GetProductMeta(ctx context.Context, productID uint, key string) ([]models.IDList, error)
}

// CategoryLookup returns the categories a product belongs to.
type CategoryLookup interface {
	GetCategoriesForProduct(ctx context.Context, productID uint) ([]models.Category, error)
}

// CategoryMetaReader reads category metadata.
type CategoryMetaReader interface {
	GetCategoryMeta(ctx context.Context, categoryID uint, key string) (models.IDList, error)
}

// AdminContext reports on the admin screen being served.
type AdminContext interface {
	IsEditingProduct(ctx context.Context) bool
}

// Resolver is a productmeta.Filter that answers cross-sell reads for
// products without their own list with a shuffled union of their
// categories' default lists.
type Resolver struct {
	explicit     ExplicitReader
	categories   CategoryLookup
	categoryMeta CategoryMetaReader
	admin        AdminContext

	shuffle func(n int, swap func(i, j int))
	log     *slog.Logger
}

type Option func(*Resolver)

// WithLogger sets the logger used for resolution decisions.
func WithLogger(log *slog.Logger) Option {
	return func(r *Resolver) {
		r.log = log
	}
}

// WithShuffle replaces the permutation source, mainly for tests.
func WithShuffle(shuffle func(n int, swap func(i, j int))) Option {
	return func(r *Resolver) {
		r.shuffle = shuffle
	}
}

func NewResolver(explicit ExplicitReader, categories CategoryLookup, categoryMeta CategoryMetaReader, admin AdminContext, opts ...Option) *Resolver {
	r := &Resolver{
		explicit:     explicit,
		categories:   categories,
		categoryMeta: categoryMeta,
		admin:        admin,
		shuffle:      rand.Shuffle,
		log:          slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ productmeta.Filter = (*Resolver)(nil)

// FilterProductMeta implements productmeta.Filter.
func (r *Resolver) FilterProductMeta(ctx context.Context, current productmeta.Value, q productmeta.Query) productmeta.Value {
	if q.Key != models.CrossSellIDsKey {
		return current
	}

	// The product editor must see the product's real, possibly empty, list.
	if r.admin.IsEditingProduct(ctx) {
		resolutionsTotal.WithLabelValues(outcomeAdminBypass).Inc()
		return current
	}

	log := r.log.With("product_id", q.ProductID)

	own, err := r.explicit.GetProductMeta(ctx, q.ProductID, models.CrossSellIDsKey)
	if err != nil {
		log.WarnContext(ctx, "read own cross-sells", "error", err)
		return current
	}
	if len(own) > 0 && len(own[0]) > 0 {
		resolutionsTotal.WithLabelValues(outcomeExplicit).Inc()
		return current
	}

	categories, err := r.categories.GetCategoriesForProduct(ctx, q.ProductID)
	if err != nil {
		log.WarnContext(ctx, "look up product categories", "error", err)
	}
	if err != nil || len(categories) == 0 {
		resolutionsTotal.WithLabelValues(outcomeNoCategories).Inc()
		return current
	}

	ids := r.collect(ctx, log, categories)
	if len(ids) == 0 {
		resolutionsTotal.WithLabelValues(outcomeNoFallback).Inc()
		return current
	}

	r.shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})

	resolutionsTotal.WithLabelValues(outcomeFallback).Inc()
	fallbackSize.Observe(float64(len(ids)))
	log.DebugContext(ctx, "using category cross-sells", "categories", len(categories), "ids", len(ids))
	return productmeta.Value{ids}
}

// collect unions the categories' default lists in category order. An ID
// already taken from an earlier list is not added again.
func (r *Resolver) collect(ctx context.Context, log *slog.Logger, categories []models.Category) models.IDList {
	var ids models.IDList
	seen := make(map[int64]struct{})
	for _, c := range categories {
		list, err := r.categoryMeta.GetCategoryMeta(ctx, c.ID, models.CrossSellIDsKey)
		if err != nil {
			log.WarnContext(ctx, "read category cross-sells", "category_id", c.ID, "error", err)
			continue
		}
		for _, id := range list {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}
