package crosssells

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Resolution outcomes.
const (
	outcomeAdminBypass  = "admin_bypass"
	outcomeExplicit     = "explicit"
	outcomeNoCategories = "no_categories"
	outcomeNoFallback   = "no_fallback"
	outcomeFallback     = "fallback"
)

var (
	resolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "crosssell_resolutions_total",
		Help: "Cross-sell reads seen by the category fallback resolver, by outcome",
	}, []string{"outcome"})

	fallbackSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "crosssell_fallback_size",
		Help:    "Number of product IDs in a category fallback result",
		Buckets: prometheus.ExponentialBuckets(1, 2, 8),
	})

	categorySavesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "crosssell_category_saves_total",
		Help: "Category default cross-sell writes, by term action",
	}, []string{"action"})
)
