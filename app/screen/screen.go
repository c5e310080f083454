// Package screen tracks which admin screen a request is rendering.
package screen

import (
	"context"
	"net/http"
)

// ID identifies an admin screen.
type ID string

const (
	// ProductEditor is the single-product edit screen.
	ProductEditor ID = "product"
	// CategoryEditor is the add/edit product category screen.
	CategoryEditor ID = "edit-product_cat"
)

type ctxKey struct{}

// WithScreen returns a copy of ctx marked as rendering screen id.
func WithScreen(ctx context.Context, id ID) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the current admin screen, if any.
func FromContext(ctx context.Context) (ID, bool) {
	id, ok := ctx.Value(ctxKey{}).(ID)
	return id, ok
}

// Is reports whether ctx is rendering screen id.
func Is(ctx context.Context, id ID) bool {
	cur, ok := FromContext(ctx)
	return ok && cur == id
}

// Mark wraps next so every request it serves carries screen id.
func Mark(id ID, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithScreen(r.Context(), id)))
	})
}

// Detector answers admin-context questions from the request context.
type Detector struct{}

// IsEditingProduct reports whether the single-product editor is active.
func (Detector) IsEditingProduct(ctx context.Context) bool {
	return Is(ctx, ProductEditor)
}

// IsEditingCategories reports whether the category editor is active.
func (Detector) IsEditingCategories(ctx context.Context) bool {
	return Is(ctx, CategoryEditor)
}
