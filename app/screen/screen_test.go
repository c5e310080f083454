package screen

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetector(t *testing.T) {
	var d Detector

	assert.False(t, d.IsEditingProduct(context.Background()))
	assert.True(t, d.IsEditingProduct(WithScreen(context.Background(), ProductEditor)))
	assert.False(t, d.IsEditingProduct(WithScreen(context.Background(), CategoryEditor)))
	assert.True(t, d.IsEditingCategories(WithScreen(context.Background(), CategoryEditor)))
}

func TestMark(t *testing.T) {
	var got ID
	var ok bool
	handler := Mark(ProductEditor, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = FromContext(r.Context())
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/admin/products/PROD001", nil))

	assert.True(t, ok)
	assert.Equal(t, ProductEditor, got)
}
