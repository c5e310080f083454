package catalog

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/mytheresa/category-cross-sells/app/api"
	"github.com/mytheresa/category-cross-sells/models"
)

type Response struct {
	Total    int       `json:"total"`
	Products []Product `json:"products"`
}

type Category struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type Product struct {
	Code       string     `json:"code"`
	Name       string     `json:"name"`
	Price      float64    `json:"price"`
	Categories []Category `json:"categories"`
}

type Variant struct {
	Name  string  `json:"name"`
	SKU   string  `json:"sku"`
	Price float64 `json:"price"`
}

type ProductProvider interface {
	GetFilteredProducts(offset, limit int, filters models.ProductFilters) ([]models.Product, int64, error)
	GetByCode(code string) (*models.Product, error)
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	SearchProducts(ctx context.Context, term string, limit int) ([]models.Product, error)
}

// CrossSellReader reads product cross-sells through the metadata filters.
type CrossSellReader interface {
	GetSingle(ctx context.Context, productID uint, key string) (models.IDList, error)
}

// CrossSellWriter stores a product's own cross-sell list.
type CrossSellWriter interface {
	SetProductMeta(ctx context.Context, productID uint, key string, value models.IDList) error
}

type CatalogHandler struct {
	repo       ProductProvider
	crossSells CrossSellReader
	meta       CrossSellWriter
}

type Option func(*CatalogHandler)

// WithCrossSells enables the cross-sell endpoints.
func WithCrossSells(reader CrossSellReader, writer CrossSellWriter) Option {
	return func(h *CatalogHandler) {
		h.crossSells = reader
		h.meta = writer
	}
}

func NewCatalogHandler(r ProductProvider, opts ...Option) *CatalogHandler {
	h := &CatalogHandler{
		repo: r,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *CatalogHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	// Parse pagination query params
	offset := 0
	limit := 10

	if oStr := r.URL.Query().Get("offset"); oStr != "" {
		if o, err := strconv.Atoi(oStr); err == nil && o >= 0 {
			offset = o
		}
	}

	if lStr := r.URL.Query().Get("limit"); lStr != "" {
		if l, err := strconv.Atoi(lStr); err == nil {
			if l < 1 {
				limit = 1
			} else if l > 100 {
				limit = 100
			} else {
				limit = l
			}
		}
	}

	// Parse filters
	categoryCode := r.URL.Query().Get("category")

	var priceFilter *float64
	if priceStr := r.URL.Query().Get("price_lt"); priceStr != "" {
		if val, err := strconv.ParseFloat(priceStr, 64); err == nil {
			priceFilter = &val
		}
	}

	filters := models.ProductFilters{
		CategoryCode:  categoryCode,
		PriceLessThan: priceFilter,
	}

	res, total, err := h.repo.GetFilteredProducts(offset, limit, filters)
	if err != nil {
		api.ErrorResponse(w, http.StatusInternalServerError, "failed to get products")
		return
	}

	products := make([]Product, len(res))
	for i, p := range res {
		products[i] = toProduct(p)
	}

	api.OKResponse(w, Response{
		Total:    int(total),
		Products: products,
	})
}

func (h *CatalogHandler) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	product, ok := h.productByCode(w, r)
	if !ok {
		return
	}

	// Map response
	variants := make([]Variant, len(product.Variants))
	for i, v := range product.Variants {
		price := v.Price
		if price.IsZero() {
			price = product.Price
		}
		variants[i] = Variant{
			Name:  v.Name,
			SKU:   v.SKU,
			Price: price.InexactFloat64(),
		}
	}

	response := struct {
		Product
		Variants []Variant `json:"variants"`
	}{
		Product:  toProduct(*product),
		Variants: variants,
	}

	api.OKResponse(w, response)
}

// productByCode loads the product named by the {code} path value, writing
// the error response itself when it cannot.
func (h *CatalogHandler) productByCode(w http.ResponseWriter, r *http.Request) (*models.Product, bool) {
	product, err := h.repo.GetByCode(r.PathValue("code"))
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			api.ErrorResponse(w, http.StatusNotFound, "Product not found")
		} else {
			api.ErrorResponse(w, http.StatusInternalServerError, "Failed to retrieve product")
		}
		return nil, false
	}
	return product, true
}

func toProduct(p models.Product) Product {
	categories := make([]Category, len(p.Categories))
	for i, c := range p.Categories {
		categories[i] = Category{Code: c.Code, Name: c.Name}
	}
	return Product{
		Code:       p.Code,
		Name:       p.Name,
		Price:      p.Price.InexactFloat64(),
		Categories: categories,
	}
}
