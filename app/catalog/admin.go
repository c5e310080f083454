package catalog

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/mytheresa/category-cross-sells/app/api"
	"github.com/mytheresa/category-cross-sells/models"
)

const searchLimit = 20

type AdminProductResponse struct {
	ID uint `json:"id"`
	Product
	CrossSellIDs []int64 `json:"crosssell_ids"`
}

// HandleAdminGetProduct serves the product editor's view of a product,
// including the cross-sell IDs stored on the product itself.
func (h *CatalogHandler) HandleAdminGetProduct(w http.ResponseWriter, r *http.Request) {
	product, ok := h.productByCode(w, r)
	if !ok {
		return
	}

	ids, err := h.crossSells.GetSingle(r.Context(), product.ID, models.CrossSellIDsKey)
	if err != nil {
		api.ErrorResponse(w, http.StatusInternalServerError, "Failed to retrieve cross-sells")
		return
	}
	if ids == nil {
		ids = models.IDList{}
	}

	api.OKResponse(w, AdminProductResponse{
		ID:           product.ID,
		Product:      toProduct(*product),
		CrossSellIDs: ids,
	})
}

// HandleSetCrossSells replaces the product's own cross-sell list.
func (h *CatalogHandler) HandleSetCrossSells(w http.ResponseWriter, r *http.Request) {
	product, ok := h.productByCode(w, r)
	if !ok {
		return
	}

	var input struct {
		CrossSellIDs []int64 `json:"crosssell_ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	ids := models.IDList(input.CrossSellIDs)
	if ids == nil {
		ids = models.IDList{}
	}

	if err := h.meta.SetProductMeta(r.Context(), product.ID, models.CrossSellIDsKey, ids); err != nil {
		api.ErrorResponse(w, http.StatusInternalServerError, "Failed to save cross-sells")
		return
	}

	api.OKResponse(w, map[string]any{
		"code":          product.Code,
		"crosssell_ids": ids,
	})
}

// HandleSearch backs the product picker: it maps matching product IDs to
// their display labels.
func (h *CatalogHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	term := strings.TrimSpace(r.URL.Query().Get("term"))
	if term == "" {
		api.OKResponse(w, map[string]string{})
		return
	}

	products, err := h.repo.SearchProducts(r.Context(), term, searchLimit)
	if err != nil {
		api.ErrorResponse(w, http.StatusInternalServerError, "failed to search products")
		return
	}

	found := make(map[string]string, len(products))
	for _, p := range products {
		found[strconv.FormatUint(uint64(p.ID), 10)] = p.FormattedName()
	}
	api.OKResponse(w, found)
}
