package catalog

import (
	"errors"
	"net/http"

	"github.com/mytheresa/category-cross-sells/app/api"
	"github.com/mytheresa/category-cross-sells/models"
)

type CrossSellsResponse struct {
	Products []Product `json:"products"`
}

// HandleGetCrossSells lists the products promoted alongside {code}: its own
// cross-sells, or its categories' defaults when it has none.
func (h *CatalogHandler) HandleGetCrossSells(w http.ResponseWriter, r *http.Request) {
	product, ok := h.productByCode(w, r)
	if !ok {
		return
	}

	ids, err := h.crossSells.GetSingle(r.Context(), product.ID, models.CrossSellIDsKey)
	if err != nil {
		api.ErrorResponse(w, http.StatusInternalServerError, "Failed to retrieve cross-sells")
		return
	}

	products := make([]Product, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			continue
		}
		p, err := h.repo.GetByID(r.Context(), uint(id))
		if errors.Is(err, models.ErrProductNotFound) {
			continue
		}
		if err != nil {
			api.ErrorResponse(w, http.StatusInternalServerError, "Failed to retrieve cross-sells")
			return
		}
		products = append(products, toProduct(*p))
	}

	api.OKResponse(w, CrossSellsResponse{Products: products})
}
