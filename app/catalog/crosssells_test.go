package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mytheresa/category-cross-sells/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// --- Mock cross-sell store ---

type MockCrossSells struct {
	Lists   map[uint]models.IDList
	Err     error
	SaveErr error

	lastReadID  uint
	lastReadKey string
	savedID     uint
	saved       models.IDList
}

func (m *MockCrossSells) GetSingle(ctx context.Context, productID uint, key string) (models.IDList, error) {
	m.lastReadID = productID
	m.lastReadKey = key
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Lists[productID], nil
}

func (m *MockCrossSells) SetProductMeta(ctx context.Context, productID uint, key string, value models.IDList) error {
	m.savedID = productID
	m.saved = value
	return m.SaveErr
}

// --- Helpers ---

func crossSellCatalog() []models.Product {
	return []models.Product{
		{ID: 1, Code: "PROD001", Name: "Silk Dress", Price: decimal.NewFromFloat(120)},
		{ID: 2, Code: "PROD002", Name: "Leather Belt", Price: decimal.NewFromFloat(45)},
		{ID: 3, Code: "PROD003", Name: "Silk Scarf", Price: decimal.NewFromFloat(60)},
	}
}

// --- Tests ---

func TestHandleGetCrossSells(t *testing.T) {
	testCases := []struct {
		name               string
		productCode        string
		repo               *MockProductRepo
		crossSells         *MockCrossSells
		expectedStatusCode int
		expectedCodes      []string
		expectedError      string
	}{
		{
			name:               "Resolved IDs become products in order",
			productCode:        "PROD001",
			repo:               &MockProductRepo{SourceProducts: crossSellCatalog()},
			crossSells:         &MockCrossSells{Lists: map[uint]models.IDList{1: {3, 2}}},
			expectedStatusCode: http.StatusOK,
			expectedCodes:      []string{"PROD003", "PROD002"},
		},
		{
			name:               "Unknown and invalid IDs are skipped",
			productCode:        "PROD001",
			repo:               &MockProductRepo{SourceProducts: crossSellCatalog()},
			crossSells:         &MockCrossSells{Lists: map[uint]models.IDList{1: {0, 999, 2, -4}}},
			expectedStatusCode: http.StatusOK,
			expectedCodes:      []string{"PROD002"},
		},
		{
			name:               "No cross-sells",
			productCode:        "PROD002",
			repo:               &MockProductRepo{SourceProducts: crossSellCatalog()},
			crossSells:         &MockCrossSells{},
			expectedStatusCode: http.StatusOK,
			expectedCodes:      []string{},
		},
		{
			name:               "Product not found",
			productCode:        "NOPE",
			repo:               &MockProductRepo{SourceProducts: crossSellCatalog()},
			crossSells:         &MockCrossSells{},
			expectedStatusCode: http.StatusNotFound,
			expectedError:      "Product not found",
		},
		{
			name:               "Cross-sell read error",
			productCode:        "PROD001",
			repo:               &MockProductRepo{SourceProducts: crossSellCatalog()},
			crossSells:         &MockCrossSells{Err: errors.New("db down")},
			expectedStatusCode: http.StatusInternalServerError,
			expectedError:      "Failed to retrieve cross-sells",
		},
		{
			name:               "Product lookup error",
			productCode:        "PROD001",
			repo:               &MockProductRepo{SourceProducts: crossSellCatalog(), ByIDErr: errors.New("db down")},
			crossSells:         &MockCrossSells{Lists: map[uint]models.IDList{1: {2}}},
			expectedStatusCode: http.StatusInternalServerError,
			expectedError:      "Failed to retrieve cross-sells",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			handler := NewCatalogHandler(tc.repo, WithCrossSells(tc.crossSells, tc.crossSells))
			req := httptest.NewRequest("GET", "/catalog/"+tc.productCode+"/cross-sells", nil)
			req.SetPathValue("code", tc.productCode)
			rec := httptest.NewRecorder()

			// Act
			handler.HandleGetCrossSells(rec, req)

			// Assert
			assert.Equal(t, tc.expectedStatusCode, rec.Code)
			if tc.expectedError != "" {
				var errResp map[string]string
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
				assert.Equal(t, tc.expectedError, errResp["error"])
				return
			}

			var resp CrossSellsResponse
			assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			codes := make([]string, len(resp.Products))
			for i, p := range resp.Products {
				codes[i] = p.Code
			}
			assert.Equal(t, tc.expectedCodes, codes)
			assert.Equal(t, models.CrossSellIDsKey, tc.crossSells.lastReadKey)
		})
	}
}
