package crosssells

import (
	"context"
	"fmt"

	"github.com/mytheresa/category-cross-sells/models"
)

// --- Mock Repos ---

type MockMetaRepo struct {
	ProductMeta  map[uint][]models.IDList
	CategoryMeta map[uint]models.IDList
	ProductErr   error
	CategoryErr  map[uint]error

	// Fields to capture writes
	SavedCategoryID uint
	SavedKey        string
	Saved           models.IDList
	SaveCalls       int
	SaveErr         error
}

func (m *MockMetaRepo) GetProductMeta(ctx context.Context, productID uint, key string) ([]models.IDList, error) {
	if m.ProductErr != nil {
		return nil, m.ProductErr
	}
	return m.ProductMeta[productID], nil
}

func (m *MockMetaRepo) GetCategoryMeta(ctx context.Context, categoryID uint, key string) (models.IDList, error) {
	if err := m.CategoryErr[categoryID]; err != nil {
		return nil, err
	}
	return m.CategoryMeta[categoryID], nil
}

func (m *MockMetaRepo) SetCategoryMeta(ctx context.Context, categoryID uint, key string, value models.IDList) error {
	m.SaveCalls++
	m.SavedCategoryID = categoryID
	m.SavedKey = key
	m.Saved = value
	return m.SaveErr
}

type MockCategoryLookup struct {
	Memberships map[uint][]models.Category
	Err         error
	Calls       int
}

func (m *MockCategoryLookup) GetCategoriesForProduct(ctx context.Context, productID uint) ([]models.Category, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Memberships[productID], nil
}

type fakeAdmin bool

func (f fakeAdmin) IsEditingProduct(ctx context.Context) bool {
	return bool(f)
}

type MockProductFinder struct {
	Products map[uint]models.Product
}

func (m *MockProductFinder) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	p, ok := m.Products[id]
	if !ok {
		return nil, fmt.Errorf("product %d: %w", id, models.ErrProductNotFound)
	}
	return &p, nil
}
