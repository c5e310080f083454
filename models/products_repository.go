package models

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type ProductsRepository struct {
	db *gorm.DB
}

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

type ProductFilters struct {
	CategoryCode  string
	PriceLessThan *float64
}

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

func (r *ProductsRepository) GetFilteredProducts(offset, limit int, filters ProductFilters) ([]Product, int64, error) {
	var products []Product
	var total int64

	query := r.db.Model(&Product{}).
		Preload("Categories")

	// Filter
	if filters.CategoryCode != "" {
		members := r.db.Table("product_categories").
			Select("product_categories.product_id").
			Joins("JOIN categories ON categories.id = product_categories.category_id").
			Where("categories.code = ?", filters.CategoryCode)
		query = query.Where("products.id IN (?)", members)
	}
	if filters.PriceLessThan != nil {
		query = query.Where("products.price < ?", *filters.PriceLessThan)
	}

	// Count total after filtering
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Apply pagination
	if err := query.Order("products.id").Offset(offset).Limit(limit).Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *ProductsRepository) GetByCode(code string) (*Product, error) {
	var product Product
	if err := r.db.
		Preload("Variants").
		Preload("Categories").
		Where("code = ?", code).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err // Other DB error
	}
	return &product, nil
}

// GetByID loads a single product without its associations.
func (r *ProductsRepository) GetByID(ctx context.Context, id uint) (*Product, error) {
	var product Product
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// GetCategoriesForProduct returns the categories the product belongs to, in
// membership order. A missing product has no categories.
func (r *ProductsRepository) GetCategoriesForProduct(ctx context.Context, productID uint) ([]Category, error) {
	var categories []Category
	if err := r.db.WithContext(ctx).
		Joins("JOIN product_categories ON product_categories.category_id = categories.id").
		Where("product_categories.product_id = ?", productID).
		Order("categories.id").
		Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("get categories for product %d: %w", productID, err)
	}
	return categories, nil
}

// SearchProducts matches term against product codes and names, case-insensitively.
func (r *ProductsRepository) SearchProducts(ctx context.Context, term string, limit int) ([]Product, error) {
	var products []Product
	pattern := "%" + term + "%"
	if err := r.db.WithContext(ctx).
		Where("code ILIKE ? OR name ILIKE ?", pattern, pattern).
		Order("name").
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return products, nil
}
