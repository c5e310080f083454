package models

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// MetaRepository reads and writes product and category metadata.
// Reads go straight to the database; interception lives in the productmeta package.
type MetaRepository struct {
	db *gorm.DB
}

func NewMetaRepository(db *gorm.DB) *MetaRepository {
	return &MetaRepository{
		db: db,
	}
}

// GetProductMeta returns every stored value for the product and key, oldest first.
func (r *MetaRepository) GetProductMeta(ctx context.Context, productID uint, key string) ([]IDList, error) {
	var rows []ProductMeta
	if err := r.db.WithContext(ctx).
		Where("product_id = ? AND meta_key = ?", productID, key).
		Order("id").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("get product meta %q: %w", key, err)
	}

	values := make([]IDList, len(rows))
	for i, row := range rows {
		values[i] = row.MetaValue
	}
	return values, nil
}

// SetProductMeta replaces every stored value for the product and key with value.
func (r *MetaRepository) SetProductMeta(ctx context.Context, productID uint, key string, value IDList) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ? AND meta_key = ?", productID, key).
			Delete(&ProductMeta{}).Error; err != nil {
			return fmt.Errorf("clear product meta %q: %w", key, err)
		}
		row := ProductMeta{ProductID: productID, MetaKey: key, MetaValue: value}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("create product meta %q: %w", key, err)
		}
		return nil
	})
}

// GetCategoryMeta returns the value stored for the category and key, or nil when absent.
func (r *MetaRepository) GetCategoryMeta(ctx context.Context, categoryID uint, key string) (IDList, error) {
	var row CategoryMeta
	if err := r.db.WithContext(ctx).
		Where("category_id = ? AND meta_key = ?", categoryID, key).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category meta %q: %w", key, err)
	}
	return row.MetaValue, nil
}

// SetCategoryMeta overwrites the value stored for the category and key.
func (r *MetaRepository) SetCategoryMeta(ctx context.Context, categoryID uint, key string, value IDList) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ? AND meta_key = ?", categoryID, key).
			Delete(&CategoryMeta{}).Error; err != nil {
			return fmt.Errorf("clear category meta %q: %w", key, err)
		}
		row := CategoryMeta{CategoryID: categoryID, MetaKey: key, MetaValue: value}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("create category meta %q: %w", key, err)
		}
		return nil
	})
}
