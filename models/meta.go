package models

import (
	"database/sql/driver"

	"github.com/lib/pq"
)

// CrossSellIDsKey is the meta key holding cross-sell product IDs, both on
// products (their own list) and on categories (the default list).
const CrossSellIDsKey = "_crosssell_ids"

// IDList is an ordered list of product IDs stored as a Postgres bigint array.
type IDList []int64

// Value implements driver.Valuer.
func (l IDList) Value() (driver.Value, error) {
	return pq.Int64Array(l).Value()
}

// Scan implements sql.Scanner.
func (l *IDList) Scan(src any) error {
	var arr pq.Int64Array
	if err := arr.Scan(src); err != nil {
		return err
	}
	*l = IDList(arr)
	return nil
}

// Contains reports whether id is in the list.
func (l IDList) Contains(id int64) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}

// ProductMeta is one metadata row attached to a product.
type ProductMeta struct {
	ID        uint   `gorm:"primaryKey"`
	ProductID uint   `gorm:"not null;index:idx_product_meta_lookup,priority:1"`
	MetaKey   string `gorm:"size:255;not null;index:idx_product_meta_lookup,priority:2"`
	MetaValue IDList `gorm:"type:bigint[]"`
}

func (m *ProductMeta) TableName() string {
	return "product_meta"
}

// CategoryMeta is one metadata row attached to a category.
type CategoryMeta struct {
	ID         uint   `gorm:"primaryKey"`
	CategoryID uint   `gorm:"not null;uniqueIndex:idx_category_meta_key,priority:1"`
	MetaKey    string `gorm:"size:255;not null;uniqueIndex:idx_category_meta_key,priority:2"`
	MetaValue  IDList `gorm:"type:bigint[]"`
}

func (m *CategoryMeta) TableName() string {
	return "category_meta"
}
