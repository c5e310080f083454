package models

import (
	"github.com/shopspring/decimal"
)

// Variant is a purchasable variation of a product.
// A zero price means the variant inherits the product price.
type Variant struct {
	ID        uint            `gorm:"primaryKey"`
	ProductID uint            `gorm:"not null;index"`
	Name      string          `gorm:"not null"`
	SKU       string          `gorm:"uniqueIndex;not null"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
}

func (v *Variant) TableName() string {
	return "product_variants"
}
