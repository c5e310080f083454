package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Product represents a product in the catalog.
// It includes a unique code, price, the categories it belongs to, and a list of variants.
type Product struct {
	ID         uint            `gorm:"primaryKey"`
	Code       string          `gorm:"uniqueIndex;not null"`
	Name       string          `gorm:"not null;default:''"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Categories []Category      `gorm:"many2many:product_categories"`
	Variants   []Variant       `gorm:"foreignKey:ProductID"`
}

func (p *Product) TableName() string {
	return "products"
}

// FormattedName returns the label used when listing the product in admin selects:
// the code (or "#id" when there is none) followed by the name.
func (p *Product) FormattedName() string {
	identifier := p.Code
	if identifier == "" {
		identifier = fmt.Sprintf("#%d", p.ID)
	}
	if p.Name == "" {
		return identifier
	}
	return identifier + " – " + p.Name
}
