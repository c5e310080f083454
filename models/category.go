package models

// Category represents a product category.
// It includes a unique code and a human-readable name.
type Category struct {
	ID   uint   `gorm:"primaryKey"`
	Code string `gorm:"uniqueIndex;not null"`
	Name string `gorm:"not null"`
}

func (c *Category) TableName() string {
	return "categories"
}

// CategoryTaxonomy names the taxonomy product categories belong to.
// Term save events carry it so hooks can ignore other taxonomies.
const CategoryTaxonomy = "product_cat"
