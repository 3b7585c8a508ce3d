package models

import (
	"strings"

	"golang.org/x/text/cases"
	"gorm.io/gorm"
)

// Category is a global lookup entity, referenced by budgets,
// transactions and recurring bills.
type Category struct {
	DefaultModel
	Name string `json:"name" example:"Groceries"`      // Name of the category as first entered
	Key  string `json:"-" gorm:"uniqueIndex;not null"` // Case folded name used for lookups
}

// Theme is a global lookup entity for the color of a budget.
type Theme struct {
	DefaultModel
	Color string `json:"color" example:"#277C78"`       // Color as first entered
	Key   string `json:"-" gorm:"uniqueIndex;not null"` // Case folded color used for lookups
}

// FoldKey returns the natural key for a catalog entry.
//
// Keys are compared with full Unicode case folding so that "Café"
// and "CAFÉ" resolve to the same entry.
func FoldKey(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// Catalog resolves natural keys to catalog entries.
type Catalog interface {
	Category(db *gorm.DB, name string) (Category, error)
	Theme(db *gorm.DB, color string) (Theme, error)
}

// GormCatalog implements Catalog with an idempotent get-or-create.
type GormCatalog struct{}

// Category returns the category with the name, creating it if it does not exist yet.
func (GormCatalog) Category(db *gorm.DB, name string) (Category, error) {
	key := FoldKey(name)
	if key == "" {
		return Category{}, ErrCatalogKeyEmpty
	}

	var category Category
	err := db.Where(Category{Key: key}).Attrs(Category{Name: strings.TrimSpace(name)}).FirstOrCreate(&category).Error
	return category, err
}

// Theme returns the theme with the color, creating it if it does not exist yet.
func (GormCatalog) Theme(db *gorm.DB, color string) (Theme, error) {
	key := FoldKey(color)
	if key == "" {
		return Theme{}, ErrCatalogKeyEmpty
	}

	var theme Theme
	err := db.Where(Theme{Key: key}).Attrs(Theme{Color: strings.TrimSpace(color)}).FirstOrCreate(&theme).Error
	return theme, err
}
