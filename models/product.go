package models

import "time"

// Product categories on the menu. Category is stored as plain text so new
// categories can be added without a migration.
const (
	CategoryBowls     = "bowls"
	CategoryEnsaladas = "ensaladas"
	CategoryWraps     = "wraps"
)

type Product struct {
	ID          string       `json:"id" gorm:"primaryKey"`
	Name        string       `json:"name" gorm:"not null"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
	Price       float64      `json:"price" gorm:"not null"`
	ImageURL    string       `json:"image_url"`
	Ingredients []Ingredient `json:"ingredients" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	FoodCost    float64      `json:"food_cost" gorm:"default:0"`
	TaxRate     float64      `json:"tax_rate" gorm:"default:0.10"`
	IsAvailable bool         `json:"is_available" gorm:"default:true"`
	CreatedAt   time.Time    `json:"created_at"`
}

// Ingredient is one line of a product's cost breakdown (escandallo).
// It has no lifecycle of its own; rows are replaced wholesale when the
// owning product's ingredient list is updated.
type Ingredient struct {
	ID        uint    `json:"-" gorm:"primaryKey"`
	ProductID string  `json:"-" gorm:"index;not null"`
	Name      string  `json:"name" gorm:"not null"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	UnitCost  float64 `json:"unit_cost"`
	TotalCost float64 `json:"total_cost"`
}
