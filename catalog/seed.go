package catalog

import (
	"errors"
	"log"

	"sanojuicio-api/models"

	"gorm.io/gorm"
)

// seededIDs are the fixed identifiers of the base menu. They never change
// between startups so re-seeding cannot duplicate rows, and products under
// these ids cannot be deleted, only marked unavailable.
var seededIDs = []string{
	"prod-quinoa-bowl-001",
	"prod-alcachofa-002",
	"prod-poke-tofu-003",
	"prod-lentejas-004",
	"prod-wrap-lechuga-005",
	"prod-fideos-arroz-006",
	"prod-ensalada-pollo-007",
	"prod-avena-salada-008",
	"prod-mediterraneo-009",
}

// IsSeededID reports whether id belongs to the fixed base menu.
func IsSeededID(id string) bool {
	for _, s := range seededIDs {
		if s == id {
			return true
		}
	}
	return false
}

// Seed inserts every base-menu product that is missing from the store.
// Existing rows are never touched, even if the in-code definition changed,
// so edits made through the admin API survive restarts.
func Seed(db *gorm.DB) error {
	log.Println("Checking products database...")

	for i, def := range baseMenu() {
		id := seededIDs[i]
		var existing models.Product
		err := db.Where("id = ?", id).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		log.Printf("Adding missing product: %s", def.Name)
		def.ID = id
		if err := db.Create(&def).Error; err != nil {
			return err
		}
	}

	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	log.Printf("Products database ready: %d products", count)
	return nil
}

func baseMenu() []models.Product {
	return []models.Product{
		{
			Name:        "Bowl de Quinoa",
			Description: "Quinoa cocida con pechuga de pollo, espárragos verdes, habas, fresas, aguacate y vinagreta de albahaca",
			Category:    models.CategoryBowls,
			Price:       13.00,
			ImageURL:    "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=800",
			FoodCost:    0.43,
			TaxRate:     0.10,
			IsAvailable: true,
			Ingredients: []models.Ingredient{
				{Name: "Quinoa cocida", Quantity: 60, Unit: "g", UnitCost: 0.051, TotalCost: 0.051},
				{Name: "Pechuga de pollo", Quantity: 120, Unit: "g", UnitCost: 0.1308, TotalCost: 0.1308},
				{Name: "Espárragos verdes", Quantity: 60, Unit: "g", UnitCost: 0.0659, TotalCost: 0.0659},
				{Name: "Habas", Quantity: 40, Unit: "g", UnitCost: 0.022, TotalCost: 0.022},
				{Name: "Fresas", Quantity: 60, Unit: "g", UnitCost: 0.03, TotalCost: 0.03},
				{Name: "Aguacate", Quantity: 50, Unit: "g", UnitCost: 0.0425, TotalCost: 0.0425},
				{Name: "Vinagreta", Quantity: 40, Unit: "ml", UnitCost: 0.02, TotalCost: 0.02},
			},
		},
		{
			Name:        "Ensalada de Alcachofa Fría",
			Description: "Alcachofa confitada con guisantes, pera, nueces, queso de cabra y vinagreta",
			Category:    models.CategoryEnsaladas,
			Price:       9.00,
			ImageURL:    "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=800",
			FoodCost:    0.30,
			TaxRate:     0.10,
			IsAvailable: true,
			Ingredients: []models.Ingredient{
				{Name: "Alcachofa confitada", Quantity: 120, Unit: "g", UnitCost: 0.0452, TotalCost: 0.0452},
				{Name: "Guisantes", Quantity: 50, Unit: "g", UnitCost: 0.05, TotalCost: 0.05},
				{Name: "Pera", Quantity: 60, Unit: "g", UnitCost: 0.024, TotalCost: 0.024},
				{Name: "Nueces", Quantity: 15, Unit: "g", UnitCost: 0.027, TotalCost: 0.027},
				{Name: "Queso de cabra", Quantity: 30, Unit: "g", UnitCost: 0.0747, TotalCost: 0.0747},
			},
		},
		{
			Name:        "Poke Bowl de Tofu",
			Description: "Arroz integral con tofu marinado, espinacas frescas, zanahoria rallada, mango y sésamo",
			Category:    models.CategoryBowls,
			Price:       11.00,
			ImageURL:    "https://images.unsplash.com/photo-1604908176997-125f25cc6f3d?w=800",
			FoodCost:    0.29,
			TaxRate:     0.10,
			IsAvailable: true,
			Ingredients: []models.Ingredient{
				{Name: "Arroz integral cocido", Quantity: 90, Unit: "g", UnitCost: 0.0405, TotalCost: 0.0405},
				{Name: "Tofu marinado", Quantity: 90, Unit: "g", UnitCost: 0.108, TotalCost: 0.108},
				{Name: "Espinacas frescas", Quantity: 60, Unit: "g", UnitCost: 0.036, TotalCost: 0.036},
				{Name: "Zanahoria rallada", Quantity: 40, Unit: "g", UnitCost: 0.014, TotalCost: 0.014},
				{Name: "Mango", Quantity: 60, Unit: "g", UnitCost: 0.03, TotalCost: 0.03},
			},
		},
		{
			Name:        "Lentejas con Coliflor Asada",
			Description: "Lentejas cocidas con coliflor asada, cebolla caramelizada y pimiento verde",
			Category:    models.CategoryBowls,
			Price:       9.00,
			ImageURL:    "https://images.unsplash.com/photo-1543339308-43e59d6b73a6?w=800",
			FoodCost:    0.18,
			TaxRate:     0.10,
			IsAvailable: true,
			Ingredients: []models.Ingredient{
				{Name: "Lentejas cocidas", Quantity: 150, Unit: "g", UnitCost: 0.0525, TotalCost: 0.0525},
				{Name: "Coliflor asada", Quantity: 150, Unit: "g", UnitCost: 0.045, TotalCost: 0.045},
				{Name: "Cebolla", Quantity: 30, Unit: "g", UnitCost: 0.006, TotalCost: 0.006},
				{Name: "Pimiento verde", Quantity: 20, Unit: "g", UnitCost: 0.0056, TotalCost: 0.0056},
			},
		},
		{
			Name:        "Wrap de Lechuga",
			Description: "Hojas de lechuga romana rellenas de zanahoria, aguacate, pepino y salsa de yogur",
			Category:    models.CategoryWraps,
			Price:       8.00,
			ImageURL:    "https://images.unsplash.com/photo-1626700051175-6818013e1d4f?w=800",
			FoodCost:    0.15,
			TaxRate:     0.10,
			IsAvailable: true,
			Ingredients: []models.Ingredient{
				{Name: "Lechuga romana", Quantity: 40, Unit: "g", UnitCost: 0.01, TotalCost: 0.01},
				{Name: "Zanahoria", Quantity: 40, Unit: "g", UnitCost: 0.0044, TotalCost: 0.0044},
				{Name: "Aguacate", Quantity: 40, Unit: "g", UnitCost: 0.034, TotalCost: 0.034},
				{Name: "Pepino", Quantity: 40, Unit: "g", UnitCost: 0.013, TotalCost: 0.013},
				{Name: "Salsa de yogur", Quantity: 50, Unit: "ml", UnitCost: 0.0325, TotalCost: 0.0325},
			},
		},
		{
			Name:        "Bowl de Fideos de Arroz",
			Description: "Fideos de arroz salteados con brotes de soja, calabacín, zanahoria y setas",
			Category:    models.CategoryBowls,
			Price:       10.00,
			ImageURL:    "https://images.unsplash.com/photo-1569718212165-3a8278d5f624?w=800",
			FoodCost:    0.24,
			TaxRate:     0.10,
			IsAvailable: true,
			Ingredients: []models.Ingredient{
				{Name: "Fideos de arroz", Quantity: 90, Unit: "g", UnitCost: 0.0895, TotalCost: 0.0895},
				{Name: "Brotes de soja", Quantity: 30, Unit: "g", UnitCost: 0.018, TotalCost: 0.018},
				{Name: "Calabacín", Quantity: 60, Unit: "g", UnitCost: 0.0179, TotalCost: 0.0179},
				{Name: "Zanahoria", Quantity: 40, Unit: "g", UnitCost: 0.0044, TotalCost: 0.0044},
				{Name: "Setas", Quantity: 60, Unit: "g", UnitCost: 0.0454, TotalCost: 0.0454},
			},
		},
		{
			Name:        "Ensalada Verde con Pollo",
			Description: "Mix de espinacas con pechuga de pollo, patatas, almendras laminadas y vinagreta",
			Category:    models.CategoryEnsaladas,
			Price:       11.00,
			ImageURL:    "https://images.unsplash.com/photo-1540420773420-3366772f4999?w=800",
			FoodCost:    0.28,
			TaxRate:     0.10,
			IsAvailable: true,
			Ingredients: []models.Ingredient{
				{Name: "Pechuga de pollo", Quantity: 120, Unit: "g", UnitCost: 0.1308, TotalCost: 0.1308},
				{Name: "Espinacas", Quantity: 50, Unit: "g", UnitCost: 0.03, TotalCost: 0.03},
				{Name: "Patatas", Quantity: 100, Unit: "g", UnitCost: 0.02, TotalCost: 0.02},
				{Name: "Almendras laminadas", Quantity: 15, Unit: "g", UnitCost: 0.03, TotalCost: 0.03},
			},
		},
		{
			Name:        "Tazón de Avena Salada",
			Description: "Avena con berenjena asada, pimiento rojo, cebolla caramelizada y hummus",
			Category:    models.CategoryBowls,
			Price:       9.00,
			ImageURL:    "https://images.unsplash.com/photo-1495214783159-3503fd1b572d?w=800",
			FoodCost:    0.17,
			TaxRate:     0.10,
			IsAvailable: true,
			Ingredients: []models.Ingredient{
				{Name: "Avena", Quantity: 80, Unit: "g", UnitCost: 0.028, TotalCost: 0.028},
				{Name: "Berenjena", Quantity: 60, Unit: "g", UnitCost: 0.0131, TotalCost: 0.0131},
				{Name: "Pimiento rojo", Quantity: 60, Unit: "g", UnitCost: 0.0179, TotalCost: 0.0179},
				{Name: "Cebolla", Quantity: 40, Unit: "g", UnitCost: 0.008, TotalCost: 0.008},
				{Name: "Hummus", Quantity: 50, Unit: "g", UnitCost: 0.0425, TotalCost: 0.0425},
			},
		},
		{
			Name:        "Bowl Mediterráneo",
			Description: "Garbanzos con tomate, pepino, aceitunas, queso feta y orégano fresco",
			Category:    models.CategoryBowls,
			Price:       9.00,
			ImageURL:    "https://images.unsplash.com/photo-1529059997568-3d847b1154f0?w=800",
			FoodCost:    0.20,
			TaxRate:     0.10,
			IsAvailable: true,
			Ingredients: []models.Ingredient{
				{Name: "Garbanzos cocidos", Quantity: 80, Unit: "g", UnitCost: 0.036, TotalCost: 0.036},
				{Name: "Tomate", Quantity: 60, Unit: "g", UnitCost: 0.024, TotalCost: 0.024},
				{Name: "Pepino", Quantity: 50, Unit: "g", UnitCost: 0.0163, TotalCost: 0.0163},
				{Name: "Aceitunas", Quantity: 15, Unit: "g", UnitCost: 0.0128, TotalCost: 0.0128},
				{Name: "Queso feta", Quantity: 30, Unit: "g", UnitCost: 0.0428, TotalCost: 0.0428},
			},
		},
	}
}
