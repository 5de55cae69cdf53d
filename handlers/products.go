package handlers

import (
	"net/http"

	"sanojuicio-api/catalog"
	"sanojuicio-api/config"
	"sanojuicio-api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListProducts returns the menu, optionally filtered by category. Only
// available products are returned unless available_only=false is passed.
func ListProducts(c *gin.Context) {
	query := config.DB.Preload("Ingredients")

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if c.DefaultQuery("available_only", "true") != "false" {
		query = query.Where("is_available = ?", true)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct returns a single product by id
func GetProduct(c *gin.Context) {
	var product models.Product
	if err := config.DB.Preload("Ingredients").Where("id = ?", c.Param("id")).First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

type CreateProductRequest struct {
	Name        string              `json:"name" binding:"required"`
	Description string              `json:"description"`
	Category    string              `json:"category" binding:"required"`
	Price       float64             `json:"price" binding:"required,gt=0"`
	ImageURL    string              `json:"image_url"`
	Ingredients []models.Ingredient `json:"ingredients"`
	FoodCost    float64             `json:"food_cost"`
	IsAvailable *bool               `json:"is_available"`
}

// CreateProduct adds a new menu item (admin surface)
func CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	product := models.Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Ingredients: req.Ingredients,
		FoodCost:    req.FoodCost,
		TaxRate:     0.10,
		IsAvailable: available,
	}
	if err := config.DB.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

type UpdateProductRequest struct {
	Name        *string              `json:"name"`
	Description *string              `json:"description"`
	Category    *string              `json:"category"`
	Price       *float64             `json:"price"`
	ImageURL    *string              `json:"image_url"`
	Ingredients *[]models.Ingredient `json:"ingredients"`
	FoodCost    *float64             `json:"food_cost"`
	IsAvailable *bool                `json:"is_available"`
}

// UpdateProduct applies a partial update; only fields present in the body
// change. A provided ingredient list replaces the stored one wholesale.
func UpdateProduct(c *gin.Context) {
	id := c.Param("id")

	var product models.Product
	if err := config.DB.Where("id = ?", id).First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := map[string]interface{}{}
	if req.Name != nil {
		update["name"] = *req.Name
	}
	if req.Description != nil {
		update["description"] = *req.Description
	}
	if req.Category != nil {
		update["category"] = *req.Category
	}
	if req.Price != nil {
		update["price"] = *req.Price
	}
	if req.ImageURL != nil {
		update["image_url"] = *req.ImageURL
	}
	if req.FoodCost != nil {
		update["food_cost"] = *req.FoodCost
	}
	if req.IsAvailable != nil {
		update["is_available"] = *req.IsAvailable
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if len(update) > 0 {
			if err := tx.Model(&product).Updates(update).Error; err != nil {
				return err
			}
		}
		if req.Ingredients != nil {
			if err := tx.Where("product_id = ?", id).Delete(&models.Ingredient{}).Error; err != nil {
				return err
			}
			for i := range *req.Ingredients {
				(*req.Ingredients)[i].ProductID = id
			}
			if len(*req.Ingredients) > 0 {
				if err := tx.Create(req.Ingredients).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	var updated models.Product
	config.DB.Preload("Ingredients").Where("id = ?", id).First(&updated)
	c.JSON(http.StatusOK, updated)
}

// DeleteProduct removes a product. Base-menu products can never be deleted,
// only marked unavailable.
func DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	if catalog.IsSeededID(id) {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Base menu products cannot be deleted. You can only deactivate them.",
		})
		return
	}

	result := config.DB.Where("id = ?", id).Delete(&models.Product{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
