package handlers

import (
	"fmt"
	"math"
	"net/http"

	"sanojuicio-api/config"
	"sanojuicio-api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartItemRequest struct {
	ProductID   string  `json:"product_id" binding:"required"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	Items         []CartItemRequest `json:"items" binding:"required"`
	CustomerName  string            `json:"customer_name" binding:"required"`
	CustomerEmail string            `json:"customer_email" binding:"required,email"`
	CustomerPhone string            `json:"customer_phone" binding:"required"`
	PickupTime    string            `json:"pickup_time" binding:"required"`
	Notes         string            `json:"notes"`
}

// CreateOrder creates a pending order from the caller's cart. Item names
// and prices are taken as sent and snapshotted; they are not cross-checked
// against the live catalog.
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var items []models.OrderItem
	for _, item := range req.Items {
		items = append(items, models.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
		})
	}

	order := models.Order{
		ID:            uuid.NewString(),
		Items:         items,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		PickupTime:    req.PickupTime,
		Notes:         req.Notes,
		Total:         orderTotal(req.Items),
		Status:        models.StatusPending,
	}
	if err := config.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// ListOrders returns all orders newest-first, optionally filtered by status
func ListOrders(c *gin.Context) {
	query := config.DB.Preload("Items")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []models.Order
	if err := query.Order("created_at desc").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrder returns a single order by id
func GetOrder(c *gin.Context) {
	var order models.Order
	if err := config.DB.Preload("Items").Where("id = ?", c.Param("id")).First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateOrderStatus overwrites an order's status. Any of the six recognized
// statuses is accepted in any sequence; there is no transition graph.
func UpdateOrderStatus(c *gin.Context) {
	status := models.OrderStatus(c.Query("status"))
	if !models.ValidOrderStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Invalid status. Must be one of: %v", models.OrderStatuses()),
		})
		return
	}

	result := config.DB.Model(&models.Order{}).Where("id = ?", c.Param("id")).Update("status", status)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Order status updated to %s", status)})
}

// orderTotal sums price × quantity over the cart and rounds to cents. The
// total is computed once at creation and never recomputed.
func orderTotal(items []CartItemRequest) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return round2(total)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
