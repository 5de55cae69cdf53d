package handlers

import (
	"net/http"

	"sanojuicio-api/auth"
	"sanojuicio-api/config"
	"sanojuicio-api/models"

	"github.com/gin-gonic/gin"
)

type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminLogin checks the configured admin credentials and returns a signed
// token on success.
func AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !auth.CheckCredentials(req.Username, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := auth.GenerateToken(req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   token,
	})
}

// AdminStats recomputes the dashboard rollup from the live store on every
// call: product/order counts plus revenue over paid and completed orders.
func AdminStats(c *gin.Context) {
	var totalProducts, totalOrders, pendingOrders, paidOrders int64
	config.DB.Model(&models.Product{}).Count(&totalProducts)
	config.DB.Model(&models.Order{}).Count(&totalOrders)
	config.DB.Model(&models.Order{}).Where("status = ?", models.StatusPending).Count(&pendingOrders)
	config.DB.Model(&models.Order{}).Where("status = ?", models.StatusPaid).Count(&paidOrders)

	var revenueOrders []models.Order
	config.DB.Select("total").
		Where("status IN ?", []models.OrderStatus{models.StatusPaid, models.StatusCompleted}).
		Find(&revenueOrders)
	var totalRevenue float64
	for _, o := range revenueOrders {
		totalRevenue += o.Total
	}

	c.JSON(http.StatusOK, gin.H{
		"total_products": totalProducts,
		"total_orders":   totalOrders,
		"pending_orders": pendingOrders,
		"paid_orders":    paidOrders,
		"total_revenue":  round2(totalRevenue),
	})
}
