package routes

import (
	"net/http"

	"sanojuicio-api/handlers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"message": "En Tu Sano Juicio API",
				"version": "1.0.0",
			})
		})

		// Catalog
		api.GET("/products", handlers.ListProducts)
		api.GET("/products/:id", handlers.GetProduct)
		api.POST("/products", handlers.CreateProduct)
		api.PUT("/products/:id", handlers.UpdateProduct)
		api.DELETE("/products/:id", handlers.DeleteProduct)

		// Orders
		api.POST("/orders", handlers.CreateOrder)
		api.GET("/orders", handlers.ListOrders)
		api.GET("/orders/:id", handlers.GetOrder)
		api.PUT("/orders/:id/status", handlers.UpdateOrderStatus)

		// Payments
		api.POST("/checkout/stripe", handlers.CreateCheckout)
		api.GET("/checkout/status/:session_id", handlers.GetCheckoutStatus)
		api.POST("/webhook/stripe", handlers.HandleWebhook)

		// Admin
		api.POST("/admin/login", handlers.AdminLogin)
		api.GET("/admin/stats", handlers.AdminStats)
	}
}
