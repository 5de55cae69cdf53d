package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"sanojuicio-api/config"
	"sanojuicio-api/models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTest gives each test its own in-memory database and a router with
// the real route table. The shared-cache DSN keeps gorm's pooled
// connections pointed at the same memory database.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.Ingredient{},
		&models.Order{},
		&models.OrderItem{},
		&models.PaymentTransaction{},
	))
	config.DB = db

	r := gin.New()
	api := r.Group("/api")
	api.GET("/products", ListProducts)
	api.GET("/products/:id", GetProduct)
	api.POST("/products", CreateProduct)
	api.PUT("/products/:id", UpdateProduct)
	api.DELETE("/products/:id", DeleteProduct)
	api.POST("/orders", CreateOrder)
	api.GET("/orders", ListOrders)
	api.GET("/orders/:id", GetOrder)
	api.PUT("/orders/:id/status", UpdateOrderStatus)
	api.POST("/checkout/stripe", CreateCheckout)
	api.GET("/checkout/status/:session_id", GetCheckoutStatus)
	api.POST("/webhook/stripe", HandleWebhook)
	api.POST("/admin/login", AdminLogin)
	api.GET("/admin/stats", AdminStats)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func mustCreate(t *testing.T, value interface{}) {
	t.Helper()
	require.NoError(t, config.DB.Create(value).Error)
}
