package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"sanojuicio-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderTotal(t *testing.T) {
	tests := []struct {
		name  string
		items []CartItemRequest
		want  float64
	}{
		{"empty cart", nil, 0},
		{"single item", []CartItemRequest{{Price: 13.00, Quantity: 1}}, 13.00},
		{"two lines", []CartItemRequest{
			{Price: 13.00, Quantity: 1},
			{Price: 9.00, Quantity: 2},
		}, 31.00},
		{"fractional prices round to cents", []CartItemRequest{
			{Price: 0.335, Quantity: 2},
			{Price: 19.99, Quantity: 3},
		}, 60.64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, orderTotal(tt.items))
		})
	}
}

func TestCreateOrder(t *testing.T) {
	r := setupTest(t)

	w := doJSON(t, r, http.MethodPost, "/api/orders", gin.H{
		"items": []gin.H{
			{"product_id": "p1", "product_name": "Bowl de Quinoa", "price": 13.00, "quantity": 1},
			{"product_id": "p2", "product_name": "Ensalada", "price": 9.00, "quantity": 2},
		},
		"customer_name":  "Ana",
		"customer_email": "ana@example.com",
		"customer_phone": "600123123",
		"pickup_time":    "13:30",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var order models.Order
	decodeBody(t, w, &order)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, 31.00, order.Total)
	assert.Equal(t, models.StatusPending, order.Status)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Bowl de Quinoa", order.Items[0].ProductName)
}

func TestCreateOrderValidation(t *testing.T) {
	r := setupTest(t)

	w := doJSON(t, r, http.MethodPost, "/api/orders", gin.H{
		"items":          []gin.H{{"product_id": "p1", "price": 5.0, "quantity": 1}},
		"customer_email": "ana@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, "missing required customer fields")
}

func TestListOrders(t *testing.T) {
	r := setupTest(t)

	base := time.Now().UTC()
	for i := 0; i < 3; i++ {
		status := models.StatusPending
		if i == 1 {
			status = models.StatusPaid
		}
		mustCreate(t, &models.Order{
			ID:            fmt.Sprintf("o%d", i),
			CustomerName:  "Ana",
			CustomerEmail: "ana@example.com",
			Total:         10,
			Status:        status,
			CreatedAt:     base.Add(time.Duration(i) * time.Minute),
		})
	}

	var orders []models.Order
	w := doJSON(t, r, http.MethodGet, "/api/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &orders)
	require.Len(t, orders, 3)
	assert.Equal(t, "o2", orders[0].ID, "newest order first")
	assert.Equal(t, "o0", orders[2].ID)

	w = doJSON(t, r, http.MethodGet, "/api/orders?status=paid", nil)
	decodeBody(t, w, &orders)
	require.Len(t, orders, 1)
	assert.Equal(t, "o1", orders[0].ID)
}

func TestGetOrder(t *testing.T) {
	r := setupTest(t)
	mustCreate(t, &models.Order{ID: "o1", CustomerName: "Ana", CustomerEmail: "a@b.c", Total: 10, Status: models.StatusPending})

	w := doJSON(t, r, http.MethodGet, "/api/orders/o1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/orders/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateOrderStatus(t *testing.T) {
	r := setupTest(t)
	mustCreate(t, &models.Order{ID: "o1", CustomerName: "Ana", CustomerEmail: "a@b.c", Total: 10, Status: models.StatusPending})

	// Every recognized status is accepted, in any sequence
	for _, status := range models.OrderStatuses() {
		w := doJSON(t, r, http.MethodPut, "/api/orders/o1/status?status="+string(status), nil)
		assert.Equal(t, http.StatusOK, w.Code, "status %s", status)
	}

	w := doJSON(t, r, http.MethodPut, "/api/orders/o1/status?status=shipped", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/orders/nope/status?status=paid", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
