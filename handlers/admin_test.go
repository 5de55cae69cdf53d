package handlers

import (
	"net/http"
	"testing"

	"sanojuicio-api/auth"
	"sanojuicio-api/config"
	"sanojuicio-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminLogin(t *testing.T) {
	r := setupTest(t)

	w := doJSON(t, r, http.MethodPost, "/api/admin/login", gin.H{
		"username": "Admin",
		"password": "Admin",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Token   string `json:"token"`
	}
	decodeBody(t, w, &resp)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Token)

	// Token must be a valid admin JWT under the configured secret
	claims := &auth.Claims{}
	token, err := jwt.ParseWithClaims(resp.Token, claims, func(t *jwt.Token) (interface{}, error) {
		return config.JWTSecret, nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, "admin", claims.Role)
}

func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	r := setupTest(t)

	w := doJSON(t, r, http.MethodPost, "/api/admin/login", gin.H{
		"username": "Admin",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/admin/login", gin.H{
		"username": "root",
		"password": "Admin",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminStats(t *testing.T) {
	r := setupTest(t)

	mustCreate(t, &models.Product{ID: "p1", Name: "Bowl", Category: models.CategoryBowls, Price: 10, IsAvailable: true})
	mustCreate(t, &models.Order{ID: "o1", CustomerName: "Ana", CustomerEmail: "a@b.c", Total: 20.00, Status: models.StatusPaid})
	mustCreate(t, &models.Order{ID: "o2", CustomerName: "Bea", CustomerEmail: "b@b.c", Total: 15.00, Status: models.StatusPending})

	w := doJSON(t, r, http.MethodGet, "/api/admin/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats map[string]interface{}
	decodeBody(t, w, &stats)
	assert.Equal(t, float64(1), stats["total_products"])
	assert.Equal(t, float64(2), stats["total_orders"])
	assert.Equal(t, float64(1), stats["pending_orders"])
	assert.Equal(t, float64(1), stats["paid_orders"])
	assert.Equal(t, 20.00, stats["total_revenue"], "pending orders contribute no revenue")
}

func TestAdminStatsCountsCompletedRevenue(t *testing.T) {
	r := setupTest(t)

	mustCreate(t, &models.Order{ID: "o1", CustomerName: "Ana", CustomerEmail: "a@b.c", Total: 12.50, Status: models.StatusPaid})
	mustCreate(t, &models.Order{ID: "o2", CustomerName: "Bea", CustomerEmail: "b@b.c", Total: 7.25, Status: models.StatusCompleted})
	mustCreate(t, &models.Order{ID: "o3", CustomerName: "Cai", CustomerEmail: "c@b.c", Total: 99.00, Status: models.StatusCancelled})

	w := doJSON(t, r, http.MethodGet, "/api/admin/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats map[string]interface{}
	decodeBody(t, w, &stats)
	assert.Equal(t, 19.75, stats["total_revenue"])
}
