package auth

import (
	"time"

	"sanojuicio-api/config"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// CheckCredentials compares a login attempt against the configured admin
// credentials. The password comparison goes through bcrypt.
func CheckCredentials(username, password string) bool {
	if username != config.AdminUsername {
		return false
	}
	return bcrypt.CompareHashAndPassword(config.AdminPasswordHash, []byte(password)) == nil
}

// GenerateToken creates a signed admin JWT valid for 24 hours.
func GenerateToken(username string) (string, error) {
	claims := Claims{
		Username: username,
		Role:     "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}
