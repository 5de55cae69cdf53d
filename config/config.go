package config

import (
	"log"
	"os"

	"sanojuicio-api/models"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret signs admin tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "sano_juicio_super_secret_2024"))

// Stripe credentials. The test key fallback keeps local development working
// without a .env file.
var (
	StripeAPIKey        = getEnv("STRIPE_API_KEY", "sk_test_emergent")
	StripeWebhookSecret = getEnv("STRIPE_WEBHOOK_SECRET", "")
)

// Admin credentials come from the environment rather than source constants.
// The password is hashed once at startup and only the hash is kept around.
var (
	AdminUsername     = getEnv("ADMIN_USERNAME", "Admin")
	AdminPasswordHash []byte
)

func init() {
	hash, err := bcrypt.GenerateFromPassword([]byte(getEnv("ADMIN_PASSWORD", "Admin")), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash admin password:", err)
	}
	AdminPasswordHash = hash
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	path := getEnv("DB_PATH", "sano_juicio.db")
	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.Product{},
		&models.Ingredient{},
		&models.Order{},
		&models.OrderItem{},
		&models.PaymentTransaction{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("✅ Database connected and migrated successfully")
}
