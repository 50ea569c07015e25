package config

import (
	"fmt"
	"os"

	"foodee-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config holds everything the process reads from the environment.
type Config struct {
	Port            string
	DBPath          string
	JWTSecret       string
	StripeSecretKey string
}

// Load reads configuration from a .env file (if present) and the environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:            getEnv("PORT", "5000"),
		DBPath:          getEnv("DB_PATH", "foodee.db"),
		JWTSecret:       getEnv("ACCESS_TOKEN_SECRET", "foodee_super_secret_2024"),
		StripeSecretKey: os.Getenv("PAYMENT_SECRET_KEY"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// OpenDB opens the SQLite database and migrates all collections.
// The caller owns the connection and must close it on shutdown.
func OpenDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.Review{},
		&models.CartItem{},
		&models.Payment{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}
