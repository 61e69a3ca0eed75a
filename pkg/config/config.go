package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	JWTSecret  string
	JWTExpiry  time.Duration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	SeedDemo   bool
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	expiry := 30 * 24 * time.Hour
	if exp := os.Getenv("JWT_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			expiry = parsed
		}
	}

	return &Config{
		Port:       getEnv("PORT", "8080"),
		JWTSecret:  getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTExpiry:  expiry,
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "blogapp"),
		SeedDemo:   getEnv("SEED_DEMO_DATA", "true") == "true",
	}
}

// DSN builds the postgres connection string for gorm.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
