package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	WebPort       string
	DatabaseURL   string
	JWTSecret     string
	JWTExpiry     time.Duration
	APIBaseURL    string
	SessionSecret string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	expiry := 24 * time.Hour
	if exp := os.Getenv("JWT_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			expiry = parsed
		}
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		WebPort:       getEnv("WEB_PORT", "3000"),
		DatabaseURL:   getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=lifegoals port=5432 sslmode=disable"),
		JWTSecret:     getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTExpiry:     expiry,
		APIBaseURL:    getEnv("API_BASE_URL", "http://localhost:8080"),
		SessionSecret: getEnv("SESSION_SECRET", "session-secret-change-in-production"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
