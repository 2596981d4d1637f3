package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config application configuration
type Config struct {
	Port              int
	MongoURI          string
	MongoDB           string
	JWTKey            string
	InitialAdminEmail string
	Debug             bool
}

// LoadConfig loads configuration from the environment, reading a local .env
// file first when present.
func LoadConfig() *Config {
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getEnv("PORT", "8080"))

	// Emails are compared lowercased everywhere, so the configured bootstrap
	// address is normalized the same way.
	return &Config{
		Port:              port,
		MongoURI:          getEnv("MONGO_URI", "mongodb://127.0.0.1:27017"),
		MongoDB:           getEnv("MONGO_DB", "imobcrm"),
		JWTKey:            getEnv("JWT_KEY", "your-secret-key"),
		InitialAdminEmail: strings.ToLower(strings.TrimSpace(getEnv("INITIAL_ADMIN_EMAIL", "admin@imobcrm.com.br"))),
		Debug:             getEnv("GIN_MODE", "debug") == "debug",
	}
}

// getEnv returns the environment variable or a default when unset
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
