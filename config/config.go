package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	Port             string
	GinMode          string
	AllowedOrigins   string
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	RedisAddr        string
	RedisPassword    string
	JWTSecret        string
	DefaultPassword  string
)

// LoadConfig loads the configuration from the .env file and the environment
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	Port = getEnv("PORT", "8080")
	GinMode = getEnv("GIN_MODE", "debug")
	AllowedOrigins = getEnv("ALLOWED_ORIGINS", "*")

	PostgresHost = getEnv("POSTGRES_HOST", "localhost")
	PostgresPort = getEnv("POSTGRES_PORT", "5432")
	PostgresUser = getEnv("POSTGRES_USER", "postgres")
	PostgresPassword = getEnv("POSTGRES_PASSWORD", "postgres")
	PostgresDB = getEnv("POSTGRES_DB", "cubehub")

	// Leaderboard caching is disabled when REDIS_ADDR is empty
	RedisAddr = getEnv("REDIS_ADDR", "")
	RedisPassword = getEnv("REDIS_PASSWORD", "")

	JWTSecret = getEnv("JWT_SECRET", "")
	DefaultPassword = getEnv("DEFAULT_PASSWORD", "")

	if JWTSecret == "" {
		log.Println("Warning: JWT_SECRET is not set, tokens from the identity provider cannot be verified")
	}
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
