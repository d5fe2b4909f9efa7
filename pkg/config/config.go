package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DatabaseURL   string
	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int

	// Gemini relay endpoint. The upstream credential lives behind the relay;
	// this service never embeds it.
	RelayURL    string
	RelayAPIKey string
	GeminiModel string

	// Public base URL used in email verification links.
	AppBaseURL string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:     getEnv("JWT_ISSUER", "hiremind"),
		JWTTTLMinutes: getEnvInt("JWT_TTL_MINUTES", 60),
		RelayURL:      os.Getenv("GEMINI_RELAY_URL"),
		RelayAPIKey:   os.Getenv("GEMINI_RELAY_API_KEY"),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		AppBaseURL:    getEnv("APP_BASE_URL", "http://localhost:8080"),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
