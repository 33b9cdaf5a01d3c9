package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBUrl       string
	FrontendURL string
	// Session Configuration
	JWTSecret         string
	SessionMaxAgeDays int
	// AI Provider Configuration (OpenAI-compatible endpoint)
	AIAPIKey  string
	AIAPIBase string
	AIModel   string
	// Redis Configuration (login rate limiting)
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds  int
	RateLimitLoginThreshold int
}

func LoadConfig() (*Config, error) {
	// .env is only present in local development, ignored elsewhere
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DBUrl:       getEnv("DATABASE_URL", ""),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		// Session Configuration
		JWTSecret:         getEnv("JWT_SECRET", ""),
		SessionMaxAgeDays: getEnvInt("SESSION_MAX_AGE_DAYS", 7),
		// AI Provider Configuration
		AIAPIKey:  getEnv("AI_API_KEY", ""),
		AIAPIBase: getEnv("AI_API_BASE", "https://api.openai.com/v1"),
		AIModel:   getEnv("AI_SUMMARY_MODEL_NAME", "gpt-3.5-turbo"),
		// Redis Configuration
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:  getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitLoginThreshold: getEnvInt("RATE_LIMIT_LOGIN_THRESHOLD", 10),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is missing. Login sessions cannot be issued.")
	}
	if cfg.AIAPIKey == "" {
		log.Println("WARNING: AI_API_KEY not configured. AI summaries will be unavailable.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
