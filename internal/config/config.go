package config

import (
	"log"
	"os"
	"strconv"
)

// InsecureJWTSecret is the fallback signing secret used when JWT_SECRET is unset.
// Running with it is acceptable only in local development.
const InsecureJWTSecret = "insecure-dev-secret"

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort      string
	MySQLDSN        string
	RedisAddr       string
	RedisDB         int
	RedisPass       string
	JWTSecret       string
	TranslateAPIURL string
	TranslateAPIKey string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	cfg := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		MySQLDSN:        getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/lingorelay?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		RedisPass:       os.Getenv("REDIS_PASSWORD"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		TranslateAPIURL: getEnv("TRANSLATE_API_URL", "https://api.openai.com/v1/chat/completions"),
		TranslateAPIKey: os.Getenv("TRANSLATE_API_KEY"),
	}
	if cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is not set, falling back to an insecure built-in secret; do not run this in production")
		cfg.JWTSecret = InsecureJWTSecret
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
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
