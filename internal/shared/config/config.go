package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Port            string
	CORSAllowOrigin []string
	DatabaseURL     string
	Env             string
	GeminiAPIKey    string
	GeminiModel     string
}

// Load reads configuration from environment variables with sensible
// defaults. Local .env files are loaded best-effort for dev convenience.
func Load() Config {
	_ = godotenv.Load(".env", "cmd/.env")

	return Config{
		Port:            getEnv("PORT", "8080"),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		Env:             normalizeEnv(getEnv("ENV", "dev")),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
	}
}

// Validate fails fast on configuration the server cannot run without.
func (c Config) Validate() error {
	if strings.TrimSpace(c.GeminiAPIKey) == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	if c.Env == "production" && strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required in production")
	}
	return nil
}

// IsDevLike reports whether the environment tolerates degraded
// dependencies such as the in-memory store.
func (c Config) IsDevLike() bool {
	switch c.Env {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
