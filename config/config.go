package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	DatabaseURL       string // empty selects the in-memory store
	JWTSecret         string
	GeminiAPIKey      string // empty selects the canned-answer table
	GeminiModel       string
	UploadDir         string
	BenchmarkInterval time.Duration
}

func Load() Config {
	_ = godotenv.Load()
	cfg := Config{
		Port:              get("PORT", "8080"),
		DatabaseURL:       get("DATABASE_URL", ""),
		JWTSecret:         must("JWT_SECRET"),
		GeminiAPIKey:      get("GEMINI_API_KEY", ""),
		GeminiModel:       get("GEMINI_MODEL", "gemini-2.5-pro"),
		UploadDir:         get("UPLOAD_DIR", "uploads"),
		BenchmarkInterval: time.Duration(getInt("BENCHMARK_INTERVAL_SECONDS", 15)) * time.Second,
	}
	return cfg
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing required env: %s", k)
	}
	return v
}
