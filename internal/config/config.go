package config

import (
	"os"
	"strconv"
)

type Config struct {
	// Embedding endpoint (OpenAI-compatible)
	EmbeddingBaseURL    string
	EmbeddingAPIKey     string
	EmbeddingModel      string
	EmbeddingDimensions int

	// Retrieval depth before filtering
	TopK int

	// Serve-mode bearer token; empty disables auth
	APIKey string
}

func Load() Config {
	cfg := Config{
		EmbeddingBaseURL:    envOr("EMBEDDING_BASE_URL", "http://localhost:8000/v1"),
		EmbeddingAPIKey:     os.Getenv("EMBEDDING_API_KEY"),
		EmbeddingModel:      envOr("EMBEDDING_MODEL", "intfloat/e5-small-v2"),
		EmbeddingDimensions: envInt("EMBEDDING_DIMENSIONS", 0),

		TopK: envInt("TOP_K", 25),

		APIKey: os.Getenv("SECTIONRANK_API_KEY"),
	}

	if cfg.TopK <= 0 {
		cfg.TopK = 25
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
