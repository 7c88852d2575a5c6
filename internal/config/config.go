// Package config centralises all environment configuration for the embedding
// server. It should be imported only by `cmd/server` (and test code). The
// service and handler layers receive already-resolved values.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
)

// Config holds every runtime option the server needs.
// Keep it flat: primitive types, no nested structs.
type Config struct {
	// Network
	Port  string
	Debug bool

	// Request limits
	MaxBatchSize   int
	SubBatchSize   int
	MaxTokenLength int

	// Model
	ModelBackend   string
	ModelName      string
	HashDimensions int

	// Google Cloud (vertex / gemini backends)
	ProjectID       string
	Location        string
	CredentialsFile string

	// Server tuning; zero disables the timeout.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// BodyLimitMB caps request bodies; zero leaves them uncapped.
	BodyLimitMB int
}

// Load parses the environment (and an optional .env file) into Config.
func Load() Config {
	// godotenv.Load() is a no-op if .env does not exist.
	_ = godotenv.Load()

	return Config{
		Port:            getEnv("PORT", "8080"),
		Debug:           getBool("DEBUG", false),
		MaxBatchSize:    getIntAtLeast("MAX_BATCH_SIZE", 32, 0),
		SubBatchSize:    getInt("SUB_BATCH_SIZE", 8),
		MaxTokenLength:  getInt("MAX_TOKEN_LENGTH", 512),
		ModelBackend:    strings.ToLower(getEnv("MODEL_BACKEND", "ollama")),
		ModelName:       getEnv("MODEL_NAME", ""),
		HashDimensions:  getInt("HASH_DIMENSIONS", 1024),
		ProjectID:       getEnv("GCP_PROJECT_ID", ""),
		Location:        getEnv("GCP_LOCATION", "us-central1"),
		CredentialsFile: getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		ReadTimeout:     getDuration("READ_TIMEOUT_SEC", 0),
		WriteTimeout:    getDuration("WRITE_TIMEOUT_SEC", 0),
		BodyLimitMB:     getIntAtLeast("BODY_LIMIT_MB", 0, 0),
	}
}

// getEnv returns env[key] if set, otherwise defaultVal.
func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getBool is true only for a case-insensitive "true".
func getBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	return strings.EqualFold(strings.TrimSpace(v), "true")
}

// getInt reads a positive integer from env, falling back to defaultVal.
func getInt(key string, defaultVal int) int {
	return getIntAtLeast(key, defaultVal, 1)
}

// getIntAtLeast reads an integer >= minVal from env, falling back to defaultVal.
func getIntAtLeast(key string, defaultVal, minVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n >= minVal {
			return n
		}
		log.Warnf("invalid %s=%q; using default %d", key, v, defaultVal)
	}
	return defaultVal
}

// getDuration reads an integer (seconds) from env, falling back to defaultSec.
func getDuration(key string, defaultSec int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if sec, err := strconv.Atoi(v); err == nil && sec >= 0 {
			return time.Duration(sec) * time.Second
		}
		log.Warnf("invalid %s=%q; using default %ds", key, v, defaultSec)
	}
	return time.Duration(defaultSec) * time.Second
}
