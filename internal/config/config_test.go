package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "DEBUG", "MAX_BATCH_SIZE", "SUB_BATCH_SIZE", "MAX_TOKEN_LENGTH",
		"MODEL_BACKEND", "MODEL_NAME", "HASH_DIMENSIONS", "GCP_PROJECT_ID",
		"GCP_LOCATION", "GOOGLE_APPLICATION_CREDENTIALS", "READ_TIMEOUT_SEC", "WRITE_TIMEOUT_SEC",
		"BODY_LIMIT_MB",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.Debug {
		t.Error("Debug = true, want false")
	}
	if cfg.MaxBatchSize != 32 {
		t.Errorf("MaxBatchSize = %d, want 32", cfg.MaxBatchSize)
	}
	if cfg.SubBatchSize != 8 {
		t.Errorf("SubBatchSize = %d, want 8", cfg.SubBatchSize)
	}
	if cfg.MaxTokenLength != 512 {
		t.Errorf("MaxTokenLength = %d, want 512", cfg.MaxTokenLength)
	}
	if cfg.ModelBackend != "ollama" {
		t.Errorf("ModelBackend = %q, want ollama", cfg.ModelBackend)
	}
	if cfg.HashDimensions != 1024 {
		t.Errorf("HashDimensions = %d, want 1024", cfg.HashDimensions)
	}
	if cfg.Location != "us-central1" {
		t.Errorf("Location = %q, want us-central1", cfg.Location)
	}
	if cfg.ReadTimeout != 0 || cfg.WriteTimeout != 0 {
		t.Errorf("timeouts = %v/%v, want none", cfg.ReadTimeout, cfg.WriteTimeout)
	}
	if cfg.BodyLimitMB != 0 {
		t.Errorf("BodyLimitMB = %d, want 0 (uncapped)", cfg.BodyLimitMB)
	}
}

func TestLoad_ZeroMaxBatchSize(t *testing.T) {
	// Zero is honoured: every non-empty batch is then rejected.
	t.Setenv("MAX_BATCH_SIZE", "0")
	if cfg := Load(); cfg.MaxBatchSize != 0 {
		t.Errorf("MaxBatchSize = %d, want 0", cfg.MaxBatchSize)
	}

	t.Setenv("MAX_BATCH_SIZE", "-1")
	if cfg := Load(); cfg.MaxBatchSize != 32 {
		t.Errorf("MaxBatchSize = %d, want default 32 for a negative value", cfg.MaxBatchSize)
	}
}

func TestLoad_BodyLimit(t *testing.T) {
	t.Setenv("BODY_LIMIT_MB", "16")
	if cfg := Load(); cfg.BodyLimitMB != 16 {
		t.Errorf("BodyLimitMB = %d, want 16", cfg.BodyLimitMB)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DEBUG", "TRUE")
	t.Setenv("MAX_BATCH_SIZE", "64")
	t.Setenv("MODEL_BACKEND", "Hash")
	t.Setenv("READ_TIMEOUT_SEC", "5")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if !cfg.Debug {
		t.Error("Debug = false, want true")
	}
	if cfg.MaxBatchSize != 64 {
		t.Errorf("MaxBatchSize = %d, want 64", cfg.MaxBatchSize)
	}
	if cfg.ModelBackend != "hash" {
		t.Errorf("ModelBackend = %q, want hash", cfg.ModelBackend)
	}
	if cfg.ReadTimeout != 5*time.Second {
		t.Errorf("ReadTimeout = %v, want 5s", cfg.ReadTimeout)
	}
}

func TestGetInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{name: "unset", value: "", want: 32},
		{name: "valid", value: "10", want: 10},
		{name: "padded", value: " 12 ", want: 12},
		{name: "not a number", value: "lots", want: 32},
		{name: "zero", value: "0", want: 32},
		{name: "negative", value: "-4", want: 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("MAX_BATCH_SIZE", tt.value)
			if got := getInt("MAX_BATCH_SIZE", 32); got != tt.want {
				t.Errorf("getInt() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGetBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"true", true},
		{"True", true},
		{"1", false},
		{"yes", false},
		{"false", false},
	}

	for _, tt := range tests {
		t.Setenv("DEBUG", tt.value)
		if got := getBool("DEBUG", false); got != tt.want {
			t.Errorf("getBool(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
