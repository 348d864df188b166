package config

import (
	"os"
	"testing"
)

func TestGetEnvOrDefault(t *testing.T) {
	os.Setenv("NUNA_TEST_KEY", "value")
	defer os.Unsetenv("NUNA_TEST_KEY")

	if got := getEnvOrDefault("NUNA_TEST_KEY", "fallback"); got != "value" {
		t.Errorf("Expected 'value', got %q", got)
	}
	if got := getEnvOrDefault("NUNA_MISSING_KEY", "fallback"); got != "fallback" {
		t.Errorf("Expected 'fallback', got %q", got)
	}
}

func TestMustGetEnv_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for missing required variable")
		}
	}()
	mustGetEnv("NUNA_DEFINITELY_NOT_SET")
}

func TestLoad_AllRequiredPresent(t *testing.T) {
	required := map[string]string{
		"DATABASE_URL":       "postgres://localhost/nuna",
		"REDIS_URL":          "redis://localhost:6379",
		"JWT_SECRET":         "secret",
		"GEMINI_API_KEY":     "key",
		"LIVEKIT_API_KEY":    "lk-key",
		"LIVEKIT_API_SECRET": "lk-secret",
	}
	for k, v := range required {
		os.Setenv(k, v)
	}
	defer func() {
		for k := range required {
			os.Unsetenv(k)
		}
	}()

	cfg := Load()

	if cfg.DatabaseURL != required["DATABASE_URL"] {
		t.Errorf("Expected DatabaseURL %q, got %q", required["DATABASE_URL"], cfg.DatabaseURL)
	}
	if cfg.Port != "8080" && os.Getenv("PORT") == "" {
		t.Errorf("Expected default port 8080, got %q", cfg.Port)
	}
}
