package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	setCoreEnvEmpty(t)
	t.Setenv("APP_BIND_ADDR", ":9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.BindAddr != ":9090" {
		t.Fatalf("BindAddr = %q, want %q", cfg.BindAddr, ":9090")
	}
	if cfg.AnswerMode != "auto" {
		t.Fatalf("AnswerMode = %q, want %q", cfg.AnswerMode, "auto")
	}
	if cfg.AnswerTimeout != 30*time.Second {
		t.Fatalf("AnswerTimeout = %v, want 30s", cfg.AnswerTimeout)
	}
	if cfg.GeminiAPIKey != "" {
		t.Fatalf("GeminiAPIKey = %q, want empty default", cfg.GeminiAPIKey)
	}
	if cfg.HistoryURL != "" {
		t.Fatalf("HistoryURL = %q, want empty default", cfg.HistoryURL)
	}
}

func TestLoadExplicitValues(t *testing.T) {
	setCoreEnvEmpty(t)
	t.Setenv("ANSWER_MODE", "mock")
	t.Setenv("ANSWER_TIMEOUT", "5s")
	t.Setenv("HISTORY_URL", "postgres://localhost/concierge")
	t.Setenv("APP_ALLOW_ANY_ORIGIN", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.AnswerMode != "mock" {
		t.Fatalf("AnswerMode = %q, want mock", cfg.AnswerMode)
	}
	if cfg.AnswerTimeout != 5*time.Second {
		t.Fatalf("AnswerTimeout = %v, want 5s", cfg.AnswerTimeout)
	}
	if cfg.HistoryURL != "postgres://localhost/concierge" {
		t.Fatalf("HistoryURL = %q, want explicit value", cfg.HistoryURL)
	}
	if !cfg.AllowAnyOrigin {
		t.Fatalf("AllowAnyOrigin = false, want true")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	setCoreEnvEmpty(t)
	t.Setenv("ANSWER_MODE", "carrier-pigeon")
	if _, err := Load(); err == nil {
		t.Fatalf("Load() should reject unknown answer mode")
	}

	setCoreEnvEmpty(t)
	t.Setenv("APP_SESSION_INACTIVITY_TIMEOUT", "1s")
	if _, err := Load(); err == nil {
		t.Fatalf("Load() should reject sub-5s inactivity timeout")
	}

	setCoreEnvEmpty(t)
	t.Setenv("ANSWER_TIMEOUT", "bogus")
	if _, err := Load(); err == nil {
		t.Fatalf("Load() should reject unparseable duration")
	}

	setCoreEnvEmpty(t)
	t.Setenv("APP_ALLOW_ANY_ORIGIN", "perhaps")
	if _, err := Load(); err == nil {
		t.Fatalf("Load() should reject unparseable bool")
	}
}

func setCoreEnvEmpty(t *testing.T) {
	t.Helper()
	keys := []string{
		"APP_BIND_ADDR",
		"APP_SHUTDOWN_TIMEOUT",
		"APP_SESSION_INACTIVITY_TIMEOUT",
		"APP_METRICS_NAMESPACE",
		"APP_ALLOW_ANY_ORIGIN",
		"ANSWER_MODE",
		"ANSWER_TIMEOUT",
		"ANSWER_BASE_URL",
		"GEMINI_API_KEY",
		"HISTORY_URL",
	}
	for _, key := range keys {
		t.Setenv(key, "")
	}
}
