// Package answer reaches the external answer-generation service used for
// General questions and free-form continue answers. Failures never
// propagate raw: Ask returns the user-facing fallback text alongside the
// error so callers can show it verbatim.
package answer

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Service produces an answer for a free-text question.
type Service interface {
	Ask(ctx context.Context, question string) (string, error)
}

// Fallback texts surfaced in place of an answer when the external call
// fails.
const (
	MsgNotConfigured = "Please set your GEMINI_API_KEY environment variable to use AI responses for general questions."
	MsgTimeout       = "Sorry, the request timed out. Please try again."
	MsgNetworkError  = "Sorry, there was a network error. Please check your connection."
	MsgServiceError  = "Sorry, there was an error connecting to the AI service."
	MsgEmptyAnswer   = "Sorry, I couldn't generate a response."
)

// Config controls service construction.
type Config struct {
	Mode    string // auto | gemini | mock
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// NewService builds the answer service for the configured mode. Auto picks
// gemini when a usable key is present and falls back to the mock.
func NewService(cfg Config) (Service, error) {
	mode := strings.ToLower(strings.TrimSpace(cfg.Mode))
	if mode == "" {
		mode = "auto"
	}

	switch mode {
	case "auto":
		if configured(cfg.APIKey) {
			return NewGeminiClient(cfg), nil
		}
		return NewMockService(), nil
	case "gemini":
		return NewGeminiClient(cfg), nil
	case "mock":
		return NewMockService(), nil
	default:
		return nil, fmt.Errorf("unsupported answer mode %q", cfg.Mode)
	}
}

// configured reports whether the key is set to something other than the
// documented placeholder.
func configured(key string) bool {
	k := strings.TrimSpace(key)
	return k != "" && k != "YOUR_GEMINI_API_KEY"
}
