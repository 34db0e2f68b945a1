package session

import "time"

// CreateRequest defines the payload for bootstrapping a new session. Age
// travels as text so the server can reject non-numeric input with the
// same message the interactive flow uses.
type CreateRequest struct {
	Name    string `json:"name"`
	Age     string `json:"age"`
	Premium bool   `json:"premium"`
}

// CreateResponse returns created session metadata and the opening lines.
type CreateResponse struct {
	SessionID       string    `json:"session_id"`
	Name            string    `json:"name"`
	Premium         bool      `json:"premium"`
	Status          Status    `json:"status"`
	StartedAt       time.Time `json:"started_at"`
	QuotaRemaining  int       `json:"quota_remaining"`
	WelcomeLines    []string  `json:"welcome_lines"`
	InactivityTTLMS int64     `json:"inactivity_ttl_ms"`
}
