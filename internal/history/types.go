package history

import (
	"context"
	"time"
)

// TurnRecord stores one user or assistant line of a session transcript.
type TurnRecord struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Intent    string    `json:"intent,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Store persists and retrieves session transcripts. The dialogue core
// never depends on durability: the default backend is in-memory and the
// transcript is traceability, not state.
type Store interface {
	SaveTurn(ctx context.Context, record TurnRecord) error
	Transcript(ctx context.Context, sessionID string, limit int) ([]TurnRecord, error)
	Close() error
}
