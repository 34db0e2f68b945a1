package history

import (
	"context"
	"strings"
)

// NewStore picks a transcript backend from the HISTORY_URL shape:
// postgres URLs get pgx, sqlite URLs or bare file paths get SQLite, and an
// empty value means in-memory.
func NewStore(ctx context.Context, historyURL string) (Store, error) {
	u := strings.TrimSpace(historyURL)
	switch {
	case u == "":
		return NewInMemoryStore(), nil
	case strings.HasPrefix(u, "postgres://"), strings.HasPrefix(u, "postgresql://"):
		return NewPostgresStore(ctx, u)
	case strings.HasPrefix(u, "sqlite://"):
		return NewSQLiteStore(strings.TrimPrefix(u, "sqlite://"))
	default:
		return NewSQLiteStore(u)
	}
}
