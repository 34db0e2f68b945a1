package answer

import (
	"context"
	"fmt"
	"strings"
)

// MockService provides deterministic local replies when no Gemini key is
// configured. Useful for development and for the websocket chat demo.
type MockService struct{}

func NewMockService() *MockService { return &MockService{} }

func (m *MockService) Ask(ctx context.Context, question string) (string, error) {
	select {
	case <-ctx.Done():
		return MsgTimeout, ctx.Err()
	default:
	}

	q := strings.TrimSpace(question)
	if q == "" {
		return "I'm listening, ask me anything.", nil
	}
	return fmt.Sprintf("Here's my take on %q: I don't have a live answer service configured, but I'm happy to keep chatting.", q), nil
}
