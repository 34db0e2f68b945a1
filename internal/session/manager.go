package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mvallone/concierge/internal/dialogue"
)

type Status string

const (
	StatusActive Status = "active"
	StatusEnded  Status = "ended"
)

var (
	ErrNotFound     = errors.New("session not found")
	ErrEnded        = errors.New("session already ended")
	ErrTurnInFlight = errors.New("a turn is already in flight for this session")
)

// Session wraps the dialogue state with service-level metadata.
type Session struct {
	ID             string           `json:"session_id"`
	State          dialogue.Session `json:"state"`
	Status         Status           `json:"status"`
	StartedAt      time.Time        `json:"started_at"`
	LastActivityAt time.Time        `json:"last_activity_at"`

	turnInFlight bool
}

// Manager is the in-process session registry. It serializes turns per
// session: BeginTurn hands out a state snapshot and refuses a second
// caller until FinishTurn or AbandonTurn, so a slow external answer can
// never interleave with a fast follow-up message.
type Manager struct {
	mu                sync.RWMutex
	sessions          map[string]*Session
	inactivityTimeout time.Duration
	onExpire          func(*Session)
}

func NewManager(inactivityTimeout time.Duration) *Manager {
	if inactivityTimeout <= 0 {
		inactivityTimeout = 10 * time.Minute
	}
	return &Manager{
		sessions:          make(map[string]*Session),
		inactivityTimeout: inactivityTimeout,
	}
}

func (m *Manager) SetExpireHook(hook func(*Session)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onExpire = hook
}

func (m *Manager) Create(user dialogue.UserProfile) *Session {
	now := time.Now().UTC()
	s := &Session{
		ID:             uuid.NewString(),
		State:          dialogue.NewSession(user),
		Status:         StatusActive,
		StartedAt:      now,
		LastActivityAt: now,
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return clone(s)
}

func (m *Manager) Get(sessionID string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(s), nil
}

// BeginTurn reserves the session for one turn and returns a snapshot of
// its dialogue state. Every BeginTurn must be paired with FinishTurn or
// AbandonTurn.
func (m *Manager) BeginTurn(sessionID string) (dialogue.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		return dialogue.Session{}, ErrNotFound
	}
	if s.Status != StatusActive {
		return dialogue.Session{}, ErrEnded
	}
	if s.turnInFlight {
		return dialogue.Session{}, ErrTurnInFlight
	}
	s.turnInFlight = true
	s.LastActivityAt = time.Now().UTC()
	return s.State, nil
}

// FinishTurn applies the state produced by the engine and releases the
// session. end marks the session ended in the same step (the "no"
// continue answer).
func (m *Manager) FinishTurn(sessionID string, state dialogue.Session, end bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		return ErrNotFound
	}
	s.State = state
	s.turnInFlight = false
	s.LastActivityAt = time.Now().UTC()
	if end {
		s.Status = StatusEnded
	}
	return nil
}

// AbandonTurn releases the reservation without applying any state, used
// when the caller disappears before the outcome lands.
func (m *Manager) AbandonTurn(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[sessionID]; ok {
		s.turnInFlight = false
	}
}

func (m *Manager) End(sessionID string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	s.Status = StatusEnded
	s.turnInFlight = false
	s.LastActivityAt = time.Now().UTC()
	return clone(s), nil
}

func (m *Manager) StartJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.expireInactive()
			}
		}
	}()
}

func (m *Manager) ActiveCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	count := 0
	for _, s := range m.sessions {
		if s.Status == StatusActive {
			count++
		}
	}
	return count
}

func (m *Manager) expireInactive() {
	now := time.Now().UTC()
	var expired []*Session

	m.mu.Lock()
	for _, s := range m.sessions {
		if s.Status != StatusActive || s.turnInFlight {
			continue
		}
		if now.Sub(s.LastActivityAt) < m.inactivityTimeout {
			continue
		}
		s.Status = StatusEnded
		s.LastActivityAt = now
		expired = append(expired, clone(s))
	}
	hook := m.onExpire
	m.mu.Unlock()

	if hook != nil {
		for _, s := range expired {
			hook(s)
		}
	}
}

func clone(s *Session) *Session {
	c := *s
	return &c
}
