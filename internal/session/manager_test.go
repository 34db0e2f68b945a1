package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mvallone/concierge/internal/dialogue"
)

func TestManagerCreateGetEnd(t *testing.T) {
	m := NewManager(time.Minute)
	s := m.Create(dialogue.UserProfile{Name: "Dana", Age: 30})
	if s.ID == "" {
		t.Fatalf("session ID should not be empty")
	}

	got, err := m.Get(s.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.State.User.Name != "Dana" || got.Status != StatusActive {
		t.Fatalf("unexpected session state: %+v", got)
	}

	ended, err := m.End(s.ID)
	if err != nil {
		t.Fatalf("End() error = %v", err)
	}
	if ended.Status != StatusEnded {
		t.Fatalf("ended status = %q, want %q", ended.Status, StatusEnded)
	}

	if _, err := m.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get(missing) error = %v, want ErrNotFound", err)
	}
}

func TestManagerSerializesTurns(t *testing.T) {
	m := NewManager(time.Minute)
	s := m.Create(dialogue.UserProfile{Name: "Dana"})

	state, err := m.BeginTurn(s.ID)
	if err != nil {
		t.Fatalf("BeginTurn() error = %v", err)
	}

	if _, err := m.BeginTurn(s.ID); !errors.Is(err, ErrTurnInFlight) {
		t.Fatalf("second BeginTurn error = %v, want ErrTurnInFlight", err)
	}

	state.RequestCount = 2
	state.AwaitingContinue = true
	if err := m.FinishTurn(s.ID, state, false); err != nil {
		t.Fatalf("FinishTurn() error = %v", err)
	}

	got, err := m.Get(s.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.State.RequestCount != 2 || !got.State.AwaitingContinue {
		t.Fatalf("state not applied: %+v", got.State)
	}

	// Released: a new turn may begin.
	if _, err := m.BeginTurn(s.ID); err != nil {
		t.Fatalf("BeginTurn() after finish error = %v", err)
	}
}

func TestManagerAbandonTurnKeepsState(t *testing.T) {
	m := NewManager(time.Minute)
	s := m.Create(dialogue.UserProfile{Name: "Dana"})

	state, err := m.BeginTurn(s.ID)
	if err != nil {
		t.Fatalf("BeginTurn() error = %v", err)
	}
	state.RequestCount = 99
	m.AbandonTurn(s.ID)

	got, _ := m.Get(s.ID)
	if got.State.RequestCount != 0 {
		t.Fatalf("abandoned turn leaked state: %+v", got.State)
	}
	if _, err := m.BeginTurn(s.ID); err != nil {
		t.Fatalf("BeginTurn() after abandon error = %v", err)
	}
}

func TestManagerEndedSessionRefusesTurns(t *testing.T) {
	m := NewManager(time.Minute)
	s := m.Create(dialogue.UserProfile{Name: "Dana"})
	if _, err := m.End(s.ID); err != nil {
		t.Fatalf("End() error = %v", err)
	}

	if _, err := m.BeginTurn(s.ID); !errors.Is(err, ErrEnded) {
		t.Fatalf("BeginTurn() on ended session error = %v, want ErrEnded", err)
	}
}

func TestManagerFinishTurnCanEndSession(t *testing.T) {
	m := NewManager(time.Minute)
	s := m.Create(dialogue.UserProfile{Name: "Dana"})

	state, err := m.BeginTurn(s.ID)
	if err != nil {
		t.Fatalf("BeginTurn() error = %v", err)
	}
	if err := m.FinishTurn(s.ID, state, true); err != nil {
		t.Fatalf("FinishTurn() error = %v", err)
	}

	got, _ := m.Get(s.ID)
	if got.Status != StatusEnded {
		t.Fatalf("status = %q, want ended after terminal turn", got.Status)
	}
}

func TestManagerJanitorExpiresInactive(t *testing.T) {
	m := NewManager(30 * time.Millisecond)
	s := m.Create(dialogue.UserProfile{Name: "Dana"})

	expired := make(chan string, 1)
	m.SetExpireHook(func(s *Session) { expired <- s.ID })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m.StartJanitor(ctx, 10*time.Millisecond)

	select {
	case id := <-expired:
		if id != s.ID {
			t.Fatalf("expired id = %q, want %q", id, s.ID)
		}
	case <-time.After(time.Second):
		t.Fatalf("janitor did not expire the idle session")
	}

	got, err := m.Get(s.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Status != StatusEnded {
		t.Fatalf("Status = %q, want %q", got.Status, StatusEnded)
	}
}

func TestManagerJanitorSkipsInFlightTurns(t *testing.T) {
	m := NewManager(10 * time.Millisecond)
	s := m.Create(dialogue.UserProfile{Name: "Dana"})
	if _, err := m.BeginTurn(s.ID); err != nil {
		t.Fatalf("BeginTurn() error = %v", err)
	}

	time.Sleep(30 * time.Millisecond)
	m.expireInactive()

	got, _ := m.Get(s.ID)
	if got.Status != StatusActive {
		t.Fatalf("in-flight session was expired")
	}
}
