package dialogue

import (
	"context"
	"time"

	"github.com/mvallone/concierge/internal/intent"
)

// UserProfile identifies who the session belongs to. Premium users are not
// subject to the free request quota.
type UserProfile struct {
	Name        string            `json:"name"`
	Age         int               `json:"age"`
	Premium     bool              `json:"premium"`
	Preferences map[string]string `json:"preferences,omitempty"`
}

// Session is the complete dialogue state for one user. It is passed by
// value through every state-machine operation: callers apply the returned
// Session, so a failed or abandoned turn leaves the previous state intact.
type Session struct {
	User             UserProfile `json:"user"`
	RequestCount     int         `json:"request_count"`
	AwaitingFollowUp bool        `json:"awaiting_follow_up"`
	FollowUpAttempts int         `json:"follow_up_attempts"`
	AwaitingContinue bool        `json:"awaiting_continue"`
}

// TurnRequest is the immutable record built once classification completes,
// consumed exactly once by dispatch.
type TurnRequest struct {
	Raw       string        `json:"raw"`
	Timestamp time.Time     `json:"timestamp"`
	Intent    intent.Intent `json:"intent"`
}

// TurnResult is what a domain handler or the answer service produced for
// one turn.
type TurnResult struct {
	Greeting string `json:"greeting,omitempty"`
	Body     string `json:"body"`
	Success  bool   `json:"success"`
}

// OutcomeKind discriminates the result of one top-level turn.
type OutcomeKind string

const (
	FollowUpPrompted OutcomeKind = "follow_up_prompted"
	QuotaBlocked     OutcomeKind = "quota_blocked"
	Answered         OutcomeKind = "answered"
)

// Outcome is the result of Engine.HandleTurn. Intent is set once
// classification (or the follow-up) resolved, for logging and metrics.
type Outcome struct {
	Kind     OutcomeKind   `json:"kind"`
	Intent   intent.Intent `json:"intent,omitempty"`
	Greeting string        `json:"greeting,omitempty"`
	Body     string        `json:"body,omitempty"`
	Success  bool          `json:"success"`
}

// ContinueKind discriminates the result of the continue/stop sub-dialogue.
type ContinueKind string

const (
	Ended       ContinueKind = "ended"
	ResumedMenu ContinueKind = "resumed_menu"
	FreeAnswer  ContinueKind = "free_answer"
)

// ContinueOutcome is the result of Engine.HandleContinueAnswer.
type ContinueOutcome struct {
	Kind ContinueKind `json:"kind"`
	Body string       `json:"body,omitempty"`
}

// Presenter is the capability the engine and handlers use to talk to the
// user. Implementations buffer lines into an HTTP response, push websocket
// frames, or read stdin; the core never touches the interface directly.
type Presenter interface {
	Present(text string)
	PromptAndWait(prompt string) string
}

// Handler answers turns for one resolved intent.
type Handler interface {
	Greet(s Session) string
	Respond(ctx context.Context, req TurnRequest) (TurnResult, error)
}

// Answerer is the external answer service used for General questions and
// free-form continue answers. On failure it returns the user-facing
// fallback text alongside the error.
type Answerer interface {
	Ask(ctx context.Context, question string) (string, error)
}

type nopPresenter struct{}

func (nopPresenter) Present(string) {}

func (nopPresenter) PromptAndWait(string) string { return "" }
