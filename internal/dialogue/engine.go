package dialogue

import (
	"context"
	"strings"
	"time"

	"github.com/mvallone/concierge/internal/intent"
)

// Engine is the dialogue control state machine. It owns no session state:
// every operation takes a Session value and returns the updated value, so
// callers decide when a transition is applied. One engine can serve many
// sessions as long as each session's turns are serialized by the caller.
type Engine struct {
	handlers  map[intent.Intent]Handler
	answer    Answerer
	presenter Presenter
	now       func() time.Time
}

func NewEngine(handlers map[intent.Intent]Handler, answer Answerer, presenter Presenter) *Engine {
	if presenter == nil {
		presenter = nopPresenter{}
	}
	return &Engine{
		handlers:  handlers,
		answer:    answer,
		presenter: presenter,
		now:       time.Now,
	}
}

// WithPresenter returns a shallow copy of the engine bound to a different
// presenter. Used to give each connection its own output channel without
// rebuilding the handler set.
func (e *Engine) WithPresenter(p Presenter) *Engine {
	c := *e
	if p == nil {
		p = nopPresenter{}
	}
	c.presenter = p
	return &c
}

// HandleTurn runs one full top-level turn: follow-up delegation or
// classification, quota check, dispatch, and outcome packaging. The
// continue/stop sub-dialogue is entered by the caller after an Answered
// outcome; the engine never loops internally.
func (e *Engine) HandleTurn(ctx context.Context, s Session, raw string) (Session, Outcome) {
	var resolved intent.Intent

	if s.AwaitingFollowUp {
		var ok bool
		s, resolved, ok = e.resolveFollowUp(s, raw)
		if !ok {
			return s, Outcome{Kind: FollowUpPrompted}
		}
	} else {
		resolved = intent.Classify(raw)
		if resolved == intent.Unresolved {
			s.AwaitingFollowUp = true
			s.FollowUpAttempts = 0
			for _, line := range FeelingsTriageLines() {
				e.presenter.Present(line)
			}
			return s, Outcome{Kind: FollowUpPrompted}
		}
	}

	// Quota is checked strictly before dispatch. A blocked turn leaves the
	// session untouched so the user can upgrade and retry.
	if !QuotaAllowed(s) {
		return s, Outcome{Kind: QuotaBlocked, Intent: resolved, Body: MsgQuotaExceeded}
	}

	if s.User.Preferences == nil {
		s.User.Preferences = make(map[string]string)
	}
	s.User.Preferences["raw_input"] = raw

	req := TurnRequest{Raw: raw, Timestamp: e.now(), Intent: resolved}
	res := e.dispatch(ctx, s, req)
	if !res.Success {
		// Dispatch failures must not corrupt session state: the quota
		// counter is untouched and follow-up flags are cleared.
		s.AwaitingFollowUp = false
		s.FollowUpAttempts = 0
		return s, Outcome{Kind: Answered, Intent: resolved, Body: res.Body, Success: false}
	}

	s.AwaitingContinue = true
	return s, Outcome{Kind: Answered, Intent: resolved, Greeting: res.Greeting, Body: res.Body, Success: true}
}

// dispatch routes the request to the matching domain handler, or to the
// answer service for General questions. Handler panics and errors stop
// here; they never propagate past the turn boundary.
func (e *Engine) dispatch(ctx context.Context, s Session, req TurnRequest) (res TurnResult) {
	defer func() {
		if r := recover(); r != nil {
			res = TurnResult{Body: MsgDispatchFailure, Success: false}
		}
	}()

	if req.Intent == intent.General {
		text, err := e.answer.Ask(ctx, req.Raw)
		if err != nil {
			if text == "" {
				text = MsgDispatchFailure
			}
			return TurnResult{Body: text, Success: false}
		}
		return TurnResult{Body: text, Success: true}
	}

	h, ok := e.handlers[req.Intent]
	if !ok {
		return TurnResult{Body: MsgDispatchFailure, Success: false}
	}

	greeting := h.Greet(s)
	out, err := h.Respond(ctx, req)
	if err != nil {
		body := out.Body
		if body == "" {
			body = MsgDispatchFailure
		}
		return TurnResult{Body: body, Success: false}
	}
	out.Greeting = greeting
	out.Success = true
	return out
}

// HandleContinueAnswer consumes one answer to the "anything else?" prompt.
// "yes" is the only place the quota counter moves; anything that is not an
// explicit yes/no is routed to the answer service and keeps the session in
// the awaiting-continue state.
func (e *Engine) HandleContinueAnswer(ctx context.Context, s Session, text string) (Session, ContinueOutcome) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "no", "n":
		s.AwaitingContinue = false
		return s, ContinueOutcome{Kind: Ended, Body: MsgFarewell}
	case "yes", "y":
		if !s.User.Premium {
			s.RequestCount++
		}
		s.AwaitingContinue = false
		return s, ContinueOutcome{Kind: ResumedMenu, Body: ResumedLine(s.User.Name)}
	default:
		body, err := e.answer.Ask(ctx, text)
		if err != nil && body == "" {
			body = MsgDispatchFailure
		}
		s.AwaitingContinue = true
		return s, ContinueOutcome{Kind: FreeAnswer, Body: body}
	}
}
