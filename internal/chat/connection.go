package chat

import (
	"context"
	"errors"

	"github.com/mvallone/concierge/internal/dialogue"
	"github.com/mvallone/concierge/internal/protocol"
	"github.com/mvallone/concierge/internal/session"
)

// RunConnection drives one chat connection until the dialogue ends, the
// inbound channel closes, or the context is cancelled. Messages on
// inbound are parsed protocol values; everything written to outbound is a
// protocol struct. One connection processes one message at a time, so the
// session's single-writer discipline holds by construction.
func (r *Runner) RunConnection(ctx context.Context, sess *session.Session, inbound <-chan any, outbound chan<- any) error {
	send := func(msg any) error {
		select {
		case outbound <- msg:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if err := send(protocol.SessionStarted{
		Type:      protocol.TypeSessionStarted,
		SessionID: sess.ID,
		Lines:     OpeningLines(),
	}); err != nil {
		return err
	}

	// Handlers that ask a question mid-turn get it answered by the next
	// inbound user message.
	prompter := func(prompt string) string {
		if err := send(protocol.PromptRequest{
			Type:      protocol.TypePromptRequest,
			SessionID: sess.ID,
			Prompt:    prompt,
		}); err != nil {
			return ""
		}
		for {
			select {
			case <-ctx.Done():
				return ""
			case msg, ok := <-inbound:
				if !ok {
					return ""
				}
				if um, isUser := msg.(protocol.UserMessage); isUser {
					return um.Text
				}
			}
		}
	}

	for {
		var msg any
		var ok bool
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok = <-inbound:
			if !ok {
				return nil
			}
		}

		switch m := msg.(type) {
		case protocol.UserMessage:
			res, err := r.Step(ctx, sess.ID, m.Text, prompter)
			if err != nil {
				if sendErr := send(protocol.ErrorEvent{
					Type:      protocol.TypeErrorEvent,
					SessionID: sess.ID,
					Code:      errorCode(err),
					Detail:    err.Error(),
				}); sendErr != nil {
					return sendErr
				}
				if errors.Is(err, session.ErrNotFound) || errors.Is(err, session.ErrEnded) {
					return nil
				}
				continue
			}

			for _, line := range res.Lines {
				if err := send(protocol.AssistantLine{
					Type:      protocol.TypeAssistantLine,
					SessionID: sess.ID,
					Text:      line,
					Tag:       lineTag(res),
				}); err != nil {
					return err
				}
			}
			if err := send(protocol.TurnOutcome{
				Type:           protocol.TypeTurnOutcome,
				SessionID:      sess.ID,
				Outcome:        res.Outcome,
				Success:        res.Success,
				QuotaRemaining: res.QuotaRemaining,
			}); err != nil {
				return err
			}
			if res.Ended {
				return send(protocol.SessionEnded{
					Type:      protocol.TypeSessionEnded,
					SessionID: sess.ID,
					Reason:    "user_goodbye",
				})
			}

		case protocol.ClientControl:
			if m.Action == "end" {
				if _, err := r.sessions.End(sess.ID); err != nil && !errors.Is(err, session.ErrNotFound) {
					return err
				}
				r.metrics.SessionEvents.WithLabelValues("ended").Inc()
				r.metrics.ActiveSessions.Set(float64(r.sessions.ActiveCount()))
				return send(protocol.SessionEnded{
					Type:      protocol.TypeSessionEnded,
					SessionID: sess.ID,
					Reason:    "client_control",
				})
			}
		}
	}
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, session.ErrNotFound):
		return "session_not_found"
	case errors.Is(err, session.ErrEnded):
		return "session_ended"
	case errors.Is(err, session.ErrTurnInFlight):
		return "turn_in_flight"
	default:
		return "internal"
	}
}

func lineTag(res StepResult) string {
	switch {
	case res.Outcome == string(dialogue.QuotaBlocked):
		return "system"
	case res.Outcome == string(dialogue.Answered) && !res.Success:
		return "system"
	default:
		return "assistant"
	}
}
