// Package chat drives dialogue sessions for the service: it serializes
// turns through the session registry, feeds the engine, records the
// transcript and reports metrics. The HTTP message endpoint and the
// websocket connection loop both step sessions through here.
package chat

import (
	"context"
	"log"
	"time"

	"github.com/mvallone/concierge/internal/dialogue"
	"github.com/mvallone/concierge/internal/history"
	"github.com/mvallone/concierge/internal/observability"
	"github.com/mvallone/concierge/internal/session"
)

type Runner struct {
	sessions *session.Manager
	engine   *dialogue.Engine
	store    history.Store
	metrics  *observability.Metrics
	stages   *observability.StageWindow
}

func NewRunner(sessions *session.Manager, engine *dialogue.Engine, store history.Store, metrics *observability.Metrics) *Runner {
	return &Runner{
		sessions: sessions,
		engine:   engine,
		store:    store,
		metrics:  metrics,
	}
}

// SetStageWindow attaches the rolling latency window. The window is
// optional; a nil window turns stage recording into a no-op.
func (r *Runner) SetStageWindow(w *observability.StageWindow) { r.stages = w }

// StageSnapshot reports the recent-turn latency window for the debug
// endpoint.
func (r *Runner) StageSnapshot() observability.StageSnapshot {
	if r.stages == nil {
		return observability.StageSnapshot{}
	}
	return r.stages.Snapshot()
}

// StepResult is everything a transport needs to render one dialogue step.
type StepResult struct {
	Outcome        string   `json:"outcome"`
	Intent         string   `json:"intent,omitempty"`
	Success        bool     `json:"success"`
	Lines          []string `json:"lines"`
	Ended          bool     `json:"ended"`
	QuotaRemaining int      `json:"quota_remaining"`
}

// lineCollector is the presenter handed to the engine for one step. It
// captures presented lines in order and delegates prompts to the
// transport when one is attached.
type lineCollector struct {
	lines    []string
	prompter func(prompt string) string
}

func (c *lineCollector) Present(text string) { c.lines = append(c.lines, text) }

func (c *lineCollector) PromptAndWait(prompt string) string {
	if c.prompter == nil {
		return ""
	}
	return c.prompter(prompt)
}

// Step runs exactly one user message through the session's state machine.
// The prompter is optional; request/response transports pass nil and
// handlers that ask mid-turn questions get an empty answer.
func (r *Runner) Step(ctx context.Context, sessionID, text string, prompter func(string) string) (StepResult, error) {
	state, err := r.sessions.BeginTurn(sessionID)
	if err != nil {
		return StepResult{}, err
	}
	turnStart := time.Now()

	collector := &lineCollector{prompter: prompter}
	eng := r.engine.WithPresenter(collector)

	r.saveTurn(ctx, sessionID, "user", text, "")

	var result StepResult
	var ended bool

	if state.AwaitingContinue {
		newState, out := eng.HandleContinueAnswer(ctx, state, text)
		state = newState
		result = r.continueResult(collector.lines, out)
		ended = out.Kind == dialogue.Ended
		r.metrics.Turns.WithLabelValues("continue", string(out.Kind)).Inc()
	} else {
		newState, out := eng.HandleTurn(ctx, state, text)
		state = newState
		result = r.turnResult(collector.lines, state, out)
		r.metrics.Turns.WithLabelValues(string(out.Intent), string(out.Kind)).Inc()
		switch {
		case out.Kind == dialogue.QuotaBlocked:
			r.metrics.QuotaBlocks.Inc()
			r.stages.ObserveIndicator("quota_block")
		case out.Kind == dialogue.FollowUpPrompted:
			r.stages.ObserveIndicator("follow_up_prompt")
		case out.Kind == dialogue.Answered && !out.Success:
			r.stages.ObserveIndicator("answer_failure")
			log.Printf("session %s: dispatch failed for intent %q", sessionID, out.Intent)
		}
	}

	result.Ended = ended
	result.QuotaRemaining = dialogue.QuotaRemaining(state)

	if err := r.sessions.FinishTurn(sessionID, state, ended); err != nil {
		return StepResult{}, err
	}

	for _, line := range result.Lines {
		r.saveTurn(ctx, sessionID, "assistant", line, result.Intent)
	}
	if ended {
		r.metrics.SessionEvents.WithLabelValues("ended").Inc()
		r.metrics.ActiveSessions.Set(float64(r.sessions.ActiveCount()))
		r.stages.ObserveIndicator("session_ended")
	}
	r.stages.Observe(observability.StageTurnTotal, float64(time.Since(turnStart).Milliseconds()))

	return result, nil
}

// TimedAnswerer wraps the external answer service with latency recording
// for both the Prometheus histogram and the rolling stage window.
type TimedAnswerer struct {
	Inner   dialogue.Answerer
	Metrics *observability.Metrics
	Stages  *observability.StageWindow
}

func (a TimedAnswerer) Ask(ctx context.Context, question string) (string, error) {
	start := time.Now()
	answer, err := a.Inner.Ask(ctx, question)
	elapsed := time.Since(start)
	if a.Metrics != nil {
		a.Metrics.ObserveAnswerLatency(elapsed)
	}
	a.Stages.Observe(observability.StageAnswer, float64(elapsed.Milliseconds()))
	if err != nil && a.Metrics != nil {
		a.Metrics.AnswerErrors.WithLabelValues("ask").Inc()
	}
	return answer, err
}

func (r *Runner) turnResult(presented []string, state dialogue.Session, out dialogue.Outcome) StepResult {
	res := StepResult{
		Outcome: string(out.Kind),
		Intent:  string(out.Intent),
		Success: out.Success,
		Lines:   presented,
	}

	switch out.Kind {
	case dialogue.QuotaBlocked:
		res.Lines = append(res.Lines, out.Body)
	case dialogue.Answered:
		if !out.Success {
			res.Lines = append(res.Lines, out.Body)
			break
		}
		if out.Greeting != "" {
			res.Lines = append(res.Lines, "💡 "+out.Greeting)
		}
		res.Lines = append(res.Lines, "🤖 "+out.Body)
		if state.AwaitingContinue {
			res.Lines = append(res.Lines, dialogue.MsgContinuePrompt)
		}
	}
	return res
}

func (r *Runner) continueResult(presented []string, out dialogue.ContinueOutcome) StepResult {
	res := StepResult{
		Outcome: string(out.Kind),
		Success: true,
		Lines:   presented,
	}

	switch out.Kind {
	case dialogue.Ended:
		res.Lines = append(res.Lines, out.Body)
	case dialogue.ResumedMenu:
		res.Lines = append(res.Lines, out.Body)
		res.Lines = append(res.Lines, dialogue.MenuLines()...)
	case dialogue.FreeAnswer:
		res.Lines = append(res.Lines, out.Body, dialogue.MsgContinuePrompt)
	}
	return res
}

func (r *Runner) saveTurn(ctx context.Context, sessionID, role, content, intentLabel string) {
	if r.store == nil {
		return
	}
	scrubbed, _ := history.ScrubPII(content)
	err := r.store.SaveTurn(ctx, history.TurnRecord{
		SessionID: sessionID,
		Role:      role,
		Content:   scrubbed,
		Intent:    intentLabel,
	})
	if err != nil {
		log.Printf("session %s: transcript save failed: %v", sessionID, err)
	}
}

// OpeningLines is what a freshly created session shows before the first
// user message.
func OpeningLines() []string {
	lines := []string{dialogue.MsgWelcome, dialogue.MsgWelcomeScope}
	return append(lines, dialogue.MenuLines()...)
}
