package assistant

import (
	"context"
	"fmt"

	"github.com/mvallone/concierge/internal/dialogue"
)

// PsychologyAssistant listens and offers grounding suggestions. It is a
// supportive companion, not a clinician, and says so when things sound
// serious.
type PsychologyAssistant struct{}

func (a *PsychologyAssistant) Greet(s dialogue.Session) string {
	return fmt.Sprintf("💬 I'm here for you, %s. Take your time.", s.User.Name)
}

func (a *PsychologyAssistant) Respond(_ context.Context, req dialogue.TurnRequest) (dialogue.TurnResult, error) {
	var body string
	switch {
	case containsAny(req.Raw, "anxious", "anxiety", "panic"):
		body = "When anxiety spikes, try a slow 4-7-8 breath: in for 4, hold for 7, out for 8, a few rounds. Naming what you're anxious about out loud or on paper also takes some of its edge off."
	case containsAny(req.Raw, "stressed", "burnout", "overwhelmed"):
		body = "That sounds like a lot to carry. Pick the single smallest thing you can finish today and let that be enough. Breaks aren't a reward for finishing, they're part of the work."
	case containsAny(req.Raw, "sad", "depressed", "down", "low"):
		body = "I'm sorry it's heavy right now. Feelings like this pass, even when they don't feel like they will. A short walk, daylight, and telling one person how you actually feel can each help a little. If this has lasted a while, talking to a professional is a sign of strength, not failure."
	case containsAny(req.Raw, "vent", "talk", "listen"):
		body = "Go ahead, I'm listening. Say it exactly the way it feels, unpolished. Sometimes hearing yourself say it is half the sorting-out."
	default:
		body = "Whatever's on your mind, it's worth saying. Tell me what happened, or how today felt, and we'll take it from there."
	}
	return dialogue.TurnResult{Body: body}, nil
}
