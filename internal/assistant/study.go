package assistant

import (
	"context"
	"fmt"

	"github.com/mvallone/concierge/internal/dialogue"
)

// StudyAssistant helps plan revision and homework.
type StudyAssistant struct{}

func (a *StudyAssistant) Greet(s dialogue.Session) string {
	return fmt.Sprintf("📚 Hello %s! Let's make studying less painful.", s.User.Name)
}

func (a *StudyAssistant) Respond(_ context.Context, req dialogue.TurnRequest) (dialogue.TurnResult, error) {
	var body string
	switch {
	case containsAny(req.Raw, "math", "algebra", "calculus"):
		body = "For math, worked examples beat re-reading: pick five problems, solve them without notes, then check each step. Repeat daily in 25-minute blocks."
	case containsAny(req.Raw, "exam", "test", "review"):
		body = "Before an exam, space your review: one pass today, one in two days, one the day before. Quiz yourself instead of re-reading highlights."
	case containsAny(req.Raw, "homework"):
		body = "Start with the hardest homework item while you're fresh, set a 25-minute timer, and park distractions on a note instead of switching to them."
	default:
		body = "Try the Pomodoro rhythm: 25 minutes focused, 5 minutes off, and after four rounds take a longer break. Write down what you'll tackle next before stopping."
	}
	return dialogue.TurnResult{Body: body}, nil
}
