package assistant

import (
	"context"
	"fmt"

	"github.com/mvallone/concierge/internal/dialogue"
)

// FitnessAssistant suggests training plans.
type FitnessAssistant struct{}

func (a *FitnessAssistant) Greet(s dialogue.Session) string {
	return fmt.Sprintf("💪 Hi %s! Ready to get stronger?", s.User.Name)
}

func (a *FitnessAssistant) Respond(_ context.Context, req dialogue.TurnRequest) (dialogue.TurnResult, error) {
	var body string
	switch {
	case containsAny(req.Raw, "muscle", "strength", "strong"):
		body = "To build muscle, start with 3 full-body sessions a week: squats, push-ups, rows and deadlifts, adding weight gradually. Protein and sleep matter as much as the lifting."
	case containsAny(req.Raw, "cardio", "run", "endurance"):
		body = "For endurance, alternate easy runs with one interval session a week, and build distance by no more than 10% weekly."
	case containsAny(req.Raw, "home", "no equipment"):
		body = "No equipment needed: circuits of push-ups, lunges, planks and burpees, 3 rounds, 3 times a week."
	default:
		body = "A balanced week: two strength sessions, two brisk walks or light runs, and one rest day minimum. Consistency beats intensity."
	}
	return dialogue.TurnResult{Body: body}, nil
}
