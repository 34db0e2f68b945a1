package assistant

import (
	"context"
	"fmt"

	"github.com/mvallone/concierge/internal/dialogue"
)

// BookAssistant recommends reading by genre.
type BookAssistant struct{}

func (a *BookAssistant) Greet(s dialogue.Session) string {
	return fmt.Sprintf("📖 Hi %s! Always a good day for a new book.", s.User.Name)
}

func (a *BookAssistant) Respond(_ context.Context, req dialogue.TurnRequest) (dialogue.TurnResult, error) {
	var body string
	switch {
	case containsAny(req.Raw, "fantasy", "dragon", "magic"):
		body = "For fantasy, try 'The Name of the Wind' by Patrick Rothfuss or 'A Wizard of Earthsea' by Ursula K. Le Guin."
	case containsAny(req.Raw, "thriller", "mystery", "crime"):
		body = "If you want tension, 'The Silent Patient' by Alex Michaelides or anything by Tana French."
	case containsAny(req.Raw, "romance", "romantic"):
		body = "For romance, 'Beach Read' by Emily Henry or 'Pride and Prejudice' if you're in a classic mood."
	case containsAny(req.Raw, "short", "quick"):
		body = "Short but memorable: 'The Old Man and the Sea' or 'Convenience Store Woman' by Sayaka Murata."
	default:
		body = "A safe bet for almost anyone: 'A Man Called Ove' by Fredrik Backman — warm, funny, and hard to put down."
	}
	return dialogue.TurnResult{Body: body}, nil
}
