// Package assistant holds the five domain handlers the dialogue engine
// dispatches to. Each handler answers deterministically from small keyword
// tables; the external answer service is only used for General questions.
package assistant

import (
	"strings"

	"github.com/mvallone/concierge/internal/dialogue"
	"github.com/mvallone/concierge/internal/intent"
)

// Registry wires one handler per resolvable intent. General is absent on
// purpose: those turns go to the answer service.
func Registry() map[intent.Intent]dialogue.Handler {
	return map[intent.Intent]dialogue.Handler{
		intent.Music:      &MusicAssistant{},
		intent.Fitness:    &FitnessAssistant{},
		intent.Study:      &StudyAssistant{},
		intent.Book:       &BookAssistant{},
		intent.Psychology: &PsychologyAssistant{},
	}
}

func containsAny(text string, words ...string) bool {
	t := strings.ToLower(text)
	for _, w := range words {
		if strings.Contains(t, w) {
			return true
		}
	}
	return false
}
