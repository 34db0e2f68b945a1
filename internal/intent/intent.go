package intent

import "strings"

// Intent is the resolved category of a user message. It selects which
// domain handler answers the turn.
type Intent string

const (
	Music      Intent = "music"
	Fitness    Intent = "fitness"
	Study      Intent = "study"
	Book       Intent = "book"
	Psychology Intent = "psychology"
	General    Intent = "general"

	// Unresolved means the message used the feelings vocabulary, which is
	// ambiguous between Music and Psychology until the follow-up dialogue
	// settles it.
	Unresolved Intent = "unresolved"
)

var (
	feelingsWords = []string{"feel", "feeling", "listen"}

	musicWords = []string{
		"song", "music", "romantic", "listen", "play",
		"playlist", "mood", "tune", "songs",
	}
	fitnessWords = []string{
		"workout", "exercise", "gym", "gain muscle", "build muscle", "work out",
	}
	studyWords = []string{"study", "review", "math", "homework"}
	bookWords  = []string{
		"book", "novel", "read", "recommend a book",
		"story", "fantasy", "romance", "thriller",
	}
	psychologyWords = []string{
		"sad", "anxious", "depressed", "cope", "mental",
		"psychology", "stressed", "burnout", "therapy", "vent",
	}

	// Follow-up vocabularies. The feelings triage asks the user to pick
	// between a music framing and a talk framing.
	followUpMusicWords = []string{
		"song", "playlist", "listen to music", "music", "tune", "songs", "playlists",
	}
	followUpTalkWords = []string{
		"talk", "vent", "listen to me", "share", "express", "tell you", "someone to talk",
	}
)

// Classify maps raw message text to an Intent using ordered substring
// rules; the first matching rule wins. The feelings vocabulary is checked
// first and is the only path that yields Unresolved.
func Classify(text string) Intent {
	in := strings.ToLower(text)

	if containsAny(in, feelingsWords) {
		return Unresolved
	}
	switch {
	case containsAny(in, musicWords):
		return Music
	case containsAny(in, fitnessWords):
		return Fitness
	case containsAny(in, studyWords):
		return Study
	case containsAny(in, bookWords):
		return Book
	case containsAny(in, psychologyWords):
		return Psychology
	default:
		return General
	}
}

// MatchFollowUp interprets one answer to the feelings triage. Talk
// vocabulary wins over music vocabulary. ok is false when the answer
// matched neither framing.
func MatchFollowUp(text string) (in Intent, ok bool) {
	t := strings.ToLower(text)
	if containsAny(t, followUpTalkWords) {
		return Psychology, true
	}
	if containsAny(t, followUpMusicWords) {
		return Music, true
	}
	return Unresolved, false
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
