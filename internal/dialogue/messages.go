package dialogue

import "fmt"

// User-facing copy. Kept in one place so the HTTP API, the websocket chat
// and the terminal client all speak with the same voice.
const (
	MsgWelcome      = "👋 Hey there! I'm your personal AI Assistant."
	MsgWelcomeScope = "I can help you with music, fitness, studying, and more."

	MsgFollowUpClarify = "Hmm... I didn't quite understand. Can you try rephrasing?"
	MsgFollowUpGiveUp  = "❓Still a bit unclear... Let me know if there's anything else I can help with."

	MsgQuotaExceeded = "🚫 Sorry, you have reached your plan limit. 💎 Please upgrade to premium or come back later after reset."

	MsgContinuePrompt = "🔁 Is there anything else I can help you with? (yes/no):"
	MsgFarewell       = "👋 Alright, take care! Come back anytime. 😊"

	MsgDispatchFailure = "Sorry, there was an unexpected error. Please try again."

	MsgNameRequired = "Please enter your name."
	MsgInvalidAge   = "❌ Oops, that doesn't look like a number. Please enter a valid age."
)

// FeelingsTriageLines is the prompt shown when a message lands in the
// feelings vocabulary and the follow-up sub-dialogue starts.
func FeelingsTriageLines() []string {
	return []string{
		"🧠 I hear you. I know some feelings can be heavy.",
		"Would you like me to:",
		"🎵 1) Recommend a song or playlist to soothe your mood",
		"💬 2) Just listen to what you want to share — I'm here for you.",
		"You can say something like 'playlist' or 'talk to you':",
	}
}

// MenuLines is the top-level prompt shown at session start and after every
// "yes" continue answer.
func MenuLines() []string {
	return []string{
		"💬 What can I help you with now?",
		"You can say things like:",
		"— 'Play me something romantic'",
		"— 'I want to build muscle'",
		"— 'Help me study for math'",
		"— 'Recommend me a book to read'",
		"— 'I need someone to listen to me now'",
		"👉 Your request:",
	}
}

// ResumedLine acknowledges a "yes" continue answer before the menu.
func ResumedLine(name string) string {
	return fmt.Sprintf("✅ I'm still here with you, %s. What would you like to do next?", name)
}
