package assistant

import (
	"context"
	"fmt"

	"github.com/mvallone/concierge/internal/dialogue"
)

// MusicAssistant recommends songs and playlists by mood.
type MusicAssistant struct{}

func (a *MusicAssistant) Greet(s dialogue.Session) string {
	return fmt.Sprintf("🎵 Hey %s! Let's find something good for your ears.", s.User.Name)
}

func (a *MusicAssistant) Respond(_ context.Context, req dialogue.TurnRequest) (dialogue.TurnResult, error) {
	var body string
	switch {
	case containsAny(req.Raw, "romantic", "romance", "love"):
		body = "For a romantic mood, try 'La Vie en Rose' by Édith Piaf, or the playlist 'Love Ballads Forever'."
	case containsAny(req.Raw, "sad", "low", "down", "soothe", "calm"):
		body = "Something gentle then: 'Clair de Lune', 'Holocene' by Bon Iver, or the playlist 'Rainy Day Comfort'."
	case containsAny(req.Raw, "energy", "workout", "pump", "party"):
		body = "To get moving: 'Don't Stop Me Now' by Queen, or the playlist 'High Energy Hits'."
	default:
		body = "Here's a playlist I like for almost any moment: 'Everyday Favorites' — a mix of pop, soul and acoustic tracks."
	}
	return dialogue.TurnResult{Body: body}, nil
}
