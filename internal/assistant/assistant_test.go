package assistant

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mvallone/concierge/internal/dialogue"
	"github.com/mvallone/concierge/internal/intent"
)

func turnReq(in intent.Intent, raw string) dialogue.TurnRequest {
	return dialogue.TurnRequest{Raw: raw, Timestamp: time.Now(), Intent: in}
}

func TestRegistryCoversResolvableIntents(t *testing.T) {
	reg := Registry()
	for _, in := range []intent.Intent{intent.Music, intent.Fitness, intent.Study, intent.Book, intent.Psychology} {
		if reg[in] == nil {
			t.Fatalf("no handler registered for %q", in)
		}
	}
	if _, ok := reg[intent.General]; ok {
		t.Fatalf("General must route to the answer service, not a handler")
	}
}

func TestGreetingsArePersonalized(t *testing.T) {
	s := dialogue.NewSession(dialogue.UserProfile{Name: "Dana", Age: 30})
	for in, h := range Registry() {
		g := h.Greet(s)
		if !strings.Contains(g, "Dana") {
			t.Fatalf("%q greeting %q does not mention the user", in, g)
		}
	}
}

func TestHandlersAnswerKeywordVariants(t *testing.T) {
	cases := []struct {
		in   intent.Intent
		raw  string
		want string
	}{
		{intent.Music, "play me something romantic", "romantic"},
		{intent.Music, "I need something to soothe me", "gentle"},
		{intent.Fitness, "I want to build muscle", "muscle"},
		{intent.Fitness, "improve my cardio", "endurance"},
		{intent.Study, "help me study for math", "math"},
		{intent.Study, "homework is piling up", "homework"},
		{intent.Book, "recommend a fantasy book", "fantasy"},
		{intent.Book, "a thriller please", "Silent Patient"},
		{intent.Psychology, "I feel so anxious", "breath"},
		{intent.Psychology, "I just want to vent", "listening"},
	}

	reg := Registry()
	for _, tc := range cases {
		res, err := reg[tc.in].Respond(context.Background(), turnReq(tc.in, tc.raw))
		if err != nil {
			t.Fatalf("%q Respond(%q) error = %v", tc.in, tc.raw, err)
		}
		if !strings.Contains(strings.ToLower(res.Body), strings.ToLower(tc.want)) {
			t.Fatalf("%q Respond(%q) = %q, want mention of %q", tc.in, tc.raw, res.Body, tc.want)
		}
	}
}

func TestHandlersHaveDefaultAnswers(t *testing.T) {
	reg := Registry()
	for in, h := range reg {
		res, err := h.Respond(context.Background(), turnReq(in, "zzz unmatched zzz"))
		if err != nil {
			t.Fatalf("%q default Respond error = %v", in, err)
		}
		if strings.TrimSpace(res.Body) == "" {
			t.Fatalf("%q default answer is empty", in)
		}
	}
}
