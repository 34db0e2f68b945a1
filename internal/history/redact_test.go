package history

import (
	"strings"
	"testing"
)

func TestScrubPII(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    string
		changed bool
	}{
		{"email", "reach me at ava@example.com please", "reach me at [REDACTED_EMAIL] please", true},
		{"phone", "call +1 (555) 123-4567 tonight", "call [REDACTED_PHONE] tonight", true},
		{"card", "my card is 4111 1111 1111 1111 ok", "my card is [REDACTED_CARD] ok", true},
		{"clean", "play some music", "play some music", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, changed := ScrubPII(tc.in)
			if got != tc.want {
				t.Fatalf("ScrubPII(%q) = %q, want %q", tc.in, got, tc.want)
			}
			if changed != tc.changed {
				t.Fatalf("changed = %v, want %v", changed, tc.changed)
			}
		})
	}
}

func TestScrubPIICardBeforePhone(t *testing.T) {
	got, changed := ScrubPII("4111-1111-1111-1111")
	if !changed {
		t.Fatalf("card number not scrubbed")
	}
	if !strings.Contains(got, "[REDACTED_CARD]") {
		t.Fatalf("got %q, want a card redaction marker", got)
	}
}
