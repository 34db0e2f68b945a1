package dialogue

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrNameRequired = errors.New(MsgNameRequired)
	ErrInvalidAge   = errors.New(MsgInvalidAge)
)

// NewProfile validates bootstrap input and builds a profile. Age must be a
// non-negative integer; the caller re-requests on error.
func NewProfile(name, ageText string, premium bool) (UserProfile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return UserProfile{}, ErrNameRequired
	}

	age, err := strconv.Atoi(strings.TrimSpace(ageText))
	if err != nil || age < 0 {
		return UserProfile{}, ErrInvalidAge
	}

	return UserProfile{
		Name:        name,
		Age:         age,
		Premium:     premium,
		Preferences: make(map[string]string),
	}, nil
}

// NewSession starts a fresh session for the profile. Counter and flags
// begin at zero; they mutate only through the engine.
func NewSession(user UserProfile) Session {
	if user.Preferences == nil {
		user.Preferences = make(map[string]string)
	}
	return Session{User: user}
}

// BootstrapProfile runs the interactive welcome flow over a presenter,
// re-prompting until the name and age are valid.
func BootstrapProfile(p Presenter) UserProfile {
	var name string
	for {
		name = strings.TrimSpace(p.PromptAndWait("🧑 What's your name (or what should I call you)? "))
		if name != "" {
			break
		}
		p.Present(MsgNameRequired)
	}

	var ageText string
	for {
		ageText = strings.TrimSpace(p.PromptAndWait("🎂 How old are you? "))
		if age, err := strconv.Atoi(ageText); err == nil && age >= 0 {
			break
		}
		p.Present(MsgInvalidAge)
	}

	premiumAnswer := strings.ToLower(strings.TrimSpace(p.PromptAndWait("💎 Are you a premium user? (yes/no): ")))
	premium := premiumAnswer == "yes" || premiumAnswer == "y"

	profile, _ := NewProfile(name, ageText, premium)
	return profile
}
