package dialogue

import "github.com/mvallone/concierge/internal/intent"

// FollowUpLimit bounds the feelings triage at two attempts before the turn
// is force-resolved to General.
const FollowUpLimit = 2

// resolveFollowUp consumes one answer to the feelings triage. When it
// resolves, both follow-up fields are reset and the resolved intent is
// returned. While unresolved it emits a clarification through the
// presenter; at the attempt limit it emits the give-up notice and forces
// General.
func (e *Engine) resolveFollowUp(s Session, answer string) (Session, intent.Intent, bool) {
	if in, ok := intent.MatchFollowUp(answer); ok {
		s.AwaitingFollowUp = false
		s.FollowUpAttempts = 0
		return s, in, true
	}

	s.FollowUpAttempts++
	if s.FollowUpAttempts < FollowUpLimit {
		e.presenter.Present(MsgFollowUpClarify)
		return s, intent.Unresolved, false
	}

	e.presenter.Present(MsgFollowUpGiveUp)
	s.AwaitingFollowUp = false
	s.FollowUpAttempts = 0
	return s, intent.General, true
}
