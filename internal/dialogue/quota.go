package dialogue

// FreeLimit is the number of answered turns a non-premium session may
// request before being blocked.
const FreeLimit = 3

// QuotaAllowed reports whether the session may dispatch another turn. It
// only reads the counter; incrementing happens on the "yes" continue
// answer, never here.
func QuotaAllowed(s Session) bool {
	return s.User.Premium || s.RequestCount < FreeLimit
}

// QuotaRemaining returns how many answered turns are left, or -1 for
// premium sessions.
func QuotaRemaining(s Session) int {
	if s.User.Premium {
		return -1
	}
	left := FreeLimit - s.RequestCount
	if left < 0 {
		left = 0
	}
	return left
}
