package models

import "time"

// Session is the authenticated identity the sync layer works on behalf of.
type Session struct {
	UserID    string    `json:"user_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

// Valid reports whether the session has a token and a user id and, when an
// expiry is known, has not expired at now.
func (s Session) Valid(now time.Time) bool {
	if s.Token == "" || s.UserID == "" {
		return false
	}
	return s.ExpiresAt.IsZero() || now.Before(s.ExpiresAt)
}
