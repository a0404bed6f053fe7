package model

import "time"

// Session is the client's cached belief about the current login state:
// the bearer token, the resolved role, and the cached profile. It is
// not a server-side session object; the backend re-verifies every call.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	FullName  string    `json:"full_name"`
	Role      Role      `json:"role"`
	Token     string    `json:"-"` // bearer token (never exposed via JSON)
	TokenExp  time.Time `json:"-"` // decoded token expiry; zero means no exp claim
	Profile   *User     `json:"profile,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Anonymous reports whether the session holds no credential. An absent
// token overrides any stale role value.
func (s *Session) Anonymous() bool {
	return s == nil || s.Token == ""
}

// IsExpired reports whether the cookie session itself has expired.
func (s *Session) IsExpired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}

// IsTokenExpired reports whether the bearer token has expired. A zero
// TokenExp (token without an exp claim) never expires client-side.
func (s *Session) IsTokenExpired() bool {
	return !s.TokenExp.IsZero() && time.Now().After(s.TokenExp)
}

// IsAdmin reports whether the session role has administrative access.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role.IsAdmin()
}
