// Package session holds the client's view of the current login state:
// decoding of the access token's claims and the persistent credential
// store shared by the CLI commands.
package session

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/me/p2h/pkg/model"
)

// TokenInfo contains claims decoded from a JWT access token. The
// signature is never verified client-side; decoding exists only to
// read the expiry and embedded identity for UX purposes.
type TokenInfo struct {
	Raw     string
	Subject string
	Role    model.Role
	Expiry  time.Time // zero when the token carries no exp claim
}

// ParseToken decodes the claims segment of a JWT (the base64url JSON
// after the first "." delimiter). Returns a zero-value TokenInfo and
// ok=false for malformed tokens.
func ParseToken(raw string) (TokenInfo, bool) {
	info := TokenInfo{Raw: strings.TrimSpace(raw)}
	if info.Raw == "" {
		return TokenInfo{}, false
	}

	parts := strings.Split(info.Raw, ".")
	if len(parts) < 2 {
		return TokenInfo{}, false
	}

	data, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(parts[1], "="))
	if err != nil {
		return TokenInfo{}, false
	}

	var claims struct {
		Sub  string       `json:"sub"`
		Role string       `json:"role"`
		Exp  *json.Number `json:"exp"`
	}
	if err := json.Unmarshal(data, &claims); err != nil {
		return TokenInfo{}, false
	}

	info.Subject = claims.Sub
	info.Role = model.Role(claims.Role)
	if claims.Exp != nil {
		sec, err := claims.Exp.Int64()
		if err != nil {
			return TokenInfo{}, false
		}
		info.Expiry = time.Unix(sec, 0)
	}
	return info, true
}

// IsExpired reports whether the token's expiry time has passed. A zero
// expiry (no exp claim) is treated as never expiring client-side.
func (t TokenInfo) IsExpired() bool {
	if t.Expiry.IsZero() {
		return false
	}
	return !t.Expiry.After(time.Now())
}

// IsTokenExpired reports whether the given token should be treated as
// expired. Malformed tokens are expired, never valid: treating an
// undecodable token as live is the unsafe direction. Tokens without an
// exp claim are not expired. Never panics.
func IsTokenExpired(raw string) bool {
	info, ok := ParseToken(raw)
	if !ok {
		return true
	}
	return info.IsExpired()
}
