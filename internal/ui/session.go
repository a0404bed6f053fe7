package ui

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/me/p2h/internal/store"
	"github.com/me/p2h/pkg/model"
)

const (
	// SessionCookieName is the name of the session cookie.
	SessionCookieName = "p2h_session"
	// SessionDuration is the session lifetime. The bearer token
	// usually expires sooner; the guard notices that on the next
	// navigation, so the session must outlive the token for the
	// expiry redirect and notice to happen at all.
	SessionDuration = 24 * time.Hour
)

// SessionManager handles session creation, validation, and cleanup.
// It is the only component that touches the persisted token, role,
// and profile; views always go through it.
type SessionManager struct {
	store store.Store
}

// NewSessionManager creates a new session manager.
func NewSessionManager(st store.Store) *SessionManager {
	return &SessionManager{store: st}
}

// CreateSession creates a session for a freshly logged-in user. The
// token, resolved role, and profile are persisted together.
func (sm *SessionManager) CreateSession(ctx context.Context, user *model.User, token string, tokenExp time.Time) (*model.Session, error) {
	sessionID, err := generateSessionID()
	if err != nil {
		return nil, fmt.Errorf("generate session id: %w", err)
	}

	now := time.Now()
	sess := &model.Session{
		ID:        sessionID,
		UserID:    user.ID,
		FullName:  user.FullName,
		Role:      user.Role,
		Token:     token,
		TokenExp:  tokenExp,
		Profile:   user,
		CreatedAt: now,
		ExpiresAt: now.Add(SessionDuration),
	}

	if err := sm.store.CreateSession(ctx, sess); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	return sess, nil
}

// GetSession retrieves a session by ID. Returns nil when the session
// does not exist or the cookie session itself has expired. A session
// with an expired bearer token IS returned: the guard owns that case
// (clear + redirect + notice), not the lookup.
func (sm *SessionManager) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	sess, err := sm.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if sess == nil {
		return nil, nil
	}

	if sess.IsExpired() {
		_ = sm.store.DeleteSession(ctx, sessionID)
		return nil, nil
	}

	return sess, nil
}

// DeleteSession removes a session. Idempotent.
func (sm *SessionManager) DeleteSession(ctx context.Context, sessionID string) error {
	return sm.store.DeleteSession(ctx, sessionID)
}

// CleanupExpiredSessions removes all expired sessions from the store.
func (sm *SessionManager) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	return sm.store.DeleteExpiredSessions(ctx)
}

// GetSessionFromRequest extracts the session from the request cookie.
func (sm *SessionManager) GetSessionFromRequest(r *http.Request) (*model.Session, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return nil, nil // no cookie, no session
	}
	return sm.GetSession(r.Context(), cookie.Value)
}

// SetSessionCookie sets the session cookie on the response.
func SetSessionCookie(w http.ResponseWriter, sess *model.Session, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  sess.ExpiresAt,
	})
}

// ClearSessionCookie removes the session cookie.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// generateSessionID generates a cryptographically secure random session ID.
func generateSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return "sess_" + hex.EncodeToString(b), nil
}
