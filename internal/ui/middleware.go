package ui

import (
	"context"
	"net/http"

	"github.com/me/p2h/internal/guard"
	"github.com/me/p2h/internal/i18n"
	"github.com/me/p2h/pkg/model"
)

// Context keys for request-scoped data.
type contextKey string

const sessionContextKey contextKey = "session"

// SessionFromContext retrieves the session from the request context.
// Nil on public routes visited anonymously.
func SessionFromContext(ctx context.Context) *model.Session {
	sess, _ := ctx.Value(sessionContextKey).(*model.Session)
	return sess
}

// GuardMiddleware runs the route authorization check before every
// screen: it resolves the target route name, reads the session, asks
// the guard for a decision, applies any session clear it demands, and
// either redirects or lets the view render with the session in
// context.
func (ui *UI) GuardMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		target := RouteName(r.URL.Path)

		sess, err := ui.sessions.GetSessionFromRequest(r)
		if err != nil {
			ui.logger.Error("session lookup failed", "error", err)
			http.Redirect(w, r, RoutePath(guard.RouteLogin), http.StatusSeeOther)
			return
		}

		gs := guard.Session{}
		if !sess.Anonymous() {
			gs = guard.Session{Token: sess.Token, Role: sess.Role}
		}

		d := ui.table.Decide(target, gs)

		if d.ClearSession {
			if sess != nil {
				if err := ui.sessions.DeleteSession(r.Context(), sess.ID); err != nil {
					ui.logger.Error("clear session failed", "error", err)
				}
				ui.logger.Info("session cleared", "user", sess.UserID, "reason", "token expired")
			}
			ClearSessionCookie(w)
			sess = nil
		}

		if d.Action == guard.Redirect {
			path := RoutePath(d.Target)
			if d.SessionExpired {
				path += "?notice=" + i18n.MsgSessionExpired
			}
			http.Redirect(w, r, path, http.StatusSeeOther)
			return
		}

		if sess != nil {
			r = r.WithContext(context.WithValue(r.Context(), sessionContextKey, sess))
		}
		next.ServeHTTP(w, r)
	})
}
