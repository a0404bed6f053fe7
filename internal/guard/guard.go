// Package guard implements the client-side route authorization check:
// a pure decision function over the target route, the current session,
// and a static route classification table.
//
// The guard shapes UX only. It is advisory by design: the backend
// re-verifies every request, and nothing here is a security boundary.
package guard

import (
	"github.com/me/p2h/internal/session"
	"github.com/me/p2h/pkg/model"
)

// Named routes of the UI surface. The classification table below is
// the single source of truth for which routes need which role.
const (
	RouteLogin   = "login"
	RouteMain    = "main"
	RouteMonitor = "monitor-kendaraan"

	RouteFormP2H     = "form-p2h"
	RouteProfileUser = "profile-user"
	RouteRiwayatUser = "riwayat-user"
	RouteHasilForm   = "hasil-form"

	RouteDashboard         = "dashboard"
	RouteDataMonitorPT     = "data-monitor-pt"
	RouteDataMonitorTravel = "data-monitor-travel"
	RouteDataPenggunaPT    = "data-pengguna-pt"
	RouteDataPenggunaTrav  = "data-pengguna-travel"
	RouteKelolaPertanyaan  = "kelola-pertanyaan"
	RouteDataPerusahaan    = "data-perusahaan"
	RouteDataDepartemen    = "data-departemen"
	RouteDataPosisi        = "data-posisi"
	RouteDataStatus        = "data-status"
	RouteUnitPT            = "unit-kendaraan-pt"
	RouteUnitTravel        = "unit-kendaraan-travel"
	RouteProfilAdmin       = "profil-admin"
)

// Class is the access classification of a route.
type Class int

const (
	// ClassAuthenticated requires any logged-in session. Routes not
	// present in the table default to this class.
	ClassAuthenticated Class = iota
	// ClassPublic needs no session.
	ClassPublic
	// ClassUser is reserved for the regular-user screens.
	ClassUser
	// ClassAdmin requires role admin or superadmin.
	ClassAdmin
)

// Table maps route names to their classification.
type Table map[string]Class

// DefaultTable returns the classification of the full UI surface.
func DefaultTable() Table {
	return Table{
		RouteLogin:   ClassPublic,
		RouteMain:    ClassPublic,
		RouteMonitor: ClassPublic,

		RouteFormP2H:     ClassUser,
		RouteProfileUser: ClassUser,
		RouteRiwayatUser: ClassUser,
		RouteHasilForm:   ClassUser,

		RouteDashboard:         ClassAdmin,
		RouteDataMonitorPT:     ClassAdmin,
		RouteDataMonitorTravel: ClassAdmin,
		RouteDataPenggunaPT:    ClassAdmin,
		RouteDataPenggunaTrav:  ClassAdmin,
		RouteKelolaPertanyaan:  ClassAdmin,
		RouteDataPerusahaan:    ClassAdmin,
		RouteDataDepartemen:    ClassAdmin,
		RouteDataPosisi:        ClassAdmin,
		RouteDataStatus:        ClassAdmin,
		RouteUnitPT:            ClassAdmin,
		RouteUnitTravel:        ClassAdmin,
		RouteProfilAdmin:       ClassAdmin,
	}
}

// Classify returns the class of a route name. Unlisted routes require
// any authenticated session.
func (t Table) Classify(route string) Class {
	if c, ok := t[route]; ok {
		return c
	}
	return ClassAuthenticated
}

// IsPublic reports whether the route needs no session.
func (t Table) IsPublic(route string) bool { return t.Classify(route) == ClassPublic }

// IsAdminOnly reports whether the route requires an admin role.
func (t Table) IsAdminOnly(route string) bool { return t.Classify(route) == ClassAdmin }

// Session is the guard's view of the current session: just the token
// and the resolved role.
type Session struct {
	Token string
	Role  model.Role
}

// Action is the outcome kind of a guard decision.
type Action int

const (
	// Proceed lets the transition continue.
	Proceed Action = iota
	// Redirect sends the client to Decision.Target instead.
	Redirect
)

// Decision is the guard's verdict for one route transition. When
// ClearSession is set the caller must clear the session store before
// acting on the decision; SessionExpired additionally asks for a
// user-visible expiry notice.
type Decision struct {
	Action         Action
	Target         string
	ClearSession   bool
	SessionExpired bool
}

// Decide runs the authorization check for a transition to target.
// It is pure over (target, sess, t): all session mutations are
// signalled through the Decision, never performed here.
//
// Rules apply in order, first match wins:
//  1. expired token: clear session; redirect to login unless the
//     target is public
//  2. no token and non-public target: redirect to login
//  3. role-specific routing for viewer, user, admin/superadmin
//  4. proceed
//
// A role outside the known enum falls through rule 3 and proceeds.
// The backend still authorizes every call, so the permissive default
// costs nothing beyond a possible extra redirect.
func (t Table) Decide(target string, sess Session) Decision {
	// Rule 1: an expired token is equivalent to no token, but the
	// stale session must be cleared before the anonymous state applies.
	if sess.Token != "" && session.IsTokenExpired(sess.Token) {
		if !t.IsPublic(target) {
			return Decision{Action: Redirect, Target: RouteLogin, ClearSession: true, SessionExpired: true}
		}
		return t.decideCleared(target, Session{})
	}

	return t.decide(target, sess)
}

// decideCleared continues rule evaluation after an expiry-triggered
// clear; the returned decision always carries ClearSession.
func (t Table) decideCleared(target string, sess Session) Decision {
	d := t.decide(target, sess)
	d.ClearSession = true
	return d
}

func (t Table) decide(target string, sess Session) Decision {
	// Rule 2: anonymous sessions only reach public routes.
	if sess.Token == "" {
		if !t.IsPublic(target) {
			return Decision{Action: Redirect, Target: RouteLogin}
		}
		return Decision{Action: Proceed}
	}

	// Rule 3: role-specific routing.
	if sess.Role != "" {
		switch {
		case sess.Role == model.RoleViewer:
			if !t.IsPublic(target) {
				return Decision{Action: Redirect, Target: RouteMonitor}
			}
			return Decision{Action: Proceed}

		case sess.Role == model.RoleUser:
			if t.IsAdminOnly(target) {
				return Decision{Action: Redirect, Target: RouteFormP2H}
			}
			// A logged-in user never sees the login screen or the bare root.
			if target == RouteLogin || target == RouteMain {
				return Decision{Action: Redirect, Target: RouteFormP2H}
			}
			return Decision{Action: Proceed}

		case sess.Role.IsAdmin():
			if target == RouteLogin || target == RouteMain {
				return Decision{Action: Redirect, Target: RouteDashboard}
			}
			return Decision{Action: Proceed}
		}
	}

	// Rule 4: default allow (including unknown roles).
	return Decision{Action: Proceed}
}

// Landing returns the route a freshly logged-in session should land
// on, by role.
func Landing(role model.Role) string {
	switch {
	case role.IsAdmin():
		return RouteDashboard
	case role == model.RoleViewer:
		return RouteMonitor
	default:
		return RouteFormP2H
	}
}
