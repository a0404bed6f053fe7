package guard

import (
	"encoding/base64"
	"fmt"
	"testing"
	"time"

	"github.com/me/p2h/pkg/model"
)

func jwtWithExp(exp time.Time) string {
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256"}`))
	claims := base64.RawURLEncoding.EncodeToString([]byte(fmt.Sprintf(`{"exp":%d}`, exp.Unix())))
	return header + "." + claims + ".sig"
}

func validToken() string   { return jwtWithExp(time.Now().Add(time.Hour)) }
func expiredToken() string { return jwtWithExp(time.Now().Add(-time.Hour)) }

func TestDecide_Anonymous(t *testing.T) {
	table := DefaultTable()

	cases := []struct {
		name   string
		target string
		want   Decision
	}{
		{"protected route redirects to login", RouteDashboard, Decision{Action: Redirect, Target: RouteLogin}},
		{"user route redirects to login", RouteFormP2H, Decision{Action: Redirect, Target: RouteLogin}},
		{"unlisted route redirects to login", "some-new-screen", Decision{Action: Redirect, Target: RouteLogin}},
		{"login proceeds", RouteLogin, Decision{Action: Proceed}},
		{"monitor proceeds", RouteMonitor, Decision{Action: Proceed}},
		{"root proceeds", RouteMain, Decision{Action: Proceed}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := table.Decide(tc.target, Session{})
			if got != tc.want {
				t.Errorf("Decide(%q, anonymous) = %+v, want %+v", tc.target, got, tc.want)
			}
		})
	}
}

func TestDecide_RoleUser(t *testing.T) {
	table := DefaultTable()
	sess := Session{Token: validToken(), Role: model.RoleUser}

	cases := []struct {
		name   string
		target string
		want   Decision
	}{
		{"admin route blocked", RouteDashboard, Decision{Action: Redirect, Target: RouteFormP2H}},
		{"master data blocked", RouteDataPerusahaan, Decision{Action: Redirect, Target: RouteFormP2H}},
		{"login redirects to landing", RouteLogin, Decision{Action: Redirect, Target: RouteFormP2H}},
		{"root redirects to landing", RouteMain, Decision{Action: Redirect, Target: RouteFormP2H}},
		{"own form proceeds", RouteFormP2H, Decision{Action: Proceed}},
		{"own history proceeds", RouteRiwayatUser, Decision{Action: Proceed}},
		{"public monitor proceeds", RouteMonitor, Decision{Action: Proceed}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := table.Decide(tc.target, sess)
			if got != tc.want {
				t.Errorf("Decide(%q, user) = %+v, want %+v", tc.target, got, tc.want)
			}
		})
	}
}

func TestDecide_RoleAdmin(t *testing.T) {
	table := DefaultTable()

	for _, role := range []model.Role{model.RoleAdmin, model.RoleSuperadmin} {
		sess := Session{Token: validToken(), Role: role}

		if got := table.Decide(RouteLogin, sess); got != (Decision{Action: Redirect, Target: RouteDashboard}) {
			t.Errorf("%s targeting login: got %+v, want redirect to dashboard", role, got)
		}
		if got := table.Decide(RouteMain, sess); got != (Decision{Action: Redirect, Target: RouteDashboard}) {
			t.Errorf("%s targeting root: got %+v, want redirect to dashboard", role, got)
		}
		if got := table.Decide(RouteDataPerusahaan, sess); got != (Decision{Action: Proceed}) {
			t.Errorf("%s targeting master data: got %+v, want proceed", role, got)
		}
		if got := table.Decide(RouteFormP2H, sess); got != (Decision{Action: Proceed}) {
			t.Errorf("%s targeting user form: got %+v, want proceed", role, got)
		}
	}
}

func TestDecide_RoleViewer(t *testing.T) {
	table := DefaultTable()
	sess := Session{Token: validToken(), Role: model.RoleViewer}

	if got := table.Decide(RouteDashboard, sess); got != (Decision{Action: Redirect, Target: RouteMonitor}) {
		t.Errorf("viewer targeting dashboard: got %+v, want redirect to monitor", got)
	}
	if got := table.Decide(RouteFormP2H, sess); got != (Decision{Action: Redirect, Target: RouteMonitor}) {
		t.Errorf("viewer targeting form: got %+v, want redirect to monitor", got)
	}
	if got := table.Decide(RouteMonitor, sess); got != (Decision{Action: Proceed}) {
		t.Errorf("viewer targeting monitor: got %+v, want proceed", got)
	}
	if got := table.Decide(RouteLogin, sess); got != (Decision{Action: Proceed}) {
		t.Errorf("viewer targeting login: got %+v, want proceed", got)
	}
}

func TestDecide_ExpiredToken(t *testing.T) {
	table := DefaultTable()
	sess := Session{Token: expiredToken(), Role: model.RoleAdmin}

	// Protected target: session cleared, redirect to login with notice.
	got := table.Decide(RouteDashboard, sess)
	want := Decision{Action: Redirect, Target: RouteLogin, ClearSession: true, SessionExpired: true}
	if got != want {
		t.Errorf("expired token to dashboard: got %+v, want %+v", got, want)
	}

	// Public target: session cleared, then the public route tolerates
	// the now-anonymous session.
	got = table.Decide(RouteMonitor, sess)
	want = Decision{Action: Proceed, ClearSession: true}
	if got != want {
		t.Errorf("expired token to monitor: got %+v, want %+v", got, want)
	}
}

func TestDecide_MalformedTokenTreatedAsExpired(t *testing.T) {
	table := DefaultTable()
	sess := Session{Token: "not-a-jwt", Role: model.RoleUser}

	got := table.Decide(RouteFormP2H, sess)
	want := Decision{Action: Redirect, Target: RouteLogin, ClearSession: true, SessionExpired: true}
	if got != want {
		t.Errorf("malformed token: got %+v, want %+v", got, want)
	}
}

func TestDecide_UnknownRoleProceeds(t *testing.T) {
	// Inherited permissive default: a role outside the enum matches no
	// role rule and falls through to proceed.
	table := DefaultTable()
	sess := Session{Token: validToken(), Role: model.Role("operator")}

	if got := table.Decide(RouteDashboard, sess); got != (Decision{Action: Proceed}) {
		t.Errorf("unknown role: got %+v, want proceed", got)
	}
}

func TestDecide_Deterministic(t *testing.T) {
	table := DefaultTable()
	sess := Session{Token: validToken(), Role: model.RoleUser}

	first := table.Decide(RouteDashboard, sess)
	for i := 0; i < 10; i++ {
		if got := table.Decide(RouteDashboard, sess); got != first {
			t.Fatalf("decision changed across calls: %+v vs %+v", got, first)
		}
	}
}

func TestClassify_Defaults(t *testing.T) {
	table := DefaultTable()

	if got := table.Classify("brand-new-route"); got != ClassAuthenticated {
		t.Errorf("unlisted route: got %v, want ClassAuthenticated", got)
	}
	if !table.IsPublic(RouteMonitor) {
		t.Error("monitor should be public")
	}
	if !table.IsAdminOnly(RouteKelolaPertanyaan) {
		t.Error("kelola-pertanyaan should be admin only")
	}
}

func TestLanding(t *testing.T) {
	cases := []struct {
		role model.Role
		want string
	}{
		{model.RoleAdmin, RouteDashboard},
		{model.RoleSuperadmin, RouteDashboard},
		{model.RoleViewer, RouteMonitor},
		{model.RoleUser, RouteFormP2H},
		{model.Role("unknown"), RouteFormP2H},
	}
	for _, tc := range cases {
		if got := Landing(tc.role); got != tc.want {
			t.Errorf("Landing(%q) = %q, want %q", tc.role, got, tc.want)
		}
	}
}
