package ui

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/me/p2h/internal/api"
	"github.com/me/p2h/internal/store"
	"github.com/me/p2h/pkg/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func makeJWT(t *testing.T, claims map[string]any) string {
	t.Helper()
	body, err := json.Marshal(claims)
	if err != nil {
		t.Fatal(err)
	}
	enc := base64.RawURLEncoding
	return enc.EncodeToString([]byte(`{"alg":"HS256"}`)) + "." +
		enc.EncodeToString(body) + "." +
		enc.EncodeToString([]byte("sig"))
}

// newTestUI wires the UI against an in-memory store and a backend stub.
func newTestUI(t *testing.T, backend http.Handler) (*UI, *httptest.Server) {
	t.Helper()

	st, err := store.NewSQLiteStore(":memory:", testLogger())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	if err := st.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	client := api.NewClient(srv.URL, testLogger())
	u := New(client, st, testLogger(), Config{Language: "id"})

	app := chi.NewRouter()
	u.RegisterRoutes(app)
	front := httptest.NewServer(app)
	t.Cleanup(front.Close)

	return u, front
}

// loginSession creates a session directly and returns its cookie.
func loginSession(t *testing.T, u *UI, role model.Role, exp time.Time) *http.Cookie {
	t.Helper()
	token := makeJWT(t, map[string]any{"sub": "u1", "role": string(role), "exp": exp.Unix()})
	sess, err := u.sessions.CreateSession(context.Background(), &model.User{
		ID: "u1", FullName: "Budi", Role: role,
	}, token, exp)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	return &http.Cookie{Name: SessionCookieName, Value: sess.ID}
}

// noRedirectClient returns redirects to the caller instead of following.
func noRedirectClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func envelope(w http.ResponseWriter, payload any) {
	raw, _ := json.Marshal(payload)
	json.NewEncoder(w).Encode(map[string]any{
		"status":  "success",
		"message": "ok",
		"payload": json.RawMessage(raw),
	})
}

func TestRouteName(t *testing.T) {
	cases := map[string]string{
		"/":                           "main",
		"":                            "main",
		"/login":                      "login",
		"/form-p2h":                   "form-p2h",
		"/data-perusahaan/42/delete":  "data-perusahaan",
		"/kelola-pertanyaan/7/delete": "kelola-pertanyaan",
	}
	for path, want := range cases {
		if got := RouteName(path); got != want {
			t.Errorf("RouteName(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestGuardMiddleware_AnonymousRedirectedToLogin(t *testing.T) {
	_, front := newTestUI(t, http.NotFoundHandler())

	resp, err := noRedirectClient().Get(front.URL + "/form-p2h")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Errorf("Location = %q, want /login", loc)
	}
}

func TestGuardMiddleware_UserBlockedFromAdminScreen(t *testing.T) {
	u, front := newTestUI(t, http.NotFoundHandler())
	cookie := loginSession(t, u, model.RoleUser, time.Now().Add(time.Hour))

	req, _ := http.NewRequest(http.MethodGet, front.URL+"/dashboard", nil)
	req.AddCookie(cookie)
	resp, err := noRedirectClient().Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/form-p2h" {
		t.Errorf("Location = %q, want /form-p2h", loc)
	}
}

func TestGuardMiddleware_AdminAtLoginSentToDashboard(t *testing.T) {
	u, front := newTestUI(t, http.NotFoundHandler())
	cookie := loginSession(t, u, model.RoleAdmin, time.Now().Add(time.Hour))

	req, _ := http.NewRequest(http.MethodGet, front.URL+"/login", nil)
	req.AddCookie(cookie)
	resp, err := noRedirectClient().Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if loc := resp.Header.Get("Location"); loc != "/dashboard" {
		t.Errorf("Location = %q, want /dashboard", loc)
	}
}

func TestGuardMiddleware_ExpiredTokenClearsSessionAndNotifies(t *testing.T) {
	u, front := newTestUI(t, http.NotFoundHandler())
	cookie := loginSession(t, u, model.RoleUser, time.Now().Add(-time.Minute))

	req, _ := http.NewRequest(http.MethodGet, front.URL+"/form-p2h", nil)
	req.AddCookie(cookie)
	resp, err := noRedirectClient().Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if loc := resp.Header.Get("Location"); loc != "/login?notice=session_expired" {
		t.Errorf("Location = %q, want login with session_expired notice", loc)
	}

	// The session row must be gone.
	sess, err := u.sessions.GetSession(context.Background(), cookie.Value)
	if err != nil {
		t.Fatal(err)
	}
	if sess != nil {
		t.Error("session still present after expired-token redirect")
	}

	var cleared bool
	for _, c := range resp.Cookies() {
		if c.Name == SessionCookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("session cookie not cleared")
	}
}

func TestGuardMiddleware_ExpiredTokenOnPublicRouteProceeds(t *testing.T) {
	u, front := newTestUI(t, http.NotFoundHandler())
	cookie := loginSession(t, u, model.RoleUser, time.Now().Add(-time.Minute))

	req, _ := http.NewRequest(http.MethodGet, front.URL+"/monitor-kendaraan", nil)
	req.AddCookie(cookie)
	resp, err := noRedirectClient().Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	// Public screen renders, but the stale session is still dropped.
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	sess, _ := u.sessions.GetSession(context.Background(), cookie.Value)
	if sess != nil {
		t.Error("stale session survived a public-route visit")
	}
}

func TestLoginFlow(t *testing.T) {
	token := ""
	backend := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		envelope(w, map[string]any{
			"access_token": token,
			"token_type":   "bearer",
			"user": map[string]any{
				"id": "u9", "full_name": "Sari", "role": "admin",
			},
		})
	})

	u, front := newTestUI(t, backend)
	token = makeJWT(t, map[string]any{"sub": "u9", "role": "admin", "exp": time.Now().Add(time.Hour).Unix()})

	form := formBody(map[string]string{"phone_number": "0812", "password": "secret"})
	req, _ := http.NewRequest(http.MethodPost, front.URL+"/login", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := noRedirectClient().Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if loc := resp.Header.Get("Location"); loc != "/dashboard" {
		t.Errorf("Location = %q, want /dashboard", loc)
	}

	var sessCookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == SessionCookieName {
			sessCookie = c
		}
	}
	if sessCookie == nil || sessCookie.Value == "" {
		t.Fatal("no session cookie set")
	}
	sess, err := u.sessions.GetSession(context.Background(), sessCookie.Value)
	if err != nil || sess == nil {
		t.Fatalf("session not stored: %v", err)
	}
	if sess.Role != model.RoleAdmin || sess.Token != token {
		t.Errorf("stored session = role %q token %q", sess.Role, sess.Token)
	}
}

func TestLoginWrongPasswordShowsBackendMessage(t *testing.T) {
	backend := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"status": "error", "message": "Nomor HP atau password salah",
		})
	})

	_, front := newTestUI(t, backend)

	form := formBody(map[string]string{"phone_number": "0812", "password": "salah"})
	req, _ := http.NewRequest(http.MethodPost, front.URL+"/login", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := noRedirectClient().Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	// Rejected credentials re-render the login form with the backend's
	// message; no redirect, no session.
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Nomor HP atau password salah") {
		t.Error("backend login message missing from rendered page")
	}

	for _, c := range resp.Cookies() {
		if c.Name == SessionCookieName && c.Value != "" {
			t.Error("session cookie set after rejected login")
		}
	}
}

func TestBackendForbiddenShowsForbiddenNotice(t *testing.T) {
	backend := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	u, front := newTestUI(t, backend)
	cookie := loginSession(t, u, model.RoleAdmin, time.Now().Add(time.Hour))

	req, _ := http.NewRequest(http.MethodGet, front.URL+"/dashboard", nil)
	req.AddCookie(cookie)
	resp, err := noRedirectClient().Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if loc := resp.Header.Get("Location"); loc != "/login?notice=forbidden" {
		t.Errorf("Location = %q, want login redirect with forbidden notice", loc)
	}
}

func TestBackendAuthFailureForcesLogout(t *testing.T) {
	backend := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	u, front := newTestUI(t, backend)
	cookie := loginSession(t, u, model.RoleAdmin, time.Now().Add(time.Hour))

	req, _ := http.NewRequest(http.MethodGet, front.URL+"/dashboard", nil)
	req.AddCookie(cookie)
	resp, err := noRedirectClient().Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if loc := resp.Header.Get("Location"); loc != "/login?notice=session_expired" {
		t.Errorf("Location = %q, want login redirect with notice", loc)
	}
	sess, _ := u.sessions.GetSession(context.Background(), cookie.Value)
	if sess != nil {
		t.Error("session row survived backend auth failure")
	}
}

func TestMasterDataList(t *testing.T) {
	backend := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/master-data/companies" {
			http.NotFound(w, r)
			return
		}
		envelope(w, []map[string]any{
			{"id": "c1", "nama_perusahaan": "PT Indo Tambang"},
		})
	})

	u, front := newTestUI(t, backend)
	cookie := loginSession(t, u, model.RoleAdmin, time.Now().Add(time.Hour))

	req, _ := http.NewRequest(http.MethodGet, front.URL+"/data-perusahaan", nil)
	req.AddCookie(cookie)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "PT Indo Tambang") {
		t.Error("company name missing from rendered page")
	}
}

func TestSessionManager_TokenExpiredSessionStillReturned(t *testing.T) {
	st, err := store.NewSQLiteStore(":memory:", testLogger())
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()
	if err := st.Migrate(context.Background()); err != nil {
		t.Fatal(err)
	}
	sm := NewSessionManager(st)

	// Token already expired; the session row must survive the lookup so
	// the guard can run its clear-and-notify transition.
	tokenExp := time.Now().Add(-time.Minute)
	created, err := sm.CreateSession(context.Background(), &model.User{ID: "u1"}, "tok", tokenExp)
	if err != nil {
		t.Fatal(err)
	}

	got, err := sm.GetSession(context.Background(), created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("token-expired session dropped by lookup")
	}
	if !got.IsTokenExpired() {
		t.Error("IsTokenExpired() = false for past token expiry")
	}
}

// formBody encodes a flat form body.
func formBody(values map[string]string) string {
	parts := make([]string, 0, len(values))
	for k, v := range values {
		parts = append(parts, fmt.Sprintf("%s=%s", k, v))
	}
	return strings.Join(parts, "&")
}
