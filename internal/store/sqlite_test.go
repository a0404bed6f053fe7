package store

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/me/p2h/pkg/model"
)

func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st, err := NewSQLiteStore(":memory:", logger)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := st.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return st
}

func TestSessionRoundTrip(t *testing.T) {
	st := setupTestStore(t)
	defer st.Close()
	ctx := context.Background()

	sess := &model.Session{
		ID:       "sess_1",
		UserID:   "u-1",
		FullName: "Budi Santoso",
		Role:     model.RoleAdmin,
		Token:    "tok-abc",
		TokenExp: time.Now().Add(time.Hour).Truncate(time.Second),
		Profile: &model.User{
			ID:       "u-1",
			FullName: "Budi Santoso",
			Role:     model.RoleAdmin,
			Kategori: model.KategoriIMM,
		},
		CreatedAt: time.Now().Truncate(time.Second),
		ExpiresAt: time.Now().Add(24 * time.Hour).Truncate(time.Second),
	}
	if err := st.CreateSession(ctx, sess); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	got, err := st.GetSession(ctx, "sess_1")
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected session")
	}
	if got.Token != "tok-abc" {
		t.Errorf("expected token 'tok-abc', got %q", got.Token)
	}
	if got.Role != model.RoleAdmin {
		t.Errorf("expected role admin, got %q", got.Role)
	}
	if !got.TokenExp.Equal(sess.TokenExp) {
		t.Errorf("expected token exp %v, got %v", sess.TokenExp, got.TokenExp)
	}
	if got.Profile == nil || got.Profile.Kategori != model.KategoriIMM {
		t.Errorf("expected profile to round-trip, got %+v", got.Profile)
	}
}

func TestSessionWithoutTokenExp(t *testing.T) {
	st := setupTestStore(t)
	defer st.Close()
	ctx := context.Background()

	sess := &model.Session{
		ID:        "sess_noexp",
		UserID:    "u-2",
		Role:      model.RoleUser,
		Token:     "tok",
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	if err := st.CreateSession(ctx, sess); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	got, err := st.GetSession(ctx, "sess_noexp")
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if !got.TokenExp.IsZero() {
		t.Errorf("expected zero token exp, got %v", got.TokenExp)
	}
	if got.Profile != nil {
		t.Errorf("expected nil profile, got %+v", got.Profile)
	}
}

func TestGetSession_NotFound(t *testing.T) {
	st := setupTestStore(t)
	defer st.Close()

	got, err := st.GetSession(context.Background(), "missing")
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing session, got %+v", got)
	}
}

func TestDeleteSession(t *testing.T) {
	st := setupTestStore(t)
	defer st.Close()
	ctx := context.Background()

	sess := &model.Session{
		ID: "sess_del", UserID: "u-1", Token: "tok",
		CreatedAt: time.Now(), ExpiresAt: time.Now().Add(time.Hour),
	}
	if err := st.CreateSession(ctx, sess); err != nil {
		t.Fatal(err)
	}
	if err := st.DeleteSession(ctx, "sess_del"); err != nil {
		t.Fatalf("DeleteSession failed: %v", err)
	}

	got, _ := st.GetSession(ctx, "sess_del")
	if got != nil {
		t.Error("expected session to be gone")
	}

	// Deleting a missing session is not an error.
	if err := st.DeleteSession(ctx, "sess_del"); err != nil {
		t.Errorf("second delete failed: %v", err)
	}
}

func TestDeleteExpiredSessions(t *testing.T) {
	st := setupTestStore(t)
	defer st.Close()
	ctx := context.Background()

	live := &model.Session{
		ID: "sess_live", UserID: "u-1", Token: "tok",
		CreatedAt: time.Now(), ExpiresAt: time.Now().Add(time.Hour),
	}
	stale := &model.Session{
		ID: "sess_stale", UserID: "u-2", Token: "tok",
		CreatedAt: time.Now().Add(-2 * time.Hour), ExpiresAt: time.Now().Add(-time.Hour),
	}
	for _, s := range []*model.Session{live, stale} {
		if err := st.CreateSession(ctx, s); err != nil {
			t.Fatal(err)
		}
	}

	n, err := st.DeleteExpiredSessions(ctx)
	if err != nil {
		t.Fatalf("DeleteExpiredSessions failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 deleted, got %d", n)
	}

	if got, _ := st.GetSession(ctx, "sess_live"); got == nil {
		t.Error("live session should survive")
	}
	if got, _ := st.GetSession(ctx, "sess_stale"); got != nil {
		t.Error("stale session should be deleted")
	}
}
