package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/me/p2h/internal/session"
	"github.com/me/p2h/pkg/model"
	"gopkg.in/yaml.v3"
)

func TestDefaultAPI(t *testing.T) {
	t.Setenv("P2H_API_URL", "")
	if got := defaultAPI(); got != "http://localhost:8000" {
		t.Errorf("defaultAPI() = %q", got)
	}

	t.Setenv("P2H_API_URL", "https://p2h.example.com")
	if got := defaultAPI(); got != "https://p2h.example.com" {
		t.Errorf("defaultAPI() with env = %q", got)
	}
}

func TestAnswersFileParsing(t *testing.T) {
	input := `
vehicle: P.309
answers:
  - item: Kondisi rem
    status: normal
  - item: Lampu depan
    status: abnormal
    keterangan: lampu kiri mati
`
	var af answersFile
	if err := yaml.Unmarshal([]byte(input), &af); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if af.Vehicle != "P.309" {
		t.Errorf("vehicle = %q", af.Vehicle)
	}
	if len(af.Answers) != 2 {
		t.Fatalf("answers = %d, want 2", len(af.Answers))
	}
	if af.Answers[1].Keterangan != "lampu kiri mati" {
		t.Errorf("keterangan = %q", af.Answers[1].Keterangan)
	}
}

func TestMatchItem(t *testing.T) {
	items := []model.ChecklistItem{
		{ID: "ci-1", ItemName: "Kondisi rem"},
		{ID: "ci-2", ItemName: "Lampu depan"},
	}

	if it, ok := matchItem(items, "ci-2"); !ok || it.ItemName != "Lampu depan" {
		t.Errorf("match by id failed: %+v %v", it, ok)
	}
	if it, ok := matchItem(items, "kondisi REM"); !ok || it.ID != "ci-1" {
		t.Errorf("case-insensitive name match failed: %+v %v", it, ok)
	}
	if _, ok := matchItem(items, "tidak ada"); ok {
		t.Error("unknown item matched")
	}
}

func TestLoginCommandStoresCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			http.NotFound(w, r)
			return
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["phone_number"] != "0812" {
			t.Errorf("phone_number = %q", body["phone_number"])
		}
		payload, _ := json.Marshal(map[string]any{
			"access_token": "tok-123",
			"token_type":   "bearer",
			"user":         map[string]any{"id": "u1", "full_name": "Budi", "role": "user"},
		})
		json.NewEncoder(w).Encode(map[string]any{
			"status": "success", "message": "ok", "payload": json.RawMessage(payload),
		})
	}))
	defer srv.Close()

	credPath := filepath.Join(t.TempDir(), "credentials.json")

	root := NewRootCmd()
	root.SetArgs([]string{
		"login",
		"--api", srv.URL,
		"--credentials", credPath,
		"--phone", "0812",
		"--password", "rahasia",
	})
	if err := root.Execute(); err != nil {
		t.Fatalf("login: %v", err)
	}

	stored := session.NewFileStore(credPath).Read()
	if stored.Token != "tok-123" {
		t.Errorf("stored token = %q", stored.Token)
	}
	if stored.Role != model.RoleUser {
		t.Errorf("stored role = %q", stored.Role)
	}
	if stored.Profile == nil || stored.Profile.FullName != "Budi" {
		t.Errorf("stored profile = %+v", stored.Profile)
	}
}

func TestLogoutCommandIsIdempotent(t *testing.T) {
	credPath := filepath.Join(t.TempDir(), "credentials.json")

	root := NewRootCmd()
	root.SetArgs([]string{"logout", "--credentials", credPath})
	if err := root.Execute(); err != nil {
		t.Fatalf("logout on empty store: %v", err)
	}
	if _, err := os.Stat(credPath); !os.IsNotExist(err) {
		t.Errorf("credentials file exists after logout: %v", err)
	}
}
