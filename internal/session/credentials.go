package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/me/p2h/pkg/model"
)

const credentialsFileName = "credentials.json"

// Credentials is the persisted session state: the bearer token, the
// resolved role, and the cached profile blob. An empty Token means
// anonymous regardless of the other fields.
type Credentials struct {
	Token   string      `json:"token"`
	Role    model.Role  `json:"role,omitempty"`
	Profile *model.User `json:"profile,omitempty"`
}

// Anonymous reports whether no credential is stored.
func (c Credentials) Anonymous() bool { return c.Token == "" }

// Store is the process-wide session store. All reads and writes of the
// persisted token/role/profile go through it; nothing else touches the
// credentials file.
type Store interface {
	// Read returns the current credentials. Storage is consulted
	// lazily on the first call and cached for the process lifetime;
	// a missing or unreadable file degrades to anonymous.
	Read() Credentials
	// Write persists token, role, and profile together.
	Write(creds Credentials) error
	// Clear removes the stored credentials from disk and memory.
	// Idempotent: clearing an empty store is not an error.
	Clear() error
}

// FileStore keeps credentials in a JSON file (default
// ~/.p2h/credentials.json), mirroring what a browser keeps in local
// storage.
type FileStore struct {
	path string

	mu     sync.Mutex
	loaded bool
	cached Credentials
}

// NewFileStore creates a store backed by the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath returns the default credentials file location
// (~/.p2h/credentials.json).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("find home directory: %w", err)
	}
	return filepath.Join(home, ".p2h", credentialsFileName), nil
}

// Read implements Store.
func (s *FileStore) Read() Credentials {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		s.cached = s.load()
		s.loaded = true
	}
	return s.cached
}

// Write implements Store. The file is written with a rename so a
// concurrent reader never observes a half-written credential.
func (s *FileStore) Write(creds Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal credentials: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}

	s.cached = creds
	s.loaded = true
	return nil
}

// Clear implements Store.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cached = Credentials{}
	s.loaded = true

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear credentials: %w", err)
	}
	return nil
}

func (s *FileStore) load() Credentials {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Credentials{}
	}
	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return Credentials{}
	}
	return creds
}
