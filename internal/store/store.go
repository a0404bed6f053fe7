// Package store is the client's local persistence: the browser-facing
// session records (token, role, cached profile) kept in SQLite. Views
// never touch this directly; all access goes through the ui session
// manager.
package store

import (
	"context"

	"github.com/me/p2h/pkg/model"
)

// Store defines the local persistence layer of the web client.
type Store interface {
	CreateSession(ctx context.Context, sess *model.Session) error
	GetSession(ctx context.Context, id string) (*model.Session, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteExpiredSessions(ctx context.Context) (int64, error)

	Close() error
	Migrate(ctx context.Context) error
}
