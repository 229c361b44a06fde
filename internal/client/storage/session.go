package storage

import (
	"context"

	"github.com/avdeenkov/huddle/pkg/api"
)

// Session represents the durable client session: a bearer token and a cached
// snapshot of the profile it represents. Either field may be absent; the user
// snapshot is meaningful only while a token is present.
type Session struct {
	Token string    // raw token text, "" = absent
	User  *api.User // cached profile, nil = absent
}

// SessionStorage defines interface for persisting the client session.
// The store keeps two independent slots, token and user. An absent field is
// removed from storage rather than written as an empty value, so a reload
// sees "absent" instead of a false empty state. Consistency across the two
// slots is the caller's responsibility, the store is crash-consistent per slot.
type SessionStorage interface {
	// Load reads both slots. Called once at process start.
	// A missing or corrupt entry is purged and reported as absent, not as an error.
	Load(ctx context.Context) (*Session, error)

	// Save writes both slots; an absent field deletes its slot.
	Save(ctx context.Context, session *Session) error

	// Delete removes both slots (logout). Idempotent.
	Delete(ctx context.Context) error

	// ClientID returns the stable per-install identifier generated on first open.
	ClientID(ctx context.Context) (string, error)
}
