// Package identity resolves the stable per-user identifier sent with
// every backend call. A guest id is generated on first run and kept
// forever; an authenticated id, when present, takes precedence without
// destroying the guest id.
package identity

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store is the persistence the resolver needs: a string key-value
// lookup where a missing key yields an empty value and no error.
type Store interface {
	GetPref(ctx context.Context, key string) (string, error)
	SetPref(ctx context.Context, key, value string) error
}

const (
	// GuestKey stores the generated guest identifier.
	GuestKey = "identity.guest"

	// AuthKey stores an authenticated identifier, set externally.
	AuthKey = "identity.auth"

	// EnvUser overrides the resolved identifier for a single process.
	// It is never persisted, so unsetting it restores the stored ids.
	EnvUser = "DEEP_USER"
)

// Resolver loads and mints user identifiers.
type Resolver struct {
	store Store
}

// NewResolver creates a Resolver backed by the given store.
func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// Resolve returns the identifier to use for backend calls. The
// DEEP_USER environment variable wins, then an authenticated id, then
// the guest id, minting and persisting one on first run.
func (r *Resolver) Resolve(ctx context.Context) (string, error) {
	if env := strings.TrimSpace(os.Getenv(EnvUser)); env != "" {
		return env, nil
	}

	auth, err := r.store.GetPref(ctx, AuthKey)
	if err != nil {
		return "", fmt.Errorf("reading auth identity: %w", err)
	}
	if auth != "" {
		return auth, nil
	}

	guest, err := r.store.GetPref(ctx, GuestKey)
	if err != nil {
		return "", fmt.Errorf("reading guest identity: %w", err)
	}
	if guest != "" {
		return guest, nil
	}

	guest = NewID()
	if err := r.store.SetPref(ctx, GuestKey, guest); err != nil {
		return "", fmt.Errorf("persisting guest identity: %w", err)
	}
	return guest, nil
}

// SetAuthenticated records an authenticated identifier. The guest id
// stays in place so signing out restores the original history.
func (r *Resolver) SetAuthenticated(ctx context.Context, id string) error {
	if err := r.store.SetPref(ctx, AuthKey, id); err != nil {
		return fmt.Errorf("persisting auth identity: %w", err)
	}
	return nil
}

// ClearAuthenticated removes the authenticated identifier, falling
// back to the guest id on the next Resolve.
func (r *Resolver) ClearAuthenticated(ctx context.Context) error {
	if err := r.store.SetPref(ctx, AuthKey, ""); err != nil {
		return fmt.Errorf("clearing auth identity: %w", err)
	}
	return nil
}

// NewID mints a fresh identifier. UUIDv4 when entropy is available,
// otherwise a timestamped random token.
func NewID() string {
	if id, err := uuid.NewRandom(); err == nil {
		return id.String()
	}
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("user-%d", time.Now().UnixMilli())
	}
	return fmt.Sprintf("user-%d-%s", time.Now().UnixMilli(), hex.EncodeToString(buf))
}
