package identity

import (
	"context"
	"errors"
	"testing"
)

type memStore struct {
	prefs   map[string]string
	failGet bool
}

func newMemStore() *memStore {
	return &memStore{prefs: make(map[string]string)}
}

func (m *memStore) GetPref(_ context.Context, key string) (string, error) {
	if m.failGet {
		return "", errors.New("store offline")
	}
	return m.prefs[key], nil
}

func (m *memStore) SetPref(_ context.Context, key, value string) error {
	m.prefs[key] = value
	return nil
}

func TestResolveMintsGuestOnce(t *testing.T) {
	store := newMemStore()
	r := NewResolver(store)
	ctx := context.Background()

	first, err := r.Resolve(ctx)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if first == "" {
		t.Fatal("expected a minted guest id")
	}
	if store.prefs[GuestKey] != first {
		t.Errorf("guest id not persisted: %q", store.prefs[GuestKey])
	}

	second, err := r.Resolve(ctx)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if second != first {
		t.Errorf("guest id changed between runs: %q then %q", first, second)
	}
}

func TestAuthenticatedTakesPrecedence(t *testing.T) {
	store := newMemStore()
	r := NewResolver(store)
	ctx := context.Background()

	guest, err := r.Resolve(ctx)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if err := r.SetAuthenticated(ctx, "member-42"); err != nil {
		t.Fatalf("SetAuthenticated: %v", err)
	}
	got, err := r.Resolve(ctx)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "member-42" {
		t.Errorf("Resolve = %q, want authenticated id", got)
	}
	if store.prefs[GuestKey] != guest {
		t.Error("guest id must survive sign-in")
	}

	if err := r.ClearAuthenticated(ctx); err != nil {
		t.Fatalf("ClearAuthenticated: %v", err)
	}
	got, err = r.Resolve(ctx)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != guest {
		t.Errorf("Resolve after sign-out = %q, want original guest id %q", got, guest)
	}
}

func TestEnvOverrideWinsWithoutPersisting(t *testing.T) {
	store := newMemStore()
	r := NewResolver(store)
	ctx := context.Background()

	if err := r.SetAuthenticated(ctx, "member-42"); err != nil {
		t.Fatalf("SetAuthenticated: %v", err)
	}

	t.Setenv(EnvUser, "review-user")
	got, err := r.Resolve(ctx)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "review-user" {
		t.Errorf("Resolve = %q, want env override", got)
	}
	if store.prefs[GuestKey] != "" {
		t.Error("env override must not mint a guest id")
	}

	t.Setenv(EnvUser, "  ")
	got, err = r.Resolve(ctx)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != "member-42" {
		t.Errorf("Resolve with blank env = %q, want stored auth id", got)
	}
}

func TestResolveStoreError(t *testing.T) {
	store := newMemStore()
	store.failGet = true
	if _, err := NewResolver(store).Resolve(context.Background()); err == nil {
		t.Fatal("expected error from failing store")
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		if id == "" {
			t.Fatal("empty id")
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}
