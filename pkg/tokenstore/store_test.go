package tokenstore_test

import (
	"context"
	"path/filepath"
	"testing"

	"unified-calendar/pkg/tokenstore"
)

func openStore(t *testing.T) *tokenstore.Store {
	t.Helper()
	store, err := tokenstore.Open(filepath.Join(t.TempDir(), "credentials.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore(t *testing.T) {
	ctx := context.Background()

	t.Run("set and get", func(t *testing.T) {
		store := openStore(t)

		if err := store.Set(ctx, tokenstore.KeyToken, "abc"); err != nil {
			t.Fatalf("set: %v", err)
		}
		got, err := store.Get(ctx, tokenstore.KeyToken)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got != "abc" {
			t.Errorf("expected abc, got %s", got)
		}

		// Upsert replaces.
		if err := store.Set(ctx, tokenstore.KeyToken, "def"); err != nil {
			t.Fatalf("set: %v", err)
		}
		got, _ = store.Get(ctx, tokenstore.KeyToken)
		if got != "def" {
			t.Errorf("expected def after upsert, got %s", got)
		}
	})

	t.Run("missing key is empty not error", func(t *testing.T) {
		store := openStore(t)
		got, err := store.Get(ctx, "nope")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "" {
			t.Errorf("expected empty, got %s", got)
		}
	})

	t.Run("resolve fallback order", func(t *testing.T) {
		store := openStore(t)

		if err := store.Set(ctx, tokenstore.KeyAuthToken, "native"); err != nil {
			t.Fatalf("set: %v", err)
		}
		got, err := store.Resolve(ctx)
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}
		if got != "native" {
			t.Errorf("expected native fallback, got %s", got)
		}

		// The web key wins once present.
		if err := store.Set(ctx, tokenstore.KeyToken, "web"); err != nil {
			t.Fatalf("set: %v", err)
		}
		got, _ = store.Resolve(ctx)
		if got != "web" {
			t.Errorf("expected web key to win, got %s", got)
		}
	})

	t.Run("resolve with no credentials", func(t *testing.T) {
		store := openStore(t)
		got, err := store.Resolve(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "" {
			t.Errorf("expected empty credential, got %s", got)
		}
	})

	t.Run("token source picks up rotation", func(t *testing.T) {
		store := openStore(t)
		ts := store.TokenSource(ctx)

		tok, err := ts.Token()
		if err != nil {
			t.Fatalf("token: %v", err)
		}
		if tok.AccessToken != "" {
			t.Errorf("expected empty access token, got %s", tok.AccessToken)
		}

		if err := store.Set(ctx, tokenstore.KeyToken, "rotated"); err != nil {
			t.Fatalf("set: %v", err)
		}
		tok, err = ts.Token()
		if err != nil {
			t.Fatalf("token: %v", err)
		}
		if tok.AccessToken != "rotated" {
			t.Errorf("expected rotated token, got %s", tok.AccessToken)
		}
	})
}
