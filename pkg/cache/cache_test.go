package cache

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestFileCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	if _, ok, err := c.Get(ctx, "absent"); err != nil || ok {
		t.Fatalf("Get(absent) = %v, %v; want miss", ok, err)
	}

	if err := c.Set(ctx, "k", []byte("flowchart LR\n"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, ok, err := c.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("Get = %v, %v; want hit", ok, err)
	}
	if string(data) != "flowchart LR\n" {
		t.Errorf("Get = %q, want %q", data, "flowchart LR\n")
	}

	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("Get after Delete reports a hit")
	}
	// Deleting again is not an error.
	if err := c.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete(absent): %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "k", []byte("x"), time.Nanosecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	if _, ok, err := c.Get(ctx, "k"); err != nil || ok {
		t.Errorf("Get(expired) = %v, %v; want miss", ok, err)
	}
}

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	if err := c.Set(ctx, "k", []byte("x"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok, err := c.Get(ctx, "k"); err != nil || ok {
		t.Errorf("NullCache stored a value")
	}
}

func TestHash(t *testing.T) {
	a := Hash([]byte("a"))
	b := Hash([]byte("b"))
	if len(a) != 64 {
		t.Errorf("Hash length = %d, want 64", len(a))
	}
	if a == b {
		t.Error("distinct inputs hashed identically")
	}
	if a != Hash([]byte("a")) {
		t.Error("Hash is not deterministic")
	}
}

func TestKeyer(t *testing.T) {
	k := NewDefaultKeyer()
	key := k.RenderKey("abc123")
	if !strings.HasPrefix(key, "render:") {
		t.Errorf("RenderKey = %q, want render: prefix", key)
	}
	if key != k.RenderKey("abc123") {
		t.Error("RenderKey is not deterministic")
	}
	if key == k.RenderKey("def456") {
		t.Error("distinct hashes produced the same key")
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "user:abc:")

	key := scoped.RenderKey("h")
	if !strings.HasPrefix(key, "user:abc:") {
		t.Errorf("RenderKey = %q, want scoped prefix", key)
	}
	if strings.TrimPrefix(key, "user:abc:") != inner.RenderKey("h") {
		t.Error("scoped key does not wrap the inner key")
	}

	// Nil inner falls back to the default keyer.
	fallback := NewScopedKeyer(nil, "p:")
	if !strings.HasPrefix(fallback.RenderKey("h"), "p:render:") {
		t.Errorf("RenderKey = %q, want p:render: prefix", fallback.RenderKey("h"))
	}
}
