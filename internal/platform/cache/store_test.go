package cache

import (
	"testing"
	"time"
)

func TestStore_SetGet(t *testing.T) {
	store := NewStore(time.Minute)

	store.Set(t.Context(), "k", 42)

	got, ok := store.Get(t.Context(), "k")
	if !ok || got.(int) != 42 {
		t.Fatalf("expected cached 42, got %v %v", got, ok)
	}

	if _, ok := store.Get(t.Context(), "missing"); ok {
		t.Fatalf("unexpected hit for missing key")
	}
}

func TestStore_Expiry(t *testing.T) {
	store := NewStore(time.Millisecond)

	store.Set(t.Context(), "k", "v")
	time.Sleep(5 * time.Millisecond)

	if _, ok := store.Get(t.Context(), "k"); ok {
		t.Fatalf("expected entry to expire")
	}
}

func TestStore_ZeroTTLNeverExpires(t *testing.T) {
	store := NewStore(0)

	store.Set(t.Context(), "k", "v")
	time.Sleep(2 * time.Millisecond)

	if _, ok := store.Get(t.Context(), "k"); !ok {
		t.Fatalf("zero-ttl entries must not expire")
	}
}

func TestStore_DeleteAndFlush(t *testing.T) {
	store := NewStore(time.Minute)

	store.Set(t.Context(), "a", 1)
	store.Set(t.Context(), "b", 2)

	store.Delete(t.Context(), "a")
	if _, ok := store.Get(t.Context(), "a"); ok {
		t.Fatalf("expected delete to remove the entry")
	}

	store.Flush(t.Context())
	if _, ok := store.Get(t.Context(), "b"); ok {
		t.Fatalf("expected flush to drop everything")
	}
}

func TestStore_NilReceiverIsSafe(t *testing.T) {
	var store *Store

	store.Set(t.Context(), "k", "v")
	if _, ok := store.Get(t.Context(), "k"); ok {
		t.Fatalf("nil store must miss")
	}
	store.Delete(t.Context(), "k")
	store.Flush(t.Context())
}
