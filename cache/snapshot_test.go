package cache

import (
	"bytes"
	"path/filepath"
	"testing"
)

func TestStore_PutGetRoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	blob := []byte(`[{"lt5:std":"08:15"}]`)
	if err := store.Put("rail_services", blob); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, ok := store.Get("rail_services")
	if !ok {
		t.Fatal("Get: snapshot missing after Put")
	}
	if !bytes.Equal(got, blob) {
		t.Errorf("Get = %q, want %q", got, blob)
	}
}

func TestStore_PutOverwrites(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if err := store.Put("k", []byte("old")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := store.Put("k", []byte("new")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, _ := store.Get("k")
	if string(got) != "new" {
		t.Errorf("Get = %q, want new", got)
	}
}

func TestStore_GetMissingKey(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if _, ok := store.Get("never_written"); ok {
		t.Error("Get reported a snapshot that was never written")
	}
}

func TestNewStore_CreatesNestedDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if err := store.Put("k", []byte("x")); err != nil {
		t.Errorf("Put into nested dir: %v", err)
	}
}
