package db

import (
	"path/filepath"
	"testing"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	database, err := Open(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	return database
}

func TestGet_MissingKey(t *testing.T) {
	db := setupTestDB(t)

	value, ok, err := db.Get("missing")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok {
		t.Errorf("Get() ok = true, want false")
	}
	if value != "" {
		t.Errorf("Get() value = %q, want empty", value)
	}
}

func TestSetAndGet(t *testing.T) {
	db := setupTestDB(t)

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "json value", key: "contentgen_usage", value: `{"date":"2026-10-17","count":2}`},
		{name: "flag value", key: "contentgen_premium", value: "true"},
		{name: "empty value", key: "empty", value: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := db.Set(tt.key, tt.value); err != nil {
				t.Fatalf("Set() error = %v", err)
			}
			got, ok, err := db.Get(tt.key)
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if !ok {
				t.Fatalf("Get() ok = false, want true")
			}
			if got != tt.value {
				t.Errorf("Get() = %q, want %q", got, tt.value)
			}
		})
	}
}

func TestSet_Overwrites(t *testing.T) {
	db := setupTestDB(t)

	if err := db.Set("k", "first"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := db.Set("k", "second"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, _, err := db.Get("k")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "second" {
		t.Errorf("Get() = %q, want %q", got, "second")
	}

	entries, err := db.Entries()
	if err != nil {
		t.Fatalf("Entries() error = %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("len(Entries()) = %d, want 1", len(entries))
	}
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)

	if err := db.Set("k", "v"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := db.Delete("k"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok, _ := db.Get("k"); ok {
		t.Error("key still present after Delete()")
	}
	if err := db.Delete("k"); err != nil {
		t.Errorf("Delete() of missing key error = %v", err)
	}
}

func TestOpen_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.db")

	first, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := first.Set("contentgen_premium", "true"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	first.Close()

	second, err := Open(path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer second.Close()

	got, ok, err := second.Get("contentgen_premium")
	if err != nil || !ok || got != "true" {
		t.Errorf("Get() after reopen = %q, %v, %v; want \"true\", true, nil", got, ok, err)
	}
	if second.Path() != path {
		t.Errorf("Path() = %q, want %q", second.Path(), path)
	}
}

func TestMemoryStore(t *testing.T) {
	var s Store = NewMemoryStore()

	if _, ok, _ := s.Get("k"); ok {
		t.Fatal("empty store reported key present")
	}
	if err := s.Set("k", "v"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, ok, err := s.Get("k")
	if err != nil || !ok || got != "v" {
		t.Errorf("Get() = %q, %v, %v; want \"v\", true, nil", got, ok, err)
	}

	if err := s.Delete("k"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok, _ := s.Get("k"); ok {
		t.Error("key still present after Delete()")
	}
	if err := s.Delete("missing"); err != nil {
		t.Errorf("Delete() of missing key error = %v", err)
	}
}

func TestStoreImplementations(t *testing.T) {
	var _ Store = (*DB)(nil)
	var _ Store = (*MemoryStore)(nil)
}
