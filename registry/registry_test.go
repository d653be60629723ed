package registry

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFinalizeMergesCategories(t *testing.T) {
	r := New()
	r.Register("admin", map[string]string{
		"adminBlock_normal": "The user {1} has been blocked.",
		"adminBlock_pirate": "Arrr, {1} walks the plank!",
	})
	r.Register("general", map[string]string{
		"apiError_normal": "Sorry, an error occurred.",
	})

	if err := r.Finalize(); err != nil {
		t.Fatalf("Finalize() = %v", err)
	}
	if r.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", r.Len())
	}

	want := []string{"adminBlock_normal", "adminBlock_pirate", "apiError_normal"}
	if got := r.AllKeys(); !reflect.DeepEqual(got, want) {
		t.Fatalf("AllKeys() = %v, want %v", got, want)
	}

	v, err := r.Value("apiError_normal")
	if err != nil {
		t.Fatalf("Value() = %v", err)
	}
	if v != "Sorry, an error occurred." {
		t.Fatalf("Value() = %q", v)
	}
}

func TestFinalizeConflictIsFatal(t *testing.T) {
	r := New()
	r.Register("admin", map[string]string{"greeting_normal": "Hello {0}"})
	r.Register("general", map[string]string{"greeting_normal": "Hi there {0}"})

	err := r.Finalize()
	if err == nil {
		t.Fatal("Finalize() should fail on conflicting values")
	}
	var dup *DuplicateKeyError
	if !errors.As(err, &dup) {
		t.Fatalf("error type = %T, want *DuplicateKeyError", err)
	}
	if dup.Key != "greeting_normal" {
		t.Fatalf("dup.Key = %q", dup.Key)
	}
	if dup.Existing != "admin" || dup.Category != "general" {
		t.Fatalf("dup categories = %q/%q, want admin/general", dup.Existing, dup.Category)
	}
}

func TestFinalizeIdenticalValueIsIdempotent(t *testing.T) {
	r := New()
	r.Register("admin", map[string]string{"greeting_normal": "Hello {0}"})
	r.Register("general", map[string]string{"greeting_normal": "Hello {0}"})

	if err := r.Finalize(); err != nil {
		t.Fatalf("Finalize() = %v, want nil for identical redefinition", err)
	}
	if r.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", r.Len())
	}
}

func TestValueUnknownKey(t *testing.T) {
	r := New()
	r.Register("general", map[string]string{"a": "x"})
	if err := r.Finalize(); err != nil {
		t.Fatalf("Finalize() = %v", err)
	}

	_, err := r.Value("nope")
	var unknown *UnknownKeyError
	if !errors.As(err, &unknown) {
		t.Fatalf("error type = %T, want *UnknownKeyError", err)
	}
	if unknown.Key != "nope" {
		t.Fatalf("unknown.Key = %q", unknown.Key)
	}
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "extra.toml")
	content := `[strings]
promoBanner_normal = "Check out {0}!"
promoBanner_pirate = "Avast! Behold {0}!"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	r := New()
	if err := r.LoadTOML("promo", path); err != nil {
		t.Fatalf("LoadTOML() = %v", err)
	}
	if err := r.Finalize(); err != nil {
		t.Fatalf("Finalize() = %v", err)
	}

	e, ok := r.Lookup("promoBanner_pirate")
	if !ok {
		t.Fatal("promoBanner_pirate not found")
	}
	if e.Category != "promo" {
		t.Fatalf("Category = %q, want promo", e.Category)
	}
	if e.Value != "Avast! Behold {0}!" {
		t.Fatalf("Value = %q", e.Value)
	}
}

func TestLoadTOMLMissingStringsTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(path, []byte("[other]\nx = \"y\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	r := New()
	if err := r.LoadTOML("bad", path); err == nil {
		t.Fatal("LoadTOML() should fail without a [strings] table")
	}
}

func TestCategories(t *testing.T) {
	r := New()
	r.Register("admin", map[string]string{"a": "1"})
	r.Register("general", map[string]string{"b": "2"})

	want := []string{"admin", "general"}
	if got := r.Categories(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Categories() = %v, want %v", got, want)
	}
}
