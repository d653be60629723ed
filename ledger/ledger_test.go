package ledger

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadMissingFileIsEmpty(t *testing.T) {
	dir := t.TempDir()

	l, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if l.Version != Version {
		t.Fatalf("Version = %d, want %d", l.Version, Version)
	}
	langs, keys := l.Stats()
	if langs != 0 || keys != 0 {
		t.Fatalf("Stats() = %d/%d, want 0/0", langs, keys)
	}
	if l.Path() != filepath.Join(dir, FileName) {
		t.Fatalf("Path() = %q", l.Path())
	}
}

func TestRecordAndSolicitedKeys(t *testing.T) {
	dir := t.TempDir()
	l, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}

	l.Record("es", map[string]string{
		"greeting_normal": "Hello {0}",
		"apiError_normal": "Sorry, an error occurred.",
	})

	set := l.SolicitedKeys("es")
	if !set["greeting_normal"] || !set["apiError_normal"] || len(set) != 2 {
		t.Fatalf("SolicitedKeys() = %v", set)
	}
	if got := l.SolicitedKeys("fr"); len(got) != 0 {
		t.Fatalf("SolicitedKeys(fr) = %v, want empty", got)
	}
}

func TestRecordReplacesSet(t *testing.T) {
	dir := t.TempDir()
	l, _ := Load(dir)

	l.Record("de", map[string]string{"old": "x"})
	l.Record("de", map[string]string{"new": "y"})

	set := l.SolicitedKeys("de")
	if set["old"] || !set["new"] {
		t.Fatalf("SolicitedKeys() = %v, want only new", set)
	}
}

func TestIsStale(t *testing.T) {
	dir := t.TempDir()
	l, _ := Load(dir)

	l.Record("fr", map[string]string{"greeting_normal": "Hello {0}"})

	if l.IsStale("fr", "greeting_normal", "Hello {0}") {
		t.Fatal("unchanged canonical value reported stale")
	}
	if !l.IsStale("fr", "greeting_normal", "Hello there {0}") {
		t.Fatal("changed canonical value not reported stale")
	}
	if l.IsStale("fr", "never_requested", "anything") {
		t.Fatal("unsolicited key reported stale")
	}
}

func TestClearAccepted(t *testing.T) {
	dir := t.TempDir()
	l, _ := Load(dir)

	l.Record("it", map[string]string{"a": "1", "b": "2"})
	l.ClearAccepted("it", []string{"a"})

	set := l.SolicitedKeys("it")
	if set["a"] || !set["b"] {
		t.Fatalf("SolicitedKeys() = %v", set)
	}

	// Clearing the last key drops the language entirely.
	l.ClearAccepted("it", []string{"b"})
	if langs := l.Languages(); len(langs) != 0 {
		t.Fatalf("Languages() = %v, want empty", langs)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	l, _ := Load(dir)

	l.Record("ja", map[string]string{"greeting_normal": "Hello {0}"})
	l.Record("ko", map[string]string{"apiError_normal": "Sorry."})
	if err := l.Save(); err != nil {
		t.Fatalf("Save() = %v", err)
	}

	got, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if want := []string{"ja", "ko"}; !reflect.DeepEqual(got.Languages(), want) {
		t.Fatalf("Languages() = %v, want %v", got.Languages(), want)
	}
	if !got.IsStale("ja", "greeting_normal", "changed value") {
		t.Fatal("checksum lost in round trip")
	}
	if got.IsStale("ja", "greeting_normal", "Hello {0}") {
		t.Fatal("round-tripped checksum no longer matches original value")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("solicited: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatal("Load() = nil, want parse error")
	}
}

func TestHash(t *testing.T) {
	// MD5 of empty string is a fixed, well-known value.
	if got := Hash(""); got != "d41d8cd98f00b204e9800998ecf8427e" {
		t.Fatalf("Hash(\"\") = %q", got)
	}
	if Hash("a") == Hash("b") {
		t.Fatal("distinct values should hash differently")
	}
}

func TestStats(t *testing.T) {
	dir := t.TempDir()
	l, _ := Load(dir)

	l.Record("es", map[string]string{"a": "1", "b": "2"})
	l.Record("fr", map[string]string{"c": "3"})

	langs, keys := l.Stats()
	if langs != 2 || keys != 3 {
		t.Fatalf("Stats() = %d/%d, want 2/3", langs, keys)
	}
}
