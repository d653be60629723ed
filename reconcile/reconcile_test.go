package reconcile

import (
	"reflect"
	"testing"

	"github.com/translation-bot/catsync/catalog"
)

func cat(lang string, entries map[string]string) *catalog.File {
	return &catalog.File{Lang: lang, Entries: entries}
}

func TestReconcileMissingAndOrphans(t *testing.T) {
	canonical := []string{"a", "b", "c"}
	c := cat("es", map[string]string{
		"b":      "translated",
		"legacy": "old key no longer canonical",
	})

	got := Reconcile(canonical, c, nil)

	if want := []string{"a", "c"}; !reflect.DeepEqual(got.Missing, want) {
		t.Fatalf("Missing = %v, want %v", got.Missing, want)
	}
	if want := []string{"legacy"}; !reflect.DeepEqual(got.Orphans, want) {
		t.Fatalf("Orphans = %v, want %v", got.Orphans, want)
	}
}

func TestReconcileUpToDateCatalog(t *testing.T) {
	canonical := []string{"a", "b"}
	c := cat("fr", map[string]string{"a": "x", "b": "y"})

	got := Reconcile(canonical, c, nil)
	if len(got.Missing) != 0 || len(got.Orphans) != 0 {
		t.Fatalf("Reconcile() = %+v, want empty result", got)
	}
}

func TestReconcileForceSurfacesTranslatedKey(t *testing.T) {
	canonical := []string{"a", "b"}
	c := cat("de", map[string]string{"a": "stale", "b": "fine"})

	got := Reconcile(canonical, c, []string{"a"})

	if want := []string{"a"}; !reflect.DeepEqual(got.Missing, want) {
		t.Fatalf("Missing = %v, want %v", got.Missing, want)
	}
	// The drop is in-memory only.
	if c.Entries["a"] != "stale" {
		t.Fatalf("catalog mutated: %v", c.Entries)
	}
}

func TestReconcileForceUnknownKeyIsHarmless(t *testing.T) {
	canonical := []string{"a"}
	c := cat("it", map[string]string{"a": "x"})

	got := Reconcile(canonical, c, []string{"never-existed"})
	if len(got.Missing) != 0 || len(got.Orphans) != 0 {
		t.Fatalf("Reconcile() = %+v, want empty result", got)
	}
}

func TestReconcileEmptyCatalog(t *testing.T) {
	canonical := []string{"b", "a", "c"}
	got := Reconcile(canonical, cat("ja", map[string]string{}), nil)

	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(got.Missing, want) {
		t.Fatalf("Missing = %v, want %v (sorted)", got.Missing, want)
	}
}

func TestReconcileIsIdempotent(t *testing.T) {
	canonical := []string{"a", "b", "c"}
	c := cat("ko", map[string]string{"b": "x", "orphan": "y"})

	first := Reconcile(canonical, c, []string{"b"})
	second := Reconcile(canonical, c, []string{"b"})
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("results differ across runs: %+v != %+v", first, second)
	}
}

func TestMissingSet(t *testing.T) {
	r := Result{Missing: []string{"a", "b"}}
	set := r.MissingSet()
	if !set["a"] || !set["b"] || set["c"] {
		t.Fatalf("MissingSet() = %v", set)
	}
}
