// Package registry implements the canonical template registry: the
// master (source-language) key→value tables, merged from named category
// tables with uniqueness enforced across categories.
//
// Categories are registered individually and merged through an explicit
// Finalize step, so a key defined twice with conflicting values is a
// hard startup error rather than a silent last-writer-wins.
package registry

import (
	"fmt"
	"os"
	"sort"

	toml "github.com/pelletier/go-toml/v2"
)

// Entry is one canonical template record.
type Entry struct {
	Key      string
	Category string
	Value    string
}

// DuplicateKeyError reports a key defined with conflicting values in two
// categories. This is fatal: the canonical truth is ambiguous.
type DuplicateKeyError struct {
	Key        string
	Category   string // category attempting the redefinition
	Existing   string // category that already owns the key
	Value      string
	OtherValue string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate template key %q: defined in category %q and %q with different values",
		e.Key, e.Existing, e.Category)
}

// UnknownKeyError reports a lookup of a key absent from the registry.
type UnknownKeyError struct {
	Key string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown template key %q", e.Key)
}

// Registry holds the canonical key set. Register categories first, then
// call Finalize once; lookups before Finalize fail.
type Registry struct {
	categories []string
	pending    []Entry
	entries    map[string]Entry
	finalized  bool
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{}
}

// Register ingests a named category table. Safe to call multiple times
// with different categories; conflicts surface in Finalize.
func (r *Registry) Register(category string, mapping map[string]string) {
	r.categories = append(r.categories, category)
	keys := make([]string, 0, len(mapping))
	for k := range mapping {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		r.pending = append(r.pending, Entry{Key: k, Category: category, Value: mapping[k]})
	}
}

// LoadTOML reads a category table from a TOML file of the form
//
//	[strings]
//	someKey_normal = "Some value with {0}"
//
// and registers it under the given category name.
func (r *Registry) LoadTOML(category, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var doc struct {
		Strings map[string]string `toml:"strings"`
	}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(doc.Strings) == 0 {
		return fmt.Errorf("%s: no [strings] table found", path)
	}

	r.Register(category, doc.Strings)
	return nil
}

// Finalize merges all registered categories into the canonical key set.
// The same key appearing in two categories with the same value is
// idempotent and allowed; a conflicting value is a DuplicateKeyError.
func (r *Registry) Finalize() error {
	entries := make(map[string]Entry, len(r.pending))
	for _, e := range r.pending {
		if existing, ok := entries[e.Key]; ok {
			if existing.Value != e.Value {
				return &DuplicateKeyError{
					Key:        e.Key,
					Category:   e.Category,
					Existing:   existing.Category,
					Value:      e.Value,
					OtherValue: existing.Value,
				}
			}
			continue
		}
		entries[e.Key] = e
	}

	r.entries = entries
	r.finalized = true
	return nil
}

// AllKeys returns the canonical key set in sorted order.
func (r *Registry) AllKeys() []string {
	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Value returns the canonical template value for a key.
func (r *Registry) Value(key string) (string, error) {
	e, ok := r.entries[key]
	if !ok {
		return "", &UnknownKeyError{Key: key}
	}
	return e.Value, nil
}

// Lookup returns the full entry for a key.
func (r *Registry) Lookup(key string) (Entry, bool) {
	e, ok := r.entries[key]
	return e, ok
}

// Has reports whether the key exists in the canonical set.
func (r *Registry) Has(key string) bool {
	_, ok := r.entries[key]
	return ok
}

// Len returns the number of canonical keys.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Categories returns the registered category names in registration order.
func (r *Registry) Categories() []string {
	return append([]string(nil), r.categories...)
}
