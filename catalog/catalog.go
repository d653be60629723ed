// Package catalog implements loading and saving of per-language string
// catalogs. Each language owns one flat JSON file:
//
//	{
//	    "adminBlockConfirm_normal": "...",
//	    "adminBlockConfirm_pirate": ""
//	}
//
// A missing file is an empty catalog (first encounter of a language);
// malformed data is a CorruptError scoped to that language. Saves are
// atomic: the new content is written to a temp file in the same
// directory and renamed over the old one, so a crash leaves either the
// old or the fully new catalog, never a partial write.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// CorruptError reports a catalog file that is not a well-formed flat
// key→string mapping. Per-language and recoverable: the language is
// skipped for the run, others proceed.
type CorruptError struct {
	Lang string
	Path string
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("corrupt catalog for %s (%s): %v", e.Lang, e.Path, e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }

// File is one language's catalog held in memory.
type File struct {
	Lang    string
	Entries map[string]string
}

// Path returns the catalog file path for a language.
func Path(dir, lang string) string {
	return filepath.Join(dir, lang+".json")
}

// Load reads the catalog for a language. A missing file yields an empty
// catalog; malformed content yields a CorruptError.
func Load(dir, lang string) (*File, error) {
	path := Path(dir, lang)
	f := &File{Lang: lang, Entries: make(map[string]string)}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return f, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &f.Entries); err != nil {
		return nil, &CorruptError{Lang: lang, Path: path, Err: err}
	}
	if f.Entries == nil {
		f.Entries = make(map[string]string)
	}
	return f, nil
}

// Save writes the catalog atomically. Keys are sorted and the output is
// 4-space indented so diffs between runs stay reviewable.
func (f *File) Save(dir string) error {
	path := Path(dir, f.Lang)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+f.Lang+"-*.json.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(f.Marshal()); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing %s: %w", tmpPath, err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("chmod %s: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// Marshal renders the catalog as sorted, 4-space indented JSON.
func (f *File) Marshal() []byte {
	keys := f.Keys()

	var b strings.Builder
	b.WriteString("{\n")
	for i, k := range keys {
		b.WriteString("    ")
		b.Write(jsonString(k))
		b.WriteString(": ")
		b.Write(jsonString(f.Entries[k]))
		if i < len(keys)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString("}\n")
	return []byte(b.String())
}

// jsonString encodes one string as a JSON string literal. Go-style
// quoting is not enough here: strconv.Quote emits escapes like \a that
// JSON does not know, and a catalog saved with them would fail to load.
func jsonString(s string) []byte {
	data, _ := json.Marshal(s)
	return data
}

// Keys returns the catalog keys in sorted order.
func (f *File) Keys() []string {
	keys := make([]string, 0, len(f.Entries))
	for k := range f.Entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a deep copy. Reconciliation works on copies so the
// loaded catalog is never mutated before a merge commits.
func (f *File) Clone() *File {
	c := &File{Lang: f.Lang, Entries: make(map[string]string, len(f.Entries))}
	for k, v := range f.Entries {
		c.Entries[k] = v
	}
	return c
}
