// Package ledger implements catsync.lock — a file recording, per
// language, which keys were solicited by the last issued translation
// requests, together with an MD5 checksum of each key's canonical value
// at request time.
//
// The ledger is what lets the merger enforce the unsolicited-key rule
// across process runs: `apply` only accepts keys that `reconcile`
// actually asked for, and can tell when a canonical value changed
// between the request and the response.
package ledger

import (
	"crypto/md5"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// FileName is the default ledger file name.
const FileName = "catsync.lock"

// Version is the ledger file format version.
const Version = 1

// Ledger represents the catsync.lock file structure.
type Ledger struct {
	Version   int                          `yaml:"version"`
	Solicited map[string]map[string]string `yaml:"solicited"` // lang -> key -> md5 of canonical value

	mu   sync.Mutex `yaml:"-"`
	path string     `yaml:"-"`
}

// Load reads the ledger from the given directory. Returns an empty
// ledger if the file doesn't exist.
func Load(dir string) (*Ledger, error) {
	path := filepath.Join(dir, FileName)
	l := &Ledger{
		Version:   Version,
		Solicited: make(map[string]map[string]string),
		path:      path,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return l, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, l); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	l.path = path

	if l.Solicited == nil {
		l.Solicited = make(map[string]map[string]string)
	}
	return l, nil
}

// Save writes the ledger to disk.
func (l *Ledger) Save() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.path == "" {
		return fmt.Errorf("ledger path not set")
	}

	data, err := yaml.Marshal(l)
	if err != nil {
		return fmt.Errorf("marshaling ledger: %w", err)
	}
	if err := os.WriteFile(l.path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", l.path, err)
	}
	return nil
}

// Path returns the ledger file path.
func (l *Ledger) Path() string {
	return l.path
}

// Hash computes the MD5 hex digest of a canonical value.
func Hash(s string) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(s)))
}

// Record replaces the solicited set for a language. entries maps each
// requested key to its canonical value at request time.
func (l *Ledger) Record(lang string, entries map[string]string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	m := make(map[string]string, len(entries))
	for key, value := range entries {
		m[key] = Hash(value)
	}
	l.Solicited[lang] = m
}

// SolicitedKeys returns the solicited set for a language.
func (l *Ledger) SolicitedKeys(lang string) map[string]bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	set := make(map[string]bool, len(l.Solicited[lang]))
	for key := range l.Solicited[lang] {
		set[key] = true
	}
	return set
}

// IsStale reports whether a solicited key's canonical value has changed
// since the request was issued. False for keys that were never solicited.
func (l *Ledger) IsStale(lang, key, currentValue string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	old, ok := l.Solicited[lang][key]
	if !ok {
		return false
	}
	return old != Hash(currentValue)
}

// ClearAccepted removes accepted keys from a language's solicited set;
// they are settled and must not be overwritable by a second response.
func (l *Ledger) ClearAccepted(lang string, keys []string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	m := l.Solicited[lang]
	if m == nil {
		return
	}
	for _, key := range keys {
		delete(m, key)
	}
	if len(m) == 0 {
		delete(l.Solicited, lang)
	}
}

// Languages returns the languages with outstanding solicitations, sorted.
func (l *Ledger) Languages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	langs := make([]string, 0, len(l.Solicited))
	for lang := range l.Solicited {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Stats returns the number of languages and outstanding keys.
func (l *Ledger) Stats() (languages, keys int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	languages = len(l.Solicited)
	for _, m := range l.Solicited {
		keys += len(m)
	}
	return
}
