// Package reconcile computes, per language, which canonical keys are
// missing from a catalog, which catalog keys are orphaned, and applies
// forced-retranslation overrides. It never mutates the catalog it is
// given: force-dropping happens on an in-memory working copy, and
// existing valid translations are left untouched.
package reconcile

import (
	"sort"

	"github.com/translation-bot/catsync/catalog"
)

// Result is the outcome of one reconciliation run. Missing and Orphans
// are sorted, so two runs over the same inputs yield identical results.
type Result struct {
	// Missing are canonical keys with no (or force-dropped) translation.
	Missing []string
	// Orphans are catalog keys absent from the canonical set. Reported
	// only; pruning is a separate explicit operation since an orphan may
	// be a rename in progress.
	Orphans []string
}

// Reconcile compares the canonical key set against a catalog.
//
// Keys in force are dropped from a working copy first, so a forced key
// always surfaces in Missing even when a stale translation exists. The
// drop is in-memory only; storage is untouched until a merge commits a
// fresh value. Keys present in both sets and not forced are the settled
// majority and are never rewritten.
func Reconcile(canonicalKeys []string, cat *catalog.File, force []string) Result {
	working := make(map[string]bool, len(cat.Entries))
	for k := range cat.Entries {
		working[k] = true
	}
	for _, k := range force {
		delete(working, k)
	}

	canonical := make(map[string]bool, len(canonicalKeys))
	var missing []string
	for _, k := range canonicalKeys {
		canonical[k] = true
		if !working[k] {
			missing = append(missing, k)
		}
	}

	var orphans []string
	for k := range working {
		if !canonical[k] {
			orphans = append(orphans, k)
		}
	}

	sort.Strings(missing)
	sort.Strings(orphans)
	return Result{Missing: missing, Orphans: orphans}
}

// MissingSet returns the missing keys as a set, the shape the merger
// consumes for its unsolicited-key check.
func (r Result) MissingSet() map[string]bool {
	set := make(map[string]bool, len(r.Missing))
	for _, k := range r.Missing {
		set[k] = true
	}
	return set
}
