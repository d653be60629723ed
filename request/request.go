// Package request builds translation request documents from a missing-key
// set: bounded batches, deterministic order, plain-text rendering suitable
// for an external human or LLM translator.
//
// Building is pure: the same language, missing set, registry, and batch
// size always produce byte-identical documents, so re-runs are diffable
// and idempotent.
package request

import (
	"fmt"
	"sort"
	"strings"

	"github.com/translation-bot/catsync/langmeta"
	"github.com/translation-bot/catsync/msgformat"
	"github.com/translation-bot/catsync/registry"
)

// DefaultBatchSize bounds entries per request document.
const DefaultBatchSize = 25

// Entry is one key to translate.
type Entry struct {
	// Key is the template key.
	Key string
	// Source is the canonical value, verbatim.
	Source string
	// Note is the structural constraint derived from the source.
	Note string
}

// Document is one batched translation request for one language.
type Document struct {
	// Language is the target language code.
	Language string
	// LanguageName is the English name of the target language.
	LanguageName string
	// Seq is the 1-based batch number, Total the batch count.
	Seq, Total int
	// Entries are the keys in lexicographic order.
	Entries []Entry
}

// Build batches the missing keys for a language into request documents.
// Keys are sorted lexicographically before batching. A key absent from
// the registry is a caller bug and surfaces as the registry's
// UnknownKeyError.
func Build(lang string, missing []string, reg *registry.Registry, batchSize int) ([]Document, error) {
	if len(missing) == 0 {
		return nil, nil
	}
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	keys := append([]string(nil), missing...)
	sort.Strings(keys)

	total := (len(keys) + batchSize - 1) / batchSize
	name := langmeta.Resolve(lang).Name

	docs := make([]Document, 0, total)
	for start := 0; start < len(keys); start += batchSize {
		end := start + batchSize
		if end > len(keys) {
			end = len(keys)
		}

		doc := Document{
			Language:     lang,
			LanguageName: name,
			Seq:          len(docs) + 1,
			Total:        total,
		}
		for _, key := range keys[start:end] {
			value, err := reg.Value(key)
			if err != nil {
				return nil, err
			}
			doc.Entries = append(doc.Entries, Entry{
				Key:    key,
				Source: value,
				Note:   msgformat.Parse(value).Describe(),
			})
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

// Filename returns the canonical file name for the document,
// e.g. "ru-001.txt".
func (d Document) Filename() string {
	return fmt.Sprintf("%s-%03d.txt", d.Language, d.Seq)
}

// Render produces the plain-text request document.
func (d Document) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "TRANSLATION REQUEST — %s (%s), batch %d/%d\n\n",
		d.LanguageName, d.Language, d.Seq, d.Total)

	b.WriteString("You are translating chat-bot response strings from English to " + d.LanguageName + ".\n")
	b.WriteString(`
RULES:
- Translate ONLY the literal text; keep the tone and persona of each source string.
- Preserve positional placeholders ({0}, {1}, ...) exactly as-is. Every
  placeholder in the source must appear in the translation; never invent
  new indices. Their position in the sentence may move to fit the grammar.
- If the source contains a selector block {var, select, case {...} case {...}},
  keep the wrapper, the variable name, and every case label exactly as-is.
  Translate only the literal text inside each case's braces.
- Keep @-mentions, !commands, brand names, and emoji unchanged.
- Reply with a single JSON object and nothing else:
  {"language": "` + d.Language + `", "translations": {"<key>": "<translated text>"}}
  containing every key listed below. No explanations, no markdown fences.
`)

	fmt.Fprintf(&b, "\nENTRIES (%d):\n", len(d.Entries))
	for _, e := range d.Entries {
		fmt.Fprintf(&b, "\n### %s\n", e.Key)
		fmt.Fprintf(&b, "constraint: %s\n", e.Note)
		fmt.Fprintf(&b, "source: %s\n", e.Source)
	}

	return b.String()
}
