// Package merge implements response validation and catalog merging: a
// returned translation is accepted only when it is structurally
// compatible with its canonical template, and only when it was actually
// solicited. Decisions are per key — one bad translation never blocks
// the rest of a batch — while the caller persists the whole batch with a
// single atomic catalog save.
package merge

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/translation-bot/catsync/catalog"
	"github.com/translation-bot/catsync/msgformat"
	"github.com/translation-bot/catsync/registry"
)

// Rejection reports why a proposed translation was refused. Rejected
// keys stay in the missing set for the next cycle.
type Rejection struct {
	Key    string
	Reason string
}

// ReasonUnsolicited marks keys that were not in the language's missing
// set at request time. The merger never accepts an unrequested
// overwrite of a settled translation.
const ReasonUnsolicited = "unsolicited: key was not requested for translation"

// ReasonStale marks solicited keys whose canonical value changed after
// the request was issued.
const ReasonStale = "canonical value changed since the request was issued"

// Validate checks a proposed translation against the structural rules
// derived from the template value. Rules in order, first failure wins:
// non-empty after trimming, placeholder multiset equality, selector
// structure preservation. Returns nil when the proposal is acceptable.
func Validate(templateValue, proposed string) error {
	if strings.TrimSpace(proposed) == "" {
		return fmt.Errorf("empty after trimming")
	}

	want := msgformat.Parse(templateValue)
	got := msgformat.Parse(proposed)

	if !samePlaceholders(want, got) {
		return fmt.Errorf("placeholder mismatch: source has %s, translation has %s",
			describePlaceholders(want), describePlaceholders(got))
	}

	if len(want.Selects) != len(got.Selects) {
		return fmt.Errorf("selector mismatch: source has %d selector block(s), translation has %d",
			len(want.Selects), len(got.Selects))
	}
	for i := range want.Selects {
		if want.Selects[i].Var != got.Selects[i].Var {
			return fmt.Errorf("selector mismatch: variable %q changed to %q",
				want.Selects[i].Var, got.Selects[i].Var)
		}
		if !sameLabels(want.Selects[i].Cases, got.Selects[i].Cases) {
			return fmt.Errorf("selector mismatch: source cases [%s], translation cases [%s]",
				strings.Join(want.Selects[i].Cases, " "), strings.Join(got.Selects[i].Cases, " "))
		}
	}

	return nil
}

func samePlaceholders(a, b msgformat.Signature) bool {
	want := msgformat.Signature{Placeholders: a.Placeholders}
	got := msgformat.Signature{Placeholders: b.Placeholders}
	return want.Compatible(got)
}

func sameLabels(a, b []string) bool {
	want := msgformat.Signature{Selects: []msgformat.Select{{Cases: a}}}
	got := msgformat.Signature{Selects: []msgformat.Select{{Cases: b}}}
	return want.Compatible(got)
}

func describePlaceholders(sig msgformat.Signature) string {
	if len(sig.Placeholders) == 0 {
		return "none"
	}
	sorted := append([]int(nil), sig.Placeholders...)
	sort.Ints(sorted)
	tokens := make([]string, len(sorted))
	for i, idx := range sorted {
		tokens[i] = fmt.Sprintf("{%d}", idx)
	}
	return strings.Join(tokens, " ")
}

// Apply validates each proposed translation and writes the accepted ones
// into the in-memory catalog. solicited is the missing set the response
// answers; anything outside it is rejected as unsolicited. The caller is
// responsible for the single catalog.Save afterwards, which makes the
// persisted write atomic for the whole batch even though acceptance is
// per key.
func Apply(cat *catalog.File, reg *registry.Registry, solicited map[string]bool, translations map[string]string) (accepted []string, rejections []Rejection) {
	keys := make([]string, 0, len(translations))
	for k := range translations {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if !solicited[key] {
			rejections = append(rejections, Rejection{Key: key, Reason: ReasonUnsolicited})
			continue
		}

		templateValue, err := reg.Value(key)
		if err != nil {
			rejections = append(rejections, Rejection{Key: key, Reason: err.Error()})
			continue
		}

		if err := Validate(templateValue, translations[key]); err != nil {
			rejections = append(rejections, Rejection{Key: key, Reason: err.Error()})
			continue
		}

		cat.Entries[key] = translations[key]
		accepted = append(accepted, key)
	}

	return accepted, rejections
}

// ---------------------------------------------------------------------------
// Response documents
// ---------------------------------------------------------------------------

// Response is the externally supplied answer to a request document.
type Response struct {
	Language     string            `json:"language"`
	Translations map[string]string `json:"translations"`
}

// ParseResponse parses a response document. The canonical shape is
//
//	{"language": "ru", "translations": {"key": "value"}}
//
// but a bare flat {"key": "value"} object is also accepted (the
// language must then come from elsewhere, e.g. a --lang flag).
func ParseResponse(data []byte) (*Response, error) {
	var resp Response
	if err := json.Unmarshal(data, &resp); err == nil && len(resp.Translations) > 0 {
		return &resp, nil
	}

	var flat map[string]string
	if err := json.Unmarshal(data, &flat); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}
	delete(flat, "language")
	if len(flat) == 0 {
		return nil, fmt.Errorf("response contains no translations")
	}
	return &Response{Translations: flat}, nil
}
