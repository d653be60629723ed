// Package msgformat parses the structural syntax embedded in message
// templates: positional placeholders ({0}, {1}, ...) and ICU-style
// selector blocks ({var, select, case {...} case {...}}).
//
// A template's structure is captured once as a Signature. A proposed
// translation is structurally valid when its Signature is compatible
// with the template's: same placeholder indices (order within the
// string is free), same selector variable and case labels. Only the
// literal text outside placeholders and inside case bodies may change.
package msgformat

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Select describes one selector block.
type Select struct {
	// Var is the selector variable name (e.g. "gender").
	Var string
	// Cases are the case labels in order of appearance (e.g. male, female, other).
	Cases []string
}

// Signature is the structural fingerprint of a template or translation.
type Signature struct {
	// Placeholders are the positional indices in order of appearance.
	// Duplicates are kept: "{0} and {0}" yields [0 0].
	Placeholders []int
	// Selects are the selector blocks in order of appearance.
	Selects []Select
}

// Parse extracts the Signature of a message string. Placeholders inside
// selector case bodies count toward the placeholder multiset. Unbalanced
// braces are treated as literal text.
func Parse(s string) Signature {
	var sig Signature
	scan(s, &sig)
	return sig
}

func scan(s string, sig *Signature) {
	for i := 0; i < len(s); i++ {
		if s[i] != '{' {
			continue
		}
		body, end, ok := braceGroup(s, i)
		if !ok {
			continue
		}

		if isPlaceholder(body) {
			idx, _ := strconv.Atoi(body)
			sig.Placeholders = append(sig.Placeholders, idx)
			i = end - 1
			continue
		}

		if sel, bodies, ok := parseSelect(body); ok {
			sig.Selects = append(sig.Selects, sel)
			for _, caseBody := range bodies {
				scan(caseBody, sig)
			}
			i = end - 1
			continue
		}

		// Unknown brace group: no structure of its own, but it may
		// contain placeholders (e.g. "@{0}" style nesting artifacts).
		scan(body, sig)
		i = end - 1
	}
}

// braceGroup returns the content of the balanced brace group starting at
// s[start] (which must be '{'), and the index just past the closing brace.
func braceGroup(s string, start int) (body string, end int, ok bool) {
	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start+1 : i], i + 1, true
			}
		}
	}
	return "", 0, false
}

func isPlaceholder(body string) bool {
	if body == "" {
		return false
	}
	// "{00}" is not the token "{0}": the runtime formatter substitutes
	// by literal token text, so padded indices stay literal here too.
	if len(body) > 1 && body[0] == '0' {
		return false
	}
	for i := 0; i < len(body); i++ {
		if body[i] < '0' || body[i] > '9' {
			return false
		}
	}
	return true
}

// parseSelect parses "var, select, label {body} label {body} ..." and
// returns the Select plus the raw case bodies. ok is false when the
// content is not a well-formed selector block.
func parseSelect(body string) (sel Select, bodies []string, ok bool) {
	first := strings.Index(body, ",")
	if first < 0 {
		return sel, nil, false
	}
	second := strings.Index(body[first+1:], ",")
	if second < 0 {
		return sel, nil, false
	}
	second += first + 1

	name := strings.TrimSpace(body[:first])
	kind := strings.TrimSpace(body[first+1 : second])
	if name == "" || strings.ContainsAny(name, "{}") || kind != "select" {
		return sel, nil, false
	}

	sel.Var = name
	rest := body[second+1:]

	for i := 0; i < len(rest); {
		// Skip whitespace before the label.
		for i < len(rest) && isSpace(rest[i]) {
			i++
		}
		if i >= len(rest) {
			break
		}

		// Label runs until whitespace or the opening brace.
		labelStart := i
		for i < len(rest) && rest[i] != '{' && !isSpace(rest[i]) {
			i++
		}
		label := rest[labelStart:i]
		if label == "" {
			return sel, nil, false
		}

		for i < len(rest) && isSpace(rest[i]) {
			i++
		}
		if i >= len(rest) || rest[i] != '{' {
			return sel, nil, false
		}

		caseBody, end, balanced := braceGroup(rest, i)
		if !balanced {
			return sel, nil, false
		}
		sel.Cases = append(sel.Cases, label)
		bodies = append(bodies, caseBody)
		i = end
	}

	if len(sel.Cases) == 0 {
		return sel, nil, false
	}
	return sel, bodies, true
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// ---------------------------------------------------------------------------
// Comparison
// ---------------------------------------------------------------------------

// Compatible reports whether other reproduces the structure of s:
// the same placeholder multiset and the same selector blocks (variable
// name and case-label set; case order and literal text are free).
func (s Signature) Compatible(other Signature) bool {
	if !multisetEqual(s.Placeholders, other.Placeholders) {
		return false
	}
	if len(s.Selects) != len(other.Selects) {
		return false
	}
	for i := range s.Selects {
		if s.Selects[i].Var != other.Selects[i].Var {
			return false
		}
		if !labelSetEqual(s.Selects[i].Cases, other.Selects[i].Cases) {
			return false
		}
	}
	return true
}

func multisetEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]int(nil), a...)
	bs := append([]int(nil), b...)
	sort.Ints(as)
	sort.Ints(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

func labelSetEqual(a, b []string) bool {
	as := uniqueSorted(a)
	bs := uniqueSorted(b)
	if len(as) != len(bs) {
		return false
	}
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

func uniqueSorted(labels []string) []string {
	seen := make(map[string]bool, len(labels))
	var out []string
	for _, l := range labels {
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	sort.Strings(out)
	return out
}

// ---------------------------------------------------------------------------
// Description (for request documents)
// ---------------------------------------------------------------------------

// Describe renders the structural constraint as a short human/LLM-readable
// note, e.g. "placeholders: {0} {1}; selector: gender [female male other]".
// Returns "plain text" when the value has no structure.
func (s Signature) Describe() string {
	var parts []string

	if len(s.Placeholders) > 0 {
		tokens := make([]string, len(s.Placeholders))
		for i, idx := range s.Placeholders {
			tokens[i] = fmt.Sprintf("{%d}", idx)
		}
		parts = append(parts, "placeholders: "+strings.Join(tokens, " "))
	}

	for _, sel := range s.Selects {
		parts = append(parts, fmt.Sprintf("selector: %s [%s]", sel.Var, strings.Join(sel.Cases, " ")))
	}

	if len(parts) == 0 {
		return "plain text"
	}
	return strings.Join(parts, "; ")
}

// Empty reports whether the value carries no structural constraints.
func (s Signature) Empty() bool {
	return len(s.Placeholders) == 0 && len(s.Selects) == 0
}
