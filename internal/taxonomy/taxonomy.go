// Package taxonomy resolves the mapping from arXiv subject-area codes to their
// display metadata.
package taxonomy

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// GroupMath is the group of the primary discipline. Every other group is
// rendered as an adjacent discipline.
const GroupMath = "math"

// GroupOther is used when a source does not say which group a code belongs to.
const GroupOther = "other"

// ErrEmptyTaxonomy is returned when no source produced a single entry.
// Assembling a graph from an empty taxonomy is meaningless, so callers treat it as fatal.
var ErrEmptyTaxonomy = errors.New("taxonomy is empty")

// Entry describes one subject area.
type Entry struct {
	Code        string `json:"-"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Group       string `json:"group"`
}

// IsMath reports whether the entry belongs to the primary discipline.
func (e Entry) IsMath() bool {
	return e.Group == GroupMath
}

// Taxonomy is an insertion-ordered set of entries keyed by code.
// Iteration order is the order in which codes were first added, which keeps
// graph output reproducible. A nil *Taxonomy behaves as an empty one for reads.
type Taxonomy struct {
	codes   []string
	entries map[string]Entry
}

// New returns a taxonomy holding the given entries in order.
func New(entries ...Entry) *Taxonomy {
	t := &Taxonomy{entries: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		t.Add(e)
	}
	return t
}

// Add inserts or replaces an entry. Replacing keeps the original position.
func (t *Taxonomy) Add(e Entry) {
	if t.entries == nil {
		t.entries = make(map[string]Entry)
	}
	if e.Group == "" {
		e.Group = GroupOther
	}
	if _, ok := t.entries[e.Code]; !ok {
		t.codes = append(t.codes, e.Code)
	}
	t.entries[e.Code] = e
}

// Get returns the entry for code.
func (t *Taxonomy) Get(code string) (Entry, bool) {
	if t == nil {
		return Entry{}, false
	}
	e, ok := t.entries[code]
	return e, ok
}

// Has reports whether code is a key of the taxonomy.
func (t *Taxonomy) Has(code string) bool {
	_, ok := t.Get(code)
	return ok
}

// Len returns the number of entries.
func (t *Taxonomy) Len() int {
	if t == nil {
		return 0
	}
	return len(t.codes)
}

// Codes returns the codes in iteration order.
func (t *Taxonomy) Codes() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.codes))
	copy(out, t.codes)
	return out
}

// Entries returns the entries in iteration order.
func (t *Taxonomy) Entries() []Entry {
	if t == nil {
		return nil
	}
	out := make([]Entry, 0, len(t.codes))
	for _, c := range t.codes {
		out = append(out, t.entries[c])
	}
	return out
}

// MarshalJSON encodes the taxonomy as a JSON object keyed by code, in iteration order.
func (t *Taxonomy) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range t.Entries() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Code)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e)
		if err != nil {
			return nil, fmt.Errorf("encoding entry %s: %w", e.Code, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object keyed by code, keeping the key order of the document.
func (t *Taxonomy) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("reading taxonomy: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("taxonomy must be a JSON object, got %v", tok)
	}

	parsed := New()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("reading taxonomy key: %w", err)
		}
		code, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected taxonomy key %v", tok)
		}

		var e Entry
		if err := dec.Decode(&e); err != nil {
			return fmt.Errorf("decoding entry %s: %w", code, err)
		}
		e.Code = code
		parsed.Add(e)
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("reading end of taxonomy: %w", err)
	}

	*t = *parsed
	return nil
}
