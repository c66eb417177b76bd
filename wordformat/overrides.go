package wordformat

import (
	"fmt"
	"sort"

	"github.com/erraggy/wordfmt/wferrors"
)

// OverrideLookup supplies literal text for a declared value in a target
// format. Implementations must be safe for concurrent use; a miss must be
// cheap and free of side effects.
type OverrideLookup interface {
	LookupOverride(value string, target Format) (string, bool)
}

// OverrideEntry is one row of an override table.
type OverrideEntry struct {
	// Value is the identity of the declared value, usually its name as
	// written in the declared format (e.g. "HTTP_URL").
	Value string `json:"value" yaml:"value"`
	// Target is the format the text applies to.
	Target Format `json:"target" yaml:"target"`
	// Text is returned verbatim instead of the computed conversion.
	Text string `json:"text" yaml:"text"`
}

type overrideKey struct {
	value  string
	target Format
}

// Overrides is an immutable side-table of override texts keyed by declared
// value and target format. A nil *Overrides is an empty table.
type Overrides struct {
	texts map[overrideKey]string
}

var _ OverrideLookup = (*Overrides)(nil)

// NewOverrides builds a table from entries. When the same value and target
// appear more than once, the last entry wins. Entries with an invalid target
// are rejected.
func NewOverrides(entries ...OverrideEntry) (*Overrides, error) {
	o := &Overrides{texts: make(map[overrideKey]string, len(entries))}
	for _, e := range entries {
		if !e.Target.IsValid() {
			return nil, &wferrors.ArgumentError{
				Argument: "target",
				Value:    e.Target,
				Message:  fmt.Sprintf("override for %q has no valid target format", e.Value),
			}
		}
		o.texts[overrideKey{value: e.Value, target: e.Target}] = e.Text
	}
	return o, nil
}

// OverridesFromMap builds a table from a value -> format -> text map.
func OverridesFromMap(m map[string]map[Format]string) (*Overrides, error) {
	entries := make([]OverrideEntry, 0, len(m))
	for value, byFormat := range m {
		for target, text := range byFormat {
			entries = append(entries, OverrideEntry{Value: value, Target: target, Text: text})
		}
	}
	return NewOverrides(entries...)
}

// LookupOverride returns the override text for value in target, if any.
func (o *Overrides) LookupOverride(value string, target Format) (string, bool) {
	if o == nil {
		return "", false
	}
	text, ok := o.texts[overrideKey{value: value, target: target}]
	return text, ok
}

// Len returns the number of entries in the table.
func (o *Overrides) Len() int {
	if o == nil {
		return 0
	}
	return len(o.texts)
}

// Entries returns the table sorted by value, then by target format.
func (o *Overrides) Entries() []OverrideEntry {
	if o.Len() == 0 {
		return nil
	}
	entries := make([]OverrideEntry, 0, len(o.texts))
	for k, text := range o.texts {
		entries = append(entries, OverrideEntry{Value: k.value, Target: k.target, Text: text})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value < entries[j].Value
		}
		return entries[i].Target < entries[j].Target
	})
	return entries
}

// Values returns the distinct declared values that have at least one override.
func (o *Overrides) Values() []string {
	seen := make(map[string]bool)
	var values []string
	for _, e := range o.Entries() {
		if !seen[e.Value] {
			seen[e.Value] = true
			values = append(values, e.Value)
		}
	}
	return values
}
