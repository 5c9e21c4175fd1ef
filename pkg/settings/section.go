package settings

import (
	"sort"
	"strings"
)

// Section is the view of one node of a hierarchical configuration
// medium that a Set needs in order to save and load itself. It is
// deliberately tiny: enumerate direct children, read one child as
// text, write one primitive child. *section.Section satisfies it.
type Section interface {
	// Keys lists the direct child keys, non-recursively.
	Keys() []string
	// GetString reads the child under key as text. The second result
	// is false when the child is absent.
	GetString(key string) (string, bool)
	// Set writes a primitive value under key.
	Set(key string, value any)
}

// Entry is one key/value pair of the flattened form of a Set. A
// scaling setting flattens to two entries, "<key>-base" and
// "<key>-scale"; that suffix protocol lives only in this serialized
// view.
type Entry struct {
	Key   string
	Value Value
}

// Entries returns the flattened form of the set, sorted by key.
// Invalid values and never-set scaling halves are omitted, so every
// returned entry is representable as text.
func (s *Set) Entries() []Entry {
	entries := make([]Entry, 0, len(s.values)+2*len(s.scaling))
	for k, v := range s.values {
		if !v.IsValid() {
			continue
		}
		entries = append(entries, Entry{Key: k, Value: v})
	}
	for k, sc := range s.scaling {
		if sc.base.IsValid() {
			entries = append(entries, Entry{Key: k + baseSuffix, Value: sc.base})
		}
		if sc.scale.IsValid() {
			entries = append(entries, Entry{Key: k + scaleSuffix, Value: sc.scale})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	return entries
}

// Restore inserts one flattened entry, routing "-base" and "-scale"
// suffixed keys into the half of the scaling record they encode.
// Unlike SetBase and SetScale it never initializes the sibling half:
// a medium holding only one half restores only that half. Everything
// else becomes a plain value.
func (s *Set) Restore(key string, v Value) {
	if name, ok := strings.CutSuffix(key, baseSuffix); ok && name != "" {
		sc := s.scaling[name]
		sc.base = v
		s.scaling[name] = sc
		return
	}
	if name, ok := strings.CutSuffix(key, scaleSuffix); ok && name != "" {
		sc := s.scaling[name]
		sc.scale = v
		s.scaling[name] = sc
		return
	}
	s.values[key] = v
}

// Save writes every flattened entry as a direct child of sec, keeping
// native types where the medium can hold them. Saving into a nil
// section is a no-op.
func (s *Set) Save(sec Section) {
	if sec == nil {
		return
	}
	for _, e := range s.Entries() {
		sec.Set(e.Key, e.Value.Any())
	}
}

// Load reads every direct child of sec as text and restores it into
// the set, overwriting entries under the same keys. Loaded values stay
// textual until a typed getter interprets them, so a malformed number
// in the medium is not an error here; it surfaces as a *ParseError
// from the getter that asks for it. Loading from a nil section is a
// no-op.
func (s *Set) Load(sec Section) {
	if sec == nil {
		return
	}
	for _, key := range sec.Keys() {
		text, ok := sec.GetString(key)
		if !ok {
			continue
		}
		s.Restore(key, String(text))
	}
}
