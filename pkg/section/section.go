// Package section models a hierarchical configuration medium: named
// nodes that hold primitive values (string, int, bool, float) and
// nested child sections under string keys, with a YAML file
// representation. It is the tree that settings sets are saved into
// and loaded from.
package section

import (
	"fmt"
	"sort"
	"strconv"
)

// Section is one node of the tree. Methods on a nil *Section behave
// as an empty section and drop writes, so callers may navigate
// missing branches without guards.
type Section struct {
	name     string
	values   map[string]any
	children map[string]*Section
}

// New returns an empty section with the given name.
func New(name string) *Section {
	return &Section{
		name:     name,
		values:   make(map[string]any),
		children: make(map[string]*Section),
	}
}

// Name returns the key under which this section hangs in its parent.
func (s *Section) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// Keys returns the keys of the direct primitive values in sorted
// order. Child sections are listed by Sections, not here.
func (s *Section) Keys() []string {
	if s == nil {
		return nil
	}
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Sections returns the names of the direct child sections in sorted
// order.
func (s *Section) Sections() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.children))
	for name := range s.children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a primitive value exists under key.
func (s *Section) Has(key string) bool {
	if s == nil {
		return false
	}
	_, ok := s.values[key]
	return ok
}

// Get returns the primitive value under key in its stored type.
func (s *Section) Get(key string) (any, bool) {
	if s == nil {
		return nil, false
	}
	v, ok := s.values[key]
	return v, ok
}

// GetString returns the value under key rendered as text: strings
// verbatim, numbers and booleans in their canonical Go form. The
// second result is false when the key is absent.
func (s *Section) GetString(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	v, ok := s.values[key]
	if !ok {
		return "", false
	}
	return render(v), true
}

// Set stores a primitive value under key, replacing a previous value
// or a child section of the same name. One key names one thing.
func (s *Section) Set(key string, value any) {
	if s == nil {
		return
	}
	delete(s.children, key)
	s.values[key] = normalize(value)
}

// Remove deletes the value or child section under key.
func (s *Section) Remove(key string) {
	if s == nil {
		return
	}
	delete(s.values, key)
	delete(s.children, key)
}

// Child returns the child section under name, or nil when absent.
func (s *Section) Child(name string) *Section {
	if s == nil {
		return nil
	}
	return s.children[name]
}

// CreateSection returns the child section under name, creating it
// first when absent. A primitive value of the same name is replaced.
func (s *Section) CreateSection(name string) *Section {
	if s == nil {
		return nil
	}
	if c, ok := s.children[name]; ok {
		return c
	}
	delete(s.values, name)
	c := New(name)
	s.children[name] = c
	return c
}

// normalize widens the accepted input types onto the small set the
// tree stores: string, bool, int, int64, uint64 and float64. Nil
// becomes the empty string, anything exotic its fmt form.
func normalize(v any) any {
	switch n := v.(type) {
	case nil:
		return ""
	case string, bool, int, int64, uint64, float64:
		return n
	case int8:
		return int(n)
	case int16:
		return int(n)
	case int32:
		return int(n)
	case uint8:
		return int(n)
	case uint16:
		return int(n)
	case uint32:
		return int(n)
	case uint:
		return uint64(n)
	case float32:
		return float64(n)
	default:
		return fmt.Sprint(v)
	}
}

func render(v any) string {
	switch n := v.(type) {
	case string:
		return n
	case bool:
		return strconv.FormatBool(n)
	case int:
		return strconv.Itoa(n)
	case int64:
		return strconv.FormatInt(n, 10)
	case uint64:
		return strconv.FormatUint(n, 10)
	case float64:
		return strconv.FormatFloat(n, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
