package settings

import (
	"fmt"
	"sort"
)

// Suffixes that encode the two halves of a scaling setting when a set
// is flattened for storage. They exist only in the serialized view and
// never appear as keys inside a Set.
const (
	baseSuffix  = "-base"
	scaleSuffix = "-scale"
)

// ParseError reports a stored value whose textual form could not be
// read as the requested type. Typed getters return it instead of
// panicking, so a caller can log it, substitute its own fallback, or
// ignore it and take the zero result.
type ParseError struct {
	Key  string // key under which the value is stored, suffixed for scaling halves
	Raw  string // textual form of the offending value
	Want Kind   // kind the caller asked for
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("setting %q: cannot read %q as %s", e.Key, e.Raw, e.Want)
}

// scaling is the record behind one scaling setting. The halves are
// Values rather than float64 because entries restored from a text
// medium stay textual until a getter interprets them; a malformed
// number surfaces as a ParseError at read time, not at load time.
// An invalid half means that half was never set.
type scaling struct {
	base  Value
	scale Value
}

// Set holds the configurable parameters of one game object: plain
// typed values, plus scaling settings whose effective value grows
// linearly with a level. Plain and scaling settings live in separate
// namespaces, so the same key may carry both.
type Set struct {
	values  map[string]Value
	scaling map[string]scaling
}

// New returns an empty set.
func New() *Set {
	return &Set{
		values:  make(map[string]Value),
		scaling: make(map[string]scaling),
	}
}

// Set stores a plain value under key, replacing any previous plain
// value. A scaling setting under the same key is untouched. Keys
// ending in "-base" or "-scale" are reserved by the flattened form
// and will be reinterpreted as scaling halves on the next load.
func (s *Set) Set(key string, v Value) {
	s.values[key] = v
}

// SetScaling declares a scaling setting: base is the value at level 1
// and scale is added for each level past the first. Both halves are
// replaced. Use CheckDefault instead when loaded configuration must
// win over the declared values.
func (s *Set) SetScaling(key string, base, scale float64) {
	s.scaling[key] = scaling{base: Float(base), scale: Float(scale)}
}

// SetBase replaces the base half of a scaling setting. A missing scale
// half is initialized to 0, so the setting is fully defined afterwards.
func (s *Set) SetBase(key string, base float64) {
	sc := s.scaling[key]
	sc.base = Float(base)
	if !sc.scale.IsValid() {
		sc.scale = Float(0)
	}
	s.scaling[key] = sc
}

// SetScale replaces the scale half of a scaling setting. A missing
// base half is initialized to 0.
func (s *Set) SetScale(key string, scale float64) {
	sc := s.scaling[key]
	sc.scale = Float(scale)
	if !sc.base.IsValid() {
		sc.base = Float(0)
	}
	s.scaling[key] = sc
}

// GetFloat returns the plain value under key as a float64. An absent
// key yields 0 and no error; a present value that cannot be read as a
// number yields 0 and a *ParseError.
func (s *Set) GetFloat(key string) (float64, error) {
	v, ok := s.values[key]
	if !ok {
		return 0, nil
	}
	f, ok := v.asFloat()
	if !ok {
		return 0, &ParseError{Key: key, Raw: v.String(), Want: KindFloat}
	}
	return f, nil
}

// GetInt returns the plain value under key as an int. An absent key
// yields 0 and no error. Values of other kinds are accepted when their
// textual form is an integer, so a float stored as 5 reads back fine
// while 2.5 does not.
func (s *Set) GetInt(key string) (int, error) {
	v, ok := s.values[key]
	if !ok {
		return 0, nil
	}
	n, ok := v.asInt()
	if !ok {
		return 0, &ParseError{Key: key, Raw: v.String(), Want: KindInt}
	}
	return n, nil
}

// GetBool returns the plain value under key as a bool. An absent key
// yields false and no error. Textual forms follow strconv.ParseBool,
// so "true", "1" and "T" are all true while "yes" is a *ParseError.
func (s *Set) GetBool(key string) (bool, error) {
	v, ok := s.values[key]
	if !ok {
		return false, nil
	}
	b, ok := v.asBool()
	if !ok {
		return false, &ParseError{Key: key, Raw: v.String(), Want: KindBool}
	}
	return b, nil
}

// GetString returns the textual form of the plain value under key. The
// second result is false when the key is absent. Reading text never
// fails, whatever the stored kind.
func (s *Set) GetString(key string) (string, bool) {
	v, ok := s.values[key]
	if !ok {
		return "", false
	}
	return v.String(), true
}

// GetBase returns the base half of the scaling setting under key, or 0
// when it was never set.
func (s *Set) GetBase(key string) (float64, error) {
	sc := s.scaling[key]
	if !sc.base.IsValid() {
		return 0, nil
	}
	f, ok := sc.base.asFloat()
	if !ok {
		return 0, &ParseError{Key: key + baseSuffix, Raw: sc.base.String(), Want: KindFloat}
	}
	return f, nil
}

// GetScale returns the scale half of the scaling setting under key, or
// 0 when it was never set.
func (s *Set) GetScale(key string) (float64, error) {
	sc := s.scaling[key]
	if !sc.scale.IsValid() {
		return 0, nil
	}
	f, ok := sc.scale.asFloat()
	if !ok {
		return 0, &ParseError{Key: key + scaleSuffix, Raw: sc.scale.String(), Want: KindFloat}
	}
	return f, nil
}

// GetScaled evaluates the scaling setting under key at the given
// level: base + scale×(level−1). An undefined setting yields 0. Level
// is not clamped; levels below 1 extrapolate below the base.
func (s *Set) GetScaled(key string, level int) (float64, error) {
	return s.GetScaledDefault(key, level, 0)
}

// GetScaledDefault is GetScaled with an explicit fallback that is
// returned when the setting is undefined. The fallback never applies
// to malformed values; those still surface as a *ParseError.
func (s *Set) GetScaledDefault(key string, level int, def float64) (float64, error) {
	if !s.Has(key) {
		return def, nil
	}
	base, err := s.GetBase(key)
	if err != nil {
		return 0, err
	}
	scale, err := s.GetScale(key)
	if err != nil {
		return 0, err
	}
	return base + scale*float64(level-1), nil
}

// Has reports whether key is defined: present as a plain value, or
// present as a scaling setting with its base half set. A scaling
// setting restored from a medium that held only the scale half does
// not count as defined, so CheckDefault will still seed it.
func (s *Set) Has(key string) bool {
	if _, ok := s.values[key]; ok {
		return true
	}
	return s.scaling[key].base.IsValid()
}

// Remove deletes both the plain value and the scaling setting under
// key. Removing an absent key is a no-op.
func (s *Set) Remove(key string) {
	delete(s.values, key)
	delete(s.scaling, key)
}

// CheckDefault declares a scaling setting with the given defaults only
// when key is not yet defined. Call it after Load so that values from
// configuration win over code defaults; called before Load it is
// useless, since Load overwrites.
func (s *Set) CheckDefault(key string, defBase, defScale float64) {
	if !s.Has(key) {
		s.SetScaling(key, defBase, defScale)
	}
}

// Len returns the number of stored settings, counting a key defined
// both as a plain value and as a scaling setting twice.
func (s *Set) Len() int {
	return len(s.values) + len(s.scaling)
}

// Keys returns every defined key in sorted order. A key that carries
// both a plain value and a scaling setting appears once.
func (s *Set) Keys() []string {
	seen := make(map[string]struct{}, len(s.values))
	keys := make([]string, 0, len(s.values)+len(s.scaling))
	for k := range s.values {
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	for k := range s.scaling {
		if _, ok := seen[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
