// Package settings implements a typed key-value store for the
// configurable parameters of game objects: damage, cooldowns, ranges,
// flags and names. Plain settings hold a single string, int, bool or
// float value. Scaling settings hold a base and a per-level increment,
// and evaluate to base + scale×(level−1) so that level 1 yields
// exactly the base.
//
// A Set is owned by a single goroutine at a time and does no internal
// locking.
package settings

import (
	"fmt"
	"strconv"
)

// Kind identifies which primitive type a Value holds.
type Kind uint8

const (
	// KindInvalid is the kind of the zero Value. Invalid values render
	// as empty text and fail every numeric and boolean coercion; use
	// the constructors instead of zero Values.
	KindInvalid Kind = iota
	KindString
	KindInt
	KindBool
	KindFloat
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindFloat:
		return "float"
	default:
		return "invalid"
	}
}

// ParseKind is the inverse of Kind.String. Storage backends that
// persist kind tags next to textual values use it to rebuild Values.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "string":
		return KindString, nil
	case "int":
		return KindInt, nil
	case "bool":
		return KindBool, nil
	case "float":
		return KindFloat, nil
	default:
		return KindInvalid, fmt.Errorf("unknown value kind %q", s)
	}
}

// Value is a tagged union over the four primitive types a setting can
// hold. The zero Value is invalid; build Values with String, Int, Bool
// and Float.
type Value struct {
	kind Kind
	s    string
	i    int64
	b    bool
	f    float64
}

// String returns a Value holding a string.
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// Int returns a Value holding an integer.
func Int(n int) Value {
	return Value{kind: KindInt, i: int64(n)}
}

// Bool returns a Value holding a boolean.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Float returns a Value holding a float64.
func Float(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// Kind returns the kind of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsValid reports whether the value was built by a constructor rather
// than being a zero Value.
func (v Value) IsValid() bool {
	return v.kind != KindInvalid
}

// String returns the canonical textual form of the value: strings
// verbatim, ints in base 10, bools as "true"/"false", floats in Go's
// shortest 'g' form. Invalid values render as "".
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	default:
		return ""
	}
}

// Any returns the native Go value: string, int, bool or float64.
// Invalid values yield nil. Serialization sinks that keep types (YAML
// scalars, database rows) use it to avoid stringifying everything.
func (v Value) Any() any {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt:
		return int(v.i)
	case KindBool:
		return v.b
	case KindFloat:
		return v.f
	default:
		return nil
	}
}

// Parse builds a Value of the given kind from its textual form. It is
// the single fallible text-to-value path for media that supply text,
// such as database rows carrying a kind tag.
func Parse(kind Kind, text string) (Value, error) {
	switch kind {
	case KindString:
		return String(text), nil
	case KindInt:
		n, err := strconv.Atoi(text)
		if err != nil {
			return Value{}, fmt.Errorf("parsing %q as int: %w", text, err)
		}
		return Int(n), nil
	case KindBool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return Value{}, fmt.Errorf("parsing %q as bool: %w", text, err)
		}
		return Bool(b), nil
	case KindFloat:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Value{}, fmt.Errorf("parsing %q as float: %w", text, err)
		}
		return Float(f), nil
	default:
		return Value{}, fmt.Errorf("cannot parse %q into kind %q", text, kind)
	}
}

// Coercions interpret a value as another type by round-tripping
// through its textual form: a matching kind converts directly, any
// other kind is re-parsed from its text. Nothing smarter is attempted.

func (v Value) asFloat() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	default:
		f, err := strconv.ParseFloat(v.String(), 64)
		return f, err == nil
	}
}

func (v Value) asInt() (int, bool) {
	if v.kind == KindInt {
		return int(v.i), true
	}
	n, err := strconv.Atoi(v.String())
	return n, err == nil
}

func (v Value) asBool() (bool, bool) {
	if v.kind == KindBool {
		return v.b, true
	}
	b, err := strconv.ParseBool(v.String())
	return b, err == nil
}
