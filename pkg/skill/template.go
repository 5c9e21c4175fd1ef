// Package skill builds skill templates on top of settings sets: every
// configurable number of a skill lives in its set and scales linearly
// with the skill level. Templates are loaded from YAML files where
// each top-level section defines one skill.
package skill

import (
	"fmt"

	"github.com/udisondev/skillkit/pkg/settings"
)

// Template describes one configurable skill. Shared data: load once,
// treat as read-only afterwards.
type Template struct {
	name string
	set  *settings.Set
}

// NewTemplate returns a template with the standard attributes at their
// defaults: learnable at class level equal to the skill level, one
// skill point per upgrade, no cooldown, no mana cost, no range.
func NewTemplate(name string) *Template {
	t := &Template{name: name, set: settings.New()}
	t.seedDefaults()
	return t
}

// FromSection builds a template from one configuration section: the
// section's children become the template's settings, then defaults
// fill the standard attributes the section did not define. Values from
// the section always win over defaults.
func FromSection(name string, sec settings.Section) *Template {
	t := &Template{name: name, set: settings.New()}
	t.set.Load(sec)
	t.seedDefaults()
	return t
}

func (t *Template) seedDefaults() {
	t.set.CheckDefault(AttrLevel, 1, 1)
	t.set.CheckDefault(AttrCost, 1, 0)
	t.set.CheckDefault(AttrCooldown, 0, 0)
	t.set.CheckDefault(AttrMana, 0, 0)
	t.set.CheckDefault(AttrRange, 0, 0)
}

// Name returns the skill's identifier.
func (t *Template) Name() string {
	return t.name
}

// Type returns the skill's declared type, or "" when the file does not
// set one.
func (t *Template) Type() string {
	typ, _ := t.set.GetString(keyType)
	return typ
}

// MaxLevel returns the highest level this skill can reach, at least 1.
func (t *Template) MaxLevel() (int, error) {
	n, err := t.set.GetInt(keyMaxLevel)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 1, nil
	}
	return n, nil
}

// Cooldown returns the seconds a caster waits between uses at the
// given skill level.
func (t *Template) Cooldown(level int) (float64, error) {
	return t.set.GetScaled(AttrCooldown, level)
}

// ManaCost returns the mana consumed by one use at the given level.
func (t *Template) ManaCost(level int) (float64, error) {
	return t.set.GetScaled(AttrMana, level)
}

// CastRange returns the maximum cast distance at the given level.
func (t *Template) CastRange(level int) (float64, error) {
	return t.set.GetScaled(AttrRange, level)
}

// LevelReq returns the class level required to learn the given skill
// level.
func (t *Template) LevelReq(level int) (int, error) {
	f, err := t.set.GetScaled(AttrLevel, level)
	return int(f), err
}

// Cost returns the skill points consumed to upgrade to the given
// level.
func (t *Template) Cost(level int) (int, error) {
	f, err := t.set.GetScaled(AttrCost, level)
	return int(f), err
}

// Settings exposes the underlying set for custom parameters that have
// no dedicated accessor.
func (t *Template) Settings() *settings.Set {
	return t.set
}

// Validate reads every scaling half and reserved field once and
// returns the first malformed value. Plain custom settings are text
// and cannot be malformed.
func (t *Template) Validate() error {
	for _, key := range t.set.Keys() {
		if _, err := t.set.GetBase(key); err != nil {
			return fmt.Errorf("skill %q: %w", t.name, err)
		}
		if _, err := t.set.GetScale(key); err != nil {
			return fmt.Errorf("skill %q: %w", t.name, err)
		}
	}
	if _, err := t.MaxLevel(); err != nil {
		return fmt.Errorf("skill %q: %w", t.name, err)
	}
	return nil
}
