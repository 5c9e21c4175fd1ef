package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_GetScaled(t *testing.T) {
	s := New()
	s.SetScaling("damage", 10, 2.5)

	tests := []struct {
		name  string
		level int
		want  float64
	}{
		{"level one is exactly the base", 1, 10},
		{"level two adds one scale", 2, 12.5},
		{"level five", 5, 20},
		{"level zero extrapolates below the base", 0, 7.5},
		{"negative level keeps extrapolating", -1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.GetScaled("damage", tt.level)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestSet_GetScaled_NegativeScale(t *testing.T) {
	s := New()
	s.SetScaling("cooldown", 100, -5)

	got, err := s.GetScaled("cooldown", 3)
	require.NoError(t, err)
	assert.InDelta(t, 90, got, 1e-9)
}

func TestSet_GetScaledDefault(t *testing.T) {
	s := New()
	s.SetScaling("range", 8, 0)

	// Undefined key falls back to the caller's default.
	got, err := s.GetScaledDefault("radius", 3, 7.5)
	require.NoError(t, err)
	assert.InDelta(t, 7.5, got, 1e-9)

	// A defined key computes, ignoring the default.
	got, err = s.GetScaledDefault("range", 3, 99)
	require.NoError(t, err)
	assert.InDelta(t, 8, got, 1e-9)

	// Defined with zeros still beats the default.
	s.SetScaling("zero", 0, 0)
	got, err = s.GetScaledDefault("zero", 5, 42)
	require.NoError(t, err)
	assert.InDelta(t, 0, got, 1e-9)
}

func TestSet_AbsentKeysAreNotErrors(t *testing.T) {
	s := New()

	f, err := s.GetFloat("missing")
	require.NoError(t, err)
	assert.Zero(t, f)

	n, err := s.GetInt("missing")
	require.NoError(t, err)
	assert.Zero(t, n)

	b, err := s.GetBool("missing")
	require.NoError(t, err)
	assert.False(t, b)

	str, ok := s.GetString("missing")
	assert.False(t, ok)
	assert.Empty(t, str)

	base, err := s.GetBase("missing")
	require.NoError(t, err)
	assert.Zero(t, base)

	scale, err := s.GetScale("missing")
	require.NoError(t, err)
	assert.Zero(t, scale)

	scaled, err := s.GetScaled("missing", 10)
	require.NoError(t, err)
	assert.Zero(t, scaled)
}

func TestSet_ParseError(t *testing.T) {
	s := New()
	s.Set("name", String("Backstab"))

	_, err := s.GetFloat("name")
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "name", pe.Key)
	assert.Equal(t, "Backstab", pe.Raw)
	assert.Equal(t, KindFloat, pe.Want)

	_, err = s.GetInt("name")
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, KindInt, pe.Want)

	_, err = s.GetBool("name")
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, KindBool, pe.Want)

	// Text reads never fail, whatever the stored kind.
	got, ok := s.GetString("name")
	assert.True(t, ok)
	assert.Equal(t, "Backstab", got)
}

func TestSet_CrossKindReads(t *testing.T) {
	s := New()

	// Numeric text reads as numbers.
	s.Set("threshold", String("42"))
	f, err := s.GetFloat("threshold")
	require.NoError(t, err)
	assert.InDelta(t, 42, f, 1e-9)

	// A float whose text is integral reads as an int.
	s.Set("count", Float(5))
	n, err := s.GetInt("count")
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	// A fractional float does not.
	s.Set("ratio", Float(2.5))
	_, err = s.GetInt("ratio")
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "2.5", pe.Raw)

	// strconv.ParseBool forms are accepted for bools.
	s.Set("flag", String("1"))
	b, err := s.GetBool("flag")
	require.NoError(t, err)
	assert.True(t, b)

	// Bool text is not a number.
	s.Set("enabled", Bool(true))
	_, err = s.GetFloat("enabled")
	assert.Error(t, err)

	// Ints read as floats and bools where their text allows.
	s.Set("one", Int(1))
	f, err = s.GetFloat("one")
	require.NoError(t, err)
	assert.InDelta(t, 1, f, 1e-9)
	b, err = s.GetBool("one")
	require.NoError(t, err)
	assert.True(t, b)
}

func TestSet_SetBaseInitializesScale(t *testing.T) {
	s := New()
	s.SetBase("radius", 3)

	scale, err := s.GetScale("radius")
	require.NoError(t, err)
	assert.Zero(t, scale)

	// Flat progression once only the base is declared.
	got, err := s.GetScaled("radius", 5)
	require.NoError(t, err)
	assert.InDelta(t, 3, got, 1e-9)
}

func TestSet_SetScaleInitializesBase(t *testing.T) {
	s := New()
	s.SetScale("power", 2)

	base, err := s.GetBase("power")
	require.NoError(t, err)
	assert.Zero(t, base)

	assert.True(t, s.Has("power"))

	got, err := s.GetScaled("power", 3)
	require.NoError(t, err)
	assert.InDelta(t, 4, got, 1e-9)
}

func TestSet_HalfWritesKeepSibling(t *testing.T) {
	s := New()
	s.SetScaling("damage", 10, 2)

	s.SetBase("damage", 20)
	scale, err := s.GetScale("damage")
	require.NoError(t, err)
	assert.InDelta(t, 2, scale, 1e-9)

	s.SetScale("damage", 3)
	base, err := s.GetBase("damage")
	require.NoError(t, err)
	assert.InDelta(t, 20, base, 1e-9)
}

func TestSet_PlainAndScalingAreIndependent(t *testing.T) {
	s := New()
	s.Set("speed", String("fast"))
	s.SetScaling("speed", 1, 1)

	got, ok := s.GetString("speed")
	assert.True(t, ok)
	assert.Equal(t, "fast", got)

	scaled, err := s.GetScaled("speed", 2)
	require.NoError(t, err)
	assert.InDelta(t, 2, scaled, 1e-9)

	// Overwriting the plain value leaves the scaling setting alone.
	s.Set("speed", String("slow"))
	scaled, err = s.GetScaled("speed", 2)
	require.NoError(t, err)
	assert.InDelta(t, 2, scaled, 1e-9)
}

func TestSet_Has(t *testing.T) {
	s := New()
	assert.False(t, s.Has("x"))

	s.Set("plain", String("v"))
	assert.True(t, s.Has("plain"))

	s.SetScaling("scaling", 1, 0)
	assert.True(t, s.Has("scaling"))

	s.SetBase("base-only", 1)
	assert.True(t, s.Has("base-only"))

	s.SetScale("scale-only", 1)
	assert.True(t, s.Has("scale-only"))
}

func TestSet_Remove(t *testing.T) {
	s := New()
	s.Set("dmg", String("high"))
	s.SetScaling("dmg", 10, 1)

	s.Remove("dmg")

	assert.False(t, s.Has("dmg"))
	_, ok := s.GetString("dmg")
	assert.False(t, ok)
	got, err := s.GetScaled("dmg", 3)
	require.NoError(t, err)
	assert.Zero(t, got)

	// Removing again is fine.
	s.Remove("dmg")
	assert.Zero(t, s.Len())
}

func TestSet_CheckDefault(t *testing.T) {
	s := New()

	// Undefined key gets the defaults.
	s.CheckDefault("mana", 20, 5)
	got, err := s.GetScaled("mana", 2)
	require.NoError(t, err)
	assert.InDelta(t, 25, got, 1e-9)

	// A defined key keeps its values.
	s.SetScaling("cooldown", 8, -1)
	s.CheckDefault("cooldown", 99, 99)
	got, err = s.GetScaled("cooldown", 1)
	require.NoError(t, err)
	assert.InDelta(t, 8, got, 1e-9)

	// A plain value under the key also counts as defined.
	s.Set("note", String("keep"))
	s.CheckDefault("note", 5, 5)
	base, err := s.GetBase("note")
	require.NoError(t, err)
	assert.Zero(t, base)
}

func TestSet_Overwrite(t *testing.T) {
	s := New()
	s.Set("x", Int(1))
	s.Set("x", String("two"))

	got, ok := s.GetString("x")
	assert.True(t, ok)
	assert.Equal(t, "two", got)
	_, err := s.GetInt("x")
	assert.Error(t, err)

	s.SetScaling("y", 1, 1)
	s.SetScaling("y", 10, 0)
	scaled, err := s.GetScaled("y", 5)
	require.NoError(t, err)
	assert.InDelta(t, 10, scaled, 1e-9)
}

func TestSet_LenAndKeys(t *testing.T) {
	s := New()
	assert.Zero(t, s.Len())
	assert.Empty(t, s.Keys())

	s.Set("alpha", Int(1))
	s.SetScaling("beta", 1, 1)
	s.Set("gamma", Bool(true))
	s.SetScaling("gamma", 2, 0)

	// gamma is stored in both forms and counts twice.
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, s.Keys())
}

func TestParseError_Message(t *testing.T) {
	err := &ParseError{Key: "mana-base", Raw: "lots", Want: KindFloat}
	assert.Equal(t, `setting "mana-base": cannot read "lots" as float`, err.Error())
}
