package integration

import (
	"os"
	"path/filepath"

	"github.com/udisondev/skillkit/pkg/settings"
	"github.com/udisondev/skillkit/pkg/skill"
)

func (s *SettingsSuite) TestSaveAndLoadRoundTrip() {
	set := settings.New()
	set.Set("name", settings.String("Fireball"))
	set.Set("enabled", settings.Bool(true))
	set.Set("charges", settings.Int(3))
	set.SetScaling("damage", 10, 2.5)
	set.SetScaling("mana", 20, -1)

	s.Require().NoError(s.repo.Save(s.ctx, "skill:fireball", set))

	loaded, err := s.repo.Load(s.ctx, "skill:fireball")
	s.Require().NoError(err)

	// Kind tags make the round-trip exact, entry for entry.
	s.Equal(set.Entries(), loaded.Entries())

	for level := 1; level <= 5; level++ {
		want, err := set.GetScaled("damage", level)
		s.Require().NoError(err)
		got, err := loaded.GetScaled("damage", level)
		s.Require().NoError(err)
		s.InDelta(want, got, 1e-9)
	}
}

func (s *SettingsSuite) TestSaveReplacesPreviousRows() {
	set := settings.New()
	set.Set("old", settings.Int(1))
	s.Require().NoError(s.repo.Save(s.ctx, "npc:wolf", set))

	set.Remove("old")
	set.SetScaling("hp", 100, 25)
	s.Require().NoError(s.repo.Save(s.ctx, "npc:wolf", set))

	loaded, err := s.repo.Load(s.ctx, "npc:wolf")
	s.Require().NoError(err)

	_, ok := loaded.GetString("old")
	s.False(ok)
	hp, err := loaded.GetScaled("hp", 3)
	s.Require().NoError(err)
	s.InDelta(150, hp, 1e-9)
}

func (s *SettingsSuite) TestEntitiesAndDelete() {
	set := settings.New()
	set.Set("k", settings.Int(1))

	s.Require().NoError(s.repo.Save(s.ctx, "skill:b", set))
	s.Require().NoError(s.repo.Save(s.ctx, "skill:a", set))

	ids, err := s.repo.Entities(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"skill:a", "skill:b"}, ids)

	s.Require().NoError(s.repo.Delete(s.ctx, "skill:a"))

	ids, err = s.repo.Entities(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"skill:b"}, ids)

	loaded, err := s.repo.Load(s.ctx, "skill:a")
	s.Require().NoError(err)
	s.Zero(loaded.Len())
}

func (s *SettingsSuite) TestMalformedTextSurvivesStorage() {
	// Values loaded from a YAML medium stay textual; storing them must
	// keep the deferred parse error intact.
	set := settings.New()
	set.Restore("damage-base", settings.String("heavy"))
	set.Restore("damage-scale", settings.String("2"))

	s.Require().NoError(s.repo.Save(s.ctx, "skill:odd", set))

	loaded, err := s.repo.Load(s.ctx, "skill:odd")
	s.Require().NoError(err)

	_, err = loaded.GetScaled("damage", 2)
	var pe *settings.ParseError
	s.Require().ErrorAs(err, &pe)
	s.Equal("damage-base", pe.Key)
	s.Equal("heavy", pe.Raw)
}

// TestSkillPipeline walks the whole stack: YAML skill files -> loaded
// templates -> database rows -> reloaded settings.
func (s *SettingsSuite) TestSkillPipeline() {
	dir := s.T().TempDir()
	doc := `fireball:
  type: attack
  max-level: 3
  mana-base: 20
  mana-scale: -1
  damage-base: 10
  damage-scale: 2.5
dash:
  range-base: 4
  range-scale: 1.5
`
	s.Require().NoError(os.WriteFile(filepath.Join(dir, "skills.yml"), []byte(doc), 0o644))

	reg, err := skill.LoadDir(dir)
	s.Require().NoError(err)
	s.Equal(2, reg.Len())

	for _, tpl := range reg.All() {
		s.Require().NoError(s.repo.Save(s.ctx, "skill:"+tpl.Name(), tpl.Settings()))
	}

	ids, err := s.repo.Entities(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"skill:dash", "skill:fireball"}, ids)

	loaded, err := s.repo.Load(s.ctx, "skill:fireball")
	s.Require().NoError(err)

	tpl := reg.Get("fireball")
	for level := 1; level <= 3; level++ {
		want, err := tpl.ManaCost(level)
		s.Require().NoError(err)
		got, err := loaded.GetScaled(skill.AttrMana, level)
		s.Require().NoError(err)
		s.InDelta(want, got, 1e-9)

		wantDmg, err := tpl.Settings().GetScaled("damage", level)
		s.Require().NoError(err)
		gotDmg, err := loaded.GetScaled("damage", level)
		s.Require().NoError(err)
		s.InDelta(wantDmg, gotDmg, 1e-9)
	}

	typ, ok := loaded.GetString("type")
	s.True(ok)
	s.Equal("attack", typ)
}
