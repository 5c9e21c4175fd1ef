package main

import (
	"fmt"
	"os"

	"github.com/udisondev/skillkit/pkg/skill"
)

// runValidate loads skill files, checks every configured number and
// prints a per-skill summary with level-1 and max-level samples.
func runValidate(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: skillkit validate <dir|file>")
	}

	reg, err := loadRegistry(args[0])
	if err != nil {
		return err
	}

	for _, tpl := range reg.All() {
		if err := tpl.Validate(); err != nil {
			return err
		}

		maxLevel, err := tpl.MaxLevel()
		if err != nil {
			return err
		}
		first, err := sampleLine(tpl, 1)
		if err != nil {
			return err
		}

		fmt.Printf("%s (levels 1-%d)\n", tpl.Name(), maxLevel)
		fmt.Printf("  lvl 1: %s\n", first)
		if maxLevel > 1 {
			last, err := sampleLine(tpl, maxLevel)
			if err != nil {
				return err
			}
			fmt.Printf("  lvl %d: %s\n", maxLevel, last)
		}
	}

	fmt.Printf("OK: %d skills\n", reg.Len())
	return nil
}

func sampleLine(tpl *skill.Template, level int) (string, error) {
	mana, err := tpl.ManaCost(level)
	if err != nil {
		return "", err
	}
	cd, err := tpl.Cooldown(level)
	if err != nil {
		return "", err
	}
	rng, err := tpl.CastRange(level)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("mana %.1f, cooldown %.1fs, range %.1f", mana, cd, rng), nil
}

// loadRegistry loads one skill file or a whole directory of them.
func loadRegistry(target string) (*skill.Registry, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", target, err)
	}
	if info.IsDir() {
		return skill.LoadDir(target)
	}
	return skill.LoadFile(target)
}
