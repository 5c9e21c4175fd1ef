package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/udisondev/skillkit/pkg/skill"
)

// runSeed loads the skill directory and stores every skill's settings
// under the entity id "skill:<name>".
func runSeed(args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("usage: skillkit seed [dir]")
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	dir := cfg.DataDir
	if len(args) == 1 {
		dir = args[0]
	}

	reg, err := skill.LoadDir(dir)
	if err != nil {
		return err
	}

	ctx := context.Background()
	repo, conn, err := openRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	for _, tpl := range reg.All() {
		if err := repo.Save(ctx, "skill:"+tpl.Name(), tpl.Settings()); err != nil {
			return err
		}
	}

	slog.Info("seeded skill settings", "skills", reg.Len(), "driver", cfg.Database.Driver)
	return nil
}
