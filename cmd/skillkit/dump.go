package main

import (
	"context"
	"fmt"
)

// runDump lists stored entity ids, or prints the flattened settings
// of one entity.
func runDump(args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("usage: skillkit dump [entity]")
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	ctx := context.Background()
	repo, conn, err := openRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	if len(args) == 0 {
		ids, err := repo.Entities(ctx)
		if err != nil {
			return err
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return nil
	}

	set, err := repo.Load(ctx, args[0])
	if err != nil {
		return err
	}
	for _, e := range set.Entries() {
		fmt.Printf("%-28s %-7s %s\n", e.Key, e.Value.Kind(), e.Value)
	}
	return nil
}
