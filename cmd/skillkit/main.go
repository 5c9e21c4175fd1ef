// Skill parameter toolkit: validates, normalizes and stores the YAML
// files that define skill settings.
//
// Usage:
//
//	go run ./cmd/skillkit validate <dir|file>   # check files, print a summary
//	go run ./cmd/skillkit normalize <dir|file>  # rewrite files in canonical form
//	go run ./cmd/skillkit seed [dir]            # store skill settings in the database
//	go run ./cmd/skillkit dump [entity]         # list stored entities or print one
//	go run ./cmd/skillkit --list                # list available commands
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/udisondev/skillkit/internal/config"
	"github.com/udisondev/skillkit/internal/db"
)

const ConfigPath = "config/skillkit.yaml"

type command struct {
	name string
	desc string
	run  func(args []string) error
}

var commands []command

func registerCommand(name, desc string, fn func(args []string) error) {
	commands = append(commands, command{name: name, desc: desc, run: fn})
}

func init() {
	registerCommand("validate", "Check skill files and print per-skill summaries", runValidate)
	registerCommand("normalize", "Rewrite skill files in canonical sorted form", runNormalize)
	registerCommand("seed", "Store skill settings in the configured database", runSeed)
	registerCommand("dump", "List stored entities, or print one entity's settings", runDump)
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	args := os.Args[1:]
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}
	if args[0] == "--list" {
		printList()
		return
	}

	for _, c := range commands {
		if c.name != args[0] {
			continue
		}
		if err := c.run(args[1:]); err != nil {
			slog.Error("command failed", "command", c.name, "err", err)
			os.Exit(1)
		}
		return
	}

	fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
	printList()
	os.Exit(1)
}

// loadConfig reads the tool config, honoring the SKILLKIT_CONFIG
// override.
func loadConfig() (config.Tool, error) {
	path := ConfigPath
	if p := os.Getenv("SKILLKIT_CONFIG"); p != "" {
		path = p
	}
	return config.LoadTool(path)
}

// openRepository connects to the configured database, applies the
// migrations and returns a ready repository. The caller closes conn.
func openRepository(ctx context.Context, cfg config.Tool) (*db.SettingsRepository, *sql.DB, error) {
	driver, err := db.ParseDriver(cfg.Database.Driver)
	if err != nil {
		return nil, nil, err
	}
	conn, err := db.Open(ctx, driver, cfg.Database.DSN())
	if err != nil {
		return nil, nil, err
	}
	if err := db.RunMigrations(ctx, conn, driver); err != nil {
		conn.Close()
		return nil, nil, err
	}
	return db.NewSettingsRepository(conn), conn, nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: go run ./cmd/skillkit <command> [args]")
	fmt.Fprintln(os.Stderr, "       go run ./cmd/skillkit --list")
}

func printList() {
	names := make([]string, 0, len(commands))
	maxLen := 0
	for _, c := range commands {
		names = append(names, c.name)
		if len(c.name) > maxLen {
			maxLen = len(c.name)
		}
	}
	sort.Strings(names)

	cmdMap := make(map[string]command, len(commands))
	for _, c := range commands {
		cmdMap[c.name] = c
	}

	fmt.Println("Available commands:")
	for _, name := range names {
		c := cmdMap[name]
		padding := strings.Repeat(" ", maxLen-len(name)+2)
		fmt.Printf("  %s%s%s\n", name, padding, c.desc)
	}
}
