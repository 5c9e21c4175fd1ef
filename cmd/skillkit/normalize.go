package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/udisondev/skillkit/pkg/section"
)

// runNormalize rewrites skill files in canonical form: keys sorted,
// scalars in their parsed YAML types. Files are replaced atomically,
// so an interrupted run never leaves a half-written file.
func runNormalize(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: skillkit normalize <dir|file>")
	}

	paths, err := listYAMLFiles(args[0])
	if err != nil {
		return err
	}

	for _, path := range paths {
		root, err := section.LoadFile(path)
		if err != nil {
			return err
		}
		if err := root.SaveFile(path); err != nil {
			return err
		}
		fmt.Printf("%s: normalized\n", path)
	}
	return nil
}

func listYAMLFiles(target string) ([]string, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", target, err)
	}
	if !info.IsDir() {
		return []string{target}, nil
	}

	entries, err := os.ReadDir(target)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", target, err)
	}
	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".yml", ".yaml":
			paths = append(paths, filepath.Join(target, e.Name()))
		}
	}
	return paths, nil
}
