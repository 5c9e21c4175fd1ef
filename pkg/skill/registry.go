package skill

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/skillkit/pkg/section"
)

// Registry holds loaded templates keyed by skill name. Build it with
// LoadFile or LoadDir and treat it as read-only afterwards.
type Registry struct {
	templates map[string]*Template
}

// Get returns the template for name, or nil when unknown.
func (r *Registry) Get(name string) *Template {
	if r == nil {
		return nil
	}
	return r.templates[name]
}

// Len returns the number of loaded templates.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.templates)
}

// Names returns all skill names in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns the templates sorted by name.
func (r *Registry) All() []*Template {
	out := make([]*Template, 0, r.Len())
	for _, name := range r.Names() {
		out = append(out, r.templates[name])
	}
	return out
}

// LoadFile reads one YAML file where every top-level section defines
// one skill.
func LoadFile(path string) (*Registry, error) {
	templates, err := loadFile(path)
	if err != nil {
		return nil, err
	}

	reg := &Registry{templates: make(map[string]*Template, len(templates))}
	for _, t := range templates {
		reg.templates[t.Name()] = t
	}

	slog.Info("loaded skill templates", "file", path, "count", reg.Len())
	return reg, nil
}

// LoadDir loads every .yml/.yaml file directly under dir, in parallel,
// and merges the results. A skill name defined in two files is an
// error naming both files.
func LoadDir(dir string) (*Registry, error) {
	files, err := listSkillFiles(dir)
	if err != nil {
		return nil, err
	}

	results := make([][]*Template, len(files))
	var g errgroup.Group
	for i, path := range files {
		g.Go(func() error {
			templates, err := loadFile(path)
			if err != nil {
				return err
			}
			results[i] = templates
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	reg := &Registry{templates: make(map[string]*Template)}
	owner := make(map[string]string)
	for i, templates := range results {
		for _, t := range templates {
			if prev, ok := owner[t.Name()]; ok {
				return nil, fmt.Errorf("skill %q defined in both %s and %s", t.Name(), prev, files[i])
			}
			owner[t.Name()] = files[i]
			reg.templates[t.Name()] = t
		}
	}

	slog.Info("loaded skill templates", "dir", dir, "files", len(files), "count", reg.Len())
	return reg, nil
}

func loadFile(path string) ([]*Template, error) {
	root, err := section.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if keys := root.Keys(); len(keys) > 0 {
		return nil, fmt.Errorf("%s: top-level key %q is not a skill section", path, keys[0])
	}

	names := root.Sections()
	templates := make([]*Template, 0, len(names))
	for _, name := range names {
		templates = append(templates, FromSection(name, root.Child(name)))
	}
	return templates, nil
}

func listSkillFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading skill dir: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".yml", ".yaml":
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files, nil
}
