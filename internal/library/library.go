// Package library stores named format templates as small YAML files.
// Resolution is layered the same way as configuration: project-local
// templates override global ones, which override the built-ins.
package library

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/verbs/internal/config"
	"github.com/gorewood/verbs/internal/printf"
)

// projectDir is the project-local template directory.
const projectDir = ".verbs/templates"

// ErrNotFound is returned when no source has a template with the name.
var ErrNotFound = errors.New("template not found")

// Template is a named, reusable format string.
type Template struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Format      string `yaml:"format"`

	// Source is "built-in", "global", or "project"; not stored in the file.
	Source string `yaml:"-"`
}

// Info is template metadata for listing.
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Format      string `json:"format"`
	Source      string `json:"source"`
	Overrides   string `json:"overrides,omitempty"` // source this entry shadows, if any
}

// validateName rejects names that would resolve outside a template
// directory. Every operation that joins a name into a path goes through it.
func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("template name is required")
	}
	if strings.ContainsAny(name, "/\\") || name == "." || name == ".." {
		return fmt.Errorf("template name %q must not contain path separators", name)
	}
	return nil
}

// Validate checks the template has a name and a parseable format string.
func (t *Template) Validate() error {
	if err := validateName(t.Name); err != nil {
		return err
	}
	if t.Format == "" {
		return errors.New("template format string is required")
	}
	if _, err := printf.Parse(t.Format); err != nil {
		return fmt.Errorf("template format string: %w", err)
	}
	return nil
}

// Load finds a template by name.
// Resolution order: project-local, then user global, then built-in.
func Load(name string) (*Template, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if tmpl, err := loadFromDir(projectDir, name); err == nil {
		tmpl.Source = "project"
		return tmpl, nil
	}
	if tmpl, err := loadFromDir(config.TemplatesDir(), name); err == nil {
		tmpl.Source = "global"
		return tmpl, nil
	}
	if tmpl, err := loadBuiltin(name); err == nil {
		tmpl.Source = "built-in"
		return tmpl, nil
	}
	return nil, fmt.Errorf("template %q: %w", name, ErrNotFound)
}

// List returns all available templates. The first source wins per name;
// shadowed entries are dropped and the winner notes what it overrides.
func List() []Info {
	seen := map[string]int{} // name -> index into out
	var out []Info

	add := func(infos []Info) {
		for _, info := range infos {
			if idx, exists := seen[info.Name]; exists {
				if out[idx].Overrides == "" {
					out[idx].Overrides = info.Source
				}
				continue
			}
			seen[info.Name] = len(out)
			out = append(out, info)
		}
	}

	add(listFromDir(projectDir, "project"))
	add(listFromDir(config.TemplatesDir(), "global"))
	add(listBuiltins())
	return out
}

// Save writes a template to the project or global library.
func Save(tmpl *Template, global bool) (string, error) {
	if err := tmpl.Validate(); err != nil {
		return "", err
	}

	dir := projectDir
	if global {
		dir = config.TemplatesDir()
		if dir == "" {
			return "", errors.New("cannot resolve the global template directory")
		}
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("creating template directory %s: %w", dir, err)
	}

	data, err := yaml.Marshal(tmpl)
	if err != nil {
		return "", fmt.Errorf("encoding template %q: %w", tmpl.Name, err)
	}
	path := filepath.Join(dir, tmpl.Name+".yaml")
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("writing template file %s: %w", path, err)
	}
	return path, nil
}

// Remove deletes a template from the project or global library. Built-ins
// cannot be removed, only shadowed.
func Remove(name string, global bool) error {
	if err := validateName(name); err != nil {
		return err
	}
	dir := projectDir
	if global {
		dir = config.TemplatesDir()
	}
	path := filepath.Join(dir, name+".yaml")
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("template %q: %w", name, ErrNotFound)
		}
		return fmt.Errorf("removing template file %s: %w", path, err)
	}
	return nil
}

// loadFromDir loads a template file from a directory.
func loadFromDir(dir, name string) (*Template, error) {
	if dir == "" {
		return nil, errors.New("no directory")
	}
	path := filepath.Join(dir, name+".yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}
	return parseTemplate(data)
}

// listFromDir lists the templates in a directory, skipping unreadable or
// malformed files.
func listFromDir(dir, source string) []Info {
	if dir == "" {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var infos []Info
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		tmpl, err := parseTemplate(data)
		if err != nil {
			continue
		}
		infos = append(infos, Info{
			Name:        strings.TrimSuffix(entry.Name(), ".yaml"),
			Description: tmpl.Description,
			Format:      tmpl.Format,
			Source:      source,
		})
	}
	return infos
}

// parseTemplate decodes a template file.
func parseTemplate(data []byte) (*Template, error) {
	var tmpl Template
	if err := yaml.Unmarshal(data, &tmpl); err != nil {
		return nil, fmt.Errorf("invalid template file: %w", err)
	}
	if tmpl.Format == "" {
		return nil, errors.New("template file has no format string")
	}
	return &tmpl, nil
}
