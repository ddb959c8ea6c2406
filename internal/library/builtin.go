package library

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed templates/*.yaml
var builtinFS embed.FS

// loadBuiltin loads a built-in template by name.
func loadBuiltin(name string) (*Template, error) {
	path := "templates/" + name + ".yaml"
	data, err := builtinFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading builtin template %s: %w", path, err)
	}
	return parseTemplate(data)
}

// listBuiltins returns info for all built-in templates.
func listBuiltins() []Info {
	entries, err := builtinFS.ReadDir("templates")
	if err != nil {
		return nil
	}

	var infos []Info
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		data, err := builtinFS.ReadFile("templates/" + entry.Name())
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
			Source:      "built-in",
		})
	}
	return infos
}
