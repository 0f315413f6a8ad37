package page

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed pages/*.html
var builtinFS embed.FS

func loadBuiltin(name string) (*Template, error) {
	path := "pages/" + name + ext
	data, err := builtinFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading builtin page %s: %w", path, err)
	}
	return parseTemplate(name, string(data))
}

func listBuiltins() []Info {
	entries, err := builtinFS.ReadDir("pages")
	if err != nil {
		return nil
	}

	var pages []Info
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ext) {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ext)
		tmpl, err := loadBuiltin(name)
		if err != nil {
			continue
		}
		pages = append(pages, Info{Name: name, Description: tmpl.Description, Source: "built-in"})
	}
	return pages
}
