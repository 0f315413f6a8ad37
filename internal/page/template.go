package page

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/pwademo/internal/config"
	"github.com/gorewood/pwademo/internal/htmlsrc"
)

// Names of the built-in pages.
const (
	Header         = "header"
	PageWithInputs = "page_with_inputs"
	Footer         = "footer"
	Help           = "help"
)

// ext is the file extension of page sources.
const ext = ".html"

// Template is a page source with its frontmatter.
type Template struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Version     int    `yaml:"version,omitempty"`

	// Content is the markup after the frontmatter.
	Content string `yaml:"-"`

	// Source is "project", "global" or "built-in".
	Source string `yaml:"-"`
}

// HTML returns a fresh htmlsrc.Template over the content.
func (t *Template) HTML() *htmlsrc.Template {
	return htmlsrc.New(t.Content)
}

// Info describes a page for listing.
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Source      string `json:"source"`
	Overrides   string `json:"overrides,omitempty"`
}

// Dir is a directory searched for page overrides.
type Dir struct {
	Source string
	Path   string
}

// Loader resolves pages from override directories, then built-ins.
type Loader struct {
	dirs []Dir
}

// NewLoader returns a Loader searching the project and global directories.
func NewLoader() *Loader {
	dirs := []Dir{{Source: "project", Path: filepath.Join(".pwademo", "pages")}}
	if dir := config.Dir(); dir != "" {
		dirs = append(dirs, Dir{Source: "global", Path: filepath.Join(dir, "pages")})
	}
	return &Loader{dirs: dirs}
}

// NewLoaderWithDirs returns a Loader searching the given directories in order.
func NewLoaderWithDirs(dirs ...Dir) *Loader {
	return &Loader{dirs: dirs}
}

// BuiltinLoader returns a Loader that only knows the embedded pages.
func BuiltinLoader() *Loader {
	return &Loader{}
}

// Load finds a page by name.
func (l *Loader) Load(name string) (*Template, error) {
	for _, dir := range l.dirs {
		tmpl, err := loadFromPath(dir.Path, name)
		if err == nil {
			tmpl.Source = dir.Source
			return tmpl, nil
		}
	}

	tmpl, err := loadBuiltin(name)
	if err != nil {
		return nil, fmt.Errorf("page %q not found", name)
	}
	tmpl.Source = "built-in"
	return tmpl, nil
}

// List returns every available page. Overridden built-ins are not listed
// separately; the override records what it replaces.
func (l *Loader) List() []Info {
	seen := make(map[string]int)
	var pages []Info

	for _, dir := range l.dirs {
		infos, err := listFromPath(dir.Path, dir.Source)
		if err != nil {
			continue
		}
		for _, info := range infos {
			if _, exists := seen[info.Name]; !exists {
				seen[info.Name] = len(pages)
				pages = append(pages, info)
			}
		}
	}

	for _, info := range listBuiltins() {
		if idx, exists := seen[info.Name]; exists {
			pages[idx].Overrides = "built-in"
			continue
		}
		pages = append(pages, info)
	}
	return pages
}

func loadFromPath(dir, name string) (*Template, error) {
	if dir == "" {
		return nil, errors.New("no directory")
	}

	path := filepath.Join(dir, name+ext)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading page %s: %w", path, err)
	}
	return parseTemplate(name, string(data))
}

func listFromPath(dir, source string) ([]Info, error) {
	if dir == "" {
		return nil, errors.New("no directory")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var pages []Info
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ext) {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ext)
		tmpl, err := loadFromPath(dir, name)
		if err != nil {
			continue
		}
		pages = append(pages, Info{Name: name, Description: tmpl.Description, Source: source})
	}
	return pages, nil
}

// parseTemplate splits frontmatter from content. A page without a name in
// its frontmatter is named after its file.
func parseTemplate(name, raw string) (*Template, error) {
	frontmatter, content := splitFrontmatter(raw)

	var tmpl Template
	if frontmatter != "" {
		if err := yaml.Unmarshal([]byte(frontmatter), &tmpl); err != nil {
			return nil, fmt.Errorf("invalid frontmatter in page %s: %w", name, err)
		}
	}
	if tmpl.Name == "" {
		tmpl.Name = name
	}
	tmpl.Content = content
	return &tmpl, nil
}

// splitFrontmatter separates YAML frontmatter delimited by --- lines.
// Content keeps its inner whitespace; only surrounding blank lines go.
func splitFrontmatter(raw string) (frontmatter, content string) {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "---") {
		return "", strings.Trim(raw, "\n")
	}

	before, after, ok := strings.Cut(trimmed[3:], "\n---")
	if !ok {
		return "", strings.Trim(raw, "\n")
	}
	return strings.TrimSpace(before), strings.Trim(after, "\n")
}
