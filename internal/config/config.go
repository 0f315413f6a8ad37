package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the project-local config file looked up in the working directory.
const FileName = "pwademo.yaml"

// Config holds the settings the router renders with.
type Config struct {
	// AppName is the sentinel argument 0, as os.Args[0] would be.
	AppName string `yaml:"app_name"`
	// BasePath is the URL path the app is served from, e.g. /pwademo/.
	BasePath string `yaml:"base_path"`
	// Origin is scheme and host, e.g. http://localhost:4000. Empty leaves
	// AbsURL relative.
	Origin   string   `yaml:"origin"`
	Defaults Defaults `yaml:"defaults"`
	Footer   Footer   `yaml:"footer"`

	// Source is the file the config was read from, or "built-in".
	Source string `yaml:"-"`
}

// Defaults are the values pre-filled in the input form.
type Defaults struct {
	Arg1 string `yaml:"arg_1"`
	Arg2 string `yaml:"arg_2"`
}

// Footer is the small paragraph under the input form.
type Footer struct {
	Class string `yaml:"class"`
	Text  string `yaml:"text"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		AppName:  "pwademo",
		BasePath: "/pwademo/",
		Origin:   "http://localhost:4000",
		Defaults: Defaults{Arg1: "upper", Arg2: "world"},
		Footer:   Footer{Class: "small", Text: "bestia.dev"},
		Source:   "built-in",
	}
}

// Load resolves the configuration.
//
// Resolution order (first file found wins, fields missing from it keep
// their defaults):
//  1. ./pwademo.yaml
//  2. <Dir()>/config.yaml
//  3. built-in defaults
//
// $PWADEMO_APP_NAME, $PWADEMO_BASE_PATH and $PWADEMO_ORIGIN override the result.
func Load() (Config, error) {
	candidates := []string{FileName}
	if dir := Dir(); dir != "" {
		candidates = append(candidates, filepath.Join(dir, "config.yaml"))
	}

	cfg := Default()
	for _, path := range candidates {
		loaded, err := LoadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
		break
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile reads one YAML config file over the defaults.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.Source = path
	cfg.BasePath = normalizeBasePath(cfg.BasePath)
	cfg.Origin = normalizeOrigin(cfg.Origin)
	return cfg, nil
}

// Validate checks the fields the router cannot work without.
func (c Config) Validate() error {
	if strings.TrimSpace(c.AppName) == "" {
		return errors.New("config: app_name must not be empty")
	}
	if strings.ContainsAny(c.AppName, "/#") {
		return fmt.Errorf("config: app_name %q must not contain '/' or '#'", c.AppName)
	}
	return nil
}

// URL returns the link to the app with the given fragment, e.g.
// URL("help") is "/pwademo/#help".
func (c Config) URL(fragment string) string {
	fragment = strings.TrimPrefix(fragment, "#")
	if fragment == "" {
		return c.BasePath
	}
	return c.BasePath + "#" + fragment
}

// AbsURL is URL prefixed with Origin, for links shown outside the page.
func (c Config) AbsURL(fragment string) string {
	return c.Origin + c.URL(fragment)
}

func (c *Config) applyEnv() {
	if name := os.Getenv("PWADEMO_APP_NAME"); name != "" {
		c.AppName = name
	}
	if base := os.Getenv("PWADEMO_BASE_PATH"); base != "" {
		c.BasePath = normalizeBasePath(base)
	}
	if origin := os.Getenv("PWADEMO_ORIGIN"); origin != "" {
		c.Origin = normalizeOrigin(origin)
	}
}

// normalizeOrigin drops trailing slashes.
func normalizeOrigin(o string) string {
	return strings.TrimRight(strings.TrimSpace(o), "/")
}

// normalizeBasePath makes the path absolute with a trailing slash.
func normalizeBasePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if !strings.HasSuffix(p, "/") {
		p += "/"
	}
	return p
}
