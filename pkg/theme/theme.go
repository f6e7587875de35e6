// Package theme maps class names to styles.
//
// Themes are YAML documents with a colour palette and a table of named
// styles:
//
//	colors:
//	  red: "#e06c75"
//	styles:
//	  error:
//	    foreground: red
//	    bold: true
//
// Colours are palette names or literal hex values. Class names may be
// dotted; Lookup falls back from "keyword.type" to "keyword".
package theme

import (
	_ "embed"
	"os"
	"sort"
	"strings"

	"github.com/arthur-debert/expedition/pkg/errors"
	"github.com/arthur-debert/expedition/pkg/logging"
	"github.com/arthur-debert/expedition/pkg/style"
	"gopkg.in/yaml.v3"
)

//go:embed theme.yaml
var embeddedTheme []byte

// StyleDef is a style as written in a theme file. Nil fields are unset.
type StyleDef struct {
	Foreground    string `yaml:"foreground,omitempty"`
	Background    string `yaml:"background,omitempty"`
	Bold          *bool  `yaml:"bold,omitempty"`
	Italic        *bool  `yaml:"italic,omitempty"`
	Underline     *bool  `yaml:"underline,omitempty"`
	Strikethrough *bool  `yaml:"strikethrough,omitempty"`
}

// Config is the on-disk form of a theme.
type Config struct {
	Name   string              `yaml:"name"`
	Colors map[string]string   `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Theme is a loaded, validated theme.
type Theme struct {
	Name   string
	colors map[string]style.Color
	styles map[string]style.Style
}

// Default returns the embedded theme.
func Default() *Theme {
	t, err := LoadFromData(embeddedTheme)
	if err != nil {
		panic(err)
	}
	return t
}

// Load reads a theme from a YAML file.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrThemeLoad, "failed to read theme file %s", path).
			WithDetail("path", path)
	}
	t, err := LoadFromData(data)
	if err != nil {
		return nil, err
	}

	logger := logging.GetLogger("theme")
	logger.Debug().Str("path", path).Str("name", t.Name).Int("styles", len(t.styles)).Msg("theme loaded")
	return t, nil
}

// LoadFromData parses a theme from YAML.
func LoadFromData(data []byte) (*Theme, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrThemeLoad, "failed to parse theme data")
	}
	return Build(cfg)
}

// Build validates cfg and resolves its colours.
func Build(cfg Config) (*Theme, error) {
	t := &Theme{
		Name:   cfg.Name,
		colors: make(map[string]style.Color, len(cfg.Colors)),
		styles: make(map[string]style.Style, len(cfg.Styles)),
	}
	for name, hex := range cfg.Colors {
		c, err := style.ParseHex(hex)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrThemeInvalid, "color %q", name).WithDetail("color", name)
		}
		t.colors[name] = c
	}
	for name, def := range cfg.Styles {
		st, err := t.build(def)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrThemeInvalid, "style %q", name).WithDetail("style", name)
		}
		t.styles[name] = st
	}
	return t, nil
}

func (t *Theme) build(def StyleDef) (style.Style, error) {
	st := style.Identity()
	if def.Foreground != "" {
		c, err := t.Color(def.Foreground)
		if err != nil {
			return st, err
		}
		st = st.WithForeground(c)
	}
	if def.Background != "" {
		c, err := t.Color(def.Background)
		if err != nil {
			return st, err
		}
		st = st.WithBackground(c)
	}
	if def.Bold != nil {
		st = st.WithBold(style.StateOf(*def.Bold))
	}
	if def.Italic != nil {
		st = st.WithItalic(style.StateOf(*def.Italic))
	}
	if def.Underline != nil {
		st = st.WithUnderline(style.StateOf(*def.Underline))
	}
	if def.Strikethrough != nil {
		st = st.WithStrikethrough(style.StateOf(*def.Strikethrough))
	}
	return st, nil
}

// Color resolves a palette name or a literal hex colour.
func (t *Theme) Color(ref string) (style.Color, error) {
	if strings.HasPrefix(ref, "#") {
		return style.ParseHex(ref)
	}
	if c, ok := t.colors[ref]; ok {
		return c, nil
	}
	return style.Color{}, errors.Newf(errors.ErrNotFound, "unknown color %q", ref)
}

// Get returns the style registered under name.
func (t *Theme) Get(name string) (style.Style, bool) {
	st, ok := t.styles[name]
	return st, ok
}

// Lookup is Get with fallback to dotted parents.
func (t *Theme) Lookup(name string) (style.Style, bool) {
	for {
		if st, ok := t.styles[name]; ok {
			return st, true
		}
		i := strings.LastIndexByte(name, '.')
		if i < 0 {
			return style.Style{}, false
		}
		name = name[:i]
	}
}

// Names returns every style name in sorted order.
func (t *Theme) Names() []string {
	names := make([]string, 0, len(t.styles))
	for name := range t.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Colors returns every palette name in sorted order.
func (t *Theme) Colors() []string {
	names := make([]string, 0, len(t.colors))
	for name := range t.colors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Merge layers the named styles left to right. Names resolve through
// Lookup.
func (t *Theme) Merge(names ...string) (style.Style, error) {
	out := style.Identity()
	for _, name := range names {
		st, ok := t.Lookup(name)
		if !ok {
			return style.Style{}, errors.Newf(errors.ErrNotFound, "unknown style %q", name).WithDetail("style", name)
		}
		out = out.Merge(st)
	}
	return out, nil
}

// Set registers or replaces a style.
func (t *Theme) Set(name string, st style.Style) {
	t.styles[name] = st
}
