package config

import (
	"github.com/arthur-debert/expedition/pkg/highlight"
	"github.com/arthur-debert/expedition/pkg/style"
	"github.com/arthur-debert/expedition/pkg/theme"
	"github.com/arthur-debert/expedition/pkg/ui"
	"github.com/arthur-debert/expedition/pkg/ui/layout"
)

// Config is the complete expedition configuration.
type Config struct {
	Output    Output    `koanf:"output"`
	Layout    Layout    `koanf:"layout"`
	Highlight Highlight `koanf:"highlight"`
	Theme     Theme     `koanf:"theme"`
}

// Output selects the stream backend.
type Output struct {
	Format       ui.Format `koanf:"format"`
	ColorProfile string    `koanf:"color_profile"`
}

// Layout holds the fallbacks of the GUI layout backend.
type Layout struct {
	FontFamily         layout.FontFamily `koanf:"font_family"`
	FontSize           float32           `koanf:"font_size"`
	DefaultColor       style.Color       `koanf:"default_color"`
	Background         style.Color       `koanf:"background"`
	UnderlineWidth     float32           `koanf:"underline_width"`
	StrikethroughWidth float32           `koanf:"strikethrough_width"`
	VAlign             layout.Align      `koanf:"valign"`
}

// Highlight configures syntax highlighting.
type Highlight struct {
	Style      string `koanf:"style"`
	Background bool   `koanf:"background"`
}

// Theme points at a user theme file.
type Theme struct {
	File string `koanf:"file"`
}

// RendererOptions returns the ui options implied by the output section.
func (c *Config) RendererOptions() ([]ui.Option, error) {
	p, ok, err := ui.ParseProfile(c.Output.ColorProfile)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return []ui.Option{ui.WithProfile(p)}, nil
}

// StyleToFormat returns the layout conversion described by the layout
// section.
func (c *Config) StyleToFormat() layout.StyleToFormat {
	return layout.StyleToFormat{
		Font:               layout.FontID{Family: c.Layout.FontFamily, Size: c.Layout.FontSize},
		Background:         c.Layout.Background,
		DefaultColor:       c.Layout.DefaultColor,
		UnderlineWidth:     c.Layout.UnderlineWidth,
		StrikethroughWidth: c.Layout.StrikethroughWidth,
		VAlign:             c.Layout.VAlign,
	}
}

// HighlightOptions returns the highlight options of the highlight section.
func (c *Config) HighlightOptions() []highlight.Option {
	return []highlight.Option{
		highlight.WithStyle(c.Highlight.Style),
		highlight.WithBackground(c.Highlight.Background),
	}
}

// LoadTheme loads the configured theme file, or the built-in theme when
// none is set.
func (c *Config) LoadTheme() (*theme.Theme, error) {
	if c.Theme.File == "" {
		return theme.Default(), nil
	}
	return theme.Load(c.Theme.File)
}
