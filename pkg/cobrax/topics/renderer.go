package topics

import (
	"github.com/charmbracelet/glamour"
)

// Renderer formats topic content for the terminal. format is the topic
// file's extension.
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer returns content as-is
type PlainRenderer struct{}

func (r *PlainRenderer) Render(content string, format string) string {
	return content
}

// GlamourRenderer renders markdown topics with glamour and passes every
// other format through.
type GlamourRenderer struct {
	options []glamour.TermRendererOption
}

// NewGlamourRenderer creates a markdown renderer. An empty style detects
// dark or light from the terminal; width 0 keeps glamour's default wrap.
func NewGlamourRenderer(style string, width int) *GlamourRenderer {
	var opts []glamour.TermRendererOption
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	return &GlamourRenderer{options: opts}
}

func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}
	tr, err := glamour.NewTermRenderer(r.options...)
	if err != nil {
		return content
	}
	rendered, err := tr.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
