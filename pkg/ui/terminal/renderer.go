// Package terminal renders runs through lipgloss, degrading colours to
// whatever the output's colour profile supports.
package terminal

import (
	"io"
	"strings"

	"github.com/arthur-debert/expedition/pkg/errors"
	"github.com/arthur-debert/expedition/pkg/runs"
	"github.com/arthur-debert/expedition/pkg/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Renderer writes styled runs to a terminal.
type Renderer struct {
	output   io.Writer
	renderer *lipgloss.Renderer
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithProfile forces a colour profile instead of detecting it.
func WithProfile(p termenv.Profile) Option {
	return func(r *Renderer) {
		r.renderer.SetColorProfile(p)
	}
}

// New creates a new terminal renderer bound to w.
func New(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{
		output:   w,
		renderer: lipgloss.NewRenderer(w),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Profile returns the colour profile in use.
func (r *Renderer) Profile() termenv.Profile {
	return r.renderer.ColorProfile()
}

// Style converts a resolved style into a lipgloss style on this renderer.
// Only attributes explicitly on are enabled.
func (r *Renderer) Style(st style.Style) lipgloss.Style {
	ls := r.renderer.NewStyle().TabWidth(lipgloss.NoTabConversion)
	if fg, ok := st.Foreground(); ok {
		ls = ls.Foreground(lipgloss.Color(fg.Colorful().Hex()))
	}
	if bg, ok := st.Background(); ok {
		ls = ls.Background(lipgloss.Color(bg.Colorful().Hex()))
	}
	if st.BoldState().Enabled() {
		ls = ls.Bold(true)
	}
	if st.ItalicState().Enabled() {
		ls = ls.Italic(true)
	}
	if st.UnderlineState().Enabled() {
		ls = ls.Underline(true)
	}
	if st.StrikethroughState().Enabled() {
		ls = ls.Strikethrough(true)
	}
	return ls
}

// Render writes every run. Lines inside a run are styled one at a time so
// lipgloss never pads them to a common width.
func (r *Renderer) Render(_ string, rs []runs.Run) error {
	var sb strings.Builder
	for _, run := range rs {
		ls := r.Style(run.Style)
		for i, line := range strings.Split(run.Text, "\n") {
			if i > 0 {
				sb.WriteByte('\n')
			}
			if line != "" {
				sb.WriteString(ls.Render(line))
			}
		}
	}
	if _, err := io.WriteString(r.output, sb.String()); err != nil {
		return errors.Wrap(err, errors.ErrRender, "failed to write terminal output")
	}
	return nil
}
