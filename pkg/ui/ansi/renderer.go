// Package ansi writes runs as raw SGR escape sequences. Every styled run is
// followed by a reset so no state leaks from one run into the next.
package ansi

import (
	"io"
	"strings"

	"github.com/arthur-debert/expedition/pkg/errors"
	"github.com/arthur-debert/expedition/pkg/runs"
	"github.com/arthur-debert/expedition/pkg/style"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// Renderer emits SGR sequences.
type Renderer struct {
	output  io.Writer
	profile termenv.Profile
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithProfile degrades colours to p. The default is TrueColor.
func WithProfile(p termenv.Profile) Option {
	return func(r *Renderer) {
		r.profile = p
	}
}

// New creates an SGR renderer.
func New(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{output: w, profile: termenv.TrueColor}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Sequence returns the SGR attributes for st, or nil when st enables
// nothing.
func (r *Renderer) Sequence(st style.Style) xansi.Style {
	var s xansi.Style
	if st.BoldState().Enabled() {
		s = s.Bold()
	}
	if st.ItalicState().Enabled() {
		s = s.Italic()
	}
	if st.UnderlineState().Enabled() {
		s = s.Underline()
	}
	if st.StrikethroughState().Enabled() {
		s = s.Strikethrough()
	}
	if fg, ok := st.Foreground(); ok {
		if c := r.convert(fg); c != nil {
			s = s.ForegroundColor(c)
		}
	}
	if bg, ok := st.Background(); ok {
		if c := r.convert(bg); c != nil {
			s = s.BackgroundColor(c)
		}
	}
	return s
}

// convert maps c into the renderer's profile. It returns nil when the
// profile has no colours.
func (r *Renderer) convert(c style.Color) xansi.Color {
	switch tc := r.profile.Color(c.Colorful().Hex()).(type) {
	case termenv.ANSIColor:
		return xansi.BasicColor(tc)
	case termenv.ANSI256Color:
		return xansi.ExtendedColor(tc)
	case termenv.RGBColor:
		return style.RGB(c.R, c.G, c.B)
	default:
		return nil
	}
}

// Render writes every run, wrapping styled ones in a sequence and a reset.
func (r *Renderer) Render(_ string, rs []runs.Run) error {
	var sb strings.Builder
	for _, run := range rs {
		seq := r.Sequence(run.Style)
		if len(seq) == 0 {
			sb.WriteString(run.Text)
			continue
		}
		sb.WriteString(seq.String())
		sb.WriteString(run.Text)
		sb.WriteString(xansi.ResetStyle)
	}
	if _, err := io.WriteString(r.output, sb.String()); err != nil {
		return errors.Wrap(err, errors.ErrRender, "failed to write ansi output")
	}
	return nil
}
