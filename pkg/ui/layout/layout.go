// Package layout converts runs into a toolkit-neutral GUI text job: the
// full text plus one formatted section per run, addressed by byte range the
// way immediate-mode GUI toolkits expect.
package layout

import (
	"strings"

	"github.com/arthur-debert/expedition/pkg/errors"
	"github.com/arthur-debert/expedition/pkg/runs"
	"github.com/arthur-debert/expedition/pkg/spans"
	"github.com/arthur-debert/expedition/pkg/style"
)

// FontFamily selects a font family.
type FontFamily string

const (
	Proportional FontFamily = "proportional"
	Monospace    FontFamily = "monospace"
)

// Align is the vertical alignment of a section within its row.
type Align int

const (
	AlignBottom Align = iota
	AlignCenter
	AlignTop
)

func (a Align) String() string {
	switch a {
	case AlignTop:
		return "top"
	case AlignCenter:
		return "center"
	default:
		return "bottom"
	}
}

// ParseAlign parses "top", "center" or "bottom".
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(s) {
	case "", "bottom":
		return AlignBottom, nil
	case "center", "middle":
		return AlignCenter, nil
	case "top":
		return AlignTop, nil
	default:
		return AlignBottom, errors.Newf(errors.ErrInvalidInput, "unknown alignment: %s", s)
	}
}

// FontID names a font at a size in points.
type FontID struct {
	Family FontFamily
	Size   float32
}

// Stroke is a line decoration. A zero width means no line.
type Stroke struct {
	Width float32
	Color style.Color
}

// None reports whether the stroke draws nothing.
func (s Stroke) None() bool {
	return s.Width <= 0
}

// TextFormat is the formatting of one section.
type TextFormat struct {
	Font          FontID
	Color         style.Color
	Background    style.Color
	Bold          bool
	Italics       bool
	Underline     Stroke
	Strikethrough Stroke
	VAlign        Align
}

// StyleToFormat holds the values used where a style has no opinion.
type StyleToFormat struct {
	Font               FontID
	Background         style.Color
	DefaultColor       style.Color
	UnderlineWidth     float32
	StrikethroughWidth float32
	VAlign             Align
}

// DefaultStyleToFormat returns 14pt proportional gray text on a transparent
// background with 1pt decorations aligned to the bottom.
func DefaultStyleToFormat() StyleToFormat {
	return StyleToFormat{
		Font:               FontID{Family: Proportional, Size: 14},
		Background:         style.Transparent,
		DefaultColor:       style.Gray,
		UnderlineWidth:     1,
		StrikethroughWidth: 1,
		VAlign:             AlignBottom,
	}
}

// Format converts a resolved style. Decorations are drawn in the text
// colour.
func (c StyleToFormat) Format(st style.Style) TextFormat {
	fg, ok := st.Foreground()
	if !ok {
		fg = c.DefaultColor
	}
	bg, ok := st.Background()
	if !ok {
		bg = c.Background
	}

	tf := TextFormat{
		Font:       c.Font,
		Color:      fg,
		Background: bg,
		Bold:       st.BoldState().Enabled(),
		Italics:    st.ItalicState().Enabled(),
		VAlign:     c.VAlign,
	}
	if st.UnderlineState().Enabled() {
		tf.Underline = Stroke{Width: c.UnderlineWidth, Color: fg}
	}
	if st.StrikethroughState().Enabled() {
		tf.Strikethrough = Stroke{Width: c.StrikethroughWidth, Color: fg}
	}
	return tf
}

// ByteRange is a half-open range of byte offsets into Job.Text.
type ByteRange struct {
	Start int
	End   int
}

// Section formats one byte range of a job.
type Section struct {
	ByteRange ByteRange
	Format    TextFormat
}

// Job is text ready for a GUI text layouter.
type Job struct {
	Text     string
	Sections []Section
}

// Builder is a Renderer that accumulates a Job. Successive renders append
// to the same job.
type Builder struct {
	convert StyleToFormat
	job     Job
}

// NewBuilder returns a builder using c for conversion.
func NewBuilder(c StyleToFormat) *Builder {
	return &Builder{convert: c}
}

// Render appends one section per run.
func (b *Builder) Render(_ string, rs []runs.Run) error {
	var sb strings.Builder
	sb.WriteString(b.job.Text)
	for _, r := range rs {
		start := sb.Len()
		sb.WriteString(r.Text)
		b.job.Sections = append(b.job.Sections, Section{
			ByteRange: ByteRange{Start: start, End: sb.Len()},
			Format:    b.convert.Format(r.Style),
		})
	}
	b.job.Text = sb.String()
	return nil
}

// Job returns the accumulated job.
func (b *Builder) Job() Job {
	out := Job{Text: b.job.Text, Sections: make([]Section, len(b.job.Sections))}
	copy(out.Sections, b.job.Sections)
	return out
}

// Reset discards the accumulated job.
func (b *Builder) Reset() {
	b.job = Job{}
}

// ToJob resolves buf and converts it in one step.
func (c StyleToFormat) ToJob(buf *spans.Buffer) Job {
	b := NewBuilder(c)
	_ = b.Render(buf.Text(), runs.Resolve(buf))
	return b.Job()
}
