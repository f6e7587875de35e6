// Package palette renders runs with the 16 standard terminal colours using
// pterm. Arbitrary colours are snapped to the perceptually nearest entry.
package palette

import (
	"io"
	"strings"

	"github.com/arthur-debert/expedition/pkg/errors"
	"github.com/arthur-debert/expedition/pkg/runs"
	"github.com/arthur-debert/expedition/pkg/style"
	"github.com/pterm/pterm"
)

// Entry pairs a palette slot with its reference colour.
type Entry struct {
	Name       string
	Foreground pterm.Color
	Background pterm.Color
	Color      style.Color
}

// Entries is the xterm default rendition of the 16 colours.
var Entries = []Entry{
	{"black", pterm.FgBlack, pterm.BgBlack, style.RGB(0, 0, 0)},
	{"red", pterm.FgRed, pterm.BgRed, style.RGB(128, 0, 0)},
	{"green", pterm.FgGreen, pterm.BgGreen, style.RGB(0, 128, 0)},
	{"yellow", pterm.FgYellow, pterm.BgYellow, style.RGB(128, 128, 0)},
	{"blue", pterm.FgBlue, pterm.BgBlue, style.RGB(0, 0, 128)},
	{"magenta", pterm.FgMagenta, pterm.BgMagenta, style.RGB(128, 0, 128)},
	{"cyan", pterm.FgCyan, pterm.BgCyan, style.RGB(0, 128, 128)},
	{"white", pterm.FgWhite, pterm.BgWhite, style.RGB(192, 192, 192)},
	{"gray", pterm.FgDarkGray, pterm.BgDarkGray, style.RGB(128, 128, 128)},
	{"light-red", pterm.FgLightRed, pterm.BgLightRed, style.RGB(255, 0, 0)},
	{"light-green", pterm.FgLightGreen, pterm.BgLightGreen, style.RGB(0, 255, 0)},
	{"light-yellow", pterm.FgLightYellow, pterm.BgLightYellow, style.RGB(255, 255, 0)},
	{"light-blue", pterm.FgLightBlue, pterm.BgLightBlue, style.RGB(0, 0, 255)},
	{"light-magenta", pterm.FgLightMagenta, pterm.BgLightMagenta, style.RGB(255, 0, 255)},
	{"light-cyan", pterm.FgLightCyan, pterm.BgLightCyan, style.RGB(0, 255, 255)},
	{"light-white", pterm.FgLightWhite, pterm.BgLightWhite, style.RGB(255, 255, 255)},
}

// Nearest returns the palette entry closest to c.
func Nearest(c style.Color) Entry {
	best := Entries[0]
	bestDist := c.Distance(best.Color)
	for _, e := range Entries[1:] {
		if d := c.Distance(e.Color); d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}

// StyleFor converts a resolved style to a pterm style.
func StyleFor(st style.Style) pterm.Style {
	var ps pterm.Style
	if fg, ok := st.Foreground(); ok {
		ps = append(ps, Nearest(fg).Foreground)
	}
	if bg, ok := st.Background(); ok {
		ps = append(ps, Nearest(bg).Background)
	}
	if st.BoldState().Enabled() {
		ps = append(ps, pterm.Bold)
	}
	if st.ItalicState().Enabled() {
		ps = append(ps, pterm.Italic)
	}
	if st.UnderlineState().Enabled() {
		ps = append(ps, pterm.Underscore)
	}
	if st.StrikethroughState().Enabled() {
		ps = append(ps, pterm.Strikethrough)
	}
	return ps
}

// Renderer writes runs with palette colours.
type Renderer struct {
	output io.Writer
}

// New creates a palette renderer.
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

// Render writes every run. Colour output follows pterm's global switch.
func (r *Renderer) Render(_ string, rs []runs.Run) error {
	var sb strings.Builder
	for _, run := range rs {
		ps := StyleFor(run.Style)
		if len(ps) == 0 || !pterm.PrintColor {
			sb.WriteString(run.Text)
			continue
		}
		sb.WriteString(ps.Sprint(run.Text))
	}
	if _, err := io.WriteString(r.output, sb.String()); err != nil {
		return errors.Wrap(err, errors.ErrRender, "failed to write palette output")
	}
	return nil
}
