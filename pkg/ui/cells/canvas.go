// Package cells draws runs into a tcell screen, one rune per cell and two
// for wide runes.
package cells

import (
	"github.com/arthur-debert/expedition/pkg/runs"
	"github.com/arthur-debert/expedition/pkg/style"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const tabWidth = 8

// Canvas is a Renderer drawing at a fixed origin of a screen. Each Render
// starts again at the origin; a newline returns to the origin column on the
// next row. Cells outside the screen are silently clipped.
type Canvas struct {
	screen tcell.Screen
	x, y   int
	base   tcell.Style

	curX, curY int
}

// New returns a canvas drawing at column x, row y.
func New(screen tcell.Screen, x, y int) *Canvas {
	return &Canvas{screen: screen, x: x, y: y, base: tcell.StyleDefault}
}

// WithBase sets the style that run styles are layered on.
func (c *Canvas) WithBase(st tcell.Style) *Canvas {
	c.base = st
	return c
}

// Style converts a resolved style into a tcell style over base.
func Style(base tcell.Style, st style.Style) tcell.Style {
	ts := base
	if fg, ok := st.Foreground(); ok {
		ts = ts.Foreground(Color(fg))
	}
	if bg, ok := st.Background(); ok {
		ts = ts.Background(Color(bg))
	}
	if s := st.BoldState(); s.IsSet() {
		ts = ts.Bold(s.Enabled())
	}
	if s := st.ItalicState(); s.IsSet() {
		ts = ts.Italic(s.Enabled())
	}
	if s := st.UnderlineState(); s.IsSet() {
		ts = ts.Underline(s.Enabled())
	}
	if s := st.StrikethroughState(); s.IsSet() {
		ts = ts.StrikeThrough(s.Enabled())
	}
	return ts
}

// Color converts to a tcell true colour.
func Color(c style.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Cursor is the cell after the last one drawn.
func (c *Canvas) Cursor() (x, y int) {
	return c.curX, c.curY
}

// Render draws every run and shows the screen.
func (c *Canvas) Render(_ string, rs []runs.Run) error {
	x, y := c.x, c.y
	lastX, lastY := -1, -1

	for _, run := range rs {
		ts := Style(c.base, run.Style)
		for _, r := range run.Text {
			switch r {
			case '\n':
				x, y = c.x, y+1
				lastX, lastY = -1, -1
				continue
			case '\t':
				next := c.x + ((x-c.x)/tabWidth+1)*tabWidth
				for ; x < next; x++ {
					c.screen.SetContent(x, y, ' ', nil, ts)
				}
				lastX, lastY = -1, -1
				continue
			}

			w := runewidth.RuneWidth(r)
			if w == 0 {
				if lastX >= 0 {
					primary, comb, st, _ := c.screen.GetContent(lastX, lastY)
					c.screen.SetContent(lastX, lastY, primary, append(comb, r), st)
				}
				continue
			}
			c.screen.SetContent(x, y, r, nil, ts)
			lastX, lastY = x, y
			x += w
		}
	}

	c.curX, c.curY = x, y
	c.screen.Show()
	return nil
}
