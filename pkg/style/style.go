// Package style defines the immutable Style value applied to ranges of text.
//
// Every attribute of a Style is independently optional. An unset attribute
// has no opinion and inherits from whatever it is layered over; a set
// attribute overrides. Boolean attributes are tri-state so that "explicitly
// off" stays distinct from "unset":
//
//	base := style.Identity().WithForeground(style.Red).Bold()
//	over := style.Identity().NoBold().Italic()
//	style.Merge(base, over) // foreground red, bold off, italic on
//
// The zero value is the identity style.
package style

import "strings"

// State is the value of a boolean attribute.
type State uint8

const (
	// Inherit leaves the attribute unset.
	Inherit State = iota
	// On enables the attribute.
	On
	// Off explicitly disables the attribute.
	Off
)

// StateOf converts a bool into an explicit State.
func StateOf(enabled bool) State {
	if enabled {
		return On
	}
	return Off
}

// Enabled reports whether the attribute is explicitly on.
func (s State) Enabled() bool {
	return s == On
}

// IsSet reports whether the state carries an opinion.
func (s State) IsSet() bool {
	return s != Inherit
}

func (s State) String() string {
	switch s {
	case On:
		return "on"
	case Off:
		return "off"
	default:
		return "inherit"
	}
}

func (s State) or(fallback State) State {
	if s != Inherit {
		return s
	}
	return fallback
}

// Style is a set of optional visual attributes. Styles are comparable with ==
// and every method returns a modified copy.
type Style struct {
	fg    Color
	bg    Color
	hasFg bool
	hasBg bool

	bold          State
	italic        State
	underline     State
	strikethrough State
}

// Identity returns the style with every attribute unset. It is the identity
// element of Merge.
func Identity() Style {
	return Style{}
}

// Merge layers overlay on top of base: attributes set in overlay win,
// attributes unset in overlay keep base's value.
func Merge(base, overlay Style) Style {
	out := base
	if overlay.hasFg {
		out.fg, out.hasFg = overlay.fg, true
	}
	if overlay.hasBg {
		out.bg, out.hasBg = overlay.bg, true
	}
	out.bold = overlay.bold.or(base.bold)
	out.italic = overlay.italic.or(base.italic)
	out.underline = overlay.underline.or(base.underline)
	out.strikethrough = overlay.strikethrough.or(base.strikethrough)
	return out
}

// Merge returns Merge(s, overlay).
func (s Style) Merge(overlay Style) Style {
	return Merge(s, overlay)
}

// Equal reports whether every attribute of s and o is equal.
func (s Style) Equal(o Style) bool {
	return s == o
}

// IsIdentity reports whether no attribute is set.
func (s Style) IsIdentity() bool {
	return s == Style{}
}

// Foreground returns the foreground color and whether it is set.
func (s Style) Foreground() (Color, bool) {
	return s.fg, s.hasFg
}

// Background returns the background color and whether it is set.
func (s Style) Background() (Color, bool) {
	return s.bg, s.hasBg
}

// BoldState reports the bold attribute. Inherit means no opinion.
func (s Style) BoldState() State { return s.bold }

// ItalicState reports the italic attribute.
func (s Style) ItalicState() State { return s.italic }

// UnderlineState reports the underline attribute.
func (s Style) UnderlineState() State { return s.underline }

// StrikethroughState reports the strikethrough attribute.
func (s Style) StrikethroughState() State { return s.strikethrough }

// WithForeground sets the foreground color.
func (s Style) WithForeground(c Color) Style {
	s.fg, s.hasFg = c, true
	return s
}

// WithBackground sets the background color.
func (s Style) WithBackground(c Color) Style {
	s.bg, s.hasBg = c, true
	return s
}

// ClearForeground unsets the foreground color.
func (s Style) ClearForeground() Style {
	s.fg, s.hasFg = Color{}, false
	return s
}

// ClearBackground unsets the background color.
func (s Style) ClearBackground() Style {
	s.bg, s.hasBg = Color{}, false
	return s
}

// WithBold sets the bold state.
func (s Style) WithBold(st State) Style {
	s.bold = st
	return s
}

// WithItalic sets the italic state.
func (s Style) WithItalic(st State) Style {
	s.italic = st
	return s
}

// WithUnderline sets the underline state.
func (s Style) WithUnderline(st State) Style {
	s.underline = st
	return s
}

// WithStrikethrough sets the strikethrough state.
func (s Style) WithStrikethrough(st State) Style {
	s.strikethrough = st
	return s
}

// Bold turns bold on.
func (s Style) Bold() Style { return s.WithBold(On) }

// NoBold turns bold explicitly off.
func (s Style) NoBold() Style { return s.WithBold(Off) }

// Italic turns italic on.
func (s Style) Italic() Style { return s.WithItalic(On) }

// NoItalic turns italic explicitly off.
func (s Style) NoItalic() Style { return s.WithItalic(Off) }

// Underline turns underline on.
func (s Style) Underline() Style { return s.WithUnderline(On) }

// NoUnderline turns underline explicitly off.
func (s Style) NoUnderline() Style { return s.WithUnderline(Off) }

// Strikethrough turns strikethrough on.
func (s Style) Strikethrough() Style { return s.WithStrikethrough(On) }

// NoStrikethrough turns strikethrough explicitly off.
func (s Style) NoStrikethrough() Style { return s.WithStrikethrough(Off) }

// String renders the set attributes as "fg:#ff0000 + Bold + !Italic".
// Explicitly disabled attributes are prefixed with "!". The identity style
// renders as the empty string.
func (s Style) String() string {
	var parts []string
	if s.hasFg {
		parts = append(parts, "fg:"+s.fg.Hex())
	}
	if s.hasBg {
		parts = append(parts, "bg:"+s.bg.Hex())
	}
	for _, a := range []struct {
		state State
		name  string
	}{
		{s.bold, "Bold"},
		{s.italic, "Italic"},
		{s.underline, "Underline"},
		{s.strikethrough, "Strikethrough"},
	} {
		switch a.state {
		case On:
			parts = append(parts, a.name)
		case Off:
			parts = append(parts, "!"+a.name)
		}
	}
	return strings.Join(parts, " + ")
}
