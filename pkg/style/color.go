package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arthur-debert/expedition/pkg/errors"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque 8-bit RGBA color. Colors are compared by value; all
// color-space math is delegated to go-colorful.
type Color struct {
	R, G, B, A uint8
}

// Common colors.
var (
	Transparent = Color{}
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Gray        = RGB(160, 160, 160)
	DarkGray    = RGB(96, 96, 96)
	LightGray   = RGB(220, 220, 220)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 255, 0)
	Blue        = RGB(0, 0, 255)
	Yellow      = RGB(255, 255, 0)
	Cyan        = RGB(0, 255, 255)
	Magenta     = RGB(255, 0, 255)
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// RGBA returns a color with explicit alpha.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// ParseHex parses "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseHex(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return Color{}, errors.Newf(errors.ErrInvalidInput, "bad color value: %q", s)
	}
	alpha := uint8(0xff)
	switch len(s) {
	case 4, 7:
	case 9:
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, errors.Wrapf(err, errors.ErrInvalidInput, "bad color value: %q", s)
		}
		alpha = uint8(a)
		s = s[:7]
	default:
		return Color{}, errors.Newf(errors.ErrInvalidInput, "bad color value: %q", s)
	}
	cc, err := colorful.Hex(s)
	if err != nil {
		return Color{}, errors.Wrapf(err, errors.ErrInvalidInput, "bad color value: %q", s)
	}
	c := FromColorful(cc)
	c.A = alpha
	return c, nil
}

// MustParseHex is ParseHex for package-level literals; it panics on error.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats the color as "#rrggbb", or "#rrggbbaa" when not fully opaque.
func (c Color) Hex() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A)
	a |= a << 8
	r = uint32(c.R) * a / 0xff
	g = uint32(c.G) * a / 0xff
	b = uint32(c.B) * a / 0xff
	return r, g, b, a
}

// Colorful converts to a go-colorful color, dropping alpha.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// FromColorful converts an in-gamut go-colorful color to an opaque Color.
func FromColorful(cc colorful.Color) Color {
	r, g, b := cc.Clamped().RGB255()
	return RGB(r, g, b)
}

// Blend mixes c towards other by t in [0,1] in CIE-L*a*b* space. Alpha is
// interpolated linearly.
func (c Color) Blend(other Color, t float64) Color {
	out := FromColorful(c.Colorful().BlendLab(other.Colorful(), t))
	out.A = uint8(float64(c.A) + (float64(other.A)-float64(c.A))*t + 0.5)
	return out
}

// Distance is the perceptual distance between two colors, ignoring alpha.
func (c Color) Distance(other Color) float64 {
	return c.Colorful().DistanceLab(other.Colorful())
}

func (c Color) String() string {
	return c.Hex()
}
