// Package ui delivers resolved runs to output backends.
//
// A backend is anything that implements Renderer. The core never performs
// I/O itself: it resolves a buffer and hands the text and runs to the
// backend exactly once per request. Stream backends for terminals, plain
// text and JSON are selected by Format through NewRenderer; the layout and
// cells backends build in-memory results and are constructed directly.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/expedition/pkg/errors"
	"github.com/arthur-debert/expedition/pkg/logging"
	"github.com/arthur-debert/expedition/pkg/runs"
	"github.com/arthur-debert/expedition/pkg/spans"
	"github.com/arthur-debert/expedition/pkg/ui/ansi"
	"github.com/arthur-debert/expedition/pkg/ui/json"
	"github.com/arthur-debert/expedition/pkg/ui/palette"
	"github.com/arthur-debert/expedition/pkg/ui/terminal"
	"github.com/arthur-debert/expedition/pkg/ui/text"
	"github.com/muesli/termenv"
)

// Renderer consumes the runs of one buffer.
//
// Render is called once per output request. rs is ordered left to right,
// covers text exactly once, and holds no empty runs; it is empty only when
// text is.
type Renderer interface {
	Render(text string, rs []runs.Run) error
}

// Render resolves b and hands the result to r.
func Render(r Renderer, b *spans.Buffer) error {
	return r.Render(b.Text(), runs.Resolve(b))
}

// RenderCached is Render through a cache, resolving only when the cached
// buffer changed since the last call.
func RenderCached(r Renderer, c *runs.Cache) error {
	return r.Render(c.Buffer().Text(), c.Runs())
}

type options struct {
	profile    termenv.Profile
	hasProfile bool
}

// Option configures NewRenderer.
type Option func(*options)

// WithProfile pins the colour profile of the terminal and ansi backends
// instead of detecting it from the environment.
func WithProfile(p termenv.Profile) Option {
	return func(o *options) {
		o.profile = p
		o.hasProfile = true
	}
}

// NewRenderer creates a new renderer based on the specified format.
// It automatically detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer, opts ...Option) (Renderer, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	logger := logging.GetLogger("ui")
	logger.Debug().Str("format", format.String()).Msg("creating renderer")

	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output, opts...)
		}
		// If not a file, default to terminal format
		return NewRenderer(FormatTerminal, output, opts...)
	case FormatTerminal:
		var topts []terminal.Option
		if o.hasProfile {
			topts = append(topts, terminal.WithProfile(o.profile))
		}
		return terminal.New(output, topts...), nil
	case FormatANSI:
		var aopts []ansi.Option
		if o.hasProfile {
			aopts = append(aopts, ansi.WithProfile(o.profile))
		}
		return ansi.New(output, aopts...), nil
	case FormatPalette:
		return palette.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	default:
		return nil, errors.Newf(errors.ErrUnknownFormat, "unknown format: %v", format)
	}
}
