// Package highlight builds styled buffers from source code using chroma
// lexers and styles.
package highlight

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/arthur-debert/expedition/pkg/errors"
	"github.com/arthur-debert/expedition/pkg/logging"
	"github.com/arthur-debert/expedition/pkg/spans"
	"github.com/arthur-debert/expedition/pkg/style"
)

// DefaultStyle is the chroma style used when none is configured.
const DefaultStyle = "monokai"

type options struct {
	lexer      string
	style      string
	background bool
}

// Option configures Source.
type Option func(*options)

// WithLexer forces a lexer by name or alias instead of matching the filename.
func WithLexer(name string) Option {
	return func(o *options) { o.lexer = name }
}

// WithStyle selects a chroma style by name. An empty name keeps the default.
func WithStyle(name string) Option {
	return func(o *options) {
		if name != "" {
			o.style = name
		}
	}
}

// WithBackground keeps the style's background colours. They are dropped by
// default so output sits on the terminal's own background.
func WithBackground(enabled bool) Option {
	return func(o *options) { o.background = enabled }
}

// Source tokenises src and returns a buffer with one append per token.
func Source(filename, src string, opts ...Option) (*spans.Buffer, error) {
	o := options{style: DefaultStyle}
	for _, opt := range opts {
		opt(&o)
	}
	logger := logging.GetLogger("highlight")

	lexer, err := pickLexer(filename, src, o.lexer)
	if err != nil {
		return nil, err
	}
	cs, ok := styles.Registry[strings.ToLower(o.style)]
	if !ok {
		return nil, errors.Newf(errors.ErrNotFound, "unknown highlight style: %s", o.style).
			WithDetail("style", o.style)
	}
	logger.Debug().
		Str("lexer", lexer.Config().Name).
		Str("style", cs.Name).
		Str("file", filename).
		Msg("highlighting source")

	iter, err := chroma.Coalesce(lexer).Tokenise(nil, src)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDecode, "tokenising %s", filename)
	}

	b := spans.New()
	for token := iter(); token != chroma.EOF; token = iter() {
		if token.Value == "" {
			continue
		}
		b.Append(token.Value, Convert(cs.Get(token.Type), o.background))
	}
	return b, nil
}

func pickLexer(filename, src, name string) (chroma.Lexer, error) {
	if name != "" {
		if l := lexers.Get(name); l != nil {
			return l, nil
		}
		return nil, errors.Newf(errors.ErrNotFound, "unknown lexer: %s", name).
			WithDetail("lexer", name)
	}
	if filename != "" {
		if l := lexers.Match(filepath.Base(filename)); l != nil {
			return l, nil
		}
	}
	if l := lexers.Analyse(src); l != nil {
		return l, nil
	}
	return lexers.Fallback, nil
}

// Convert maps a chroma style entry onto a Style. Chroma's unset colours and
// Pass trileans become unset attributes.
func Convert(e chroma.StyleEntry, background bool) style.Style {
	st := style.Identity()
	if e.Colour.IsSet() {
		st = st.WithForeground(colour(e.Colour))
	}
	if background && e.Background.IsSet() {
		st = st.WithBackground(colour(e.Background))
	}
	st = st.WithBold(state(e.Bold))
	st = st.WithItalic(state(e.Italic))
	st = st.WithUnderline(state(e.Underline))
	return st
}

func colour(c chroma.Colour) style.Color {
	return style.RGB(c.Red(), c.Green(), c.Blue())
}

func state(t chroma.Trilean) style.State {
	switch t {
	case chroma.Yes:
		return style.On
	case chroma.No:
		return style.Off
	default:
		return style.Inherit
	}
}

// Styles lists the registered chroma style names.
func Styles() []string {
	return styles.Names()
}

// Lexers lists the registered lexer names.
func Lexers() []string {
	return lexers.Names(false)
}
