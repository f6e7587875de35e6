package codec

import (
	"github.com/arthur-debert/expedition/pkg/errors"
	"github.com/arthur-debert/expedition/pkg/spans"
	"github.com/arthur-debert/expedition/pkg/style"
	"github.com/arthur-debert/expedition/pkg/theme"
	"gopkg.in/yaml.v3"
)

// StyleSpec is a style on the wire. Nil fields are unset; colours are
// "#rrggbb" or "#rrggbbaa".
type StyleSpec struct {
	Foreground    *string `json:"foreground,omitempty" yaml:"foreground,omitempty" toml:"foreground,omitempty"`
	Background    *string `json:"background,omitempty" yaml:"background,omitempty" toml:"background,omitempty"`
	Bold          *bool   `json:"bold,omitempty" yaml:"bold,omitempty" toml:"bold,omitempty"`
	Italic        *bool   `json:"italic,omitempty" yaml:"italic,omitempty" toml:"italic,omitempty"`
	Underline     *bool   `json:"underline,omitempty" yaml:"underline,omitempty" toml:"underline,omitempty"`
	Strikethrough *bool   `json:"strikethrough,omitempty" yaml:"strikethrough,omitempty" toml:"strikethrough,omitempty"`
}

// Span is one assertion on the wire. Class, when present, names a theme
// style that Style is layered over.
type Span struct {
	Start int       `json:"start" yaml:"start" toml:"start"`
	End   int       `json:"end" yaml:"end" toml:"end"`
	Class string    `json:"class,omitempty" yaml:"class,omitempty" toml:"class,omitempty"`
	Style StyleSpec `json:"style" yaml:"style,omitempty" toml:"style,omitempty"`
}

// Document is the serialised form of a buffer.
type Document struct {
	Text  string `json:"text" yaml:"text" toml:"text"`
	Spans []Span `json:"spans" yaml:"spans" toml:"spans"`
}

// MarshalYAML always writes text as a double-quoted scalar. Block scalars
// cannot hold every string, a lone "\n" among them.
func (d Document) MarshalYAML() (interface{}, error) {
	type plain Document
	var n yaml.Node
	if err := n.Encode(plain(d)); err != nil {
		return nil, err
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == "text" {
			n.Content[i+1].Style = yaml.DoubleQuotedStyle
		}
	}
	return &n, nil
}

// SpecOf converts a style to its wire form.
func SpecOf(st style.Style) StyleSpec {
	var spec StyleSpec
	if c, ok := st.Foreground(); ok {
		hex := c.Hex()
		spec.Foreground = &hex
	}
	if c, ok := st.Background(); ok {
		hex := c.Hex()
		spec.Background = &hex
	}
	spec.Bold = stateFlag(st.BoldState())
	spec.Italic = stateFlag(st.ItalicState())
	spec.Underline = stateFlag(st.UnderlineState())
	spec.Strikethrough = stateFlag(st.StrikethroughState())
	return spec
}

func stateFlag(s style.State) *bool {
	if !s.IsSet() {
		return nil
	}
	v := s.Enabled()
	return &v
}

// IsZero reports whether no field is set.
func (s StyleSpec) IsZero() bool {
	return s == StyleSpec{}
}

// Style converts the wire form back to a style.
func (s StyleSpec) Style() (style.Style, error) {
	st := style.Identity()
	if s.Foreground != nil {
		c, err := style.ParseHex(*s.Foreground)
		if err != nil {
			return st, err
		}
		st = st.WithForeground(c)
	}
	if s.Background != nil {
		c, err := style.ParseHex(*s.Background)
		if err != nil {
			return st, err
		}
		st = st.WithBackground(c)
	}
	if s.Bold != nil {
		st = st.WithBold(style.StateOf(*s.Bold))
	}
	if s.Italic != nil {
		st = st.WithItalic(style.StateOf(*s.Italic))
	}
	if s.Underline != nil {
		st = st.WithUnderline(style.StateOf(*s.Underline))
	}
	if s.Strikethrough != nil {
		st = st.WithStrikethrough(style.StateOf(*s.Strikethrough))
	}
	return st, nil
}

// FromBuffer captures b's text and assertions in insertion order.
func FromBuffer(b *spans.Buffer) Document {
	assertions := b.Assertions()
	doc := Document{Text: b.Text(), Spans: make([]Span, 0, len(assertions))}
	for _, a := range assertions {
		doc.Spans = append(doc.Spans, Span{
			Start: a.Range.Start,
			End:   a.Range.End,
			Style: SpecOf(a.Style),
		})
	}
	return doc
}

// Buffer rebuilds a buffer through the public mutation API, so the result
// is always well formed. Out-of-range spans fail with the buffer's range
// errors; bad colours and unknown classes fail with ErrDecode.
func (d Document) Buffer(opts ...DecodeOption) (*spans.Buffer, error) {
	o := newDecodeOptions(opts)

	b := spans.NewString(d.Text)
	for i, sp := range d.Spans {
		st, err := sp.Style.Style()
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrDecode, "span %d", i).WithDetail("span", i)
		}
		if sp.Class != "" {
			base, ok := o.theme().Lookup(sp.Class)
			if !ok {
				return nil, errors.Newf(errors.ErrDecode, "span %d: unknown class %q", i, sp.Class).
					WithDetail("span", i).
					WithDetail("class", sp.Class)
			}
			st = base.Merge(st)
		}
		if err := b.Wrap(spans.Range{Start: sp.Start, End: sp.End}, st); err != nil {
			return nil, err
		}
	}
	return b, nil
}

type decodeOptions struct {
	th      *theme.Theme
	text    string
	hasText bool
}

func newDecodeOptions(opts []DecodeOption) *decodeOptions {
	o := &decodeOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *decodeOptions) theme() *theme.Theme {
	if o.th == nil {
		o.th = theme.Default()
	}
	return o.th
}

// DecodeOption configures decoding.
type DecodeOption func(*decodeOptions)

// WithTheme resolves span classes through th instead of the default theme.
func WithTheme(th *theme.Theme) DecodeOption {
	return func(o *decodeOptions) {
		o.th = th
	}
}

// WithText supplies the text for formats that carry only spans.
func WithText(text string) DecodeOption {
	return func(o *decodeOptions) {
		o.text = text
		o.hasText = true
	}
}
