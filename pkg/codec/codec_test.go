package codec_test

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/arthur-debert/expedition/pkg/codec"
	"github.com/arthur-debert/expedition/pkg/errors"
	"github.com/arthur-debert/expedition/pkg/runs"
	"github.com/arthur-debert/expedition/pkg/spans"
	"github.com/arthur-debert/expedition/pkg/style"
	"github.com/arthur-debert/expedition/pkg/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBuffer(t *testing.T) *spans.Buffer {
	t.Helper()
	b := spans.New()
	b.Append("hello ", style.Identity().Bold())
	b.Append("wörld\n\tbye", style.Identity().WithForeground(style.Red).NoItalic())
	require.NoError(t, b.Wrap(spans.Range{Start: 2, End: 9}, style.Identity().
		WithBackground(style.RGBA(0, 0, 255, 0x80)).
		Underline().
		NoStrikethrough()))
	return b
}

func TestRoundTrip(t *testing.T) {
	newlineOnly := func(t *testing.T) *spans.Buffer {
		b := spans.New()
		b.Append("\n", style.Identity().Bold())
		return b
	}
	buffers := []struct {
		name  string
		build func(t *testing.T) *spans.Buffer
	}{
		{"sample", sampleBuffer},
		{"newline only", newlineOnly},
	}

	for _, f := range []codec.Format{codec.FormatJSON, codec.FormatYAML, codec.FormatTOML, codec.FormatXML} {
		for _, bb := range buffers {
			t.Run(f.String()+"/"+bb.name, func(t *testing.T) {
				original := bb.build(t)

				var buf bytes.Buffer
				require.NoError(t, codec.Encode(&buf, original, f))

				decoded, err := codec.Decode(&buf, f)
				require.NoError(t, err)

				assert.Equal(t, original.Text(), decoded.Text())
				assert.Equal(t, original.Assertions(), decoded.Assertions())
				assert.True(t, runs.Equal(runs.Resolve(original), runs.Resolve(decoded)))
			})
		}
	}
}

func TestLinesRoundTrip(t *testing.T) {
	original := sampleBuffer(t)

	var buf bytes.Buffer
	require.NoError(t, codec.Encode(&buf, original, codec.FormatLines))
	assert.Equal(t, strings.Join([]string{
		"0 6 - bold",
		"6 10 #ff0000 no-italic",
		"2 7 - #0000ff80 underline no-strikethrough",
		"",
	}, "\n"), buf.String())

	decoded, err := codec.Decode(&buf, codec.FormatLines, codec.WithText(original.Text()))
	require.NoError(t, err)
	assert.Equal(t, original.Assertions(), decoded.Assertions())
}

func TestJSONShape(t *testing.T) {
	b := spans.New()
	b.Append("hi", style.Identity().WithForeground(style.Red).Bold())

	var buf bytes.Buffer
	require.NoError(t, codec.Encode(&buf, b, codec.FormatJSON))
	assert.JSONEq(t, `{
		"text": "hi",
		"spans": [{"start": 0, "end": 2, "style": {"foreground": "#ff0000", "bold": true}}]
	}`, buf.String())
}

func TestDecodeClasses(t *testing.T) {
	th, err := theme.LoadFromData([]byte(`
colors: {accent: "#00ff00"}
styles:
  title: {foreground: accent, bold: true}
`))
	require.NoError(t, err)

	input := `{"text": "abc", "spans": [{"start": 0, "end": 3, "class": "title.main", "style": {"bold": false}}]}`
	b, err := codec.Decode(strings.NewReader(input), codec.FormatJSON, codec.WithTheme(th))
	require.NoError(t, err)

	rs := runs.Resolve(b)
	require.Len(t, rs, 1)
	assert.Equal(t, style.Identity().WithForeground(style.Green).NoBold(), rs[0].Style)

	_, err = codec.Decode(strings.NewReader(`{"text": "abc", "spans": [{"start": 0, "end": 1, "class": "nope"}]}`),
		codec.FormatJSON, codec.WithTheme(th))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDecode))
}

func TestDecodeDefaultThemeClass(t *testing.T) {
	b, err := codec.Decode(strings.NewReader("text: abc\nspans:\n  - {start: 0, end: 3, class: error}\n"), codec.FormatYAML)
	require.NoError(t, err)
	want, _ := theme.Default().Get("error")
	assert.Equal(t, want, runs.Resolve(b)[0].Style)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		format codec.Format
		input  string
		opts   []codec.DecodeOption
		code   errors.ErrorCode
	}{
		{"malformed json", codec.FormatJSON, `{"text": `, nil, errors.ErrDecode},
		{"unknown json field", codec.FormatJSON, `{"text": "a", "extra": 1}`, nil, errors.ErrDecode},
		{"bad color", codec.FormatJSON, `{"text": "a", "spans": [{"start": 0, "end": 1, "style": {"foreground": "red"}}]}`, nil, errors.ErrDecode},
		{"inverted range", codec.FormatJSON, `{"text": "abcdef", "spans": [{"start": 5, "end": 3}]}`, nil, errors.ErrRangeInverted},
		{"out of bounds", codec.FormatYAML, "text: abc\nspans: [{start: 0, end: 11}]\n", nil, errors.ErrRangeOutOfBounds},
		{"malformed yaml", codec.FormatYAML, "text: [", nil, errors.ErrDecode},
		{"malformed toml", codec.FormatTOML, "text = ", nil, errors.ErrDecode},
		{"xml wrong root", codec.FormatXML, "<other/>", nil, errors.ErrDecode},
		{"xml bad start", codec.FormatXML, `<document><text>a</text><span start="x" end="1"/></document>`, nil, errors.ErrDecode},
		{"xml missing end", codec.FormatXML, `<document><text>a</text><span start="0"/></document>`, nil, errors.ErrDecode},
		{"xml bad bool", codec.FormatXML, `<document><text>a</text><span start="0" end="1" bold="maybe"/></document>`, nil, errors.ErrDecode},
		{"lines too short", codec.FormatLines, "0 1\n", []codec.DecodeOption{codec.WithText("a")}, errors.ErrDecode},
		{"lines bad offset", codec.FormatLines, "x 1 -\n", []codec.DecodeOption{codec.WithText("a")}, errors.ErrDecode},
		{"lines negative", codec.FormatLines, "0 -1 -\n", []codec.DecodeOption{codec.WithText("a")}, errors.ErrDecode},
		{"lines unknown flag", codec.FormatLines, "0 1 - blink\n", []codec.DecodeOption{codec.WithText("a")}, errors.ErrDecode},
		{"lines past text", codec.FormatLines, "0 5 -\n", []codec.DecodeOption{codec.WithText("a")}, errors.ErrRangeOutOfBounds},
		{"lines length overflow", codec.FormatLines, "1 9223372036854775807 -\n", []codec.DecodeOption{codec.WithText("a")}, errors.ErrDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Decode(strings.NewReader(tt.input), tt.format, tt.opts...)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}

func TestXMLPreservesWhitespace(t *testing.T) {
	b := spans.NewString("  two  spaces  ")
	require.NoError(t, b.Wrap(spans.Range{Start: 0, End: 2}, style.Identity().Italic()))

	var buf bytes.Buffer
	require.NoError(t, codec.Encode(&buf, b, codec.FormatXML))
	assert.Contains(t, buf.String(), `<span start="0" end="2" italic="true"/>`)

	decoded, err := codec.Decode(&buf, codec.FormatXML)
	require.NoError(t, err)
	assert.Equal(t, "  two  spaces  ", decoded.Text())
}

func TestXMLLineEndings(t *testing.T) {
	for _, text := range []string{"a\r\nb", "a\rb", "\r", "\n\n", " \t "} {
		t.Run(strconv.Quote(text), func(t *testing.T) {
			b := spans.New()
			b.Append(text, style.Identity().Underline())

			var buf bytes.Buffer
			require.NoError(t, codec.Encode(&buf, b, codec.FormatXML))

			decoded, err := codec.Decode(&buf, codec.FormatXML)
			require.NoError(t, err)
			assert.Equal(t, text, decoded.Text())
			assert.Equal(t, b.Assertions(), decoded.Assertions())
		})
	}
}

func TestXMLRejectsUnrepresentableText(t *testing.T) {
	tests := []struct {
		name string
		doc  codec.Document
	}{
		{"control character", codec.Document{Text: "\x01x"}},
		{"nul", codec.Document{Text: "a\x00"}},
		{"invalid utf8", codec.Document{Text: "a\xffb"}},
		{"control in class", codec.Document{Text: "ab", Spans: []codec.Span{{Start: 0, End: 1, Class: "x\x02"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Marshal(tt.doc, codec.FormatXML)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrEncode), "got %v", err)
		})
	}
}

func TestEmptyBuffer(t *testing.T) {
	for _, f := range []codec.Format{codec.FormatJSON, codec.FormatYAML, codec.FormatTOML, codec.FormatXML} {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, codec.Encode(&buf, spans.New(), f))
			decoded, err := codec.Decode(&buf, f)
			require.NoError(t, err)
			assert.Equal(t, 0, decoded.Len())
			assert.Empty(t, runs.Resolve(decoded))
		})
	}
}

func TestFormats(t *testing.T) {
	tests := []struct {
		path    string
		want    codec.Format
		wantErr bool
	}{
		{path: "a.json", want: codec.FormatJSON},
		{path: "dir/a.YAML", want: codec.FormatYAML},
		{path: "a.yml", want: codec.FormatYAML},
		{path: "a.toml", want: codec.FormatTOML},
		{path: "a.xml", want: codec.FormatXML},
		{path: "a.spans", want: codec.FormatLines},
		{path: "a.txt", wantErr: true},
		{path: "noext", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := codec.FormatFromPath(tt.path)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownFormat))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, f := range codec.Formats {
		parsed, err := codec.ParseFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}
	assert.Equal(t, ".spans", codec.FormatLines.Extension())
	assert.Equal(t, ".json", codec.FormatJSON.Extension())
	assert.Equal(t, "unknown", codec.Format(99).String())
}

func TestLinesRejectsClasses(t *testing.T) {
	_, err := codec.Marshal(codec.Document{Text: "a", Spans: []codec.Span{{Start: 0, End: 1, Class: "x"}}}, codec.FormatLines)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrEncode))
}

func TestSpecOf(t *testing.T) {
	assert.True(t, codec.SpecOf(style.Identity()).IsZero())

	spec := codec.SpecOf(style.Identity().WithForeground(style.Blue).NoUnderline())
	require.NotNil(t, spec.Foreground)
	assert.Equal(t, "#0000ff", *spec.Foreground)
	require.NotNil(t, spec.Underline)
	assert.False(t, *spec.Underline)
	assert.Nil(t, spec.Bold)

	st, err := spec.Style()
	require.NoError(t, err)
	assert.Equal(t, style.Identity().WithForeground(style.Blue).NoUnderline(), st)
}
