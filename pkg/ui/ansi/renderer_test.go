package ansi_test

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/expedition/pkg/runs"
	"github.com/arthur-debert/expedition/pkg/spans"
	"github.com/arthur-debert/expedition/pkg/style"
	"github.com/arthur-debert/expedition/pkg/ui/ansi"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderResetsAfterEveryStyledRun(t *testing.T) {
	b := spans.New()
	b.Append("hello world", style.Identity().Bold())
	require.NoError(t, b.Wrap(spans.Range{Start: 0, End: 5}, style.Identity().WithForeground(style.Red)))
	b.Append("!", style.Identity())

	var buf bytes.Buffer
	require.NoError(t, ansi.New(&buf).Render(b.Text(), runs.Resolve(b)))

	assert.Equal(t,
		"\x1b[1;38;2;255;0;0mhello\x1b[m"+
			"\x1b[1m world\x1b[m"+
			"!",
		buf.String())
	assert.Equal(t, "hello world!", xansi.Strip(buf.String()))
}

func TestSequence(t *testing.T) {
	tests := []struct {
		name    string
		profile termenv.Profile
		style   style.Style
		want    string
	}{
		{"identity is empty", termenv.TrueColor, style.Identity(), ""},
		{"explicit off emits nothing", termenv.TrueColor, style.Identity().NoBold().NoUnderline(), ""},
		{"attributes", termenv.TrueColor, style.Identity().Bold().Italic().Underline().Strikethrough(), "\x1b[1;3;4;9m"},
		{"truecolor background", termenv.TrueColor, style.Identity().WithBackground(style.RGB(1, 2, 3)), "\x1b[48;2;1;2;3m"},
		{"ansi profile", termenv.ANSI, style.Identity().WithForeground(style.Red), "\x1b[91m"},
		{"256 profile", termenv.ANSI256, style.Identity().WithForeground(style.Red), "\x1b[38;5;196m"},
		{"ascii profile keeps attributes only", termenv.Ascii, style.Identity().WithForeground(style.Red).Bold(), "\x1b[1m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := ansi.New(&bytes.Buffer{}, ansi.WithProfile(tt.profile)).Sequence(tt.style)
			if tt.want == "" {
				assert.Empty(t, seq)
				return
			}
			assert.Equal(t, tt.want, seq.String())
		})
	}
}
