package theme_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/expedition/pkg/errors"
	"github.com/arthur-debert/expedition/pkg/style"
	"github.com/arthur-debert/expedition/pkg/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
name: sample
colors:
  accent: "#ff0000"
styles:
  title:
    foreground: accent
    bold: true
  quiet:
    foreground: "#00ff00"
    bold: false
    underline: true
  quiet.more:
    italic: true
`

func TestDefault(t *testing.T) {
	th := theme.Default()
	assert.Equal(t, "default", th.Name)
	assert.Contains(t, th.Names(), "error")
	assert.Contains(t, th.Colors(), "red")

	st, ok := th.Get("error")
	require.True(t, ok)
	assert.Equal(t, style.On, st.BoldState())
	_, hasFg := st.Foreground()
	assert.True(t, hasFg)

	plain, ok := th.Get("plain")
	require.True(t, ok)
	assert.True(t, plain.IsIdentity())
}

func TestLoadFromData(t *testing.T) {
	th, err := theme.LoadFromData([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "sample", th.Name)
	assert.Equal(t, []string{"quiet", "quiet.more", "title"}, th.Names())

	title, ok := th.Get("title")
	require.True(t, ok)
	assert.Equal(t, style.Identity().WithForeground(style.Red).Bold(), title)

	quiet, _ := th.Get("quiet")
	assert.Equal(t, style.Identity().WithForeground(style.Green).NoBold().Underline(), quiet)

	_, ok = th.Get("missing")
	assert.False(t, ok)
}

func TestLookupFallsBackToParent(t *testing.T) {
	th, err := theme.LoadFromData([]byte(sample))
	require.NoError(t, err)

	st, ok := th.Lookup("quiet.more")
	require.True(t, ok)
	assert.Equal(t, style.Identity().Italic(), st)

	st, ok = th.Lookup("title.sub.deeper")
	require.True(t, ok)
	assert.Equal(t, style.On, st.BoldState())

	_, ok = th.Lookup("nothing.here")
	assert.False(t, ok)
}

func TestMerge(t *testing.T) {
	th, err := theme.LoadFromData([]byte(sample))
	require.NoError(t, err)

	st, err := th.Merge("title", "quiet")
	require.NoError(t, err)
	assert.Equal(t, style.Identity().WithForeground(style.Green).NoBold().Underline(), st)

	st, err = th.Merge()
	require.NoError(t, err)
	assert.True(t, st.IsIdentity())

	_, err = th.Merge("title", "nope")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestInvalidThemes(t *testing.T) {
	tests := []struct {
		name string
		data string
		code errors.ErrorCode
	}{
		{"bad yaml", "styles: [", errors.ErrThemeLoad},
		{"bad palette color", "colors: {a: nothex}", errors.ErrThemeInvalid},
		{"unknown color reference", "styles: {x: {foreground: nowhere}}", errors.ErrThemeInvalid},
		{"bad literal color", "styles: {x: {background: '#zzz'}}", errors.ErrThemeInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := theme.LoadFromData([]byte(tt.data))
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0644))

	th, err := theme.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sample", th.Name)

	_, err = theme.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrThemeLoad))
}

func TestSet(t *testing.T) {
	th := theme.Default()
	th.Set("custom", style.Identity().Strikethrough())
	st, ok := th.Get("custom")
	require.True(t, ok)
	assert.Equal(t, style.On, st.StrikethroughState())
}
