package text_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/arthur-debert/expedition/pkg/errors"
	"github.com/arthur-debert/expedition/pkg/runs"
	"github.com/arthur-debert/expedition/pkg/spans"
	"github.com/arthur-debert/expedition/pkg/style"
	"github.com/arthur-debert/expedition/pkg/ui/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestRenderDropsStyles(t *testing.T) {
	b := spans.New()
	b.Append("ab", style.Identity().Bold())
	b.Append("cd", style.Identity().WithForeground(style.Red))

	var buf bytes.Buffer
	require.NoError(t, text.New(&buf).Render(b.Text(), runs.Resolve(b)))
	assert.Equal(t, "abcd", buf.String())
}

func TestRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, text.New(&buf).Render("", nil))
	assert.Empty(t, buf.String())
}

func TestRenderWriteError(t *testing.T) {
	b := spans.NewString("x")
	err := text.New(failingWriter{}).Render(b.Text(), runs.Resolve(b))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRender))
}
