package spans_test

import (
	"errors"
	"testing"

	experrors "github.com/arthur-debert/expedition/pkg/errors"
	"github.com/arthur-debert/expedition/pkg/logging"
	"github.com/arthur-debert/expedition/pkg/spans"
	"github.com/arthur-debert/expedition/pkg/style"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = style.Identity().WithForeground(style.Red)

func TestAppend(t *testing.T) {
	b := spans.New()
	b.Append("hello", style.Identity())
	b.Append(" wörld", red)

	assert.Equal(t, 11, b.Len())
	assert.Equal(t, "hello wörld", b.Text())
	assert.Equal(t, []spans.Assertion{
		{Range: spans.Range{Start: 0, End: 5}, Style: style.Identity()},
		{Range: spans.Range{Start: 5, End: 11}, Style: red},
	}, b.Assertions())
	assert.Equal(t, "wörld", b.Slice(spans.Range{Start: 6, End: 11}))
}

func TestAppendEmptyRecordsNothing(t *testing.T) {
	b := spans.New()
	b.Append("", red)
	assert.Equal(t, 0, b.Len())
	assert.Empty(t, b.Assertions())
	assert.Equal(t, uint64(0), b.Version())
}

func TestNewString(t *testing.T) {
	b := spans.NewString("plain")
	assert.Equal(t, "plain", b.Text())
	assert.Equal(t, "plain", b.String())
	assert.Empty(t, b.Assertions())

	var zero spans.Buffer
	assert.Equal(t, 0, zero.Len())
	zero.Append("ok", red)
	assert.Equal(t, "ok", zero.Text())
}

func TestWrapValidation(t *testing.T) {
	tests := []struct {
		name    string
		r       spans.Range
		code    experrors.ErrorCode
		wantErr bool
	}{
		{name: "inverted", r: spans.Range{Start: 5, End: 3}, code: experrors.ErrRangeInverted, wantErr: true},
		{name: "past end", r: spans.Range{Start: 0, End: 11}, code: experrors.ErrRangeOutOfBounds, wantErr: true},
		{name: "negative start", r: spans.Range{Start: -1, End: 2}, code: experrors.ErrRangeOutOfBounds, wantErr: true},
		{name: "inverted wins over out of bounds", r: spans.Range{Start: 12, End: 11}, code: experrors.ErrRangeInverted, wantErr: true},
		{name: "whole buffer", r: spans.Range{Start: 0, End: 10}},
		{name: "zero width", r: spans.Range{Start: 3, End: 3}},
		{name: "zero width at end", r: spans.Range{Start: 10, End: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := spans.NewString("0123456789")
			err := b.Wrap(tt.r, red)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, experrors.IsErrorCode(err, tt.code), "got %v", err)
			assert.True(t, errors.Is(err, experrors.Sentinel(tt.code)))

			details := experrors.GetErrorDetails(err)
			assert.Equal(t, tt.r.Start, details["start"])
			assert.Equal(t, tt.r.End, details["end"])
			assert.Equal(t, 10, details["length"])
			assert.Empty(t, b.Assertions(), "failed wrap must not record")
		})
	}
}

func TestWrapZeroWidthIsDropped(t *testing.T) {
	b := spans.NewString("abcdef")
	v := b.Version()
	require.NoError(t, b.Wrap(spans.Range{Start: 3, End: 3}, red))
	assert.Empty(t, b.Assertions())
	assert.Equal(t, v, b.Version())
}

func TestWrapDoesNotTouchText(t *testing.T) {
	b := spans.New()
	b.Append("hello world", style.Identity().Bold())
	require.NoError(t, b.Wrap(spans.Range{Start: 0, End: 5}, red))
	assert.Equal(t, "hello world", b.Text())
	assert.Len(t, b.Assertions(), 2)
	assert.Equal(t, red, b.Assertions()[1].Style)
}

func TestMustWrap(t *testing.T) {
	b := spans.NewString("abc")
	assert.NotPanics(t, func() { b.MustWrap(spans.Range{Start: 0, End: 3}, red) })
	assert.Panics(t, func() { b.MustWrap(spans.Range{Start: 0, End: 4}, red) })
}

func TestAssertionsIsACopy(t *testing.T) {
	b := spans.New()
	b.Append("abc", red)
	got := b.Assertions()
	got[0].Range.End = 99
	assert.Equal(t, 3, b.Assertions()[0].Range.End)
}

func TestVersionIncreases(t *testing.T) {
	b := spans.New()
	v0 := b.Version()
	b.Append("abc", red)
	v1 := b.Version()
	require.NoError(t, b.Wrap(spans.Range{Start: 0, End: 1}, red))
	v2 := b.Version()

	assert.Greater(t, v1, v0)
	assert.Greater(t, v2, v1)

	_ = b.Wrap(spans.Range{Start: 0, End: 9}, red)
	assert.Equal(t, v2, b.Version(), "rejected wrap leaves version alone")
}

func TestAppendBuffer(t *testing.T) {
	left := spans.New()
	left.Append("ab", red)

	right := spans.New()
	right.Append("cd", style.Identity().Bold())
	require.NoError(t, right.Wrap(spans.Range{Start: 1, End: 2}, style.Identity().Italic()))

	v := left.Version()
	left.AppendBuffer(right)
	left.AppendBuffer(spans.New())
	left.AppendBuffer(nil)

	assert.Equal(t, "abcd", left.Text())
	assert.Greater(t, left.Version(), v)
	assert.Equal(t, []spans.Assertion{
		{Range: spans.Range{Start: 0, End: 2}, Style: red},
		{Range: spans.Range{Start: 2, End: 4}, Style: style.Identity().Bold()},
		{Range: spans.Range{Start: 3, End: 4}, Style: style.Identity().Italic()},
	}, left.Assertions())
	assert.Equal(t, "cd", right.Text(), "source buffer unchanged")
}

func TestRange(t *testing.T) {
	r := spans.Range{Start: 2, End: 5}
	assert.Equal(t, 3, r.Len())
	assert.False(t, r.Empty())
	assert.True(t, spans.Range{Start: 4, End: 4}.Empty())
	assert.True(t, r.Contains(spans.Range{Start: 3, End: 5}))
	assert.False(t, r.Contains(spans.Range{Start: 1, End: 3}))
	assert.Equal(t, "[2,5)", r.String())
}

func TestMutationsAreSilentWithoutSetup(t *testing.T) {
	assert.Equal(t, zerolog.Disabled, logging.GetLogger("spans").GetLevel())

	b := spans.New()
	b.Append("hello", style.Identity().Bold())
	require.NoError(t, b.Wrap(spans.Range{Start: 0, End: 2}, red))
	assert.Equal(t, zerolog.Disabled, logging.GetLogger("spans").GetLevel())
}
