// Package spans holds styled text: a flat run of characters plus an
// insertion-ordered list of style assertions over character ranges.
//
// Text only grows. Styling never edits text; it records another assertion.
// Positions count code points, not bytes.
package spans

import (
	"fmt"

	"github.com/arthur-debert/expedition/pkg/errors"
	"github.com/arthur-debert/expedition/pkg/logging"
	"github.com/arthur-debert/expedition/pkg/style"
)

// Range is a half-open [Start, End) range of character indexes.
type Range struct {
	Start int
	End   int
}

// Len is the number of characters covered.
func (r Range) Len() int {
	return r.End - r.Start
}

// Empty reports whether the range covers no characters.
func (r Range) Empty() bool {
	return r.End <= r.Start
}

// Contains reports whether o lies entirely inside r.
func (r Range) Contains(o Range) bool {
	return r.Start <= o.Start && o.End <= r.End
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// Assertion is one styling action: st applies to every character in Range.
type Assertion struct {
	Range Range
	Style style.Style
}

// Buffer owns text and the assertions over it. The zero value is an empty
// buffer ready to use. A Buffer is not safe for concurrent mutation.
type Buffer struct {
	text       []rune
	assertions []Assertion
	version    uint64
}

// New returns an empty buffer.
func New() *Buffer {
	return &Buffer{}
}

// NewString returns a buffer holding s with no assertions.
func NewString(s string) *Buffer {
	b := &Buffer{text: []rune(s)}
	if len(b.text) > 0 {
		b.version++
	}
	return b
}

// Append adds text to the end of the buffer styled with st.
func (b *Buffer) Append(text string, st style.Style) {
	if text == "" {
		return
	}
	start := len(b.text)
	b.text = append(b.text, []rune(text)...)
	b.record(Range{Start: start, End: len(b.text)}, st)
}

// Wrap applies st to an existing range. A zero-width range is accepted and
// ignored.
func (b *Buffer) Wrap(r Range, st style.Style) error {
	if r.Start > r.End {
		return rangeError(errors.ErrRangeInverted, "range start is after its end", r, len(b.text))
	}
	if r.Start < 0 || r.End > len(b.text) {
		return rangeError(errors.ErrRangeOutOfBounds, "range is outside the buffer", r, len(b.text))
	}
	if r.Empty() {
		return nil
	}
	b.record(r, st)
	return nil
}

// MustWrap is Wrap for ranges known to be valid. It panics on error.
func (b *Buffer) MustWrap(r Range, st style.Style) {
	if err := b.Wrap(r, st); err != nil {
		panic(err)
	}
}

// AppendBuffer appends other's text and assertions, shifted past the
// current end.
func (b *Buffer) AppendBuffer(other *Buffer) {
	if other == nil || len(other.text) == 0 {
		return
	}
	offset := len(b.text)
	b.text = append(b.text, other.text...)
	for _, a := range other.assertions {
		b.assertions = append(b.assertions, Assertion{
			Range: Range{Start: a.Range.Start + offset, End: a.Range.End + offset},
			Style: a.Style,
		})
	}
	b.version++
}

func (b *Buffer) record(r Range, st style.Style) {
	b.assertions = append(b.assertions, Assertion{Range: r, Style: st})
	b.version++

	logger := logging.GetLogger("spans")
	logger.Trace().
		Int("start", r.Start).
		Int("end", r.End).
		Str("style", st.String()).
		Msg("assertion recorded")
}

// Len returns the number of characters.
func (b *Buffer) Len() int {
	return len(b.text)
}

// Text returns the raw content without styling.
func (b *Buffer) Text() string {
	return string(b.text)
}

func (b *Buffer) String() string {
	return b.Text()
}

// Slice returns the text covered by r. r must lie within the buffer.
func (b *Buffer) Slice(r Range) string {
	return string(b.text[r.Start:r.End])
}

// Assertions returns a copy of the assertions in insertion order.
func (b *Buffer) Assertions() []Assertion {
	out := make([]Assertion, len(b.assertions))
	copy(out, b.assertions)
	return out
}

// Version changes every time text or assertions are added.
func (b *Buffer) Version() uint64 {
	return b.version
}

func rangeError(code errors.ErrorCode, msg string, r Range, length int) error {
	return errors.Newf(code, "%s: %s with length %d", msg, r, length).
		WithDetails(map[string]interface{}{
			"start":  r.Start,
			"end":    r.End,
			"length": length,
		})
}
