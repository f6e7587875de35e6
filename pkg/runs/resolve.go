// Package runs turns a buffer's overlapping assertions into the ordered,
// non-overlapping runs backends render.
//
// Every character gets the fold of all assertions covering it, merged in
// insertion order starting from the identity style, so on any conflicting
// field the most recently recorded assertion wins. Text nothing covers is
// still emitted, with the identity style. Neighbouring runs never share a
// style.
package runs

import (
	"fmt"
	"sort"

	"github.com/arthur-debert/expedition/pkg/logging"
	"github.com/arthur-debert/expedition/pkg/spans"
	"github.com/arthur-debert/expedition/pkg/style"
)

// Run is a maximal stretch of text with one resolved style.
type Run struct {
	Range spans.Range
	Text  string
	Style style.Style
}

func (r Run) String() string {
	return fmt.Sprintf("%s %q {%s}", r.Range, r.Text, r.Style)
}

type boundary struct {
	pos   int
	index int
}

// Resolve partitions the buffer into runs. An empty buffer yields no runs.
//
// Boundaries are sorted once and swept left to right while the set of
// covering assertions is kept ordered by insertion index. Each sub-range
// then costs a fold over the assertions covering it, so heavily stacked
// buffers (thousands of assertions over the same text) resolve in time
// proportional to sub-ranges times stack depth.
//
// Resolve panics if an assertion lies outside the buffer, which cannot
// happen for buffers built through Append and Wrap.
func Resolve(b *spans.Buffer) []Run {
	length := b.Len()
	if length == 0 {
		return nil
	}

	assertions := b.Assertions()
	starts := make([]boundary, 0, len(assertions))
	ends := make([]boundary, 0, len(assertions))
	points := make([]int, 0, 2*len(assertions)+2)
	points = append(points, 0, length)

	for i, a := range assertions {
		if a.Range.Start < 0 || a.Range.End > length || a.Range.Start > a.Range.End {
			panic(fmt.Sprintf("runs: assertion %d %s outside buffer of length %d", i, a.Range, length))
		}
		if a.Range.Empty() {
			continue
		}
		starts = append(starts, boundary{pos: a.Range.Start, index: i})
		ends = append(ends, boundary{pos: a.Range.End, index: i})
		points = append(points, a.Range.Start, a.Range.End)
	}

	sort.Slice(starts, func(i, j int) bool { return starts[i].pos < starts[j].pos })
	sort.Slice(ends, func(i, j int) bool { return ends[i].pos < ends[j].pos })
	sort.Ints(points)

	var (
		out     []Run
		active  []int
		si, ei  int
		current = points[0]
	)
	for _, next := range points[1:] {
		if next == current {
			continue
		}
		for ; ei < len(ends) && ends[ei].pos <= current; ei++ {
			active = remove(active, ends[ei].index)
		}
		for ; si < len(starts) && starts[si].pos <= current; si++ {
			active = insert(active, starts[si].index)
		}

		resolved := style.Identity()
		for _, idx := range active {
			resolved = style.Merge(resolved, assertions[idx].Style)
		}

		sub := spans.Range{Start: current, End: next}
		if n := len(out); n > 0 && out[n-1].Style == resolved {
			out[n-1].Range.End = next
		} else {
			out = append(out, Run{Range: sub, Style: resolved})
		}
		current = next
	}

	for i := range out {
		out[i].Text = b.Slice(out[i].Range)
	}

	logger := logging.GetLogger("runs")
	logger.Trace().
		Int("assertions", len(assertions)).
		Int("subranges", len(points)-1).
		Int("runs", len(out)).
		Msg("resolved")
	return out
}

// insert adds idx keeping active sorted ascending.
func insert(active []int, idx int) []int {
	at := sort.SearchInts(active, idx)
	active = append(active, 0)
	copy(active[at+1:], active[at:])
	active[at] = idx
	return active
}

func remove(active []int, idx int) []int {
	at := sort.SearchInts(active, idx)
	if at == len(active) || active[at] != idx {
		panic(fmt.Sprintf("runs: assertion %d ended without starting", idx))
	}
	return append(active[:at], active[at+1:]...)
}

// Text concatenates the text of every run.
func Text(rs []Run) string {
	n := 0
	for _, r := range rs {
		n += len(r.Text)
	}
	buf := make([]byte, 0, n)
	for _, r := range rs {
		buf = append(buf, r.Text...)
	}
	return string(buf)
}

// Equal reports whether two run sequences are identical.
func Equal(a, b []Run) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
