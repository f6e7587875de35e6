package runs

import "github.com/arthur-debert/expedition/pkg/spans"

// Cache memoises Resolve for one buffer. The cached runs are dropped as
// soon as the buffer's version moves, so they always reflect the current
// assertions. A Cache is not safe for concurrent use.
type Cache struct {
	buf     *spans.Buffer
	version uint64
	runs    []Run
	valid   bool
}

// NewCache returns a cache over b.
func NewCache(b *spans.Buffer) *Cache {
	return &Cache{buf: b}
}

// Runs returns the resolved runs, recomputing only when the buffer changed
// since the last call. The returned slice is owned by the caller.
func (c *Cache) Runs() []Run {
	if !c.valid || c.version != c.buf.Version() {
		c.runs = Resolve(c.buf)
		c.version = c.buf.Version()
		c.valid = true
	}
	if c.runs == nil {
		return nil
	}
	out := make([]Run, len(c.runs))
	copy(out, c.runs)
	return out
}

// Fresh reports whether the next call to Runs will be served from cache.
func (c *Cache) Fresh() bool {
	return c.valid && c.version == c.buf.Version()
}

// Buffer returns the cached buffer.
func (c *Cache) Buffer() *spans.Buffer {
	return c.buf
}
