// Package text provides plain text output without any styling
package text

import (
	"io"

	"github.com/arthur-debert/expedition/pkg/errors"
	"github.com/arthur-debert/expedition/pkg/runs"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// Render writes the text of every run, dropping styles.
func (r *Renderer) Render(_ string, rs []runs.Run) error {
	if _, err := io.WriteString(r.output, runs.Text(rs)); err != nil {
		return errors.Wrap(err, errors.ErrRender, "failed to write text output")
	}
	return nil
}
