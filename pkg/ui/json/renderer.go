// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/expedition/pkg/codec"
	"github.com/arthur-debert/expedition/pkg/errors"
	"github.com/arthur-debert/expedition/pkg/runs"
)

// Run is one resolved run on the wire.
type Run struct {
	Start int             `json:"start"`
	End   int             `json:"end"`
	Text  string          `json:"text"`
	Style codec.StyleSpec `json:"style"`
}

// Output is the document written for one render.
type Output struct {
	Text string `json:"text"`
	Runs []Run  `json:"runs"`
}

// Renderer provides JSON output for machine consumption
type Renderer struct {
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) *Renderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{encoder: encoder}
}

// Convert builds the wire form of a render.
func Convert(text string, rs []runs.Run) Output {
	out := Output{Text: text, Runs: make([]Run, 0, len(rs))}
	for _, r := range rs {
		out.Runs = append(out.Runs, Run{
			Start: r.Range.Start,
			End:   r.Range.End,
			Text:  r.Text,
			Style: codec.SpecOf(r.Style),
		})
	}
	return out
}

// Render encodes text and runs as one JSON document.
func (r *Renderer) Render(text string, rs []runs.Run) error {
	if err := r.encoder.Encode(Convert(text, rs)); err != nil {
		return errors.Wrap(err, errors.ErrRender, "failed to encode json output")
	}
	return nil
}
