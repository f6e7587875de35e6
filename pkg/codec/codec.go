// Package codec persists buffers as text plus spans.
//
// Every format carries the same Document: the raw text and one span per
// assertion, in insertion order. JSON, YAML, TOML and XML hold both; the
// line format holds only spans, one per line:
//
//	offset length fg [bg] [flags...]
//
// where colours are "#rrggbb" or "-" for unset and flags are bold, italic,
// underline, strikethrough or their "no-" negations. Decoding always goes
// through the buffer's Wrap, so a decoded buffer is well formed.
package codec

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/expedition/pkg/errors"
	"github.com/arthur-debert/expedition/pkg/logging"
	"github.com/arthur-debert/expedition/pkg/spans"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a serialisation format.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
	FormatTOML
	FormatXML
	FormatLines
)

// Formats lists every format.
var Formats = []Format{FormatJSON, FormatYAML, FormatTOML, FormatXML, FormatLines}

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	case FormatXML:
		return "xml"
	case FormatLines:
		return "lines"
	default:
		return "unknown"
	}
}

// Extension is the conventional file extension, with the dot.
func (f Format) Extension() string {
	if f == FormatLines {
		return ".spans"
	}
	return "." + f.String()
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "xml":
		return FormatXML, nil
	case "lines", "spans":
		return FormatLines, nil
	default:
		return FormatJSON, errors.Newf(errors.ErrUnknownFormat, "unknown codec format: %s", s)
	}
}

// FormatFromPath picks a format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return FormatJSON, errors.Newf(errors.ErrUnknownFormat, "no extension on %s", path).WithDetail("path", path)
	}
	f, err := ParseFormat(ext)
	if err != nil {
		return f, errors.Wrapf(err, errors.ErrUnknownFormat, "cannot infer format of %s", path).WithDetail("path", path)
	}
	return f, nil
}

// Encode writes b to w in format f.
func Encode(w io.Writer, b *spans.Buffer, f Format) error {
	data, err := Marshal(FromBuffer(b), f)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(err, errors.ErrEncode, "failed to write encoded buffer")
	}
	return nil
}

// Decode reads a buffer in format f from r.
func Decode(r io.Reader, f Format, opts ...DecodeOption) (*spans.Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDecode, "failed to read input")
	}
	doc, err := Unmarshal(data, f, opts...)
	if err != nil {
		return nil, err
	}

	logger := logging.GetLogger("codec")
	logger.Debug().Str("format", f.String()).Int("spans", len(doc.Spans)).Msg("decoded document")
	return doc.Buffer(opts...)
}

// Marshal encodes a document.
func Marshal(doc Document, f Format) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch f {
	case FormatJSON:
		data, err = json.MarshalIndent(doc, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err = enc.Encode(doc); err == nil {
			err = enc.Close()
		}
		data = buf.Bytes()
	case FormatTOML:
		data, err = toml.Marshal(doc)
	case FormatXML:
		data, err = marshalXML(doc)
	case FormatLines:
		data, err = marshalLines(doc)
	default:
		return nil, errors.Newf(errors.ErrUnknownFormat, "unknown codec format: %v", f)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrEncode, "failed to encode %s", f)
	}
	return data, nil
}

// Unmarshal decodes a document without building a buffer. Unknown fields
// are rejected.
func Unmarshal(data []byte, f Format, opts ...DecodeOption) (Document, error) {
	var (
		doc Document
		err error
	)
	switch f {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&doc)
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&doc)
		if err == io.EOF {
			err = nil
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&doc)
	case FormatXML:
		doc, err = unmarshalXML(data)
	case FormatLines:
		o := newDecodeOptions(opts)
		doc.Text = o.text
		doc.Spans, err = parseLines(string(data))
	default:
		return doc, errors.Newf(errors.ErrUnknownFormat, "unknown codec format: %v", f)
	}
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrDecode) {
			return doc, err
		}
		return doc, errors.Wrapf(err, errors.ErrDecode, "failed to decode %s", f)
	}
	return doc, nil
}
