package codec

import (
	"math"
	"strconv"
	"strings"

	"github.com/arthur-debert/expedition/pkg/errors"
)

const unsetColor = "-"

func marshalLines(doc Document) ([]byte, error) {
	var sb strings.Builder
	for i, sp := range doc.Spans {
		if sp.Class != "" {
			return nil, errors.Newf(errors.ErrEncode, "span %d: the line format cannot carry class %q", i, sp.Class)
		}
		fields := []string{
			strconv.Itoa(sp.Start),
			strconv.Itoa(sp.End - sp.Start),
			colorField(sp.Style.Foreground),
		}
		if sp.Style.Background != nil {
			fields = append(fields, *sp.Style.Background)
		}
		for _, f := range []struct {
			name string
			v    *bool
		}{
			{"bold", sp.Style.Bold},
			{"italic", sp.Style.Italic},
			{"underline", sp.Style.Underline},
			{"strikethrough", sp.Style.Strikethrough},
		} {
			switch {
			case f.v == nil:
			case *f.v:
				fields = append(fields, f.name)
			default:
				fields = append(fields, "no-"+f.name)
			}
		}
		sb.WriteString(strings.Join(fields, " "))
		sb.WriteByte('\n')
	}
	return []byte(sb.String()), nil
}

func colorField(c *string) string {
	if c == nil {
		return unsetColor
	}
	return *c
}

// parseLines reads one span per non-blank line.
func parseLines(data string) ([]Span, error) {
	var out []Span
	for n, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		sp, err := parseLine(line)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrDecode, "line %d", n+1).WithDetail("line", n+1)
		}
		out = append(out, sp)
	}
	return out, nil
}

func parseLine(line string) (Span, error) {
	var sp Span
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return sp, errors.New(errors.ErrDecode, "bad span format: need at least offset length color")
	}

	offset, err := strconv.Atoi(fields[0])
	if err != nil {
		return sp, errors.Newf(errors.ErrDecode, "bad span offset: %q", fields[0])
	}
	length, err := strconv.Atoi(fields[1])
	if err != nil {
		return sp, errors.Newf(errors.ErrDecode, "bad span length: %q", fields[1])
	}
	if offset < 0 || length < 0 {
		return sp, errors.New(errors.ErrDecode, "negative span offset or length")
	}
	if length > math.MaxInt-offset {
		return sp, errors.Newf(errors.ErrDecode, "span offset %d plus length %d overflows", offset, length)
	}
	sp.Start, sp.End = offset, offset+length

	sp.Style.Foreground = colorValue(fields[2])

	flagStart := 3
	if len(fields) > 3 && (fields[3] == unsetColor || strings.HasPrefix(fields[3], "#")) {
		sp.Style.Background = colorValue(fields[3])
		flagStart = 4
	}

	for _, flag := range fields[flagStart:] {
		value := true
		name := flag
		if rest, ok := strings.CutPrefix(flag, "no-"); ok {
			name, value = rest, false
		}
		v := value
		switch name {
		case "bold":
			sp.Style.Bold = &v
		case "italic":
			sp.Style.Italic = &v
		case "underline":
			sp.Style.Underline = &v
		case "strikethrough":
			sp.Style.Strikethrough = &v
		default:
			return sp, errors.Newf(errors.ErrDecode, "unknown span flag: %q", flag)
		}
	}
	return sp, nil
}

func colorValue(field string) *string {
	if field == unsetColor {
		return nil
	}
	return &field
}
