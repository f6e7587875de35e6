package codec

import (
	"strconv"
	"unicode/utf8"

	"github.com/arthur-debert/expedition/pkg/errors"
	"github.com/beevik/etree"
)

// marshalXML writes
//
//	<document>
//	  <text>hello</text>
//	  <span start="0" end="5" foreground="#ff0000" bold="true"/>
//	</document>
func marshalXML(doc Document) ([]byte, error) {
	if err := checkXMLChars("text", doc.Text); err != nil {
		return nil, err
	}
	x := etree.NewDocument()
	x.WriteSettings.CanonicalText = true
	x.WriteSettings.CanonicalAttrVal = true
	x.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := x.CreateElement("document")
	root.CreateElement("text").SetText(doc.Text)

	for _, sp := range doc.Spans {
		el := root.CreateElement("span")
		el.CreateAttr("start", strconv.Itoa(sp.Start))
		el.CreateAttr("end", strconv.Itoa(sp.End))
		if sp.Class != "" {
			if err := checkXMLChars("class", sp.Class); err != nil {
				return nil, err
			}
			el.CreateAttr("class", sp.Class)
		}
		s := sp.Style
		if s.Foreground != nil {
			el.CreateAttr("foreground", *s.Foreground)
		}
		if s.Background != nil {
			el.CreateAttr("background", *s.Background)
		}
		for _, f := range []struct {
			name string
			v    *bool
		}{
			{"bold", s.Bold},
			{"italic", s.Italic},
			{"underline", s.Underline},
			{"strikethrough", s.Strikethrough},
		} {
			if f.v != nil {
				el.CreateAttr(f.name, strconv.FormatBool(*f.v))
			}
		}
	}

	x.Indent(2)
	return x.WriteToBytes()
}

func unmarshalXML(data []byte) (Document, error) {
	var doc Document
	x := etree.NewDocument()
	if err := x.ReadFromBytes(data); err != nil {
		return doc, err
	}
	root := x.Root()
	if root == nil || root.Tag != "document" {
		return doc, errors.New(errors.ErrDecode, "missing <document> root element")
	}
	if t := root.SelectElement("text"); t != nil {
		doc.Text = t.Text()
	}

	for i, el := range root.SelectElements("span") {
		var sp Span
		var err error
		if sp.Start, err = intAttr(el, "start"); err != nil {
			return doc, errors.Wrapf(err, errors.ErrDecode, "span %d", i)
		}
		if sp.End, err = intAttr(el, "end"); err != nil {
			return doc, errors.Wrapf(err, errors.ErrDecode, "span %d", i)
		}
		sp.Class = el.SelectAttrValue("class", "")
		if a := el.SelectAttr("foreground"); a != nil {
			v := a.Value
			sp.Style.Foreground = &v
		}
		if a := el.SelectAttr("background"); a != nil {
			v := a.Value
			sp.Style.Background = &v
		}
		for _, f := range []struct {
			name string
			dst  **bool
		}{
			{"bold", &sp.Style.Bold},
			{"italic", &sp.Style.Italic},
			{"underline", &sp.Style.Underline},
			{"strikethrough", &sp.Style.Strikethrough},
		} {
			a := el.SelectAttr(f.name)
			if a == nil {
				continue
			}
			v, err := strconv.ParseBool(a.Value)
			if err != nil {
				return doc, errors.Wrapf(err, errors.ErrDecode, "span %d: attribute %s", i, f.name)
			}
			*f.dst = &v
		}
		doc.Spans = append(doc.Spans, sp)
	}
	return doc, nil
}

func intAttr(el *etree.Element, name string) (int, error) {
	a := el.SelectAttr(name)
	if a == nil {
		return 0, errors.Newf(errors.ErrDecode, "missing attribute %s", name)
	}
	n, err := strconv.Atoi(a.Value)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrDecode, "attribute %s", name)
	}
	return n, nil
}

// checkXMLChars rejects strings XML 1.0 cannot carry.
func checkXMLChars(what, s string) error {
	if !utf8.ValidString(s) {
		return errors.Newf(errors.ErrEncode, "%s is not valid UTF-8", what)
	}
	for i, r := range s {
		if !isXMLChar(r) {
			return errors.Newf(errors.ErrEncode, "%s has character %U at byte %d that XML cannot carry", what, r, i)
		}
	}
	return nil
}

func isXMLChar(r rune) bool {
	return r == 0x09 || r == 0x0A || r == 0x0D ||
		(r >= 0x20 && r <= 0xD7FF) ||
		(r >= 0xE000 && r <= 0xFFFD) ||
		(r >= 0x10000 && r <= 0x10FFFF)
}
