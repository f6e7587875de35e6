package spans

import (
	"strings"

	"github.com/arthur-debert/expedition/pkg/style"
)

// Node is a tree of styled text. A node's style covers its own content and
// all of its children; a child's style layers over its parent's.
type Node struct {
	Content  string
	Style    style.Style
	Children []*Node
}

// Text returns an unstyled leaf.
func Text(content string) *Node {
	return &Node{Content: content}
}

// Styled sets the node's style and returns the node.
func (n *Node) Styled(st style.Style) *Node {
	n.Style = st
	return n
}

// With appends children and returns the node.
func (n *Node) With(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Buffer flattens the tree. Text is laid out depth-first; styles are then
// wrapped in pre-order so that descendants, recorded later, win over their
// ancestors.
func (n *Node) Buffer() *Buffer {
	b := New()
	var wraps []Assertion

	var walk func(*Node)
	walk = func(node *Node) {
		start := len(b.text)
		slot := len(wraps)
		if !node.Style.IsIdentity() {
			wraps = append(wraps, Assertion{Style: node.Style})
		}
		b.text = append(b.text, []rune(node.Content)...)
		for _, c := range node.Children {
			if c != nil {
				walk(c)
			}
		}
		if !node.Style.IsIdentity() {
			wraps[slot].Range = Range{Start: start, End: len(b.text)}
		}
	}
	walk(n)

	if len(b.text) > 0 {
		b.version++
	}
	for _, w := range wraps {
		if !w.Range.Empty() {
			b.record(w.Range, w.Style)
		}
	}
	return b
}

func (n *Node) String() string {
	var sb strings.Builder
	var walk func(*Node)
	walk = func(node *Node) {
		sb.WriteString(node.Content)
		for _, c := range node.Children {
			if c != nil {
				walk(c)
			}
		}
	}
	walk(n)
	return sb.String()
}
