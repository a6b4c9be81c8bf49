package xmltree

import (
	"sort"
	"strings"
)

// Node is one element in a normalized tree. Children are reachable both by
// tag (always as a list) and in document order.
type Node struct {
	Tag   string
	Attrs map[string]string
	Text  string

	byTag map[string][]*Node
	order []*Node
}

func newNode(tag string, attrs map[string]string) *Node {
	return &Node{Tag: tag, Attrs: attrs}
}

func (n *Node) appendChild(child *Node) {
	if n.byTag == nil {
		n.byTag = make(map[string][]*Node)
	}
	n.byTag[child.Tag] = append(n.byTag[child.Tag], child)
	n.order = append(n.order, child)
}

// Children returns every direct child with the given tag, in document order.
// The result is always a list; absent tags yield a nil slice, never an error.
func (n *Node) Children(tag string) []*Node {
	if n == nil {
		return nil
	}
	return n.byTag[tag]
}

// First returns the first direct child with the given tag, or nil.
func (n *Node) First(tag string) *Node {
	children := n.Children(tag)
	if len(children) == 0 {
		return nil
	}
	return children[0]
}

// AllChildren returns every direct child in document order.
func (n *Node) AllChildren() []*Node {
	if n == nil {
		return nil
	}
	return n.order
}

// Attr returns the attribute value for name, or "" when absent.
func (n *Node) Attr(name string) string {
	if n == nil {
		return ""
	}
	return n.Attrs[name]
}

// HasAttr reports whether the attribute is present, distinguishing an empty
// value from an absent one.
func (n *Node) HasAttr(name string) bool {
	if n == nil {
		return false
	}
	_, ok := n.Attrs[name]
	return ok
}

// Walk visits n and every descendant in document order. The visitor returns
// false to stop the walk early; Walk reports whether the walk ran to
// completion.
func (n *Node) Walk(visit func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !visit(n) {
		return false
	}
	for _, child := range n.order {
		if !child.Walk(visit) {
			return false
		}
	}
	return true
}

// Find returns the first node in document order (n included) for which pred
// is true, or nil.
func (n *Node) Find(pred func(*Node) bool) *Node {
	var found *Node
	n.Walk(func(node *Node) bool {
		if pred(node) {
			found = node
			return false
		}
		return true
	})
	return found
}

// Summary renders a compact single-line sketch of the node, used as the raw
// last-resort identity for constructs that match no known identity scheme.
// Attributes appear in sorted order so the result is deterministic.
func (n *Node) Summary() string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(n.Tag)
	keys := make([]string, 0, len(n.Attrs))
	for key := range n.Attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		b.WriteByte(' ')
		b.WriteString(key)
		b.WriteString(`="`)
		b.WriteString(n.Attrs[key])
		b.WriteByte('"')
	}
	if text := strings.TrimSpace(n.Text); text != "" {
		b.WriteByte('>')
		b.WriteString(text)
	} else {
		b.WriteString("/>")
	}
	return b.String()
}
