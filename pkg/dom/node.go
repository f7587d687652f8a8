package dom

import (
	"maps"
	"strings"

	"golang.org/x/net/html"
)

// Kind classifies a mounted node.
type Kind int

const (
	// HostElement is a concrete element such as div or img.
	HostElement Kind = iota
	// CompositeComponent is a user-defined component wrapping rendered output.
	CompositeComponent
	// TextNode is character data.
	TextNode
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case HostElement:
		return "host"
	case CompositeComponent:
		return "composite"
	case TextNode:
		return "text"
	default:
		return "unknown"
	}
}

// Node is one mounted node. Nodes are immutable once mounted and safe for
// concurrent reads.
type Node struct {
	kind       Kind
	name       string
	props      Props
	text       string
	marker     bool
	parent     *Node
	childNodes []*Node

	// mirror is the x/net/html node backing a host element.
	mirror *html.Node
}

// Kind returns the node classification.
func (n *Node) Kind() Kind { return n.kind }

// Name returns the lower-case tag of a host element or the display name of a
// composite component. Text nodes are named "#text".
func (n *Node) Name() string { return n.name }

// HasInstance reports whether the node is a host element backed by a concrete
// element, as opposed to a composite component or text.
func (n *Node) HasInstance() bool { return n.kind == HostElement }

// IsMarker reports whether the node is harness instrumentation.
func (n *Node) IsMarker() bool { return n.marker }

// Props returns a copy of the node's props.
func (n *Node) Props() Props {
	return maps.Clone(n.props)
}

// Children returns element and composite children in declaration order.
func (n *Node) Children() []*Node {
	var out []*Node
	for _, c := range n.childNodes {
		if c.kind != TextNode {
			out = append(out, c)
		}
	}
	return out
}

// ChildNodes returns all children, text included.
func (n *Node) ChildNodes() []*Node {
	return append([]*Node(nil), n.childNodes...)
}

// Text returns the concatenated text content of the node and its descendants.
func (n *Node) Text() string {
	if n.kind == TextNode {
		return n.text
	}
	var sb strings.Builder
	n.Walk(func(d *Node) bool {
		if d.kind == TextNode {
			sb.WriteString(d.text)
		}
		return true
	})
	return sb.String()
}

// Parent returns the nearest ancestor that is not harness instrumentation.
func (n *Node) Parent() *Node {
	for p := n.parent; p != nil; p = p.parent {
		if !p.marker {
			return p
		}
	}
	return nil
}

// Parents returns ancestors from nearest to root, excluding harness nodes.
func (n *Node) Parents() []*Node {
	var out []*Node
	for p := n.Parent(); p != nil; p = p.Parent() {
		out = append(out, p)
	}
	return out
}

// Walk visits n and its descendants in pre-order. Returning false from fn
// skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.childNodes {
		c.Walk(fn)
	}
}

// HTML renders the node's host markup. Composite nodes render their output.
func (n *Node) HTML() string {
	var sb strings.Builder
	n.render(&sb)
	return sb.String()
}

func (n *Node) render(sb *strings.Builder) {
	switch n.kind {
	case HostElement:
		_ = html.Render(sb, n.mirror)
	case TextNode:
		sb.WriteString(html.EscapeString(n.text))
	case CompositeComponent:
		for _, c := range n.childNodes {
			c.render(sb)
		}
	}
}

func (n *Node) appendChild(c *Node) {
	c.parent = n
	n.childNodes = append(n.childNodes, c)
}
