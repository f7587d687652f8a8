package dom

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// MarkerAttr marks the harness element that wraps every mounted tree.
const MarkerAttr = "data-a11y-tester"

// MountError reports a failure to mount part of a tree.
type MountError struct {
	Path string // element path, e.g. "div > CustomTable"
	Err  error
}

func (e *MountError) Error() string {
	return fmt.Sprintf("mount %s: %v", e.Path, e.Err)
}

func (e *MountError) Unwrap() error {
	return e.Err
}

// Wrapper is a mounted tree.
type Wrapper struct {
	root  *Node
	hosts map[*html.Node]*Node
}

// Mount renders el beneath a harness element and returns the mounted tree.
func Mount(ctx context.Context, el Element) (*Wrapper, error) {
	if el == nil {
		return nil, &MountError{Path: "<root>", Err: fmt.Errorf("element is nil")}
	}

	root := &Node{
		kind:   HostElement,
		name:   "div",
		props:  Props{MarkerAttr: true},
		marker: true,
		mirror: &html.Node{
			Type:     html.ElementNode,
			Data:     "div",
			DataAtom: atom.Div,
			Attr:     []html.Attribute{{Key: MarkerAttr}},
		},
	}

	m := &mounter{ctx: ctx, hosts: map[*html.Node]*Node{root.mirror: root}}
	if err := m.mount(el, root, root.mirror, ""); err != nil {
		return nil, err
	}
	return &Wrapper{root: root, hosts: m.hosts}, nil
}

// MountHTML parses markup and mounts it.
func MountHTML(ctx context.Context, markup string) (*Wrapper, error) {
	return Mount(ctx, Raw(markup))
}

// MountTempl renders a templ component and mounts its output.
func MountTempl(ctx context.Context, c templ.Component) (*Wrapper, error) {
	return Mount(ctx, Templ("", c))
}

// ToTempl exposes an element description as a templ component.
func ToTempl(el Element) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		wr, err := Mount(ctx, el)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, wr.HTML())
		return err
	})
}

// Root returns the harness node.
func (w *Wrapper) Root() *Node {
	return w.root
}

// Walk visits every mounted node in pre-order, starting at the harness node.
func (w *Wrapper) Walk(fn func(*Node) bool) {
	w.root.Walk(fn)
}

// Nodes returns every mounted node in pre-order, harness and text included.
func (w *Wrapper) Nodes() []*Node {
	var nodes []*Node
	w.root.Walk(func(n *Node) bool {
		nodes = append(nodes, n)
		return true
	})
	return nodes
}

// HTML renders the mounted host markup without the harness element.
func (w *Wrapper) HTML() string {
	var sb strings.Builder
	for _, c := range w.root.childNodes {
		c.render(&sb)
	}
	return sb.String()
}

// Find returns the nodes matching selector in document order.
//
// A capitalized selector equal to a composite display name, such as
// "CustomTable", matches those composite nodes. Any other selector is compiled
// as CSS and matched against host elements; a composite whose name is a valid
// tag selector, such as "table", is matched only when no host element is.
func (w *Wrapper) Find(selector string) ([]*Node, error) {
	var composites []*Node
	w.root.Walk(func(n *Node) bool {
		if n.kind == CompositeComponent && n.name == selector {
			composites = append(composites, n)
		}
		return true
	})
	if len(composites) > 0 && isComponentName(selector) {
		return composites, nil
	}

	matcher, err := cascadia.Compile(selector)
	if err != nil {
		if len(composites) > 0 {
			return composites, nil
		}
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}

	doc := goquery.NewDocumentFromNode(w.root.mirror)
	sel := doc.FindMatcher(matcher)

	nodes := make([]*Node, 0, sel.Length())
	for _, hn := range sel.Nodes {
		if n, ok := w.hosts[hn]; ok && !n.marker {
			nodes = append(nodes, n)
		}
	}
	if len(nodes) == 0 && len(composites) > 0 {
		return composites, nil
	}
	return nodes, nil
}

// isComponentName reports whether name starts with an upper-case letter, the
// convention separating component names from host tags.
func isComponentName(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

// First returns the first node matching selector, or nil.
func (w *Wrapper) First(selector string) (*Node, error) {
	nodes, err := w.Find(selector)
	if err != nil || len(nodes) == 0 {
		return nil, err
	}
	return nodes[0], nil
}

type mounter struct {
	ctx   context.Context
	hosts map[*html.Node]*Node
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + " > " + name
}

// mount attaches el beneath parent. hostParent is the nearest host mirror,
// which differs from parent.mirror when parent is a composite.
func (m *mounter) mount(el Element, parent *Node, hostParent *html.Node, path string) error {
	if err := m.ctx.Err(); err != nil {
		return err
	}
	path = joinPath(path, describe(el))

	switch e := el.(type) {
	case hostElement:
		return m.mountHost(e, parent, hostParent, path)

	case textElement:
		parent.appendChild(&Node{kind: TextNode, name: "#text", text: e.text})
		hostParent.AppendChild(&html.Node{Type: html.TextNode, Data: e.text})
		return nil

	case compositeElement:
		if e.render == nil {
			return &MountError{Path: path, Err: fmt.Errorf("component has no render function")}
		}
		n := &Node{kind: CompositeComponent, name: e.name, props: e.props.canonical()}
		parent.appendChild(n)
		out := e.render(e.props, e.children)
		if out == nil {
			return &MountError{Path: path, Err: fmt.Errorf("component rendered nil")}
		}
		return m.mount(out, n, hostParent, path)

	case rawElement:
		return m.mountMarkup(e.markup, parent, hostParent, path)

	case templElement:
		if e.component == nil {
			return &MountError{Path: path, Err: fmt.Errorf("templ component is nil")}
		}
		var buf bytes.Buffer
		if err := e.component.Render(m.ctx, &buf); err != nil {
			return &MountError{Path: path, Err: fmt.Errorf("render templ component: %w", err)}
		}
		target := parent
		if e.name != "" {
			target = &Node{kind: CompositeComponent, name: e.name, props: Props{}}
			parent.appendChild(target)
		}
		return m.mountMarkup(buf.String(), target, hostParent, path)

	default:
		return &MountError{Path: path, Err: fmt.Errorf("unsupported element %T", el)}
	}
}

func (m *mounter) mountHost(e hostElement, parent *Node, hostParent *html.Node, path string) error {
	if e.tag == "" {
		return &MountError{Path: path, Err: fmt.Errorf("host element has no tag")}
	}
	name := strings.ToLower(e.tag)
	props := e.props.canonical()

	mirror := &html.Node{
		Type:     html.ElementNode,
		Data:     name,
		DataAtom: atom.Lookup([]byte(name)),
	}
	for _, k := range props.Keys() {
		if v, ok := attrValue(props[k]); ok {
			mirror.Attr = append(mirror.Attr, html.Attribute{Key: k, Val: v})
		}
	}
	hostParent.AppendChild(mirror)

	n := &Node{kind: HostElement, name: name, props: props, mirror: mirror}
	_, n.marker = props[MarkerAttr]
	parent.appendChild(n)
	m.hosts[mirror] = n

	for _, child := range e.children {
		if child == nil {
			continue
		}
		if err := m.mount(child, n, mirror, path); err != nil {
			return err
		}
	}
	return nil
}

func (m *mounter) mountMarkup(markup string, parent *Node, hostParent *html.Node, path string) error {
	fragment, err := html.ParseFragment(strings.NewReader(markup), &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	})
	if err != nil {
		return &MountError{Path: path, Err: fmt.Errorf("parse markup: %w", err)}
	}
	for _, hn := range fragment {
		hostParent.AppendChild(hn)
		m.adopt(hn, parent)
	}
	return nil
}

// adopt builds mounted nodes for an already attached html subtree.
func (m *mounter) adopt(hn *html.Node, parent *Node) {
	switch hn.Type {
	case html.TextNode:
		parent.appendChild(&Node{kind: TextNode, name: "#text", text: hn.Data})
	case html.ElementNode:
		props := make(Props, len(hn.Attr))
		for _, a := range hn.Attr {
			props[CanonicalKey(a.Key)] = a.Val
		}
		n := &Node{kind: HostElement, name: strings.ToLower(hn.Data), props: props, mirror: hn}
		_, n.marker = props[MarkerAttr]
		parent.appendChild(n)
		m.hosts[hn] = n
		for c := hn.FirstChild; c != nil; c = c.NextSibling {
			m.adopt(c, n)
		}
	}
}
