package dom

import (
	"github.com/a-h/templ"
)

// Element describes a UI tree before it is mounted.
// Implementations are restricted to this package.
type Element interface {
	element()
}

// RenderFunc renders a composite component from its props and children.
type RenderFunc func(props Props, children []Element) Element

// ComponentFunc constructs composite elements for a component returned by Define.
type ComponentFunc func(props Props, children ...Element) Element

type hostElement struct {
	tag      string
	props    Props
	children []Element
}

type textElement struct {
	text string
}

type compositeElement struct {
	name     string
	render   RenderFunc
	props    Props
	children []Element
}

type rawElement struct {
	markup string
}

type templElement struct {
	name      string
	component templ.Component
}

func (hostElement) element()      {}
func (textElement) element()      {}
func (compositeElement) element() {}
func (rawElement) element()       {}
func (templElement) element()     {}

// El describes a host element such as div or img.
func El(tag string, props Props, children ...Element) Element {
	return hostElement{tag: tag, props: props, children: children}
}

// Text describes a text node.
func Text(s string) Element {
	return textElement{text: s}
}

// Define declares a composite component. The name is the display name used
// in selectors, e.g. "CustomTable".
func Define(name string, render RenderFunc) ComponentFunc {
	return func(props Props, children ...Element) Element {
		return compositeElement{name: name, render: render, props: props, children: children}
	}
}

// Raw describes a fragment of HTML markup that is parsed at mount time.
func Raw(markup string) Element {
	return rawElement{markup: markup}
}

// Templ describes a templ component. A non-empty name mounts the rendered
// output beneath a composite node with that display name.
func Templ(name string, c templ.Component) Element {
	return templElement{name: name, component: c}
}

// describe returns a short label for error paths.
func describe(el Element) string {
	switch e := el.(type) {
	case hostElement:
		return e.tag
	case textElement:
		return "#text"
	case compositeElement:
		return e.name
	case rawElement:
		return "#raw"
	case templElement:
		if e.name != "" {
			return e.name
		}
		return "#templ"
	default:
		return "<nil>"
	}
}
